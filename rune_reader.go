package jsonh

// A SeekAnchor selects the reference point for a Seek call.
type SeekAnchor int

// Valid values for a SeekAnchor.
const (
	SeekBegin   SeekAnchor = iota // relative to the start of the source
	SeekCurrent                   // relative to the current position
	SeekEnd                       // relative to the end of the source
)

// A RuneReader decodes UTF-8 runes one at a time from a seekable byte
// source, forwards or backwards, addressing positions by byte offset
// rather than rune count.
//
// A RuneReader is single-threaded; concurrent use must be externally
// serialized.
type RuneReader struct {
	src []byte
	pos int
}

// NewRuneReader constructs a RuneReader over the given UTF-8 byte slice.
// The reader does not copy src; the caller must not mutate it while the
// reader is in use.
func NewRuneReader(src []byte) *RuneReader { return &RuneReader{src: src} }

// NewRuneReaderString constructs a RuneReader over the given UTF-8 string.
func NewRuneReaderString(src string) *RuneReader { return NewRuneReader([]byte(src)) }

// Position reports the current byte offset of the reader.
func (r *RuneReader) Position() int { return r.pos }

// Len reports the total length in bytes of the underlying source.
func (r *RuneReader) Len() int { return len(r.src) }

// Seek repositions the reader relative to anchor, and returns the
// resulting absolute byte offset. The caller is responsible for landing
// on a rune boundary; Seek itself does not validate UTF-8 alignment.
func (r *RuneReader) Seek(offset int, anchor SeekAnchor) int {
	switch anchor {
	case SeekCurrent:
		r.pos += offset
	case SeekEnd:
		r.pos = len(r.src) + offset
	default:
		r.pos = offset
	}
	if r.pos < 0 {
		r.pos = 0
	} else if r.pos > len(r.src) {
		r.pos = len(r.src)
	}
	return r.pos
}

// SeekTo repositions the reader to an absolute byte offset, as returned
// earlier by Position. It satisfies escape.RuneSource for the
// surrogate-pairing rewind in internal/escape.
func (r *RuneReader) SeekTo(pos int) { r.Seek(pos, SeekBegin) }

// runeLen returns the byte length (1-4) of a UTF-8 rune given its lead
// byte: 1 below 0x80, otherwise 2, 3 or 4 as the lead byte's high
// bits encode.
func runeLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	return int((uint(b)-0xA0)>>(20-uint(b)/16)) + 2
}

func isContinuation(b byte) bool { return b&0xC0 == 0x80 }

// Read decodes the rune starting at the current position and advances
// past it. It reports (0, false) at end of input.
func (r *RuneReader) Read() (rune, bool) {
	if r.pos >= len(r.src) {
		return 0, false
	}
	b := r.src[r.pos]
	if b < 0x80 {
		r.pos++
		return rune(b), true
	}
	n := runeLen(b)
	end := r.pos + n
	if end > len(r.src) {
		end = len(r.src)
	}
	ch, size := decodeRune(r.src[r.pos:end])
	if size == 0 {
		size = 1
	}
	r.pos += size
	return ch, true
}

// decodeRune decodes a single UTF-8 rune from the front of b, returning
// the rune and the number of bytes consumed. It never returns an error:
// well-formed UTF-8 input is a documented precondition of the package,
// and on malformed bytes the reader simply returns what it consumed.
func decodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	if b[0] < 0x80 {
		return rune(b[0]), 1
	}
	n := runeLen(b[0])
	if n > len(b) {
		n = len(b)
	}
	switch n {
	case 2:
		if len(b) >= 2 && isContinuation(b[1]) {
			return rune(b[0]&0x1F)<<6 | rune(b[1]&0x3F), 2
		}
	case 3:
		if len(b) >= 3 && isContinuation(b[1]) && isContinuation(b[2]) {
			return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
		}
	case 4:
		if len(b) >= 4 && isContinuation(b[1]) && isContinuation(b[2]) && isContinuation(b[3]) {
			return rune(b[0]&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4
		}
	}
	// Malformed continuation sequence: return the lead byte alone.
	return rune(b[0]), 1
}

// Peek reports the rune at the current position without advancing.
func (r *RuneReader) Peek() (rune, bool) {
	save := r.pos
	ch, ok := r.Read()
	r.pos = save
	return ch, ok
}

// ReadOne advances past the current rune and returns true if it equals
// want; otherwise the position is unchanged and it returns false.
func (r *RuneReader) ReadOne(want rune) bool {
	ch, ok := r.Peek()
	if !ok || ch != want {
		return false
	}
	r.Read()
	return true
}

// ReadAny advances past the current rune and returns it if it is a
// member of set; otherwise the position is unchanged and it returns
// (0, false).
func (r *RuneReader) ReadAny(set func(rune) bool) (rune, bool) {
	ch, ok := r.Peek()
	if !ok || !set(ch) {
		return 0, false
	}
	r.Read()
	return ch, true
}

// ReadReverse decodes the rune immediately before the current position
// and moves the position back past it.
func (r *RuneReader) ReadReverse() (rune, bool) {
	if r.pos <= 0 {
		return 0, false
	}
	end := r.pos
	start := end - 1
	for start > 0 && isContinuation(r.src[start]) && end-start < 4 {
		start--
	}
	ch, size := decodeRune(r.src[start:end])
	if size == 0 || start+size != end {
		// Fall back to treating the immediately preceding byte as its own
		// rune, matching the forward reader's malformed-input fallback.
		start = end - 1
		ch = rune(r.src[start])
	}
	r.pos = start
	return ch, true
}

// PeekReverse reports the rune immediately before the current position
// without moving it.
func (r *RuneReader) PeekReverse() (rune, bool) {
	save := r.pos
	ch, ok := r.ReadReverse()
	r.pos = save
	return ch, ok
}

// ReadOneReverse moves the position back past the preceding rune and
// returns true if it equals want; otherwise the position is unchanged.
func (r *RuneReader) ReadOneReverse(want rune) bool {
	ch, ok := r.PeekReverse()
	if !ok || ch != want {
		return false
	}
	r.ReadReverse()
	return true
}

// ReadAnyReverse moves the position back past the preceding rune and
// returns it if it is a member of set; otherwise the position is
// unchanged.
func (r *RuneReader) ReadAnyReverse(set func(rune) bool) (rune, bool) {
	ch, ok := r.PeekReverse()
	if !ok || !set(ch) {
		return 0, false
	}
	r.ReadReverse()
	return ch, true
}
