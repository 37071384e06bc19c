// Package escape decodes the backslash escape sequences used inside
// JSONH quoted and quoteless strings, including opportunistic
// surrogate-pair combination for \u, \x and \U escapes.
package escape

import (
	"errors"
	"fmt"
	"strings"
)

// RuneSource is the minimal cursor Decode needs: enough to pull runes
// off the input and to rewind after a speculative surrogate-pairing
// attempt does not pan out. *jsonh.RuneReader satisfies this interface.
type RuneSource interface {
	Read() (rune, bool)
	Position() int
	SeekTo(pos int)
}

// ErrUnpairedSurrogate is returned by AppendRune when asked to encode a
// lone UTF-16 surrogate half, which has no valid UTF-8 representation.
var ErrUnpairedSurrogate = errors.New("invalid code point: unpaired surrogate half")

const (
	highSurrogateStart = 0xD800
	highSurrogateEnd   = 0xDBFF
	lowSurrogateStart  = 0xDC00
	lowSurrogateEnd    = 0xDFFF
)

func isHighSurrogate(r rune) bool { return r >= highSurrogateStart && r <= highSurrogateEnd }
func isLowSurrogate(r rune) bool  { return r >= lowSurrogateStart && r <= lowSurrogateEnd }
func isSurrogate(r rune) bool     { return r >= highSurrogateStart && r <= lowSurrogateEnd }

func combineSurrogates(hi, lo rune) rune {
	return 0x10000 + (hi-highSurrogateStart)<<10 + (lo - lowSurrogateStart)
}

// Decode reads a single escape sequence from src immediately after a
// backslash has already been consumed by the caller. It returns the
// decoded code point, or ok=false for a line-continuation escape
// ("\" followed by a newline), which contributes no text at all.
func Decode(src RuneSource) (r rune, ok bool, err error) {
	ch, present := src.Read()
	if !present {
		return 0, false, errors.New("incomplete escape sequence")
	}
	switch ch {
	case '\\':
		return '\\', true, nil
	case 'b':
		return '\b', true, nil
	case 'f':
		return '\f', true, nil
	case 'n':
		return '\n', true, nil
	case 'r':
		return '\r', true, nil
	case 't':
		return '\t', true, nil
	case 'v':
		return '\v', true, nil
	case '0':
		return 0, true, nil
	case 'a':
		return '\a', true, nil
	case 'e':
		return 0x1B, true, nil
	case 'u':
		return decodeHexEscape(src, 4)
	case 'x':
		return decodeHexEscape(src, 2)
	case 'U':
		return decodeHexEscape(src, 8)
	case '\n', '\u2028', '\u2029':
		return 0, false, nil
	case '\r':
		// A "\r\n" line continuation swallows the paired "\n" too.
		mark := src.Position()
		if nxt, ok := src.Read(); !ok || nxt != '\n' {
			src.SeekTo(mark)
		}
		return 0, false, nil
	default:
		return ch, true, nil
	}
}

// decodeHexEscape reads n hex digits and resolves the resulting code
// point, opportunistically pairing a high surrogate with an
// immediately-following "\u"/"\x"/"\U" low-surrogate escape.
func decodeHexEscape(src RuneSource, n int) (rune, bool, error) {
	v, err := readHexDigits(src, n)
	if err != nil {
		return 0, false, err
	}
	r := rune(v)
	if !isHighSurrogate(r) {
		return r, true, nil
	}

	mark := src.Position()
	if lo, ok := tryReadLowSurrogate(src); ok {
		return combineSurrogates(r, lo), true, nil
	}
	src.SeekTo(mark)
	return r, true, nil
}

// tryReadLowSurrogate attempts to read a "\u"/"\x"/"\U" escape and
// interpret it as a low surrogate. It reports ok=false, leaving the
// source's position unspecified, if the attempt does not produce a
// valid low surrogate; the caller is responsible for rewinding.
func tryReadLowSurrogate(src RuneSource) (rune, bool) {
	bs, ok := src.Read()
	if !ok || bs != '\\' {
		return 0, false
	}
	kind, ok := src.Read()
	if !ok {
		return 0, false
	}
	var width int
	switch kind {
	case 'u':
		width = 4
	case 'x':
		width = 2
	case 'U':
		width = 8
	default:
		return 0, false
	}
	v, err := readHexDigits(src, width)
	if err != nil {
		return 0, false
	}
	lo := rune(v)
	if !isLowSurrogate(lo) {
		return 0, false
	}
	return lo, true
}

func readHexDigits(src RuneSource, n int) (uint32, error) {
	var v uint32
	for i := 0; i < n; i++ {
		ch, ok := src.Read()
		if !ok {
			return 0, fmt.Errorf("invalid unicode escape: expected %d hex digits, got %d", n, i)
		}
		d := hexDigitValue(ch)
		if d < 0 {
			return 0, fmt.Errorf("invalid unicode escape: %q is not a hex digit", ch)
		}
		v = v<<4 | uint32(d)
	}
	return v, nil
}

func hexDigitValue(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}

// AppendRune appends the UTF-8 encoding of r to buf, refusing to
// silently emit an invalid encoding for a lone (unpaired) surrogate
// half.
func AppendRune(buf *strings.Builder, r rune) error {
	if isSurrogate(r) {
		return ErrUnpairedSurrogate
	}
	buf.WriteRune(r)
	return nil
}
