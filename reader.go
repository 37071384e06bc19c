package jsonh

import (
	"strings"

	"go4.org/mem"

	"github.com/jsonh-org/JsonhGo/internal/escape"
)

// A Reader tokenizes a JSONH byte source into a flat sequence of
// Tokens. It materializes the tokens of one top-level element into a
// slice per call to ReadElement; the first failure terminates the
// stream, and no well-formed tokens follow it.
//
// A Reader is single-threaded. Calling ReadElement repeatedly walks
// successive sibling elements at the top of the input; ReadTokens
// tokenizes everything that remains in one call.
type Reader struct {
	rr   *RuneReader
	opts ReaderOptions

	depth int
	toks  []Token
}

// NewReader constructs a Reader over src with the given options.
func NewReader(src []byte, opts ReaderOptions) *Reader {
	return &Reader{rr: NewRuneReader(src), opts: opts}
}

// NewReaderString constructs a Reader over a UTF-8 string.
func NewReaderString(src string, opts ReaderOptions) *Reader {
	return NewReader([]byte(src), opts)
}

// Position reports the byte offset of the reader's cursor.
func (r *Reader) Position() int { return r.rr.Position() }

// failure is the internal control-flow signal for an unrecoverable
// lexical or structural error: scanning helpers panic it, and the
// exported entry points recover it into a normal error return. It
// never escapes the package.
type failure struct{ err *SyntaxError }

func (r *Reader) fail(err error) {
	panic(failure{newSyntaxError(r.rr.Position(), err)})
}

func (r *Reader) emit(kind TokenKind, value string) {
	r.toks = append(r.toks, Token{Kind: kind, Value: value})
}

// ReadTokens tokenizes every top-level element remaining in the
// input and returns the resulting tokens. In case of a syntax error,
// the returned slice holds the tokens emitted up to the point of
// failure, and err has type *SyntaxError.
func (r *Reader) ReadTokens() (toks []Token, err error) {
	defer r.recover(&toks, &err)

	r.toks = nil
	for {
		r.skipTrivia()
		if !r.more() {
			return r.toks, nil
		}
		r.parseTopLevelElement()
	}
}

// ReadElement tokenizes a single top-level element (an object, an
// array, a primitive, or a braceless object) and returns its tokens.
// It returns (nil, nil) once the input, after comments and
// whitespace, is exhausted.
func (r *Reader) ReadElement() (toks []Token, err error) {
	defer r.recover(&toks, &err)

	r.toks = nil
	r.skipTrivia()
	if !r.more() {
		return nil, nil
	}
	r.parseTopLevelElement()
	return r.toks, nil
}

// recover converts a failure panic raised by a scanning helper into
// the error return of the nearest exported entry point, handing back
// the tokens emitted before the failure.
func (r *Reader) recover(toksp *[]Token, errp *error) {
	if v := recover(); v != nil {
		f, ok := v.(failure)
		if !ok {
			panic(v)
		}
		*toksp = r.toks
		*errp = f.err
	}
}

func (r *Reader) more() bool {
	_, ok := r.rr.Peek()
	return ok
}

// skipTrivia consumes comments and whitespace, emitting Comment
// tokens for every comment seen along the way.
func (r *Reader) skipTrivia() {
	for {
		if r.skipWhitespace() {
			continue
		}
		if r.tryReadComment() {
			continue
		}
		return
	}
}

func (r *Reader) skipWhitespace() bool {
	any := false
	for {
		ch, ok := r.rr.Peek()
		if !ok || !isWhitespace(ch) {
			return any
		}
		r.rr.Read()
		any = true
	}
}

func (r *Reader) tryReadComment() bool {
	ch, ok := r.rr.Peek()
	if !ok {
		return false
	}
	switch ch {
	case '#':
		r.rr.Read()
		r.emit(Comment, r.readLineCommentBody())
		return true
	case '/':
		mark := r.rr.Position()
		r.rr.Read()
		nxt, ok := r.rr.Peek()
		if !ok {
			r.rr.SeekTo(mark)
			return false
		}
		switch nxt {
		case '/':
			r.rr.Read()
			r.emit(Comment, r.readLineCommentBody())
			return true
		case '*':
			r.rr.Read()
			r.emit(Comment, r.readBlockCommentBody())
			return true
		case '=':
			if r.opts.SupportsVersion(V2) {
				r.rr.Read() // consume '='; tryReadNestableBlockComment expects to scan the rest of the run
				if body, ok := r.tryReadNestableBlockComment(); ok {
					r.emit(Comment, body)
					return true
				}
			}
			r.rr.SeekTo(mark)
			return false
		default:
			r.rr.SeekTo(mark)
			return false
		}
	default:
		return false
	}
}

func (r *Reader) readLineCommentBody() string {
	var sb strings.Builder
	for {
		ch, ok := r.rr.Peek()
		if !ok || isNewline(ch) {
			return sb.String()
		}
		r.rr.Read()
		sb.WriteRune(ch)
	}
}

func (r *Reader) readBlockCommentBody() string {
	var sb strings.Builder
	for {
		ch, ok := r.rr.Read()
		if !ok {
			r.fail(ErrUnterminatedComment)
		}
		if ch == '*' {
			if nxt, ok := r.rr.Peek(); ok && nxt == '/' {
				r.rr.Read()
				return sb.String()
			}
		}
		sb.WriteRune(ch)
	}
}

// tryReadNestableBlockComment reads the remainder of a v2
// "/==*...*==/" comment. The caller has already consumed "/="; this
// reads the rest of the leading "=" run and the opening "*". It
// reports ok=false, leaving the cursor at the call-time position, if
// what follows is not a well-formed nestable-comment opener.
func (r *Reader) tryReadNestableBlockComment() (string, bool) {
	mark := r.rr.Position()
	n := 1 // the '=' the caller already consumed
	for {
		ch, ok := r.rr.Peek()
		if !ok || ch != '=' {
			break
		}
		r.rr.Read()
		n++
	}
	if ch, ok := r.rr.Peek(); !ok || ch != '*' {
		r.rr.SeekTo(mark)
		return "", false
	}
	r.rr.Read() // consume '*'

	opener := "/" + strings.Repeat("=", n) + "*"
	depth := 1
	var sb strings.Builder
	for {
		ch, ok := r.rr.Read()
		if !ok {
			r.fail(ErrUnterminatedComment)
		}
		switch ch {
		case '/':
			if m, ok := r.tryReadRunOfEquals(); ok {
				if nxt, ok := r.rr.Peek(); ok && m == n && nxt == '*' {
					r.rr.Read()
					depth++
					sb.WriteString(opener)
					continue
				}
				r.unreadEquals(m)
			}
			sb.WriteByte('/')
		case '*':
			if m, ok := r.tryReadRunOfEquals(); ok {
				if nxt, ok := r.rr.Peek(); ok && m == n && nxt == '/' {
					r.rr.Read()
					depth--
					if depth == 0 {
						return sb.String(), true
					}
					sb.WriteString("*" + strings.Repeat("=", n) + "/")
					continue
				}
				r.unreadEquals(m)
			}
			sb.WriteByte('*')
		default:
			sb.WriteRune(ch)
		}
	}
}

// tryReadRunOfEquals consumes a run of one or more "=" and reports
// its length, or reports ok=false and leaves the cursor unmoved if
// the next rune is not "=".
func (r *Reader) tryReadRunOfEquals() (int, bool) {
	n := 0
	for {
		ch, ok := r.rr.Peek()
		if !ok || ch != '=' {
			break
		}
		r.rr.Read()
		n++
	}
	return n, n > 0
}

// unreadEquals rewinds the cursor back over a run of n "=" runes just
// consumed by tryReadRunOfEquals, used when that run turns out not to
// be a matching nestable-comment delimiter after all.
func (r *Reader) unreadEquals(n int) {
	for i := 0; i < n; i++ {
		r.rr.ReadOneReverse('=')
	}
}

// parseTopLevelElement implements the top-level element production:
// an object, an array, or a primitive which may be
// promoted to a braceless object if it is a string immediately
// followed by ":".
func (r *Reader) parseTopLevelElement() {
	ch, _ := r.rr.Peek()
	switch ch {
	case '{':
		r.parseObject()
	case '[':
		r.parseArray()
	default:
		r.parsePrimitiveOrBracelessObject(true)
	}
}

// parseElement implements the general element production used inside
// containers, where a braceless object is never legal.
func (r *Reader) parseElement() {
	ch, ok := r.rr.Peek()
	if !ok {
		r.fail(ErrUnexpectedEndOfInput)
	}
	switch ch {
	case '{':
		r.parseObject()
	case '[':
		r.parseArray()
	default:
		r.parsePrimitiveOrBracelessObject(false)
	}
}

func (r *Reader) pushDepth() {
	r.depth++
	if md := r.opts.maxDepth(); md >= 0 && r.depth > md {
		r.fail(ErrExceededMaxDepth)
	}
}

func (r *Reader) popDepth() { r.depth-- }

func (r *Reader) parseObject() {
	r.rr.Read() // consume '{'
	r.pushDepth()
	r.emit(StartObject, "")
	for {
		r.skipTrivia()
		ch, ok := r.rr.Peek()
		switch {
		case ok && ch == '}':
			r.rr.Read()
			r.emit(EndObject, "")
			r.popDepth()
			return
		case !ok:
			if r.opts.IncompleteInputs {
				r.emit(EndObject, "")
				r.popDepth()
				return
			}
			r.fail(ErrUnexpectedEndOfInput)
		default:
			r.parseProperty()
		}
	}
}

// parseBracelessObject implements the top-level braceless-object
// production: properties are parsed until end of input, with no
// closing brace. A braceless object can never nest, so nothing
// inside this loop ever recurses back into parseBracelessObject.
func (r *Reader) parseBracelessObject(first string) {
	r.pushDepth()
	r.emit(StartObject, "")
	r.emit(PropertyName, first)
	r.finishPropertyAfterName()
	for {
		r.skipTrivia()
		if !r.more() {
			r.emit(EndObject, "")
			r.popDepth()
			return
		}
		r.parseProperty()
	}
}

func (r *Reader) parseProperty() {
	name := r.readPropertyName()
	r.emit(PropertyName, name)
	r.finishPropertyAfterName()
}

// finishPropertyAfterName consumes ":", the property's value, and an
// optional trailing comma. The caller has already emitted
// PropertyName.
func (r *Reader) finishPropertyAfterName() {
	r.skipTrivia()
	if !r.rr.ReadOne(':') {
		r.fail(ErrExpectedColon)
	}
	r.skipTrivia()
	r.parseElement()
	r.skipTrivia()
	r.rr.ReadOne(',')
}

func (r *Reader) readPropertyName() string {
	ch, ok := r.rr.Peek()
	if !ok {
		r.fail(ErrUnexpectedEndOfInput)
	}
	if r.isQuoteLead(ch) {
		text, _ := r.readQuotedOrVerbatimString()
		return text
	}
	text, _ := r.readQuotelessString()
	return text
}

func (r *Reader) parseArray() {
	r.rr.Read() // consume '['
	r.pushDepth()
	r.emit(StartArray, "")
	for {
		r.skipTrivia()
		ch, ok := r.rr.Peek()
		switch {
		case ok && ch == ']':
			r.rr.Read()
			r.emit(EndArray, "")
			r.popDepth()
			return
		case !ok:
			if r.opts.IncompleteInputs {
				r.emit(EndArray, "")
				r.popDepth()
				return
			}
			r.fail(ErrUnexpectedEndOfInput)
		default:
			r.parseElement()
			r.skipTrivia()
			r.rr.ReadOne(',')
		}
	}
}

func (r *Reader) isQuoteLead(ch rune) bool {
	return ch == '"' || ch == '\'' || (ch == '@' && r.opts.SupportsVersion(V2))
}

func (r *Reader) isNumberLead(ch rune) bool {
	return ch == '-' || ch == '+' || ch == '.' || (ch >= '0' && ch <= '9')
}

// parsePrimitiveOrBracelessObject parses a primitive value (string,
// number, or named literal). At the top level only (allowBraceless),
// a string primitive immediately followed by ":" is instead promoted
// to the first property of a braceless object.
func (r *Reader) parsePrimitiveOrBracelessObject(allowBraceless bool) {
	ch, ok := r.rr.Peek()
	if !ok {
		r.fail(ErrUnexpectedEndOfInput)
	}

	switch {
	case r.isQuoteLead(ch):
		text, _ := r.readQuotedOrVerbatimString()
		if r.peekPropertyColon() {
			if !allowBraceless {
				r.fail(ErrNestedBracelessObject)
			}
			r.parseBracelessObject(text)
			return
		}
		r.emit(String, text)
	case r.isNumberLead(ch):
		r.parseNumberOrQuoteless(allowBraceless)
	default:
		text, sawEscape := r.readQuotelessString()
		if r.peekPropertyColon() {
			if !allowBraceless {
				r.fail(ErrNestedBracelessObject)
			}
			r.parseBracelessObject(text)
			return
		}
		r.emitQuotelessResult(text, sawEscape)
	}
}

// peekPropertyColon reports whether, after skipping comments and
// whitespace, the next rune is ":", without consuming anything. Any
// Comment tokens emitted during the speculative skip are discarded;
// the caller re-scans and re-emits them on whichever path it takes.
func (r *Reader) peekPropertyColon() bool {
	mark := r.rr.Position()
	nTok := len(r.toks)
	r.skipTrivia()
	ch, ok := r.rr.Peek()
	found := ok && ch == ':'
	r.rr.SeekTo(mark)
	r.toks = r.toks[:nTok]
	return found
}

// emitQuotelessResult emits a named-literal token if text exactly
// matches "null"/"true"/"false" and no escape was consumed while
// reading it; otherwise it emits a String token.
func (r *Reader) emitQuotelessResult(text string, sawEscape bool) {
	if !sawEscape {
		got := mem.S(text)
		switch {
		case got.Equal(mem.S("null")):
			r.emit(Null, text)
			return
		case got.Equal(mem.S("true")):
			r.emit(TrueBool, text)
			return
		case got.Equal(mem.S("false")):
			r.emit(FalseBool, text)
			return
		}
	}
	r.emit(String, text)
}

func isReserved(ch rune, v2 bool) bool {
	switch ch {
	case '\\', ',', ':', '[', ']', '{', '}', '/', '#', '"', '\'':
		return true
	case '@':
		return v2
	default:
		return false
	}
}

// isNewline reports whether ch is one of the JSONH newline runes:
// LF, CR, LINE SEPARATOR, PARAGRAPH SEPARATOR.
func isNewline(ch rune) bool {
	switch ch {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// isWhitespace reports whether ch is in the JSONH whitespace rune
// set: ASCII "\t\n\v\f\r" and space, plus the Unicode
// separator runes U+0085, U+00A0, U+1680, U+2000-U+200A, U+2028,
// U+2029, U+202F, U+205F, U+3000.
func isWhitespace(ch rune) bool {
	switch ch {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u0085', '\u00a0', '\u1680',
		'\u2000', '\u2001', '\u2002', '\u2003', '\u2004',
		'\u2005', '\u2006', '\u2007', '\u2008', '\u2009', '\u200a',
		'\u2028', '\u2029', '\u202f', '\u205f', '\u3000':
		return true
	default:
		return false
	}
}

// readQuotedOrVerbatimString dispatches between a v2 verbatim string
// (the "@" prefix, quoted or quoteless) and an ordinary quoted string,
// reporting whether the result was verbatim.
func (r *Reader) readQuotedOrVerbatimString() (string, bool) {
	ch, _ := r.rr.Peek()
	if ch == '@' {
		r.rr.Read()
		nxt, ok := r.rr.Peek()
		switch {
		case !ok, isWhitespace(nxt), nxt == '#', nxt == '/':
			// The string content must immediately follow "@".
			r.fail(ErrVerbatimWithoutString)
		case nxt == '"' || nxt == '\'':
			return r.readQuotedString(true), true
		}
		return r.readVerbatimQuoteless(), true
	}
	return r.readQuotedString(false), false
}

// readVerbatimQuoteless reads a v2 verbatim quoteless string: the text
// after "@" up to a newline or a reserved rune, with backslashes
// literal. The result never matches a named literal.
func (r *Reader) readVerbatimQuoteless() string {
	var sb strings.Builder
	for {
		ch, ok := r.rr.Peek()
		if !ok || isNewline(ch) || (ch != '\\' && isReserved(ch, true)) {
			break
		}
		r.rr.Read()
		sb.WriteRune(ch)
	}
	text := strings.TrimFunc(sb.String(), isWhitespace)
	if text == "" {
		r.fail(ErrVerbatimWithoutString)
	}
	return text
}

// readQuotedString reads a quoted string; the cursor sits on the
// start quote. It counts the run of identical start quotes and
// dispatches to the empty/single/multi-quoted cases.
func (r *Reader) readQuotedString(verbatim bool) string {
	quote, _ := r.rr.Peek()
	n := 0
	for {
		ch, ok := r.rr.Peek()
		if !ok || ch != quote {
			break
		}
		r.rr.Read()
		n++
	}

	switch {
	case n == 2:
		return ""
	case n == 1:
		return r.readSingleLineQuoted(quote, verbatim)
	default:
		body := r.readMultiQuotedBody(quote, n, verbatim)
		return dedent(body)
	}
}

func (r *Reader) readSingleLineQuoted(quote rune, verbatim bool) string {
	var sb strings.Builder
	for {
		ch, ok := r.rr.Read()
		if !ok {
			r.fail(ErrUnterminatedString)
		}
		if ch == quote {
			return sb.String()
		}
		if ch == '\\' && !verbatim {
			r.appendEscape(&sb)
			continue
		}
		sb.WriteRune(ch)
	}
}

// readMultiQuotedBody reads the raw (pre-dedent) body of a
// multi-quoted string, terminated by n consecutive quote runes.
// Partial runs of end quotes are literal text.
func (r *Reader) readMultiQuotedBody(quote rune, n int, verbatim bool) string {
	var sb strings.Builder
	for {
		ch, ok := r.rr.Read()
		if !ok {
			r.fail(ErrUnterminatedString)
		}
		if ch == quote {
			run := 1
			for run < n {
				nxt, ok := r.rr.Peek()
				if !ok || nxt != quote {
					break
				}
				r.rr.Read()
				run++
			}
			if run == n {
				return sb.String()
			}
			for i := 0; i < run; i++ {
				sb.WriteRune(quote)
			}
			continue
		}
		if ch == '\\' && !verbatim {
			r.appendEscape(&sb)
			continue
		}
		sb.WriteRune(ch)
	}
}

func (r *Reader) appendEscape(sb *strings.Builder) {
	v, ok, err := escape.Decode(r.rr)
	if err != nil {
		r.fail(err)
	}
	if !ok {
		return
	}
	if err := escape.AppendRune(sb, v); err != nil {
		r.fail(err)
	}
}

// readQuotelessString reads a quoteless string: a run of runes
// terminated by a reserved rune or an unescaped newline, with the
// accumulated text trimmed of surrounding whitespace. It reports
// whether any escape sequence was consumed, which disqualifies the
// result from matching a named literal. The number disambiguator
// re-scans from the start of the literal rather than seeding this
// buffer, which is equivalent since numeric text contains no escapes.
func (r *Reader) readQuotelessString() (string, bool) {
	v2 := r.opts.SupportsVersion(V2)
	var sb strings.Builder
	sawEscape := false
	for {
		ch, ok := r.rr.Peek()
		if !ok || isNewline(ch) || (ch != '\\' && isReserved(ch, v2)) {
			break
		}
		r.rr.Read()
		if ch == '\\' {
			sawEscape = true
			r.appendEscape(&sb)
			continue
		}
		sb.WriteRune(ch)
	}
	text := strings.TrimFunc(sb.String(), isWhitespace)
	if text == "" {
		r.fail(ErrEmptyQuotelessString)
	}
	return text, sawEscape
}

// parseNumberOrQuoteless lexes a numeric literal, then decides
// whether it is actually the start of a quoteless string that merely
// begins with number-like characters.
func (r *Reader) parseNumberOrQuoteless(allowBraceless bool) {
	start := r.rr.Position()
	numText, numOK := r.tryReadNumberLiteral()

	v2 := r.opts.SupportsVersion(V2)
	sawNewline := false
	for {
		ch, ok := r.rr.Peek()
		if !ok || !isWhitespace(ch) {
			break
		}
		if isNewline(ch) {
			sawNewline = true
			break
		}
		r.rr.Read()
	}
	afterWS := r.rr.Position()
	nxt, hasNext := r.rr.Peek()
	continues := numOK && hasNext && !sawNewline && (nxt == '\\' || !isReserved(nxt, v2))

	if !numOK || continues {
		r.rr.SeekTo(start)
		text, sawEscape := r.readQuotelessString()
		if r.peekPropertyColon() {
			if !allowBraceless {
				r.fail(ErrNestedBracelessObject)
			}
			r.parseBracelessObject(text)
			return
		}
		r.emitQuotelessResult(text, sawEscape)
		return
	}

	r.rr.SeekTo(afterWS)
	r.emit(Number, numText)
}

// tryReadNumberLiteral lexes a numeric literal, leaving the cursor
// immediately after it. It reports ok=false, with the cursor rewound
// to the call-time position, if the text at the start cannot be read
// as a number at all; a malformed separator placement is a hard
// lexical failure instead, not a fallback signal.
func (r *Reader) tryReadNumberLiteral() (string, bool) {
	start := r.rr.Position()
	var sb strings.Builder

	if ch, ok := r.rr.Peek(); ok && (ch == '+' || ch == '-') {
		r.rr.Read()
		sb.WriteRune(ch)
	}

	digits, isHex := decimalDigits, false
	switch {
	case r.consumeBasePrefix('x', 'X'):
		sb.WriteString("0x")
		digits, isHex = hexDigits, true
	case r.consumeBasePrefix('b', 'B'):
		sb.WriteString("0b")
		digits = binaryDigits
	case r.consumeBasePrefix('o', 'O'):
		sb.WriteString("0o")
		digits = octalDigits
	}

	mantissa, ok := r.scanDigitRun(digits, isHex, digits != decimalDigits)
	if !ok {
		r.rr.SeekTo(start)
		return "", false
	}
	sb.WriteString(mantissa)

	if ch, ok := r.rr.Peek(); ok && r.isExponentMarker(ch, isHex) {
		r.rr.Read()
		sb.WriteRune(ch)
		if sign, ok := r.rr.Peek(); ok && (sign == '+' || sign == '-') {
			r.rr.Read()
			sb.WriteRune(sign)
		}
		exponent, ok := r.scanDigitRun(digits, isHex, false)
		if !ok {
			r.rr.SeekTo(start)
			return "", false
		}
		sb.WriteString(exponent)
	}

	return sb.String(), true
}

// consumeBasePrefix consumes a "0" + lo/hi prefix (e.g. "0x"/"0X") if
// present, reporting whether it did.
func (r *Reader) consumeBasePrefix(lo, hi rune) bool {
	mark := r.rr.Position()
	ch, ok := r.rr.Peek()
	if !ok || ch != '0' {
		return false
	}
	r.rr.Read()
	nxt, ok := r.rr.Peek()
	if !ok || (nxt != lo && nxt != hi) {
		r.rr.SeekTo(mark)
		return false
	}
	r.rr.Read()
	return true
}

// isExponentMarker reports whether ch begins an exponent, given the
// digit alphabet in play. In hex, "e"/"E" is itself a valid digit, so
// it only introduces an exponent when immediately followed by a
// mandatory sign; in every other base, any "e"/"E" does.
func (r *Reader) isExponentMarker(ch rune, isHex bool) bool {
	if ch != 'e' && ch != 'E' {
		return false
	}
	if !isHex {
		return true
	}
	mark := r.rr.Position()
	r.rr.Read()
	sign, ok := r.rr.Peek()
	r.rr.SeekTo(mark)
	return ok && (sign == '+' || sign == '-')
}

// scanDigitRun reads a mantissa- or exponent-shaped run: one or more
// base digits, at most one ".", with "_" separators. A separator may
// not open the run (unless a base prefix precedes it, so "0b_100" is
// legal), may not close it, and may not directly follow the ".". A
// second "." ends the run rather than failing it, so that text like
// "1.2.3" falls through to the quoteless disambiguator. If the run is
// malformed it fails with a hard lexical SyntaxError via r.fail and
// does not return; it reports ok=false without failing if the run has
// no digits at all (the caller treats that as "not a number").
func (r *Reader) scanDigitRun(digits string, isHex, afterPrefix bool) (string, bool) {
	var sb strings.Builder
	sawDigit := false
	sawDot := false
	var last rune // 0 at the start of the run

scan:
	for {
		ch, ok := r.rr.Peek()
		switch {
		case !ok:
			break scan
		case ch == '.':
			if sawDot {
				break scan
			}
			if last == '_' {
				r.fail(ErrTrailingSeparator)
			}
			r.rr.Read()
			sb.WriteRune(ch)
			sawDot, last = true, ch
		case ch == '_':
			if last == 0 && !afterPrefix {
				r.fail(ErrLeadingSeparator)
			}
			if last == '.' {
				r.fail(ErrLeadingSeparator)
			}
			r.rr.Read()
			sb.WriteRune(ch)
			last = ch
		case isHex && (ch == 'e' || ch == 'E') && r.isExponentMarker(ch, true):
			break scan
		case isDigitRune(ch, digits):
			r.rr.Read()
			sb.WriteRune(ch)
			sawDigit = true
			last = ch
		default:
			break scan
		}
	}

	if last == '_' {
		r.fail(ErrTrailingSeparator)
	}
	if !sawDigit {
		return "", false
	}
	return sb.String(), true
}

func isDigitRune(ch rune, digits string) bool {
	if ch > 0x7A {
		return false
	}
	return digitValue(lowerASCIIByte(ch), digits) >= 0
}

func lowerASCIIByte(ch rune) byte {
	if ch >= 'A' && ch <= 'Z' {
		return byte(ch) + ('a' - 'A')
	}
	return byte(ch)
}
