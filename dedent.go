package jsonh

// dedent strips the common indentation from the raw (already
// escape-decoded) body of a multi-quoted string. It is a pure
// function of the collected body text; it never touches the outer
// reader's cursor.
//
// The two boundary passes scan past runs of non-newline whitespace
// and test whether the rune immediately beyond that run is a
// newline; a pass that swallowed newlines too could never find one
// waiting at the far end of the run.
func dedent(body string) string {
	runes := []rune(body)

	l, hasLeading := leadingBlankRun(runes)
	r, t, hasTrailing := trailingBlankRun(runes)

	start, end := 0, len(runes)
	if hasTrailing {
		end = r
	}
	if hasLeading && l <= end {
		start = l
	}
	if start > end {
		start = end
	}
	runes = runes[start:end]

	if hasTrailing && t > 0 {
		runes = stripIndent(runes, t)
	}

	return string(runes)
}

// leadingBlankRun implements dedent pass 1: skip a run of
// non-newline whitespace from the start; if the rune immediately
// following that run is a newline ("\r\n" counted as one), report
// success with l set to the rune count of the whole leading run
// including that newline.
func leadingBlankRun(runes []rune) (l int, ok bool) {
	i := 0
	for i < len(runes) && isSpaceOnly(runes[i]) {
		i++
	}
	if i >= len(runes) || !isNewline(runes[i]) {
		return 0, false
	}
	i++
	if runes[i-1] == '\r' && i < len(runes) && runes[i] == '\n' {
		i++
	}
	return i, true
}

// trailingBlankRun implements dedent pass 2: skip a run of
// non-newline whitespace from the end; if the rune immediately
// preceding that run is a newline, report success with r set to the
// rune index of that newline (the cut point for pass 3) and t set to
// the number of whitespace runes trailing it.
func trailingBlankRun(runes []rune) (r, t int, ok bool) {
	j := len(runes)
	for j > 0 && isSpaceOnly(runes[j-1]) {
		j--
	}
	t = len(runes) - j
	if j == 0 || !isNewline(runes[j-1]) {
		return 0, 0, false
	}
	cut := j - 1
	if runes[cut] == '\n' && cut > 0 && runes[cut-1] == '\r' {
		cut--
	}
	return cut, t, true
}

// stripIndent removes up to t leading non-newline-whitespace runes
// from the start of runes and from the start of every line inside it
// (immediately after each embedded newline), tolerating a line with
// fewer than t such runes by stripping only what is there.
func stripIndent(runes []rune, t int) []rune {
	out := make([]rune, 0, len(runes))
	atLineStart := true
	stripped := 0
	for _, ch := range runes {
		if atLineStart && stripped < t && isSpaceOnly(ch) {
			stripped++
			continue
		}
		atLineStart = false
		out = append(out, ch)
		if isNewline(ch) {
			atLineStart = true
			stripped = 0
		}
	}
	return out
}

func isSpaceOnly(ch rune) bool { return isWhitespace(ch) && !isNewline(ch) }
