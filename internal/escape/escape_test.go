package escape_test

import (
	"errors"
	"strings"
	"testing"

	jsonh "github.com/jsonh-org/JsonhGo"
	"github.com/jsonh-org/JsonhGo/internal/escape"
)

// decode runs escape.Decode over the text following a backslash.
func decode(t *testing.T, input string) (rune, bool, error) {
	t.Helper()
	return escape.Decode(jsonh.NewRuneReaderString(input))
}

func TestDecode_simpleEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  rune
	}{
		{`\`, '\\'},
		{"b", '\b'},
		{"f", '\f'},
		{"n", '\n'},
		{"r!", '\r'},
		{"t", '\t'},
		{"v", '\v'},
		{"0", 0},
		{"a", '\a'},
		{"e", 0x1B},
		{"q", 'q'},
		{"ü", 'ü'},
		{"u0041", 'A'},
		{"x41", 'A'},
		{"U0001F47D", '\U0001F47D'},
	}
	for _, test := range tests {
		got, ok, err := decode(t, test.input)
		if err != nil {
			t.Errorf("Decode(%q) failed: %v", test.input, err)
			continue
		}
		if !ok || got != test.want {
			t.Errorf("Decode(%q) = %q, %v; want %q, true", test.input, got, ok, test.want)
		}
	}
}

func TestDecode_lineContinuation(t *testing.T) {
	for _, input := range []string{"\n", "\r", "\r\n", "\u2028", "\u2029"} {
		src := jsonh.NewRuneReaderString(input + "rest")
		_, ok, err := escape.Decode(src)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", input, err)
		}
		if ok {
			t.Errorf("Decode(%q) produced a rune, want none", input)
		}
		if pos := src.Position(); pos != len(input) {
			t.Errorf("Decode(%q) left position %d, want %d", input, pos, len(input))
		}
	}

	// A lone "\r" continuation must not swallow a following non-"\n" rune.
	src := jsonh.NewRuneReaderString("\rx")
	if _, _, err := escape.Decode(src); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if ch, ok := src.Peek(); !ok || ch != 'x' {
		t.Errorf("rune after bare \\r continuation = %q, want 'x'", ch)
	}
}

func TestDecode_surrogatePairing(t *testing.T) {
	tests := []string{
		`uD83D\uDC7D`,
		`uD83D\xDC`, // 0xDC is not a low surrogate; pairing must not apply
		`uD83D\UOOOODC7D`,
	}

	got, ok, err := decode(t, tests[0])
	if err != nil || !ok {
		t.Fatalf("Decode(%q) = %v, %v", tests[0], ok, err)
	}
	if got != '\U0001F47D' {
		t.Errorf("Decode(%q) = %#x, want U+1F47D", tests[0], got)
	}

	// Pairing is opportunistic: a failed attempt rewinds and yields the
	// lone high surrogate, which the encoder then rejects.
	for _, input := range tests[1:] {
		src := jsonh.NewRuneReaderString(input)
		got, ok, err := escape.Decode(src)
		if err != nil || !ok {
			t.Fatalf("Decode(%q) = %v, %v", input, ok, err)
		}
		if got != 0xD83D {
			t.Errorf("Decode(%q) = %#x, want the lone high surrogate", input, got)
		}
		if pos := src.Position(); pos != len("uD83D") {
			t.Errorf("Decode(%q) left position %d, want rewind to %d", input, pos, len("uD83D"))
		}
	}
}

func TestDecode_hexErrors(t *testing.T) {
	for _, input := range []string{"u12", "u12g4", "x5", "U0001F4"} {
		if _, _, err := decode(t, input); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", input)
		}
	}
}

func TestDecode_endOfInput(t *testing.T) {
	if _, _, err := decode(t, ""); err == nil {
		t.Error("Decode at end of input succeeded, want error")
	}
}

func TestAppendRune(t *testing.T) {
	var sb strings.Builder
	if err := escape.AppendRune(&sb, 'A'); err != nil {
		t.Fatalf("AppendRune('A') failed: %v", err)
	}
	if err := escape.AppendRune(&sb, '\U0001F47D'); err != nil {
		t.Fatalf("AppendRune(U+1F47D) failed: %v", err)
	}
	if got := sb.String(); got != "A\U0001F47D" {
		t.Errorf("buffer = %q, want %q", got, "A\U0001F47D")
	}

	err := escape.AppendRune(&sb, 0xD83D)
	if !errors.Is(err, escape.ErrUnpairedSurrogate) {
		t.Errorf("AppendRune(high surrogate) error = %v, want ErrUnpairedSurrogate", err)
	}
}
