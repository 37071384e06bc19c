package jsonh_test

import (
	"errors"
	"math"
	"testing"

	jsonh "github.com/jsonh-org/JsonhGo"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"42", 42},
		{"-7", -7},
		{"+7", 7},
		{"1.5", 1.5},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"1e-3", 0.001},
		{"1E+2", 100},
		{"0xDEADCAFE", 3735931646},
		{"0Xff", 255},
		{"0b_100", 4},
		{"0B11", 3},
		{"0o17", 15},
		{"0O7", 7},
		{"100__000", 100000},
		{"1_2_3", 123},
		{"0x5e3", 1507},
		{"0x5e+3", 5000},
		{"0x1.8", 1.5},
		{"0b1.1", 1.5},
	}
	for _, test := range tests {
		got, err := jsonh.ParseNumber(test.input)
		if err != nil {
			t.Errorf("ParseNumber(%q) failed: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestParseNumber_fractionalExponent(t *testing.T) {
	got, err := jsonh.ParseNumber("1.2e3.4")
	if err != nil {
		t.Fatalf("ParseNumber failed: %v", err)
	}
	want := 1.2 * math.Pow(10, 3.4)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ParseNumber(1.2e3.4) = %v, want %v", got, want)
	}
	if int(got) != 3014 {
		t.Errorf("int(ParseNumber(1.2e3.4)) = %d, want 3014", int(got))
	}
}

func TestParseNumber_signRespecting(t *testing.T) {
	for _, s := range []string{"1", "2.5", "0x10", "0b101", "0o7", "1.2e3.4", "9_000"} {
		pos, err := jsonh.ParseNumber(s)
		if err != nil {
			t.Fatalf("ParseNumber(%q) failed: %v", s, err)
		}
		neg, err := jsonh.ParseNumber("-" + s)
		if err != nil {
			t.Fatalf("ParseNumber(-%q) failed: %v", s, err)
		}
		if neg != -pos {
			t.Errorf("ParseNumber(-%s) = %v, want %v", s, neg, -pos)
		}
	}
}

func TestParseNumber_errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", jsonh.ErrEmptyNumber},
		{"0x", jsonh.ErrEmptyNumber},
		{"-", jsonh.ErrEmptyNumber},
		{"1.2.3", jsonh.ErrDuplicateDecimalPoint},
	}
	for _, test := range tests {
		_, err := jsonh.ParseNumber(test.input)
		if !errors.Is(err, test.want) {
			t.Errorf("ParseNumber(%q) error = %v, want %v", test.input, err, test.want)
		}
	}

	if _, err := jsonh.ParseNumber("0b2"); err == nil {
		t.Error("ParseNumber(0b2) succeeded, want invalid-digit error")
	}
	if _, err := jsonh.ParseNumber("0o8"); err == nil {
		t.Error("ParseNumber(0o8) succeeded, want invalid-digit error")
	}
	if _, err := jsonh.ParseNumber("12a"); err == nil {
		t.Error("ParseNumber(12a) succeeded, want invalid-digit error")
	}
}
