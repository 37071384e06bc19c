package jsonh_test

import (
	"testing"

	jsonh "github.com/jsonh-org/JsonhGo"
)

func TestSupportsVersion(t *testing.T) {
	tests := []struct {
		have, min jsonh.Version
		want      bool
	}{
		{jsonh.Latest, jsonh.V2, true},
		{jsonh.Latest, jsonh.Latest, true},
		{jsonh.V2, jsonh.V1, true},
		{jsonh.V1, jsonh.V1, true},
		{jsonh.V1, jsonh.V2, false},
		{jsonh.V1, jsonh.Latest, false},
	}
	for _, test := range tests {
		opts := jsonh.ReaderOptions{Version: test.have}
		if got := opts.SupportsVersion(test.min); got != test.want {
			t.Errorf("Version %v SupportsVersion(%v) = %v, want %v", test.have, test.min, got, test.want)
		}
	}
}

func TestParseVersionName(t *testing.T) {
	tests := []struct {
		name string
		want jsonh.Version
	}{
		{"latest", jsonh.Latest},
		{"", jsonh.Latest},
		{"v1", jsonh.V1},
		{"V2", jsonh.V2},
	}
	for _, test := range tests {
		got, err := jsonh.ParseVersionName(test.name)
		if err != nil {
			t.Errorf("ParseVersionName(%q) failed: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseVersionName(%q) = %v, want %v", test.name, got, test.want)
		}
	}

	if _, err := jsonh.ParseVersionName("v9"); err == nil {
		t.Error("ParseVersionName(v9) succeeded, want error")
	}
}

func TestMaxDepthDefault(t *testing.T) {
	// 70 nested arrays exceed the default limit of 64.
	deep := ""
	for i := 0; i < 70; i++ {
		deep += "["
	}
	r := jsonh.NewReaderString(deep, jsonh.ReaderOptions{IncompleteInputs: true})
	if _, err := r.ReadElement(); err == nil {
		t.Error("ReadElement on 70-deep nesting succeeded, want default max-depth error")
	}

	// A negative MaxDepth disables the limit.
	r = jsonh.NewReaderString(deep, jsonh.ReaderOptions{MaxDepth: -1, IncompleteInputs: true})
	if _, err := r.ReadElement(); err != nil {
		t.Errorf("ReadElement with MaxDepth -1 failed: %v", err)
	}
}
