package jsonh_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"

	jsonh "github.com/jsonh-org/JsonhGo"
	"github.com/jsonh-org/JsonhGo/ast"
)

// JSONH and JWCC share a dialect: standard JSON plus "//" and "/* */"
// comments plus trailing commas. Inputs in that shared subset must
// parse to the same value under both; hujson acts as the independent
// second implementation.
func TestJWCCSubsetMatchesHujson(t *testing.T) {
	inputs := []string{
		`{"a": 1, "b": 2}`,
		`[1, 2.5, -3, 1e3]`,
		"{\n  // leading comment\n  \"name\": \"jsonh\", /* inline */\n  \"tags\": [\"a\", \"b\",],\n  \"ok\": true,\n  \"missing\": null,\n}",
		`[true, false, null, "x",]`,
		`{"nested": {"deep": [{"leaf": 0.25}]}}`,
		"[ /* only */ 1 ]",
	}
	for _, input := range inputs {
		std, err := hujson.Standardize([]byte(input))
		if err != nil {
			t.Fatalf("hujson.Standardize(%q) failed: %v", input, err)
		}
		var want any
		if err := json.Unmarshal(std, &want); err != nil {
			t.Fatalf("Unmarshal standardized %q failed: %v", input, err)
		}

		v, err := ast.ParseElement([]byte(input), jsonh.ReaderOptions{})
		if err != nil {
			t.Fatalf("ParseElement(%q) failed: %v", input, err)
		}
		if diff := cmp.Diff(want, plain(v)); diff != "" {
			t.Errorf("parse of %q disagrees with hujson (-hujson +jsonh):\n%s", input, diff)
		}
	}
}

// plain lowers an ast.Value to the representation encoding/json
// produces for untyped unmarshaling.
func plain(v ast.Value) any {
	switch val := v.(type) {
	case ast.Null:
		return nil
	case ast.Bool:
		return val.Value
	case ast.String:
		return val.Value
	case ast.Number:
		return val.Float64()
	case *ast.Array:
		out := []any{}
		for _, e := range val.Values {
			out = append(out, plain(e))
		}
		return out
	case *ast.Object:
		out := map[string]any{}
		for _, p := range val.Properties {
			out[p.Name] = plain(p.Value)
		}
		return out
	default:
		return val
	}
}
