package main

import (
	"testing"

	"github.com/rushlang/rush/eval"
)

func TestParseDefineValue(t *testing.T) {
	cases := []struct {
		raw  string
		kind eval.ValueKind
		want string
	}{
		{"42", eval.KindInt, "42"},
		{"-7", eval.KindInt, "-7"},
		{"2.5", eval.KindFloat, "2.5"},
		{"1e3", eval.KindFloat, "1000.0"},
		{"true", eval.KindBool, "true"},
		{"false", eval.KindBool, "false"},
		{"hello", eval.KindString, "hello"},
		{"", eval.KindString, ""},
		{"trueish", eval.KindString, "trueish"},
	}
	for _, tc := range cases {
		v := parseDefineValue(tc.raw)
		if v.Kind() != tc.kind {
			t.Fatalf("parseDefineValue(%q) kind = %v, want %v", tc.raw, v.Kind(), tc.kind)
		}
		if got := v.String(); got != tc.want {
			t.Fatalf("parseDefineValue(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseDefines(t *testing.T) {
	bindings, err := parseDefines([]string{"x=1", "name=alice", "ratio=0.5"})
	if err != nil {
		t.Fatalf("parseDefines failed: %v", err)
	}
	if len(bindings) != 3 {
		t.Fatalf("got %d bindings", len(bindings))
	}
	if bindings["x"].Int() != 1 || bindings["name"].Str() != "alice" {
		t.Fatalf("unexpected bindings: %v", bindings)
	}
	// Values may contain further = signs.
	bindings, err = parseDefines([]string{"q=a=b"})
	if err != nil {
		t.Fatalf("parseDefines failed: %v", err)
	}
	if bindings["q"].Str() != "a=b" {
		t.Fatalf("got %q", bindings["q"].Str())
	}
}

func TestParseDefinesRejectsMalformedPairs(t *testing.T) {
	for _, pair := range []string{"novalue", "=5"} {
		if _, err := parseDefines([]string{pair}); err == nil {
			t.Fatalf("parseDefines(%q) succeeded, expected an error", pair)
		}
	}
}
