package eval

import (
	"math"
	"regexp"
	"testing"
)

func TestTypenames(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{NewNil(), "nil"},
		{NewBool(true), "boolean"},
		{NewInt(1), "integer"},
		{NewFloat(1), "float"},
		{NewString("x"), "string"},
		{NewArray(nil), "array"},
		{NewObject(nil), "object"},
		{NewFunction(newNative("f", Exactly(0), nil)), "function"},
		{NewRegex(regexp.MustCompile("x")), "regex"},
	}
	for _, tc := range cases {
		if got := tc.value.Typename(); got != tc.want {
			t.Fatalf("Typename() = %q, want %q", got, tc.want)
		}
	}
}

func TestStringRendering(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{NewNil(), ""},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewInt(-42), "-42"},
		{NewFloat(3), "3.0"},
		{NewFloat(1.5), "1.5"},
		{NewFloat(1e21), "1e+21"},
		{NewString("hi"), "hi"},
		{NewArray([]Value{NewInt(1), NewString("a")}), `[1, "a"]`},
		{NewObject(Object{"b": NewInt(2), "a": NewInt(1)}), "{a: 1, b: 2}"},
		{NewObject(nil), "{}"},
	}
	for _, tc := range cases {
		if got := tc.value.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestFloatRenderingKeepsNonFinite(t *testing.T) {
	if got := NewFloat(math.NaN()).String(); got != "NaN" {
		t.Fatalf("NaN rendered as %q", got)
	}
	if got := NewFloat(math.Inf(1)).String(); got != "+Inf" {
		t.Fatalf("+Inf rendered as %q", got)
	}
}

func TestReprQuotesStrings(t *testing.T) {
	if got := NewString("a\nb").Repr(); got != `"a\nb"` {
		t.Fatalf("Repr() = %q", got)
	}
	if got := NewNil().Repr(); got != "nil" {
		t.Fatalf("Repr() = %q", got)
	}
}

func TestEqual(t *testing.T) {
	if !NewInt(2).Equal(NewFloat(2)) {
		t.Fatalf("2 should equal 2.0")
	}
	if NewInt(2).Equal(NewString("2")) {
		t.Fatalf("2 should not equal \"2\"")
	}
	a := NewArray([]Value{NewInt(1), NewArray([]Value{NewString("x")})})
	b := NewArray([]Value{NewInt(1), NewArray([]Value{NewString("x")})})
	if !a.Equal(b) {
		t.Fatalf("deep-equal arrays reported unequal")
	}
	fn := NewFunction(newNative("f", Exactly(0), nil))
	if fn.Equal(fn) {
		t.Fatalf("functions must never compare equal")
	}
}

func TestCloneIsDeep(t *testing.T) {
	inner := NewArray([]Value{NewInt(1)})
	original := NewArray([]Value{inner})

	clone := original.Clone()
	clone.Array()[0].Array()[0] = NewInt(99)

	if original.Array()[0].Array()[0].Int() != 1 {
		t.Fatalf("mutating a clone leaked into the original")
	}
}
