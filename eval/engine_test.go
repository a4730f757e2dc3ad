package eval

import (
	"strings"
	"testing"
)

func TestEvalWithBindings(t *testing.T) {
	v, err := Eval("x * y + 1", map[string]Value{
		"x": NewInt(6),
		"y": NewInt(7),
	})
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if v.Int() != 43 {
		t.Fatalf("got %s", v.Repr())
	}
}

func TestBindingsShadowBuiltins(t *testing.T) {
	v, err := Eval("pi", map[string]Value{"pi": NewInt(3)})
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if v.Kind() != KindInt || v.Int() != 3 {
		t.Fatalf("got %s", v.Repr())
	}
}

func TestParsedExpressionIsReusable(t *testing.T) {
	expr, err := Parse("n * n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for _, n := range []int64{2, 3, 4} {
		v, err := Evaluate(expr, map[string]Value{"n": NewInt(n)})
		if err != nil {
			t.Fatalf("Evaluate failed: %v", err)
		}
		if v.Int() != n*n {
			t.Fatalf("n=%d: got %s", n, v.Repr())
		}
	}
}

func TestApplyIdentity(t *testing.T) {
	var out strings.Builder
	err := Apply("_", strings.NewReader("foo\nbar\n"), &out)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if out.String() != "foo\nbar\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestApplyNumericBindings(t *testing.T) {
	var out strings.Builder
	err := Apply("_i + 1", strings.NewReader("41\n-1\n"), &out)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if out.String() != "42\n0\n" {
		t.Fatalf("got %q", out.String())
	}

	out.Reset()
	err = Apply("_f * 2", strings.NewReader("1.5\n3\n"), &out)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if out.String() != "3.0\n6.0\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestApplyBooleanBinding(t *testing.T) {
	var out strings.Builder
	err := Apply(`_b ? "yes" : "no"`, strings.NewReader("true\nfalse\n"), &out)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if out.String() != "yes\nno\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestApplyStringBinding(t *testing.T) {
	var out strings.Builder
	err := Apply(`_s + "!"`, strings.NewReader("a\nb\n"), &out)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if out.String() != "a!\nb!\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestApplyUnparsableLineBindsNil(t *testing.T) {
	var out strings.Builder
	err := Apply("_i == nil", strings.NewReader("oops\n"), &out)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if out.String() != "true\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestApplyParseError(t *testing.T) {
	var out strings.Builder
	err := Apply("2 +", strings.NewReader("x\n"), &out)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if out.Len() != 0 {
		t.Fatalf("output written despite parse error: %q", out.String())
	}
}

func TestApplyEvaluationErrorStops(t *testing.T) {
	var out strings.Builder
	err := Apply("_i + 1", strings.NewReader("1\noops\n3\n"), &out)
	if err == nil {
		t.Fatalf("expected an evaluation error")
	}
	if !strings.Contains(err.Error(), "invalid arguments for `+` operator") {
		t.Fatalf("got %v", err)
	}
	if out.String() != "2\n" {
		t.Fatalf("got %q", out.String())
	}
}
