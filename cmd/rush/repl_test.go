package main

import (
	"strings"
	"testing"

	"github.com/rushlang/rush/eval"
)

func TestSplitAssignment(t *testing.T) {
	cases := []struct {
		input string
		name  string
		expr  string
		ok    bool
	}{
		{"x = 5", "x", "5", true},
		{"total_2 = a + b", "total_2", "a + b", true},
		{"x == 5", "", "", false},
		{"x <= 5", "", "", false},
		{"x >= 5", "", "", false},
		{"x != 5", "", "", false},
		{"= 5", "", "", false},
		{"x =", "", "", false},
		{"1x = 5", "", "", false},
		{`"a=b"`, "", "", false},
	}
	for _, tc := range cases {
		name, expr, ok := splitAssignment(tc.input)
		if name != tc.name || expr != tc.expr || ok != tc.ok {
			t.Fatalf("splitAssignment(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.input, name, expr, ok, tc.name, tc.expr, tc.ok)
		}
	}
}

func TestREPLEvaluateRetainsBindings(t *testing.T) {
	m := newREPLModel(nil)

	output, isErr := m.evaluate("x = 2 + 3")
	if isErr {
		t.Fatalf("assignment failed: %s", output)
	}
	if output != "5" {
		t.Fatalf("got %q", output)
	}

	output, isErr = m.evaluate("x * x")
	if isErr || output != "25" {
		t.Fatalf("got %q (err=%v)", output, isErr)
	}

	// The last result is always retained as `_`.
	output, isErr = m.evaluate("_ + 1")
	if isErr || output != "26" {
		t.Fatalf("got %q (err=%v)", output, isErr)
	}
}

func TestREPLEvaluateReportsErrors(t *testing.T) {
	m := newREPLModel(nil)
	output, isErr := m.evaluate("1 / 0")
	if !isErr {
		t.Fatalf("expected an error, got %q", output)
	}
	if !strings.Contains(output, "division by zero") {
		t.Fatalf("got %q", output)
	}
}

func TestREPLStartsWithInitialBindings(t *testing.T) {
	m := newREPLModel(map[string]eval.Value{"n": eval.NewInt(7)})
	output, isErr := m.evaluate("n + 1")
	if isErr || output != "8" {
		t.Fatalf("got %q (err=%v)", output, isErr)
	}
}
