package eval

import (
	"strings"
	"testing"
)

func TestLen(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`len("")`, "0"},
		{`len("héllo")`, "5"},
		{"len([1, 2, 3])", "3"},
		{"len({a: 1, b: 2})", "2"},
	}
	for _, tc := range cases {
		if got := evalRendered(t, tc.src); got != tc.want {
			t.Fatalf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
	if got := evalErr(t, "len(1)"); !strings.Contains(got, "len() requires string/array/object, got integer") {
		t.Fatalf("got %q", got)
	}
}

func TestIndex(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`index("ll", "hello")`, "2"},
		{`index(re("l+"), "hello")`, "2"},
		{"index(2, [1, 2, 3])", "1"},
		{`index("b", ["a", "b"])`, "1"},
	}
	for _, tc := range cases {
		if got := evalRendered(t, tc.src); got != tc.want {
			t.Fatalf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
	if v := evalSrc(t, `index("x", "hello")`); !v.IsNil() {
		t.Fatalf("absent needle should yield nil, got %s", v.Repr())
	}
	if v := evalSrc(t, "index(9, [1, 2])"); !v.IsNil() {
		t.Fatalf("absent element should yield nil, got %s", v.Repr())
	}
}

func TestAllAny(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"all([])", "true"},
		{"any([])", "false"},
		{"all([1, true, \"true\"])", "true"},
		{"all([1, 0])", "false"},
		{"any([0, false])", "false"},
		{"any([0, 2])", "true"},
	}
	for _, tc := range cases {
		if got := evalRendered(t, tc.src); got != tc.want {
			t.Fatalf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestHigherOrderFunctions(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"map(|x| x * 2, [1, 2, 3])", "[2, 4, 6]"},
		{"map(|x| x * 2, [])", "[]"},
		{"filter(|x| x > 1, [1, 2, 3])", "[2, 3]"},
		{"filter(|x| x > 9, [1, 2])", "[]"},
		{"reduce(|acc, x| acc + x, 0, [1, 2, 3])", "6"},
		{"fold(|acc, x| acc + x, 10, [1, 2])", "13"},
		{"foldl(|acc, x| acc * x, 1, [2, 3, 4])", "24"},
		{`reduce(|acc, x| acc + x, "", ["a", "b"])`, "ab"},
		{"sortby(|x| -x, [1, 3, 2])", "[3, 2, 1]"},
		{`sortby(|w| len(w), ["ccc", "a", "bb"])`, `["a", "bb", "ccc"]`},
	}
	for _, tc := range cases {
		if got := evalRendered(t, tc.src); got != tc.want {
			t.Fatalf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestHigherOrderArityChecks(t *testing.T) {
	got := evalErr(t, "map(|x, y| x, [1])")
	if !strings.Contains(got, "map() requires a 1-argument function, got one with 2 arguments") {
		t.Fatalf("got %q", got)
	}
	got = evalErr(t, "reduce(|x| x, 0, [1])")
	if !strings.Contains(got, "reduce() requires a 2-argument function") {
		t.Fatalf("got %q", got)
	}
	got = evalErr(t, "map(1, [1])")
	if !strings.Contains(got, "map() requires a function and an array, got integer and array") {
		t.Fatalf("got %q", got)
	}
}

func TestLambdaCapturesDefiningScope(t *testing.T) {
	v, err := Eval("map(|x| x + n, [1, 2])", map[string]Value{"n": NewInt(10)})
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if got := v.String(); got != "[11, 12]" {
		t.Fatalf("got %s", got)
	}
}

func TestAggregates(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"sum([])", "0"},
		{"sum([1, 2, 3])", "6"},
		{"sum([1, 2.5])", "3.5"},
		{"max([3, 1, 2])", "3"},
		{"min([3, 1.5, 2])", "1.5"},
		{`max(["a", "c", "b"])`, "c"},
		{"sort([3, 1, 2])", "[1, 2, 3]"},
		{`sort(["b", "c", "a"])`, `["a", "b", "c"]`},
		{"sort([2, 1.5])", "[1.5, 2]"},
	}
	for _, tc := range cases {
		if got := evalRendered(t, tc.src); got != tc.want {
			t.Fatalf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
	if got := evalErr(t, "max([])"); !strings.Contains(got, "max() requires a non-empty array") {
		t.Fatalf("got %q", got)
	}
	if got := evalErr(t, `sort([1, "a"])`); !strings.Contains(got, "cannot compare") {
		t.Fatalf("got %q", got)
	}
	if got := evalErr(t, `sum([1, "a"])`); !strings.Contains(got, "sum() requires an array of numbers") {
		t.Fatalf("got %q", got)
	}
}

func TestConversions(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`int("42")`, "42"},
		{`int("-7")`, "-7"},
		{"int(3.9)", "3"},
		{"int(true)", "1"},
		{`float("2.5")`, "2.5"},
		{"float(2)", "2.0"},
		{`bool("true")`, "true"},
		{`bool("false")`, "false"},
		{"bool(0)", "false"},
		{"bool(0.5)", "true"},
		{"bool([])", "false"},
		{"bool([0])", "true"},
		{"str(42)", "42"},
		{"str(2.5)", "2.5"},
		{"str(true)", "true"},
	}
	for _, tc := range cases {
		if got := evalRendered(t, tc.src); got != tc.want {
			t.Fatalf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
	if got := evalErr(t, `int("4x")`); !strings.Contains(got, "invalid integer value: 4x") {
		t.Fatalf("got %q", got)
	}
	if got := evalErr(t, `bool("yes")`); !strings.Contains(got, "invalid bool value: yes") {
		t.Fatalf("got %q", got)
	}
	if got := evalErr(t, "str([1])"); !strings.Contains(got, "cannot convert array to string") {
		t.Fatalf("got %q", got)
	}
}

func TestJSONConversion(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`json("[1, 2.5, \"x\", null, true]")`, `[1, 2.5, "x", nil, true]`},
		{`json("{\"a\": {\"b\": [1]}}")["a"]["b"][0]`, "1"},
		{`json("42")`, "42"},
	}
	for _, tc := range cases {
		if got := evalRendered(t, tc.src); got != tc.want {
			t.Fatalf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
	if got := evalErr(t, `json("{")`); !strings.Contains(got, "invalid JSON") {
		t.Fatalf("got %q", got)
	}
	// Integral JSON numbers stay integers.
	if v := evalSrc(t, `json("[7]")`); v.Array()[0].Kind() != KindInt {
		t.Fatalf("expected an integer element, got %v", v.Array()[0].Kind())
	}
}

func TestCsvConversion(t *testing.T) {
	if got := evalRendered(t, `csv("a,b,\"c,d\"")`); got != `["a", "b", "c,d"]` {
		t.Fatalf("got %s", got)
	}
	if got := evalErr(t, "csv(1)"); !strings.Contains(got, "csv() requires a string") {
		t.Fatalf("got %q", got)
	}
}

func TestMathBuiltins(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"abs(-3)", "3"},
		{"abs(3)", "3"},
		{"abs(-2.5)", "2.5"},
		{"sgn(-9)", "-1"},
		{"sgn(0)", "0"},
		{"sgn(4.2)", "1.0"},
		{"ceil(1.2)", "2.0"},
		{"ceil(5)", "5"},
		{"floor(1.8)", "1.0"},
		{"floor(-1.2)", "-2.0"},
		{"round(2.5)", "3.0"},
		{"trunc(-1.7)", "-1.0"},
		{"sqrt(9)", "3.0"},
		{"exp(0)", "1.0"},
		{"ln(1)", "0.0"},
		{"bin(5)", "101"},
		{"oct(8)", "10"},
		{"hex(255)", "ff"},
	}
	for _, tc := range cases {
		if got := evalRendered(t, tc.src); got != tc.want {
			t.Fatalf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
	if got := evalErr(t, `abs("x")`); !strings.Contains(got, "abs() requires a number, got string") {
		t.Fatalf("got %q", got)
	}
	if got := evalErr(t, "hex(1.5)"); !strings.Contains(got, "hex() requires an integer") {
		t.Fatalf("got %q", got)
	}
}

func TestRand(t *testing.T) {
	v := evalSrc(t, "rand()")
	if v.Kind() != KindFloat {
		t.Fatalf("rand() returned %v", v.Kind())
	}
	if f := v.Float(); f < 0 || f >= 1 {
		t.Fatalf("rand() = %v out of range", f)
	}
}

func TestStringBuiltins(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`rev("abc")`, "cba"},
		{`split("a,b,,c", ",")`, `["a", "b", "", "c"]`},
		{`split("a1b22c", re("[0-9]+"))`, `["a", "b", "c"]`},
		{`join([1, 2, 3], "-")`, "1-2-3"},
		{`join([], "-")`, ""},
		{`sub("o", "0", "foo boo")`, "f00 b00"},
		{`gsub("o", "0", "foo")`, "f00"},
		{`sub1("o", "0", "foo boo")`, "f0o boo"},
		{`rsub1("o", "0", "foo boo")`, "foo bo0"},
		{`sub(re("o+"), "0", "foo boo")`, "f0 b0"},
		{`sub1(re("b(.)"), "$1!", "abc abd")`, "ac! abd"},
		{`sub1("x", "y", "abc")`, "abc"},
		{`trim("  x \t")`, "x"},
		{`format("%s and %s", ["a", "b"])`, "a and b"},
		{`format("just %s", 42)`, "just 42"},
		{`format("100%%", [])`, "100%"},
		{`before("key=value", "=")`, "key"},
		{`after("key=value", "=")`, "value"},
		{`after("a12b", re("[0-9]+"))`, "b"},
		{`chr(97)`, "a"},
		{`char(233)`, "é"},
		{`ord("a")`, "97"},
		{`rot13("Hello")`, "Uryyb"},
		{`rot13(rot13("wrap"))`, "wrap"},
	}
	for _, tc := range cases {
		if got := evalRendered(t, tc.src); got != tc.want {
			t.Fatalf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestStringBuiltinEdgeCases(t *testing.T) {
	if v := evalSrc(t, `before("abc", "=")`); !v.IsNil() {
		t.Fatalf("absent separator should yield nil, got %s", v.Repr())
	}
	if v := evalSrc(t, `after("abc", re("[0-9]"))`); !v.IsNil() {
		t.Fatalf("absent separator should yield nil, got %s", v.Repr())
	}
	cases := []struct {
		src  string
		want string
	}{
		{`join([1, {}], "-")`, "join() failed to stringify 1 element(s)"},
		{`format("%s", [1, 2])`, "too many arguments"},
		{`format("%s %s", [1])`, "not enough arguments"},
		{`format("%d", 1)`, "invalid format specifier: %d"},
		{`ord("ab")`, "ord() requires a single character, got 2 of them"},
		{"chr(-1)", "chr() argument out of range: -1"},
		{`re("[")`, "invalid regular expression"},
	}
	for _, tc := range cases {
		if got := evalErr(t, tc.src); !strings.Contains(got, tc.want) {
			t.Fatalf("%s error = %q, want it to contain %q", tc.src, got, tc.want)
		}
	}
}

func TestConstants(t *testing.T) {
	if got := evalRendered(t, "pi > 3.14"); got != "true" {
		t.Fatalf("got %s", got)
	}
	if got := evalRendered(t, "Inf > 1e308"); got != "true" {
		t.Fatalf("got %s", got)
	}
	if got := evalRendered(t, "NaN == NaN"); got != "false" {
		t.Fatalf("got %s", got)
	}
	if v := evalSrc(t, "nil"); !v.IsNil() {
		t.Fatalf("nil constant is %s", v.Repr())
	}
}

func TestArityEnforcement(t *testing.T) {
	got := evalErr(t, "len()")
	if !strings.Contains(got, "invalid number of arguments to len(): expected 1, got 0") {
		t.Fatalf("got %q", got)
	}
	got = evalErr(t, `len("a", "b")`)
	if !strings.Contains(got, "invalid number of arguments to len(): expected 1, got 2") {
		t.Fatalf("got %q", got)
	}
	got = evalErr(t, "rand(1)")
	if !strings.Contains(got, "invalid number of arguments to rand(): expected 0, got 1") {
		t.Fatalf("got %q", got)
	}
}

func TestCallErrors(t *testing.T) {
	if got := evalErr(t, "nope(1)"); !strings.Contains(got, "unknown function: nope") {
		t.Fatalf("got %q", got)
	}
	if got := evalErr(t, "pi(1)"); !strings.Contains(got, "cannot call a float value: pi") {
		t.Fatalf("got %q", got)
	}
}
