package eval

import (
	"bufio"
	"fmt"
	"io"
)

// Parse compiles the expression source into an AST. The returned Expression
// is immutable and can be evaluated any number of times, concurrently if each
// evaluation uses its own Context.
func Parse(input string) (Expression, error) {
	return newParser(input).parse()
}

// Evaluate runs a parsed expression against a fresh root Context populated
// with the builtin library and the given bindings. Bindings shadow builtins
// of the same name.
func Evaluate(expr Expression, bindings map[string]Value) (Value, error) {
	ctx := NewRootContext()
	ctx.InitBuiltins()
	for name, value := range bindings {
		ctx.Set(name, value)
	}
	return expr.Eval(ctx)
}

// Eval parses and evaluates an expression in one step.
func Eval(input string, bindings map[string]Value) (Value, error) {
	expr, err := Parse(input)
	if err != nil {
		return Value{}, err
	}
	return Evaluate(expr, bindings)
}

// Apply parses the expression once and evaluates it against every line read
// from r, writing each result followed by a newline to w. For each line the
// current text is bound as `_` and `_s`, and as `_i`, `_f` and `_b` converted
// to an integer, float and boolean; a conversion that does not apply binds
// nil instead of failing.
func Apply(input string, r io.Reader, w io.Writer) error {
	expr, err := Parse(input)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		result, err := Evaluate(expr, LineBindings(scanner.Text()))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, result.String()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// LineBindings builds the per-line bindings used by Apply: the line itself
// as `_` and `_s`, plus `_i`, `_f` and `_b` holding the converted line or
// nil when the conversion does not apply.
func LineBindings(line string) map[string]Value {
	text := NewString(line)
	bindings := map[string]Value{
		"_":  text,
		"_s": text,
		"_i": NewNil(),
		"_f": NewNil(),
		"_b": NewNil(),
	}
	if v, err := convInt(text); err == nil {
		bindings["_i"] = v
	}
	if v, err := convFloat(text); err == nil {
		bindings["_f"] = v
	}
	if v, err := convBool(text); err == nil {
		bindings["_b"] = v
	}
	return bindings
}
