// Package eval implements the rush expression runtime. It evaluates a single
// parsed expression against an optional line of input and a set of named
// variables, producing one typed value. The language supports:
//   - Literals for ints, floats, strings, bools, arrays, and objects.
//   - Arithmetic, comparison, and membership operators with type-directed
//     dispatch (+, -, *, /, %, **, <, <=, >, >=, ==, !=, @).
//   - String/array polymorphic operators: "ab" * 3, [1,2] * ", ",
//     "a,b" / ",", "%s!" % name.
//   - The ternary conditional `cond ? then : else`.
//   - A built-in function library (conversions, math, strings, collections)
//     with arity enforcement, plus single-expression lambdas `|x| x * 2`.
//
// Evaluation is strictly synchronous and recursive; every operation returns
// a Value or an *Error, and the first failure propagates unchanged to the
// caller. The engine performs no I/O and keeps no state across evaluations.
package eval
