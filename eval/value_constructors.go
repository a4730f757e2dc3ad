package eval

import "regexp"

func NewNil() Value            { return Value{kind: KindNil} }
func NewBool(b bool) Value     { return Value{kind: KindBool, data: b} }
func NewInt(i int64) Value     { return Value{kind: KindInt, data: i} }
func NewFloat(f float64) Value { return Value{kind: KindFloat, data: f} }
func NewString(s string) Value { return Value{kind: KindString, data: s} }
func NewArray(a []Value) Value { return Value{kind: KindArray, data: a} }
func NewObject(o Object) Value {
	return Value{kind: KindObject, data: o}
}
func NewRegex(re *regexp.Regexp) Value {
	return Value{kind: KindRegex, data: &Regex{pattern: re}}
}
func NewFunction(fn *Function) Value {
	return Value{kind: KindFunction, data: fn}
}
