package eval

import (
	"math"
	"strings"
)

// Operator dispatch. Each operator tries an ordered list of type-pattern
// rules and takes the first that matches both operand shapes; when none
// match, the result is a descriptive error. Whenever an integer operand is
// paired with a float the integer is promoted and the operation proceeds in
// float.

func evalUnaryOp(op string, arg Value) (Value, error) {
	switch op {
	case "+":
		if arg.isNumeric() {
			return arg, nil
		}
	case "-":
		switch arg.kind {
		case KindInt:
			return NewInt(-arg.Int()), nil
		case KindFloat:
			return NewFloat(-arg.Float()), nil
		}
	case "!":
		if arg.kind == KindBool {
			return NewBool(!arg.Bool()), nil
		}
	default:
		return Value{}, NewErrorf("unknown unary operator: `%s`", op)
	}
	return Value{}, NewErrorf("invalid argument for `%s` operator: %s", op, arg.Repr())
}

func evalBinaryOp(op string, left, right Value) (Value, error) {
	switch op {
	case "<", "<=", ">", ">=":
		return compareOp(op, left, right)
	case "==":
		return equalityOp(op, left, right)
	case "!=":
		result, err := equalityOp(op, left, right)
		if err != nil {
			return Value{}, err
		}
		return NewBool(!result.Bool()), nil
	case "@":
		return membershipOp(left, right)
	case "+":
		return addOp(left, right)
	case "-":
		return subtractOp(left, right)
	case "*":
		return multiplyOp(left, right)
	case "/":
		return divideOp(left, right)
	case "%":
		return moduloOp(left, right)
	case "**":
		return powerOp(left, right)
	default:
		return Value{}, NewErrorf("unknown binary operator: `%s`", op)
	}
}

func binaryOpError(op string, left, right Value) error {
	return NewErrorf("invalid arguments for `%s` operator: %s and %s",
		op, left.Repr(), right.Repr())
}

// compareOp handles < <= > >=; only numeric pairs are ordered.
func compareOp(op string, left, right Value) (Value, error) {
	if !left.isNumeric() || !right.isNumeric() {
		return Value{}, binaryOpError(op, left, right)
	}
	var cmp int
	if left.kind == KindInt && right.kind == KindInt {
		l, r := left.Int(), right.Int()
		switch {
		case l < r:
			cmp = -1
		case l > r:
			cmp = 1
		}
	} else {
		l, r := left.Float(), right.Float()
		switch {
		case l < r:
			cmp = -1
		case l > r:
			cmp = 1
		}
	}
	switch op {
	case "<":
		return NewBool(cmp < 0), nil
	case "<=":
		return NewBool(cmp <= 0), nil
	case ">":
		return NewBool(cmp > 0), nil
	default:
		return NewBool(cmp >= 0), nil
	}
}

// equalityOp handles ==; != negates its result. Mismatched types are never
// implicitly equal, they fall through to an error, except the numeric
// cross-type pairs which compare by promoted value.
func equalityOp(op string, left, right Value) (Value, error) {
	switch {
	case left.isNumeric() && right.isNumeric():
		if left.kind == KindInt && right.kind == KindInt {
			return NewBool(left.Int() == right.Int()), nil
		}
		return NewBool(left.Float() == right.Float()), nil
	case left.kind == KindNil && right.kind == KindNil:
		return NewBool(true), nil
	case left.kind == KindArray && right.kind == KindArray,
		left.kind == KindObject && right.kind == KindObject:
		return NewBool(left.Equal(right)), nil
	case left.kind == KindBool && right.kind == KindBool:
		return NewBool(left.Bool() == right.Bool()), nil
	case left.kind == KindString && right.kind == KindString:
		return NewBool(left.Str() == right.Str()), nil
	default:
		return Value{}, binaryOpError(op, left, right)
	}
}

// membershipOp: value @ array tests whether the array contains an element
// structurally equal to the value.
func membershipOp(left, right Value) (Value, error) {
	if right.kind != KindArray {
		return Value{}, binaryOpError("@", left, right)
	}
	for _, elem := range right.Array() {
		if elem.Equal(left) {
			return NewBool(true), nil
		}
	}
	return NewBool(false), nil
}

func addOp(left, right Value) (Value, error) {
	switch {
	case left.kind == KindString && right.kind == KindString:
		return NewString(left.Str() + right.Str()), nil
	case left.kind == KindInt && right.kind == KindInt:
		return NewInt(left.Int() + right.Int()), nil
	case left.isNumeric() && right.isNumeric():
		return NewFloat(left.Float() + right.Float()), nil
	case left.kind == KindArray && right.kind == KindArray:
		l, r := left.Array(), right.Array()
		out := make([]Value, 0, len(l)+len(r))
		out = append(out, l...)
		out = append(out, r...)
		return NewArray(out), nil
	case left.kind == KindObject && right.kind == KindObject:
		out := make(Object, len(left.Object())+len(right.Object()))
		for k, v := range left.Object() {
			out[k] = v
		}
		for k, v := range right.Object() {
			out[k] = v
		}
		return NewObject(out), nil
	default:
		return Value{}, binaryOpError("+", left, right)
	}
}

func subtractOp(left, right Value) (Value, error) {
	switch {
	case left.kind == KindInt && right.kind == KindInt:
		return NewInt(left.Int() - right.Int()), nil
	case left.isNumeric() && right.isNumeric():
		return NewFloat(left.Float() - right.Float()), nil
	default:
		return Value{}, binaryOpError("-", left, right)
	}
}

func multiplyOp(left, right Value) (Value, error) {
	switch {
	case left.kind == KindInt && right.kind == KindInt:
		return NewInt(left.Int() * right.Int()), nil
	case left.isNumeric() && right.isNumeric():
		return NewFloat(left.Float() * right.Float()), nil
	// Multiplying a string or array by a positive integer repeats it; zero
	// and negative counts fall through to the error.
	case left.kind == KindString && right.kind == KindInt && right.Int() > 0:
		return NewString(strings.Repeat(left.Str(), int(right.Int()))), nil
	case left.kind == KindArray && right.kind == KindInt && right.Int() > 0:
		elems := left.Array()
		out := make([]Value, 0, len(elems)*int(right.Int()))
		for i := int64(0); i < right.Int(); i++ {
			out = append(out, elems...)
		}
		return NewArray(out), nil
	// "Multiplying" an array by a string joins it, string as separator.
	case left.kind == KindArray && right.kind == KindString:
		return stringsJoin(left, right)
	default:
		return Value{}, binaryOpError("*", left, right)
	}
}

func divideOp(left, right Value) (Value, error) {
	switch {
	case left.kind == KindInt && right.kind == KindInt:
		if right.Int() == 0 {
			return Value{}, NewError("division by zero")
		}
		return NewInt(left.Int() / right.Int()), nil
	case left.isNumeric() && right.isNumeric():
		return NewFloat(left.Float() / right.Float()), nil
	// "Dividing" a string by a string is a shorthand for split().
	case left.kind == KindString && right.kind == KindString:
		return stringsSplit(left, right)
	default:
		return Value{}, binaryOpError("/", left, right)
	}
}

func moduloOp(left, right Value) (Value, error) {
	switch {
	case left.kind == KindInt && right.kind == KindInt:
		if right.Int() == 0 {
			return Value{}, NewError("division by zero")
		}
		return NewInt(left.Int() % right.Int()), nil
	case left.isNumeric() && right.isNumeric():
		return NewFloat(math.Mod(left.Float(), right.Float())), nil
	// String formatting with a single argument (which can be an array).
	case left.kind == KindString:
		return stringsFormat(left, right)
	default:
		return Value{}, binaryOpError("%", left, right)
	}
}

func powerOp(left, right Value) (Value, error) {
	switch {
	case left.kind == KindInt && right.kind == KindInt:
		exp := right.Int()
		if exp < 0 || exp > math.MaxUint32 {
			return Value{}, NewErrorf("exponent out of range: %d", exp)
		}
		return NewInt(intPow(left.Int(), exp)), nil
	case left.kind == KindFloat && right.kind == KindInt:
		exp := right.Int()
		if exp < math.MinInt32 || exp > math.MaxInt32 {
			return Value{}, NewErrorf("exponent out of range: %d", exp)
		}
		return NewFloat(math.Pow(left.Float(), float64(exp))), nil
	case left.isNumeric() && right.isNumeric():
		return NewFloat(math.Pow(left.Float(), right.Float())), nil
	default:
		return Value{}, binaryOpError("**", left, right)
	}
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
