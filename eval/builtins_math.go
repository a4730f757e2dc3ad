package eval

import (
	"math"
	"math/rand"
	"strconv"
)

func mathAbs(value Value) (Value, error) {
	switch value.kind {
	case KindInt:
		if value.Int() < 0 {
			return NewInt(-value.Int()), nil
		}
		return value, nil
	case KindFloat:
		return NewFloat(math.Abs(value.Float())), nil
	default:
		return Value{}, NewErrorf("abs() requires a number, got %s", value.Typename())
	}
}

func mathSgn(value Value) (Value, error) {
	switch value.kind {
	case KindInt:
		switch {
		case value.Int() < 0:
			return NewInt(-1), nil
		case value.Int() > 0:
			return NewInt(1), nil
		default:
			return NewInt(0), nil
		}
	case KindFloat:
		switch {
		case value.Float() < 0:
			return NewFloat(-1), nil
		case value.Float() > 0:
			return NewFloat(1), nil
		default:
			return NewFloat(0), nil
		}
	default:
		return Value{}, NewErrorf("sgn() requires a number, got %s", value.Typename())
	}
}

func mathCeil(value Value) (Value, error) {
	return roundingOp("ceil", value, math.Ceil)
}

func mathFloor(value Value) (Value, error) {
	return roundingOp("floor", value, math.Floor)
}

func mathRound(value Value) (Value, error) {
	return roundingOp("round", value, math.Round)
}

func mathTrunc(value Value) (Value, error) {
	return roundingOp("trunc", value, math.Trunc)
}

func roundingOp(name string, value Value, round func(float64) float64) (Value, error) {
	switch value.kind {
	case KindInt:
		return value, nil
	case KindFloat:
		return NewFloat(round(value.Float())), nil
	default:
		return Value{}, NewErrorf("%s() requires a number, got %s", name, value.Typename())
	}
}

func mathSqrt(value Value) (Value, error) {
	if !value.isNumeric() {
		return Value{}, NewErrorf("sqrt() requires a number, got %s", value.Typename())
	}
	return NewFloat(math.Sqrt(value.Float())), nil
}

func mathExp(value Value) (Value, error) {
	if !value.isNumeric() {
		return Value{}, NewErrorf("exp() requires a number, got %s", value.Typename())
	}
	return NewFloat(math.Exp(value.Float())), nil
}

func mathLn(value Value) (Value, error) {
	if !value.isNumeric() {
		return Value{}, NewErrorf("ln() requires a number, got %s", value.Typename())
	}
	return NewFloat(math.Log(value.Float())), nil
}

func mathBin(value Value) (Value, error) {
	return radixOp("bin", value, 2)
}

func mathOct(value Value) (Value, error) {
	return radixOp("oct", value, 8)
}

func mathHex(value Value) (Value, error) {
	return radixOp("hex", value, 16)
}

func radixOp(name string, value Value, base int) (Value, error) {
	if value.kind != KindInt {
		return Value{}, NewErrorf("%s() requires an integer, got %s", name, value.Typename())
	}
	return NewString(strconv.FormatInt(value.Int(), base)), nil
}

// mathRand draws a uniform float from [0, 1).
func mathRand() (Value, error) {
	return NewFloat(rand.Float64()), nil
}
