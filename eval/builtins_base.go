package eval

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// baseLen computes the length of a string (in code points), array, or object.
func baseLen(value Value) (Value, error) {
	switch value.kind {
	case KindString:
		return NewInt(int64(utf8.RuneCountInString(value.Str()))), nil
	case KindArray:
		return NewInt(int64(len(value.Array()))), nil
	case KindObject:
		return NewInt(int64(len(value.Object()))), nil
	default:
		return Value{}, NewErrorf("len() requires string/array/object, got %s", value.Typename())
	}
}

// baseIndex finds the position of an element inside a sequence: a substring
// or pattern inside a string, or an element inside an array. Returns nil
// when the element is absent.
func baseIndex(elem, seq Value) (Value, error) {
	switch {
	case elem.kind == KindString && seq.kind == KindString:
		i := strings.Index(seq.Str(), elem.Str())
		if i < 0 {
			return NewNil(), nil
		}
		return NewInt(int64(utf8.RuneCountInString(seq.Str()[:i]))), nil
	case elem.kind == KindRegex && seq.kind == KindString:
		i, _, ok := elem.Regex().Find(seq.Str())
		if !ok {
			return NewNil(), nil
		}
		return NewInt(int64(i)), nil
	case seq.kind == KindArray:
		for i, item := range seq.Array() {
			if item.Equal(elem) {
				return NewInt(int64(i)), nil
			}
		}
		return NewNil(), nil
	default:
		return Value{}, NewErrorf("invalid arguments to index() function: %s and %s",
			elem.Typename(), seq.Typename())
	}
}

// baseAll boolean-coerces every element; the empty array is vacuously true.
func baseAll(value Value) (Value, error) {
	if value.kind != KindArray {
		return Value{}, NewErrorf("all() requires an array, got %s", value.Typename())
	}
	for _, item := range value.Array() {
		b, err := convBool(item)
		if err != nil {
			return Value{}, err
		}
		if !b.Bool() {
			return NewBool(false), nil
		}
	}
	return NewBool(true), nil
}

// baseAny boolean-coerces every element; the empty array yields false.
func baseAny(value Value) (Value, error) {
	if value.kind != KindArray {
		return Value{}, NewErrorf("any() requires an array, got %s", value.Typename())
	}
	for _, item := range value.Array() {
		b, err := convBool(item)
		if err != nil {
			return Value{}, err
		}
		if b.Bool() {
			return NewBool(true), nil
		}
	}
	return NewBool(false), nil
}

// baseMap applies a unary function to each element of an array, collecting
// the results in order. Each invocation runs in a fresh child Context.
func baseMap(fn, array Value, ctx *Context) (Value, error) {
	if fn.kind != KindFunction || array.kind != KindArray {
		return Value{}, NewErrorf("map() requires a function and an array, got %s and %s",
			fn.Typename(), array.Typename())
	}
	if err := ensureUnary(fn.Function(), "map"); err != nil {
		return Value{}, err
	}
	elems := array.Array()
	out := make([]Value, len(elems))
	for i, item := range elems {
		frame := NewChildContext(ctx)
		mapped, err := fn.Function().Invoke([]Value{item}, frame)
		if err != nil {
			return Value{}, err
		}
		out[i] = mapped
	}
	return NewArray(out), nil
}

// baseFilter keeps the elements for which the predicate's boolean-coerced
// result is true.
func baseFilter(fn, array Value, ctx *Context) (Value, error) {
	if fn.kind != KindFunction || array.kind != KindArray {
		return Value{}, NewErrorf("filter() requires a function and an array, got %s and %s",
			fn.Typename(), array.Typename())
	}
	if err := ensureUnary(fn.Function(), "filter"); err != nil {
		return Value{}, err
	}
	out := make([]Value, 0, len(array.Array()))
	for _, item := range array.Array() {
		frame := NewChildContext(ctx)
		result, err := fn.Function().Invoke([]Value{item}, frame)
		if err != nil {
			return Value{}, err
		}
		keep, err := convBool(result)
		if err != nil {
			return Value{}, err
		}
		if keep.Bool() {
			out = append(out, item)
		}
	}
	return NewArray(out), nil
}

// baseReduce left-folds an array with a binary function and a seed value.
func baseReduce(fn, seed, array Value, ctx *Context) (Value, error) {
	if fn.kind != KindFunction || array.kind != KindArray {
		return Value{}, NewErrorf("reduce() requires a function, a seed, and an array, got %s, %s and %s",
			fn.Typename(), seed.Typename(), array.Typename())
	}
	if !fn.Function().Arity().Accepts(2) {
		return Value{}, NewErrorf("reduce() requires a 2-argument function, got one with %s arguments",
			fn.Function().Arity())
	}
	acc := seed
	for _, item := range array.Array() {
		frame := NewChildContext(ctx)
		next, err := fn.Function().Invoke([]Value{acc, item}, frame)
		if err != nil {
			return Value{}, err
		}
		acc = next
	}
	return acc, nil
}

// baseSum adds up an array of numbers, starting from integer zero so an
// all-integer input stays integer.
func baseSum(array Value, _ *Context) (Value, error) {
	if array.kind != KindArray {
		return Value{}, NewErrorf("sum() requires an array, got %s", array.Typename())
	}
	acc := NewInt(0)
	for _, item := range array.Array() {
		if !item.isNumeric() {
			return Value{}, NewErrorf("sum() requires an array of numbers, got a %s element",
				item.Typename())
		}
		next, err := addOp(acc, item)
		if err != nil {
			return Value{}, err
		}
		acc = next
	}
	return acc, nil
}

func baseMax(array Value, _ *Context) (Value, error) {
	return extremum("max", array, func(cmp int) bool { return cmp > 0 })
}

func baseMin(array Value, _ *Context) (Value, error) {
	return extremum("min", array, func(cmp int) bool { return cmp < 0 })
}

func extremum(name string, array Value, better func(int) bool) (Value, error) {
	if array.kind != KindArray {
		return Value{}, NewErrorf("%s() requires an array, got %s", name, array.Typename())
	}
	elems := array.Array()
	if len(elems) == 0 {
		return Value{}, NewErrorf("%s() requires a non-empty array", name)
	}
	best := elems[0]
	for _, item := range elems[1:] {
		cmp, err := compareNatural(item, best)
		if err != nil {
			return Value{}, err
		}
		if better(cmp) {
			best = item
		}
	}
	return best.Clone(), nil
}

// baseSort orders an array by the natural comparator (numbers by value,
// strings lexicographically).
func baseSort(array Value) (Value, error) {
	if array.kind != KindArray {
		return Value{}, NewErrorf("sort() requires an array, got %s", array.Typename())
	}
	out := array.Clone().Array()
	var sortErr error
	sort.SliceStable(out, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		cmp, err := compareNatural(out[i], out[j])
		if err != nil {
			sortErr = err
			return false
		}
		return cmp < 0
	})
	if sortErr != nil {
		return Value{}, sortErr
	}
	return NewArray(out), nil
}

// baseSortBy orders an array by the natural comparator over keys produced
// by a unary key function.
func baseSortBy(fn, array Value, ctx *Context) (Value, error) {
	if fn.kind != KindFunction || array.kind != KindArray {
		return Value{}, NewErrorf("sortby() requires a function and an array, got %s and %s",
			fn.Typename(), array.Typename())
	}
	if err := ensureUnary(fn.Function(), "sortby"); err != nil {
		return Value{}, err
	}
	elems := array.Clone().Array()
	keys := make([]Value, len(elems))
	for i, item := range elems {
		frame := NewChildContext(ctx)
		key, err := fn.Function().Invoke([]Value{item}, frame)
		if err != nil {
			return Value{}, err
		}
		keys[i] = key
	}
	order := make([]int, len(elems))
	for i := range order {
		order[i] = i
	}
	var sortErr error
	sort.SliceStable(order, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		cmp, err := compareNatural(keys[order[i]], keys[order[j]])
		if err != nil {
			sortErr = err
			return false
		}
		return cmp < 0
	})
	if sortErr != nil {
		return Value{}, sortErr
	}
	out := make([]Value, len(elems))
	for i, idx := range order {
		out[i] = elems[idx]
	}
	return NewArray(out), nil
}

// compareNatural is the ordering used by sort/sortby/min/max: numeric pairs
// by promoted value, strings lexicographically, anything else an error.
func compareNatural(left, right Value) (int, error) {
	switch {
	case left.isNumeric() && right.isNumeric():
		if left.kind == KindInt && right.kind == KindInt {
			l, r := left.Int(), right.Int()
			switch {
			case l < r:
				return -1, nil
			case l > r:
				return 1, nil
			default:
				return 0, nil
			}
		}
		l, r := left.Float(), right.Float()
		switch {
		case l < r:
			return -1, nil
		case l > r:
			return 1, nil
		default:
			return 0, nil
		}
	case left.kind == KindString && right.kind == KindString:
		return strings.Compare(left.Str(), right.Str()), nil
	default:
		return 0, NewErrorf("cannot compare %s with %s", left.Typename(), right.Typename())
	}
}

func ensureUnary(fn *Function, name string) error {
	if !fn.Arity().Accepts(1) {
		return NewErrorf("%s() requires a 1-argument function, got one with %s arguments",
			name, fn.Arity())
	}
	return nil
}
