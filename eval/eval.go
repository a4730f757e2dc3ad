package eval

// AST evaluation: one Eval method per node kind, recursing depth-first.
// Every failure propagates unchanged; for argument lists the leftmost
// failing argument is the one reported.

func (e *LiteralExpr) Eval(_ *Context) (Value, error) {
	return e.Value.Clone(), nil
}

func (e *IdentifierExpr) Eval(ctx *Context) (Value, error) {
	if v, ok := ctx.Get(e.Name); ok {
		return v, nil
	}
	return NewString(e.Name), nil
}

func (e *ArrayExpr) Eval(ctx *Context) (Value, error) {
	elems := make([]Value, len(e.Elements))
	for i, elem := range e.Elements {
		v, err := elem.Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		elems[i] = v
	}
	return NewArray(elems), nil
}

func (e *ObjectExpr) Eval(ctx *Context) (Value, error) {
	entries := make(Object, len(e.Entries))
	for _, entry := range e.Entries {
		v, err := entry.Value.Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		entries[entry.Key] = v
	}
	return NewObject(entries), nil
}

func (e *UnaryExpr) Eval(ctx *Context) (Value, error) {
	arg, err := e.Arg.Eval(ctx)
	if err != nil {
		return Value{}, err
	}
	return evalUnaryOp(e.Op, arg)
}

func (e *BinaryExpr) Eval(ctx *Context) (Value, error) {
	left, err := e.Left.Eval(ctx)
	if err != nil {
		return Value{}, err
	}
	right, err := e.Right.Eval(ctx)
	if err != nil {
		return Value{}, err
	}
	return evalBinaryOp(e.Op, left, right)
}

func (e *ConditionalExpr) Eval(ctx *Context) (Value, error) {
	cond, err := e.Cond.Eval(ctx)
	if err != nil {
		return Value{}, err
	}
	if cond.kind != KindBool {
		return Value{}, NewErrorf(
			"expected a boolean condition, got %s instead", cond.Typename())
	}
	if cond.Bool() {
		return e.Then.Eval(ctx)
	}
	return e.Else.Eval(ctx)
}

func (e *CallExpr) Eval(ctx *Context) (Value, error) {
	args := make([]Value, len(e.Args))
	for i, argExpr := range e.Args {
		arg, err := argExpr.Eval(ctx)
		if err != nil {
			return Value{}, err
		}
		args[i] = arg
	}
	result, found, err := ctx.CallFunc(e.Name, args)
	if !found {
		return Value{}, NewErrorf("unknown function: %s", e.Name)
	}
	if err != nil {
		return Value{}, err
	}
	return result, nil
}

func (e *LambdaExpr) Eval(ctx *Context) (Value, error) {
	return NewFunction(newLambda(e.Params, e.Body, ctx)), nil
}

func (e *SubscriptExpr) Eval(ctx *Context) (Value, error) {
	object, err := e.Object.Eval(ctx)
	if err != nil {
		return Value{}, err
	}
	index, err := e.Index.Eval(ctx)
	if err != nil {
		return Value{}, err
	}
	switch object.kind {
	case KindArray:
		return subscriptArray(object.Array(), index)
	case KindString:
		return subscriptString(object.Str(), index)
	case KindObject:
		return subscriptObject(object.Object(), index)
	default:
		return Value{}, NewErrorf("can't index %s with %s",
			object.Typename(), index.Typename())
	}
}

func subscriptArray(array []Value, index Value) (Value, error) {
	switch index.kind {
	case KindInt:
		i := index.Int()
		if i < 0 {
			return Value{}, NewErrorf("array index cannot be negative; got %d", i)
		}
		if i >= int64(len(array)) {
			return Value{}, NewErrorf("array index out of range (%d)", i)
		}
		return array[i].Clone(), nil
	case KindFloat:
		return Value{}, NewError("array indices must be integers")
	default:
		return Value{}, NewErrorf("can't index an array with %s", index.Typename())
	}
}

func subscriptString(s string, index Value) (Value, error) {
	if index.kind != KindInt {
		return Value{}, NewErrorf("can't index a string with %s", index.Typename())
	}
	i := index.Int()
	runes := []rune(s)
	if i < 0 || i >= int64(len(runes)) {
		return Value{}, NewErrorf("character index out of range: %d", i)
	}
	return NewString(string(runes[i])), nil
}

func subscriptObject(object Object, index Value) (Value, error) {
	if index.kind != KindString {
		return Value{}, NewErrorf("can't index an object with %s", index.Typename())
	}
	if v, ok := object[index.Str()]; ok {
		return v.Clone(), nil
	}
	return NewNil(), nil
}
