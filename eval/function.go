package eval

import "strconv"

type arityKind int

const (
	arityExact arityKind = iota
	arityMinimum
)

// Arity is the argument-count contract of a callable: either an exact count
// or a lower bound.
type Arity struct {
	kind arityKind
	n    int
}

func Exactly(n int) Arity { return Arity{kind: arityExact, n: n} }
func AtLeast(n int) Arity { return Arity{kind: arityMinimum, n: n} }

func (a Arity) Accepts(count int) bool {
	if a.kind == arityMinimum {
		return count >= a.n
	}
	return count == a.n
}

func (a Arity) String() string {
	if a.kind == arityMinimum {
		return "at least " + strconv.Itoa(a.n)
	}
	return strconv.Itoa(a.n)
}

// NativeFunc is a pure built-in body.
type NativeFunc func(args []Value) (Value, error)

// NativeCtxFunc is a built-in body that needs the calling Context, e.g. the
// higher-order collection functions which invoke callables of their own.
type NativeCtxFunc func(args []Value, ctx *Context) (Value, error)

// Lambda is a user-defined single-expression function together with the
// Context it was defined in.
type Lambda struct {
	params []string
	body   Expression
	env    *Context
}

// Function is a callable Value payload: a native built-in (with or without
// Context access) or a lambda. Exactly one of the bodies is set.
type Function struct {
	name      string
	arity     Arity
	native    NativeFunc
	nativeCtx NativeCtxFunc
	lambda    *Lambda
}

func newNative(name string, arity Arity, fn NativeFunc) *Function {
	return &Function{name: name, arity: arity, native: fn}
}

func newNativeCtx(name string, arity Arity, fn NativeCtxFunc) *Function {
	return &Function{name: name, arity: arity, nativeCtx: fn}
}

func newLambda(params []string, body Expression, env *Context) *Function {
	return &Function{
		arity:  Exactly(len(params)),
		lambda: &Lambda{params: params, body: body, env: env},
	}
}

func (f *Function) Arity() Arity { return f.arity }

func (f *Function) displayName() string {
	if f.name == "" {
		return "function"
	}
	return f.name
}

// Invoke checks the arity contract and runs the function body. Lambdas run
// in a fresh child frame of their defining Context; the frame is discarded
// when the call returns.
func (f *Function) Invoke(args []Value, ctx *Context) (Value, error) {
	if !f.arity.Accepts(len(args)) {
		return Value{}, NewErrorf(
			"invalid number of arguments to %s(): expected %s, got %d",
			f.displayName(), f.arity, len(args))
	}
	switch {
	case f.native != nil:
		return f.native(args)
	case f.nativeCtx != nil:
		return f.nativeCtx(args, ctx)
	default:
		frame := NewChildContext(f.lambda.env)
		for i, param := range f.lambda.params {
			frame.Set(param, args[i])
		}
		return f.lambda.body.Eval(frame)
	}
}
