package eval

import (
	"fmt"
	"math"
)

// InitBuiltins installs the function library and the named constants into a
// root Context. Re-registering an existing name is a programming error and
// panics; it can never be triggered from an expression.
func (c *Context) InitBuiltins() {
	if !c.IsRoot() {
		panic("only the root Context can have builtins")
	}

	// Keep the list sorted alphabetically by function name.
	c.defineUnary("abs", mathAbs)
	c.defineBinary("after", stringsAfter)
	c.defineUnary("all", baseAll)
	c.defineUnary("any", baseAny)
	c.defineBinary("before", stringsBefore)
	c.defineUnary("bin", mathBin)
	c.defineUnary("bool", convBool)
	c.defineUnary("ceil", mathCeil)
	c.defineUnary("char", stringsChr)
	c.defineUnary("chr", stringsChr)
	c.defineUnary("csv", convCsv)
	c.defineUnary("exp", mathExp)
	c.defineBinaryCtx("filter", baseFilter)
	c.defineUnary("float", convFloat)
	c.defineUnary("floor", mathFloor)
	c.defineTernaryCtx("fold", baseReduce)
	c.defineTernaryCtx("foldl", baseReduce)
	c.defineBinary("format", stringsFormat)
	c.defineTernary("gsub", stringsSub)
	c.defineUnary("hex", mathHex)
	c.defineBinary("index", baseIndex)
	c.defineUnary("int", convInt)
	c.defineBinary("join", stringsJoin)
	c.defineUnary("json", convJSON)
	c.defineUnary("len", baseLen)
	c.defineUnary("ln", mathLn)
	c.defineBinaryCtx("map", baseMap)
	c.defineUnaryCtx("max", baseMax)
	c.defineUnaryCtx("min", baseMin)
	c.defineUnary("oct", mathOct)
	c.defineUnary("ord", stringsOrd)
	c.defineNullary("rand", mathRand)
	c.defineUnary("re", convRegex)
	c.defineTernaryCtx("reduce", baseReduce)
	c.defineUnary("regex", convRegex)
	c.defineUnary("regexp", convRegex)
	c.defineUnary("rev", stringsRev)
	c.defineUnary("rot13", stringsRot13)
	c.defineUnary("round", mathRound)
	c.defineTernary("rsub1", stringsRsub1)
	c.defineUnary("sgn", mathSgn)
	c.defineUnary("sort", baseSort)
	c.defineBinaryCtx("sortby", baseSortBy)
	c.defineBinary("split", stringsSplit)
	c.defineUnary("sqrt", mathSqrt)
	c.defineUnary("str", convStr)
	c.defineTernary("sub", stringsSub)
	c.defineTernary("sub1", stringsSub1)
	c.defineUnaryCtx("sum", baseSum)
	c.defineUnary("trim", stringsTrim)
	c.defineUnary("trunc", mathTrunc)

	// Keep the list sorted alphabetically by constant name (ignore case).
	c.Set("Inf", NewFloat(math.Inf(1)))
	c.Set("NaN", NewFloat(math.NaN()))
	c.Set("nil", NewNil())
	c.Set("pi", NewFloat(math.Pi))
}

func (c *Context) define(name string, arity Arity, fn NativeFunc) {
	if c.IsDefinedHere(name) {
		panic(fmt.Sprintf("%s has already been defined in this Context", name))
	}
	c.Set(name, NewFunction(newNative(name, arity, fn)))
}

func (c *Context) defineCtx(name string, arity Arity, fn NativeCtxFunc) {
	if c.IsDefinedHere(name) {
		panic(fmt.Sprintf("%s has already been defined in this Context", name))
	}
	c.Set(name, NewFunction(newNativeCtx(name, arity, fn)))
}

func (c *Context) defineNullary(name string, fn func() (Value, error)) {
	c.define(name, Exactly(0), func(_ []Value) (Value, error) {
		return fn()
	})
}

func (c *Context) defineUnary(name string, fn func(Value) (Value, error)) {
	c.define(name, Exactly(1), func(args []Value) (Value, error) {
		return fn(args[0])
	})
}

func (c *Context) defineBinary(name string, fn func(Value, Value) (Value, error)) {
	c.define(name, Exactly(2), func(args []Value) (Value, error) {
		return fn(args[0], args[1])
	})
}

func (c *Context) defineTernary(name string, fn func(Value, Value, Value) (Value, error)) {
	c.define(name, Exactly(3), func(args []Value) (Value, error) {
		return fn(args[0], args[1], args[2])
	})
}

func (c *Context) defineUnaryCtx(name string, fn func(Value, *Context) (Value, error)) {
	c.defineCtx(name, Exactly(1), func(args []Value, ctx *Context) (Value, error) {
		return fn(args[0], ctx)
	})
}

func (c *Context) defineBinaryCtx(name string, fn func(Value, Value, *Context) (Value, error)) {
	c.defineCtx(name, Exactly(2), func(args []Value, ctx *Context) (Value, error) {
		return fn(args[0], args[1], ctx)
	})
}

func (c *Context) defineTernaryCtx(name string, fn func(Value, Value, Value, *Context) (Value, error)) {
	c.defineCtx(name, Exactly(3), func(args []Value, ctx *Context) (Value, error) {
		return fn(args[0], args[1], args[2], ctx)
	})
}
