package eval

// Context is one frame of the lexical scope chain: a mapping of names to
// Values plus an optional parent. Child frames are created per function
// invocation and discarded when the call returns; frames never reference
// their children, so the chain cannot cycle.
type Context struct {
	parent *Context
	vars   map[string]Value
}

// NewRootContext creates an empty frame with no parent. Only the root frame
// may register builtins.
func NewRootContext() *Context {
	return &Context{vars: make(map[string]Value)}
}

// NewChildContext creates a frame whose lookups fall through to parent.
func NewChildContext(parent *Context) *Context {
	return &Context{parent: parent, vars: make(map[string]Value)}
}

func (c *Context) IsRoot() bool { return c.parent == nil }

// Set binds a name in this frame only, shadowing any parent binding.
func (c *Context) Set(name string, v Value) {
	c.vars[name] = v
}

// Get returns a clone of the innermost binding found while climbing the
// parent chain, or ok == false when the name is absent everywhere.
func (c *Context) Get(name string) (Value, bool) {
	for frame := c; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v.Clone(), true
		}
	}
	return Value{}, false
}

// IsDefined reports whether the name is bound anywhere in the chain.
func (c *Context) IsDefined(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// IsDefinedHere reports whether the name is bound in this frame.
func (c *Context) IsDefinedHere(name string) bool {
	_, ok := c.vars[name]
	return ok
}

// CallFunc resolves name to a Function and invokes it with args. The found
// result is false when the name is unbound anywhere in the chain, which
// lets the caller distinguish "unknown function" from a call that failed.
func (c *Context) CallFunc(name string, args []Value) (result Value, found bool, err error) {
	v, ok := c.Get(name)
	if !ok {
		return Value{}, false, nil
	}
	fn := v.Function()
	if fn == nil {
		return Value{}, true, NewErrorf("cannot call a %s value: %s", v.Typename(), name)
	}
	result, err = fn.Invoke(args, c)
	return result, true, err
}
