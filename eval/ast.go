package eval

import (
	"fmt"
	"strings"
)

// Position identifies a location in the expression source.
type Position struct {
	Line   int
	Column int
}

// Expression is a parsed syntactic unit. Evaluating it against a Context
// produces a Value or an error; nodes keep no state between evaluations.
type Expression interface {
	Eval(ctx *Context) (Value, error)
	Pos() Position
	String() string
}

// LiteralExpr holds a self-evaluating constant (number, string, boolean).
type LiteralExpr struct {
	Value    Value
	position Position
}

func (e *LiteralExpr) Pos() Position  { return e.position }
func (e *LiteralExpr) String() string { return e.Value.Repr() }

// IdentifierExpr is a bare name. It evaluates to the innermost binding of
// that name if one exists, and to the name itself as a string otherwise.
type IdentifierExpr struct {
	Name     string
	position Position
}

func (e *IdentifierExpr) Pos() Position  { return e.position }
func (e *IdentifierExpr) String() string { return e.Name }

type ArrayExpr struct {
	Elements []Expression
	position Position
}

func (e *ArrayExpr) Pos() Position { return e.position }
func (e *ArrayExpr) String() string {
	parts := make([]string, len(e.Elements))
	for i, elem := range e.Elements {
		parts[i] = elem.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

type ObjectEntry struct {
	Key   string
	Value Expression
}

type ObjectExpr struct {
	Entries  []ObjectEntry
	position Position
}

func (e *ObjectExpr) Pos() Position { return e.position }
func (e *ObjectExpr) String() string {
	parts := make([]string, len(e.Entries))
	for i, entry := range e.Entries {
		parts[i] = fmt.Sprintf("%s: %s", entry.Key, entry.Value.String())
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

type UnaryExpr struct {
	Op       string
	Arg      Expression
	position Position
}

func (e *UnaryExpr) Pos() Position  { return e.position }
func (e *UnaryExpr) String() string { return fmt.Sprintf("(%s%s)", e.Op, e.Arg) }

type BinaryExpr struct {
	Op       string
	Left     Expression
	Right    Expression
	position Position
}

func (e *BinaryExpr) Pos() Position { return e.position }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

// ConditionalExpr is the ternary `cond ? then : else`. Only the selected
// branch is ever evaluated.
type ConditionalExpr struct {
	Cond     Expression
	Then     Expression
	Else     Expression
	position Position
}

func (e *ConditionalExpr) Pos() Position { return e.position }
func (e *ConditionalExpr) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", e.Cond, e.Then, e.Else)
}

type CallExpr struct {
	Name     string
	Args     []Expression
	position Position
}

func (e *CallExpr) Pos() Position { return e.position }
func (e *CallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, arg := range e.Args {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(parts, ", "))
}

type SubscriptExpr struct {
	Object   Expression
	Index    Expression
	position Position
}

func (e *SubscriptExpr) Pos() Position  { return e.position }
func (e *SubscriptExpr) String() string { return fmt.Sprintf("%s[%s]", e.Object, e.Index) }

// LambdaExpr is a user-defined single-expression function literal,
// `|x, y| x + y`. Evaluating it captures the enclosing Context.
type LambdaExpr struct {
	Params   []string
	Body     Expression
	position Position
}

func (e *LambdaExpr) Pos() Position { return e.position }
func (e *LambdaExpr) String() string {
	return fmt.Sprintf("|%s| %s", strings.Join(e.Params, ", "), e.Body)
}
