package eval

import "fmt"

// Error is the single failure type produced by the runtime. It carries a
// message and nothing else; the caller decides how to present it.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewError constructs an evaluation error with a fixed message.
func NewError(message string) *Error {
	return &Error{Message: message}
}

// NewErrorf constructs an evaluation error with a formatted message.
func NewErrorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
