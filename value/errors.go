package value

import "fmt"

// ErrorKind classifies runtime failures.
type ErrorKind int

// Runtime error kinds.
const (
	InvalidType ErrorKind = iota
	DivideByZero
	UndefinedVariable
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidType:
		return "InvalidType"
	case DivideByZero:
		return "DivideByZero"
	case UndefinedVariable:
		return "UndefinedVariable"
	default:
		return "unknown"
	}
}

// Error is a runtime error produced while evaluating an expression.
type Error struct {
	Kind ErrorKind
	Msg  string
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its kind.
var (
	ErrInvalidType       = &Error{Kind: InvalidType, Msg: "invalid type"}
	ErrDivideByZero      = &Error{Kind: DivideByZero, Msg: "division by zero"}
	ErrUndefinedVariable = &Error{Kind: UndefinedVariable, Msg: "undefined variable"}
)

// Error implements the error interface.
func (e *Error) Error() string { return e.Msg }

// Message returns the user facing message.
func (e *Error) Message() string { return e.Msg }

// Is matches any error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NewTypeError creates an InvalidType error.
func NewTypeError(format string, args ...any) *Error {
	return &Error{Kind: InvalidType, Msg: fmt.Sprintf(format, args...)}
}

// NewDivideByZeroError creates a DivideByZero error.
func NewDivideByZeroError() *Error {
	return &Error{Kind: DivideByZero, Msg: "division by zero"}
}

// NewUndefinedVariableError creates an UndefinedVariable error for name.
func NewUndefinedVariableError(name string) *Error {
	return &Error{Kind: UndefinedVariable, Msg: fmt.Sprintf("undefined variable '%s'", name)}
}
