package executor

import (
	"fmt"

	"go.creack.net/estel/lexer"
	"go.creack.net/estel/value"
)

// RuntimeError is a value error located at the statement that raised it.
type RuntimeError struct {
	Err *value.Error
	Pos lexer.Position
}

func (e *RuntimeError) Message() string { return e.Err.Message() }

func (e *RuntimeError) Position() (line, column int) { return e.Pos.Line, e.Pos.Column }

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Message(), e.Pos)
}

func (e *RuntimeError) Unwrap() error { return e.Err }
