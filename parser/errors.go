package parser

import (
	"errors"
	"fmt"
	"strings"

	"go.creack.net/estel/lexer"
)

// ExprErrorKind classifies a malformed expression.
type ExprErrorKind int

// Expression error kinds.
const (
	ExpectedOperand ExprErrorKind = iota
	ExpectedOperator
	UnterminatedParen
)

// ExprError is a shunting-yard failure, anchored at the offending token.
type ExprError struct {
	Kind  ExprErrorKind
	Token lexer.Token
}

func (e *ExprError) Message() string {
	switch e.Kind {
	case ExpectedOperand:
		return "expected an operand"
	case ExpectedOperator:
		return "expected an operator"
	default:
		return "unterminated parenthesis"
	}
}

func (e *ExprError) Position() (line, column int) { return e.Token.Line, e.Token.Column }

func (e *ExprError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message(), e.Token.Pos())
}

// StmtErrorKind classifies a malformed statement.
type StmtErrorKind int

// Statement error kinds.
const (
	InvalidStartToken StmtErrorKind = iota
	ExpectToken
	InvalidExpression
	ExpectedExpression
	IncompleteStatement
	UnterminatedParenthesis
	UnterminatedBlock
	UnexpectedBlockClose
)

var stmtErrorKindStrings = [...]string{
	InvalidStartToken:       "InvalidStartToken",
	ExpectToken:             "ExpectToken",
	InvalidExpression:       "InvalidExpression",
	ExpectedExpression:      "ExpectedExpression",
	IncompleteStatement:     "IncompleteStatement",
	UnterminatedParenthesis: "UnterminatedParenthesis",
	UnterminatedBlock:       "UnterminatedBlock",
	UnexpectedBlockClose:    "UnexpectedBlockClose",
}

func (k StmtErrorKind) String() string { return stmtErrorKindStrings[k] }

// StmtError is a statement level syntax error.
type StmtError struct {
	Kind  StmtErrorKind
	Token lexer.Token // Anchor of the error.

	Expected lexer.TokenType // Set for ExpectToken.
	Expr     *ExprError      // Set for InvalidExpression.
}

func (e *StmtError) Message() string {
	switch e.Kind {
	case InvalidStartToken:
		return "invalid start of statement"
	case ExpectToken:
		return fmt.Sprintf("expected %s, got %s instead", e.Expected, e.Token.Type)
	case InvalidExpression:
		return e.Expr.Message()
	case ExpectedExpression:
		return "expected an expression"
	case IncompleteStatement:
		return "incomplete statement"
	case UnterminatedParenthesis:
		return "unterminated parenthesis"
	case UnterminatedBlock:
		return "unterminated block"
	case UnexpectedBlockClose:
		return "unexpected block termination"
	default:
		return "syntax error"
	}
}

func (e *StmtError) Position() (line, column int) {
	if e.Kind == InvalidExpression {
		return e.Expr.Position()
	}
	return e.Token.Line, e.Token.Column
}

func (e *StmtError) Error() string {
	line, col := e.Position()
	return fmt.Sprintf("%s at %s", e.Message(), lexer.Position{Line: line, Column: col})
}

// Unwrap exposes the expression error of an InvalidExpression.
func (e *StmtError) Unwrap() error {
	if e.Expr == nil {
		return nil
	}
	return e.Expr
}

// StmtErrors is the non-empty list of errors of a failed parse.
type StmtErrors []*StmtError

func (errs StmtErrors) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs StmtErrors) Unwrap() []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		out = append(out, err)
	}
	return out
}

// AsStmtErrors extracts the statement errors of a Parse failure.
func AsStmtErrors(err error) (StmtErrors, bool) {
	var errs StmtErrors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
