package lexer

import (
	"fmt"
	"strings"
)

// LexErrorKind classifies the error carried by a TokError token.
type LexErrorKind int

// Lexical error kinds.
const (
	InvalidToken LexErrorKind = iota
	UnterminatedString
)

func (k LexErrorKind) String() string {
	switch k {
	case InvalidToken:
		return "unrecognized token"
	case UnterminatedString:
		return "unterminated string"
	default:
		return "unknown lexical error"
	}
}

// Error is a lexical error extracted from the token stream.
type Error struct {
	Kind  LexErrorKind
	Token Token
}

// Message returns the user facing message.
func (e *Error) Message() string { return e.Kind.String() }

// Position returns the line and column of the offending text.
func (e *Error) Position() (line, column int) { return e.Token.Line, e.Token.Column }

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q at %s", e.Kind, e.Token.Value, e.Token.Pos())
}

// Errors returns every error token of the stream, in order.
func Errors(tokens []Token) []*Error {
	var errs []*Error
	for _, tok := range tokens {
		if tok.Type == TokError {
			errs = append(errs, &Error{Kind: tok.Err, Token: tok})
		}
	}
	return errs
}

// ErrorList groups the lexical errors of one input.
type ErrorList []*Error

func (errs ErrorList) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs ErrorList) Unwrap() []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		out = append(out, err)
	}
	return out
}
