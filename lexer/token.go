package lexer

import (
	"fmt"
	"slices"

	"go.creack.net/estel/value"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals + identifiers.
	TokNumber
	TokFloat
	TokString
	TokBool
	TokIdentifier

	// Keywords.
	TokLet
	TokPrint
	TokWhile

	// Binary operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokPercent
	TokGreater
	TokLess
	TokGreaterEqual
	TokLessEqual
	TokEqual
	TokNotEqual
	TokAnd
	TokOr

	// Unary operators.
	TokNegate
	TokNot

	// Delimiters.
	TokAssign
	TokTerminator // ';' or '\n'.
	TokParenLeft
	TokParenRight
	TokBraceLeft
	TokBraceRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber:     "NUMBER",
	TokFloat:      "FLOAT",
	TokString:     "STRING",
	TokBool:       "BOOL",
	TokIdentifier: "IDENTIFIER",

	TokLet:   "LET",
	TokPrint: "PRINT",
	TokWhile: "WHILE",

	TokPlus:         "+",
	TokMinus:        "-",
	TokStar:         "*",
	TokSlash:        "/",
	TokPercent:      "%",
	TokGreater:      ">",
	TokLess:         "<",
	TokGreaterEqual: ">=",
	TokLessEqual:    "<=",
	TokEqual:        "==",
	TokNotEqual:     "!=",
	TokAnd:          "AND",
	TokOr:           "OR",

	TokNegate: "NEGATE",
	TokNot:    "NOT",

	TokAssign:     "ASSIGN",
	TokTerminator: "TERMINATOR",
	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
	TokBraceLeft:  "BRACE_LEFT",
	TokBraceRight: "BRACE_RIGHT",
}

var keywords = map[string]TokenType{
	"let":   TokLet,
	"print": TokPrint,
	"while": TokWhile,
	"and":   TokAnd,
	"or":    TokOr,
	"true":  TokBool,
	"false": TokBool,
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsLiteral reports whether tt carries a value.
func (tt TokenType) IsLiteral() bool { return tt >= TokNumber && tt <= TokBool }

// IsBinaryOperator reports whether tt combines two operands.
func (tt TokenType) IsBinaryOperator() bool { return tt >= TokPlus && tt <= TokOr }

// IsUnaryOperator reports whether tt applies to a single operand.
func (tt TokenType) IsUnaryOperator() bool { return tt == TokNegate || tt == TokNot }

// endsOperand reports whether a '-' following tt is a subtraction.
func (tt TokenType) endsOperand() bool {
	return tt.IsLiteral() || tt.IsOneOf(TokIdentifier, TokParenRight)
}

// Position locates a token in the source. Lines start at 1, columns at 0.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string // Raw source text.

	Literal value.Value  // Set for literal tokens.
	Err     LexErrorKind // Set for TokError.

	Line   int
	Column int
}

// Pos returns the position of the first character of the token.
func (t Token) Pos() Position { return Position{Line: t.Line, Column: t.Column} }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d:%d]: %.16q", t.Type, t.Line, t.Column, t.Value)
	}
	return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.Line, t.Column, t.Value)
}

func (t Token) errorString() string {
	return fmt.Sprintf("ERROR [%d:%d]: %s %q", t.Line, t.Column, t.Err, t.Value)
}
