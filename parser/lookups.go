package parser

import (
	"go.creack.net/estel/ast"
	"go.creack.net/estel/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpOr
	bpAnd
	bpEquality
	bpRelational
	bpAdditive
	bpMultiplicative
)

type binaryInfo struct {
	op ast.BinaryOp
	bp bindingPower
}

type lookupTable[T any] map[lexer.TokenType]T

var binaryLookupTable = lookupTable[binaryInfo]{
	lexer.TokOr: {ast.Or, bpOr},

	lexer.TokAnd: {ast.And, bpAnd},

	lexer.TokEqual:    {ast.Equal, bpEquality},
	lexer.TokNotEqual: {ast.NotEqual, bpEquality},

	lexer.TokGreater:      {ast.Greater, bpRelational},
	lexer.TokLess:         {ast.Less, bpRelational},
	lexer.TokGreaterEqual: {ast.GreaterEqual, bpRelational},
	lexer.TokLessEqual:    {ast.LessEqual, bpRelational},

	// Additional & multiplicative.
	lexer.TokPlus:    {ast.Add, bpAdditive},
	lexer.TokMinus:   {ast.Sub, bpAdditive},
	lexer.TokStar:    {ast.Mul, bpMultiplicative},
	lexer.TokSlash:   {ast.Div, bpMultiplicative},
	lexer.TokPercent: {ast.Mod, bpMultiplicative},
}

var unaryLookupTable = lookupTable[ast.UnaryOp]{
	lexer.TokNot:    ast.Not,
	lexer.TokNegate: ast.Negate,
}
