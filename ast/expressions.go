package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/estel/value"
)

// BinaryOp is the operator of a Binary node.
type BinaryOp int

// Binary operators.
const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Greater
	Less
	GreaterEqual
	LessEqual
	Equal
	NotEqual
	And
	Or
)

var binaryOpStrings = [...]string{
	Add:          "Add",
	Sub:          "Sub",
	Mul:          "Mul",
	Div:          "Div",
	Mod:          "Mod",
	Greater:      "Greater",
	Less:         "Less",
	GreaterEqual: "GreaterEqual",
	LessEqual:    "LessEqual",
	Equal:        "Equal",
	NotEqual:     "NotEqual",
	And:          "And",
	Or:           "Or",
}

func (op BinaryOp) String() string { return binaryOpStrings[op] }

// UnaryOp is the operator of a Unary node.
type UnaryOp int

// Unary operators.
const (
	Not UnaryOp = iota
	Negate
)

func (op UnaryOp) String() string {
	if op == Not {
		return "Not"
	}
	return "Negate"
}

// Ident is a variable reference.
type Ident struct {
	Name string
}

func (*Ident) expr() {}

func (e *Ident) Dump() string { return e.Name }

// Literal is a constant value.
type Literal struct {
	Value value.Value
}

func (*Literal) expr() {}

func (e *Literal) Dump() string {
	if e.Value.Kind() == value.KindString {
		return strconv.Quote(e.Value.AsString())
	}
	return e.Value.String()
}

type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*Binary) expr() {}

func (e *Binary) Dump() string {
	return fmt.Sprintf("%s(%s, %s)", e.Op, e.Left.Dump(), e.Right.Dump())
}

type Unary struct {
	Op      UnaryOp
	Operand Expr
}

func (*Unary) expr() {}

func (e *Unary) Dump() string {
	return fmt.Sprintf("%s(%s)", e.Op, e.Operand.Dump())
}
