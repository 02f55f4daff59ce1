// Package ast defines the syntax tree built by the parser and walked by the executor.
package ast

import (
	"strings"

	"go.creack.net/estel/lexer"
)

// Node is implemented by every tree node.
type Node interface {
	// Dump renders the node in a compact prefix notation, e.g. Add(Mul(5, 5), 3).
	Dump() string
}

// Expr is an expression node. The set of implementations is closed:
// *Ident, *Literal, *Binary and *Unary.
type Expr interface {
	Node
	expr()
}

// Stmt is a statement node. The set of implementations is closed:
// *Print, *Assign, *Reassign, *ExprStmt, *While and *BlockStmt.
type Stmt interface {
	Node
	stmt()
	// Pos returns the position of the first token of the statement.
	Pos() lexer.Position
}

// Block is an ordered list of statements, the unit produced by the parser.
type Block struct {
	Stmts []Stmt
}

func (b Block) Dump() string {
	result := ""
	for _, stmt := range b.Stmts {
		result += stmt.Dump() + "\n"
	}
	return result
}

func dumpList(stmts []Stmt) string {
	parts := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		parts = append(parts, stmt.Dump())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
