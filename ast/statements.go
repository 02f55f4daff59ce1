package ast

import (
	"fmt"

	"go.creack.net/estel/lexer"
)

// Print writes the value of Expr to the output.
type Print struct {
	Start lexer.Position
	Expr  Expr
}

func (*Print) stmt() {}
func (s *Print) Pos() lexer.Position { return s.Start }
func (s *Print) Dump() string { return fmt.Sprintf("Print(%s)", s.Expr.Dump()) }

// Assign declares Name in the current scope, shadowing outer bindings.
type Assign struct {
	Start lexer.Position
	Name  string
	Expr  Expr
}

func (*Assign) stmt() {}
func (s *Assign) Pos() lexer.Position { return s.Start }
func (s *Assign) Dump() string { return fmt.Sprintf("Assign(%s, %s)", s.Name, s.Expr.Dump()) }

// Reassign updates the innermost existing binding of Name.
type Reassign struct {
	Start lexer.Position
	Name  string
	Expr  Expr
}

func (*Reassign) stmt() {}
func (s *Reassign) Pos() lexer.Position { return s.Start }
func (s *Reassign) Dump() string { return fmt.Sprintf("Reassign(%s, %s)", s.Name, s.Expr.Dump()) }

// ExprStmt evaluates Expr for its value only.
type ExprStmt struct {
	Start lexer.Position
	Expr  Expr
}

func (*ExprStmt) stmt() {}
func (s *ExprStmt) Pos() lexer.Position { return s.Start }
func (s *ExprStmt) Dump() string { return s.Expr.Dump() }

// While runs Body in a fresh scope for as long as Cond is truthy.
type While struct {
	Start lexer.Position
	Cond  Expr
	Body  []Stmt
}

func (*While) stmt() {}
func (s *While) Pos() lexer.Position { return s.Start }
func (s *While) Dump() string {
	return fmt.Sprintf("While(%s, %s)", s.Cond.Dump(), dumpList(s.Body))
}

// BlockStmt runs Body in a nested scope.
type BlockStmt struct {
	Start lexer.Position
	Body  []Stmt
}

func (*BlockStmt) stmt() {}
func (s *BlockStmt) Pos() lexer.Position { return s.Start }
func (s *BlockStmt) Dump() string { return "Block(" + dumpList(s.Body) + ")" }
