// Package executor runs parsed blocks against a persistent scope chain.
package executor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.creack.net/estel/ast"
	"go.creack.net/estel/lexer"
	"go.creack.net/estel/value"
)

// Executor runs blocks. The global scope outlives each Execute call so
// successive prompt lines share their variables.
type Executor struct {
	stdout  io.Writer
	echo    bool
	onError func(*RuntimeError)
	logger  *slog.Logger

	chain    *Chain
	errCount int // Errors reported by the current Execute call.
}

// Option configures an Executor.
type Option func(*Executor)

// WithStdout sets where print writes. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(e *Executor) { e.stdout = w }
}

// WithEcho prints the value of expression statements, as in a prompt.
func WithEcho(echo bool) Option {
	return func(e *Executor) { e.echo = echo }
}

// WithErrorHandler receives every runtime error.
// Defaults to a one line report on os.Stderr.
func WithErrorHandler(fn func(*RuntimeError)) Option {
	return func(e *Executor) {
		if fn != nil {
			e.onError = fn
		}
	}
}

// WithGlobals seeds the global scope. The executor takes ownership of it.
func WithGlobals(global Scope) Option {
	return func(e *Executor) { e.chain = NewChain(global) }
}

// WithLogger sets the logger for debug traces. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Executor.
func New(opts ...Option) *Executor {
	e := &Executor{
		stdout:  os.Stdout,
		onError: reportTo(os.Stderr),
		logger:  slog.Default(),
		chain:   NewChain(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Globals returns a copy of the global scope.
func (e *Executor) Globals() Scope { return e.chain.Global() }

// Execute runs every statement of block in order and returns the number
// of runtime errors reported. A failing statement has no effect and
// execution carries on with the next one.
func (e *Executor) Execute(block ast.Block) int {
	e.errCount = 0
	e.logger.Debug("Execute block.", "statements", len(block.Stmts), "depth", e.chain.Depth())
	e.execStmts(block.Stmts)
	return e.errCount
}

func (e *Executor) execStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		e.execStmt(stmt)
	}
}

// execScope runs stmts in a fresh nested scope.
func (e *Executor) execScope(stmts []ast.Stmt) {
	e.chain.Push()
	defer e.chain.Pop()
	e.execStmts(stmts)
}

func (e *Executor) execStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Print:
		if v, ok := e.solve(s.Expr, s.Pos()); ok {
			e.print(v)
		}

	case *ast.Assign:
		if v, ok := e.solve(s.Expr, s.Pos()); ok {
			e.chain.Declare(s.Name, v)
		}

	case *ast.Reassign:
		v, ok := e.solve(s.Expr, s.Pos())
		if !ok {
			return
		}
		if !e.chain.Assign(s.Name, v) {
			e.report(value.NewUndefinedVariableError(s.Name), s.Pos())
		}

	case *ast.ExprStmt:
		if v, ok := e.solve(s.Expr, s.Pos()); ok && e.echo {
			e.print(v)
		}

	case *ast.BlockStmt:
		e.execScope(s.Body)

	case *ast.While:
		for {
			cond, ok := e.solve(s.Cond, s.Pos())
			if !ok || !cond.Truthy() {
				return
			}
			e.execScope(s.Body)
		}

	default:
		panic(fmt.Errorf("unsupported statement type %T", s))
	}
}

// solve evaluates expr, reporting a failure at pos.
func (e *Executor) solve(expr ast.Expr, pos lexer.Position) (value.Value, bool) {
	v, err := Solve(expr, e.chain)
	if err != nil {
		e.report(err, pos)
		return value.Value{}, false
	}
	return v, true
}

func (e *Executor) report(err error, pos lexer.Position) {
	var verr *value.Error
	if !errors.As(err, &verr) {
		panic(fmt.Errorf("unexpected evaluation error: %w", err))
	}
	e.errCount++
	rerr := &RuntimeError{Err: verr, Pos: pos}
	e.logger.Debug("Runtime error.", "kind", verr.Kind, "line", pos.Line, "column", pos.Column)
	e.onError(rerr)
}
