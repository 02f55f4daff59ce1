package executor

import (
	"fmt"

	"go.creack.net/estel/ast"
	"go.creack.net/estel/value"
)

type binaryFunc func(a, b value.Value) (value.Value, error)

func infallible(fn func(a, b value.Value) value.Value) binaryFunc {
	return func(a, b value.Value) (value.Value, error) { return fn(a, b), nil }
}

var binaryOps = map[ast.BinaryOp]binaryFunc{
	ast.Add:          value.Add,
	ast.Sub:          value.Sub,
	ast.Mul:          value.Mul,
	ast.Div:          value.Div,
	ast.Mod:          value.Mod,
	ast.Greater:      value.Greater,
	ast.Less:         value.Less,
	ast.GreaterEqual: value.GreaterEqual,
	ast.LessEqual:    value.LessEqual,
	ast.Equal:        infallible(value.Eq),
	ast.NotEqual:     infallible(value.NotEq),
	ast.And:          infallible(value.And),
	ast.Or:           infallible(value.Or),
}

// Solve evaluates expr against the scope chain. It has no side effects.
// Both operands of and/or are always evaluated.
func Solve(expr ast.Expr, chain *Chain) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Ident:
		v, ok := chain.Lookup(e.Name)
		if !ok {
			return value.Value{}, value.NewUndefinedVariableError(e.Name)
		}
		return v, nil

	case *ast.Unary:
		operand, err := Solve(e.Operand, chain)
		if err != nil {
			return value.Value{}, err
		}
		if e.Op == ast.Not {
			return value.Not(operand), nil
		}
		return value.Negate(operand)

	case *ast.Binary:
		left, err := Solve(e.Left, chain)
		if err != nil {
			return value.Value{}, err
		}
		right, err := Solve(e.Right, chain)
		if err != nil {
			return value.Value{}, err
		}
		fn, ok := binaryOps[e.Op]
		if !ok {
			panic(fmt.Errorf("unsupported binary operator %s", e.Op))
		}
		return fn(left, right)

	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}
