package executor_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/estel/ast"
	"go.creack.net/estel/executor"
	"go.creack.net/estel/lexer"
	"go.creack.net/estel/parser"
	"go.creack.net/estel/value"
)

type testCase struct {
	name    string
	input   string
	echo    bool
	stdout  string
	errors  []string       // Expected runtime error messages, in order.
	globals executor.Scope // Checked when not nil.
}

func TestExecutor(t *testing.T) {
	tests := []testCase{
		{name: "empty", input: "", stdout: ""},
		{name: "print number", input: "print 42", stdout: "42\n"},
		{name: "left associativity", input: "print 8 - 3 - 2", stdout: "3\n"},
		{name: "unary precedence", input: "print 6 + -5 * 3", stdout: "-9\n"},
		{name: "chained unary", input: "print - -5; print !!0; print -(2 - 7)", stdout: "5\nfalse\n5\n"},
		{name: "division is float", input: "print 4 / 2", stdout: "2.0\n"},
		{name: "fraction", input: "print 1 / 4", stdout: "0.25\n"},
		{name: "modulo", input: "print 7 % 3", stdout: "1\n"},
		{name: "string multiply", input: `print "Hi" * 3; print 3 * "Hi"`, stdout: "HiHiHi\nHiHiHi\n"},
		{name: "string concat", input: `print "v=" + 1.5 + " " + true`, stdout: "v=1.5 true\n"},
		{name: "mixed compare", input: "print 2 >= 2.0; print 1 > 2", stdout: "true\nfalse\n"},
		{name: "structural equality", input: `print 1 == 1.0; print "a" != 1`, stdout: "false\ntrue\n"},
		{name: "truthiness", input: `print 0 or "x"; print "" and true; print !0`, stdout: "true\nfalse\ntrue\n"},
		{name: "variables", input: "let a = 2\nlet b = a * 3\nprint b", stdout: "6\n"},
		{
			name:    "block scope",
			input:   "let a = 3; { let a = 5; let b = a; }",
			globals: executor.Scope{"a": value.Number(3)},
		},
		{
			name:    "nested scopes",
			input:   `let a=9; let c=""; { let a=5; let b=a; { let a=8; b=a }; c = a*b }`,
			globals: executor.Scope{"a": value.Number(9), "c": value.Number(40)},
		},
		{
			name:    "reassign outer from block",
			input:   "let a = 1; { a = 2 }; print a",
			stdout:  "2\n",
			globals: executor.Scope{"a": value.Number(2)},
		},
		{
			name:    "reassign miss",
			input:   "x = 5; print 1",
			stdout:  "1\n",
			errors:  []string{"undefined variable 'x'"},
			globals: executor.Scope{},
		},
		{
			name:    "reassign inner declared only",
			input:   "{ let x = 1 }; x = 2",
			errors:  []string{"undefined variable 'x'"},
			globals: executor.Scope{},
		},
		{
			name:   "divide by zero continues",
			input:  "print 5 / 0; print 5.0 / 0; print 1",
			stdout: "1\n",
			errors: []string{"division by zero", "division by zero"},
		},
		{
			name:   "oversized repetition fails",
			input:  "print \"ab\" * 2147483647; print 1",
			stdout: "1\n",
			errors: []string{"string result of * too long: 4294967294 bytes, limit is 16777216"},
		},
		{
			name:    "type error drops assignment",
			input:   "let a = true; let b = 5; let c = a*b",
			errors:  []string{"unsupported operand types for *: bool and number"},
			globals: executor.Scope{"a": value.Bool(true), "b": value.Number(5)},
		},
		{
			name:   "negate string",
			input:  `print -"a"`,
			errors: []string{"unsupported operand type for unary -: string"},
		},
		{name: "undefined in print", input: "print z", errors: []string{"undefined variable 'z'"}},
		{
			name:   "while loop",
			input:  "let i = 0; while (i < 3) { print i; i = i + 1 }",
			stdout: "0\n1\n2\n",
		},
		{
			name:    "while fresh scope per iteration",
			input:   "let i = 0\nwhile (i < 2) {\n  let t = i\n  i = i + 1\n}",
			globals: executor.Scope{"i": value.Number(2)},
		},
		{
			name:   "while single statement body",
			input:  "let i = 3; while (i) i = i - 1; print i",
			stdout: "0\n",
		},
		{
			name:   "while false never runs",
			input:  `while ("") print 1; print 2`,
			stdout: "2\n",
		},
		{
			name:   "while with empty body",
			input:  "let i = 0; while (i > 5); print \"done\"",
			stdout: "done\n",
		},
		{
			name:   "while condition error ends loop",
			input:  "while (x) print 1; print 2",
			stdout: "2\n",
			errors: []string{"undefined variable 'x'"},
		},
		{
			name:   "inner condition error ends inner loop only",
			input:  "let i = 0; while (i < 2) { i = i + 1; while (y) print 0; print i }",
			stdout: "1\n2\n",
			errors: []string{"undefined variable 'y'", "undefined variable 'y'"},
		},
		{name: "no echo", input: "1 + 2; let a = 1; a", stdout: ""},
		{name: "echo", input: "1 + 2; let a = 1; a", echo: true, stdout: "3\n1\n"},
		{name: "echo error", input: "1 / 0", echo: true, errors: []string{"division by zero"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, run(tt))
	}
}

func run(tt testCase) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()

		block, err := parser.ParseString(tt.input)
		require.NoError(t, err, "parse failed")

		stdout := bytes.NewBuffer(nil)
		var errs []string
		ex := executor.New(
			executor.WithStdout(stdout),
			executor.WithEcho(tt.echo),
			executor.WithErrorHandler(func(err *executor.RuntimeError) { errs = append(errs, err.Message()) }),
		)
		count := ex.Execute(block)

		assert.Equal(t, tt.stdout, stdout.String(), "Stdout mismatch")
		assert.Equal(t, tt.errors, errs, "Errors mismatch")
		assert.Equal(t, len(tt.errors), count, "Error count mismatch")
		if tt.globals != nil {
			assert.Equal(t, tt.globals, ex.Globals(), "Globals mismatch")
		}
	}
}

func TestExecutorPersistentGlobals(t *testing.T) {
	stdout := bytes.NewBuffer(nil)
	ex := executor.New(executor.WithStdout(stdout), executor.WithGlobals(executor.Scope{"seed": value.Number(10)}))

	for _, line := range []string{"let a = seed + 1", "a = a * 2", "print a"} {
		block, err := parser.ParseString(line)
		require.NoError(t, err)
		require.Zero(t, ex.Execute(block))
	}
	assert.Equal(t, "22\n", stdout.String())
	assert.Equal(t, executor.Scope{"seed": value.Number(10), "a": value.Number(22)}, ex.Globals())
}

func TestRuntimeErrorPosition(t *testing.T) {
	block, err := parser.ParseString("print 1\n  print 1 / 0\nwhile (1 + true) print 2")
	require.NoError(t, err)

	var errs []*executor.RuntimeError
	ex := executor.New(
		executor.WithStdout(bytes.NewBuffer(nil)),
		executor.WithErrorHandler(func(err *executor.RuntimeError) { errs = append(errs, err) }),
	)
	require.Equal(t, 2, ex.Execute(block))
	require.Len(t, errs, 2)

	assert.Equal(t, lexer.Position{Line: 2, Column: 2}, errs[0].Pos)
	assert.ErrorIs(t, errs[0], value.ErrDivideByZero)
	assert.Equal(t, "division by zero at line 2, column 2", errs[0].Error())

	line, column := errs[1].Position()
	assert.Equal(t, 3, line)
	assert.Equal(t, 0, column)
	assert.ErrorIs(t, errs[1], value.ErrInvalidType)
}

func TestSolve(t *testing.T) {
	block, err := parser.ParseString("a * (b + 1) > 10 and !c")
	require.NoError(t, err)
	require.Len(t, block.Stmts, 1)

	chain := executor.NewChain(executor.Scope{"a": value.Number(3), "b": value.Float(3)})
	chain.Push()
	chain.Declare("c", value.String(""))

	got, err := executor.Solve(block.Stmts[0].(*ast.ExprStmt).Expr, chain)
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), got)
}
