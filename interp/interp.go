// Package interp wires the lexer, parser and executor together for files,
// one-off sources and the interactive prompt.
package interp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kr/pretty"

	"go.creack.net/estel/ast"
	"go.creack.net/estel/config"
	"go.creack.net/estel/diag"
	"go.creack.net/estel/executor"
	"go.creack.net/estel/lexer"
	"go.creack.net/estel/parser"
)

// Sentinels wrapped by Run so callers can pick an exit code.
var (
	ErrLex   = errors.New("lexical error")
	ErrParse = errors.New("syntax error")
)

// Mode selects what Run does with a source once it lexes.
type Mode int

// Run modes.
const (
	ModeExecute Mode = iota
	ModeDumpTokens
	ModeDumpAST
)

// Interp runs sources and renders their errors.
type Interp struct {
	Mode Mode

	cfg      config.Config
	stdout   io.Writer
	logger   *slog.Logger
	renderer *diag.Renderer
}

// New creates an Interp printing program output on stdout and errors on stderr.
// Colors follow cfg.Color when stderr is a terminal.
func New(cfg config.Config, stdout, stderr io.Writer, logger *slog.Logger) *Interp {
	if logger == nil {
		logger = slog.Default()
	}
	f, _ := stderr.(*os.File)
	return &Interp{
		cfg:    cfg,
		stdout: stdout,
		logger: logger,
		renderer: &diag.Renderer{
			Out:     stderr,
			Color:   diag.ShouldColor(cfg.Color, f),
			Context: cfg.ContextLines,
		},
	}
}

func (it *Interp) newExecutor(echo bool) *executor.Executor {
	return executor.New(
		executor.WithStdout(it.stdout),
		executor.WithEcho(echo),
		executor.WithLogger(it.logger),
		executor.WithErrorHandler(func(err *executor.RuntimeError) { it.render(err) }),
	)
}

// Run interprets source with a fresh global scope. name only shows in
// logs and returned errors. Runtime errors are rendered but do not fail
// the run.
func (it *Interp) Run(name, source string) error {
	return it.run(name, source, it.newExecutor(false))
}

func (it *Interp) run(name, source string, ex *executor.Executor) error {
	it.renderer.Source = source

	tokens := lexer.Lex(source)
	it.logger.Debug("Lexed.", "name", name, "tokens", len(tokens))
	if it.Mode == ModeDumpTokens {
		for _, tok := range tokens {
			fmt.Fprintln(it.stdout, tok)
		}
	}
	if errs := lexer.Errors(tokens); len(errs) > 0 {
		renderAll(it, errs)
		return fmt.Errorf("%s: %w (%d)", name, ErrLex, len(errs))
	}
	if it.Mode == ModeDumpTokens {
		return nil
	}

	block, err := parser.Parse(tokens)
	if err != nil {
		errs, ok := parser.AsStmtErrors(err)
		if !ok {
			return fmt.Errorf("%s: parse: %w", name, err)
		}
		renderAll(it, []*parser.StmtError(errs))
		return fmt.Errorf("%s: %w (%d)", name, ErrParse, len(errs))
	}
	it.logger.Debug("Parsed.", "name", name, "statements", len(block.Stmts))

	if it.Mode == ModeDumpAST {
		it.dumpAST(block)
		return nil
	}

	if n := ex.Execute(block); n > 0 {
		it.logger.Debug("Runtime errors.", "name", name, "count", n)
	}
	return nil
}

func (it *Interp) dumpAST(block ast.Block) {
	if _, err := pretty.Fprintf(it.stdout, "%# v\n", block); err != nil {
		it.logger.Warn("Failed to dump ast.", "error", err)
	}
}

func (it *Interp) render(d diag.Diagnostic) {
	if err := it.renderer.Render(d); err != nil {
		it.logger.Warn("Failed to render error.", "error", err)
	}
}

func renderAll[D diag.Diagnostic](it *Interp, ds []D) {
	if err := diag.RenderAll(it.renderer, ds); err != nil {
		it.logger.Warn("Failed to render errors.", "error", err)
	}
}

// maxLineSize bounds one prompt line.
const maxLineSize = 16 << 20

// RunPrompt reads lines from r until EOF or an exit command, running each
// one against the same global scope.
func (it *Interp) RunPrompt(r io.Reader) error {
	ex := it.newExecutor(it.cfg.Echo)

	exit := "Ctrl-D"
	if len(it.cfg.ExitCommands) > 0 {
		exit = strings.Join(it.cfg.ExitCommands, " or ")
	}
	fmt.Fprintf(it.stdout, "Entering prompt mode, use %s to exit. To run a file, use estel [filename]\n", exit)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	for n := 1; ; n++ {
		fmt.Fprint(it.stdout, it.cfg.Prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read prompt: %w", err)
			}
			fmt.Fprintln(it.stdout)
			return nil
		}
		line := scanner.Text()
		if it.cfg.IsExit(line) {
			return nil
		}
		// Errors are rendered already, the session goes on.
		_ = it.run(fmt.Sprintf("<prompt:%d>", n), line, ex)
	}
}
