// Package diag renders positioned errors against the source they come from.
package diag

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// Diagnostic is implemented by every error of the pipeline.
// Lines start at 1, columns at 0.
type Diagnostic interface {
	Message() string
	Position() (line, column int)
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	ansiReset = "\x1b[0m"
	ansiError = "\x1b[1;31m"
	ansiCaret = "\x1b[31m"
	ansiFaint = "\x1b[34m"
)

// ShouldColor decides whether output to f gets colored for the given mode.
// In auto mode, only terminals are colored and NO_COLOR disables it.
func ShouldColor(mode string, f *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Renderer prints diagnostics with a snippet of Source and a caret
// under the offending column.
type Renderer struct {
	Source  string
	Out     io.Writer
	Color   bool
	Context int // Lines shown before and after the offending one.
}

func (r *Renderer) paint(code, s string) string {
	if !r.Color {
		return s
	}
	return code + s + ansiReset
}

// Render writes d to r.Out.
func (r *Renderer) Render(d Diagnostic) error {
	line, column := d.Position()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s at line %d, column %d\n", r.paint(ansiError, "error:"), d.Message(), line, column)

	lines := strings.Split(r.Source, "\n")
	if line >= 1 && line <= len(lines) {
		first := max(1, line-r.Context)
		last := min(len(lines), line+r.Context)
		width := len(strconv.Itoa(last))

		for i := first; i <= last; i++ {
			text := strings.TrimSuffix(lines[i-1], "\r")
			gutter := fmt.Sprintf("%*d |", width, i)
			fmt.Fprintf(&sb, "%s %s\n", r.paint(ansiFaint, gutter), text)
			if i == line {
				gutter := strings.Repeat(" ", width) + " |"
				fmt.Fprintf(&sb, "%s %s%s\n", r.paint(ansiFaint, gutter), indent(text, column), r.paint(ansiCaret, "^"))
			}
		}
	}

	if _, err := io.WriteString(r.Out, sb.String()); err != nil {
		return fmt.Errorf("write diagnostic: %w", err)
	}
	return nil
}

// indent returns the blank prefix reaching column in text, keeping tabs
// so the caret lines up with the source.
func indent(text string, column int) string {
	var sb strings.Builder
	i := 0
	for _, r := range text {
		if i >= column {
			break
		}
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
		i++
	}
	for ; i < column; i++ {
		sb.WriteRune(' ')
	}
	return sb.String()
}

// RenderAll renders each diagnostic in order, stopping at the first write error.
func RenderAll[D Diagnostic](r *Renderer, ds []D) error {
	for _, d := range ds {
		if err := r.Render(d); err != nil {
			return err
		}
	}
	return nil
}
