package executor

import (
	"fmt"
	"io"

	"go.creack.net/estel/value"
)

// print writes one value per line. Output failures are logged, they never
// stop the program.
func (e *Executor) print(v value.Value) {
	if _, err := fmt.Fprintln(e.stdout, v); err != nil {
		e.logger.Warn("Failed to write output.", "error", err)
	}
}

// reportTo returns an error handler writing one line per error to w.
func reportTo(w io.Writer) func(*RuntimeError) {
	return func(err *RuntimeError) {
		_, _ = fmt.Fprintf(w, "error: %s\n", err) // Best effort.
	}
}
