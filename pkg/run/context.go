// Package run tracks the per-invocation state shared between parsing and
// reporting: the recoverable-error count, the one-shot "current time"
// echo, and where diagnostics go.
package run

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// Context carries run-scoped state through a single invocation.
// Recoverable errors (duration mismatches, stale logs, missing files) are
// recorded here and reflected in the exit code; they never abort the run.
type Context struct {
	Stdout io.Writer
	Stderr io.Writer

	color      bool
	errCount   int
	printedNow bool
}

// NewContext creates a run context writing diagnostics to stderr and
// informational output to stdout. Error messages are colored when stderr
// is a terminal.
func NewContext(stdout, stderr io.Writer) *Context {
	return &Context{
		Stdout: stdout,
		Stderr: stderr,
		color:  IsTerminal(stderr),
	}
}

// DisableColor turns off colored error output regardless of terminal
// detection.
func (c *Context) DisableColor() {
	c.color = false
}

// Errorf records a recoverable error and prints it to stderr.
func (c *Context) Errorf(format string, args ...any) {
	c.errCount++
	msg := fmt.Sprintf(format, args...)
	if c.color {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(c.Stderr, msg)
}

// ErrCount returns the number of recoverable errors recorded so far.
func (c *Context) ErrCount() int {
	return c.errCount
}

// ExitCode returns 0 if the run recorded no recoverable errors, 1
// otherwise.
func (c *Context) ExitCode() int {
	if c.errCount > 0 {
		return 1
	}
	return 0
}

// PrintNowOnce echoes the captured wall-clock time to stdout. Repeated
// calls are no-ops: the timestamp is printed at most once per run no
// matter how many files are augmented.
func (c *Context) PrintNowOnce(now time.Time) {
	if c.printedNow {
		return
	}
	c.printedNow = true
	fmt.Fprintln(c.Stdout, "current time:", now.Format("2006-01-02 15:04:05"))
}

// IsTerminal reports whether w is backed by a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
