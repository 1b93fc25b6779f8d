// Package logx provides the diagnostic logger used by every devman command.
// Diagnostics always go to stderr so that stdout stays reserved for
// machine-consumable output (the set command's shell assignments).
package logx

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Logger writes human-readable status text to a diagnostic writer.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New creates a logger writing to stderr.
func New(verbose bool) *Logger {
	return &Logger{out: os.Stderr, verbose: verbose}
}

// NewWithWriter creates a logger with an explicit writer, used by tests.
func NewWithWriter(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// Infof prints a status line.
func (l *Logger) Infof(format string, args ...any) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Debugf prints a status line only when verbose output is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	fmt.Fprintln(l.out, faintStyle.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a highlighted warning line.
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintln(l.out, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf prints a highlighted error line.
func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintln(l.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}
