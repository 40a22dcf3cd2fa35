package host

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// TerminalNotifier prints user feedback to a terminal. Messages go to out and
// progress lines to status; progress is only shown when interactive is set.
type TerminalNotifier struct {
	out         io.Writer
	status      io.Writer
	interactive bool

	info  *color.Color
	warn  *color.Color
	err   *color.Color
	faint *color.Color
}

// NewTerminalNotifier builds a notifier. Colors follow fatih/color's own
// terminal detection.
func NewTerminalNotifier(out, status io.Writer, interactive bool) *TerminalNotifier {
	return &TerminalNotifier{
		out:         out,
		status:      status,
		interactive: interactive,
		info:        color.New(color.FgGreen),
		warn:        color.New(color.FgYellow),
		err:         color.New(color.FgRed, color.Bold),
		faint:       color.New(color.Faint),
	}
}

// Info implements combine.Notifier.
func (n *TerminalNotifier) Info(message string) {
	n.info.Fprintln(n.out, message)
}

// Warn implements combine.Notifier.
func (n *TerminalNotifier) Warn(message string) {
	n.warn.Fprintln(n.out, message)
}

// Error implements combine.Notifier.
func (n *TerminalNotifier) Error(message string) {
	n.err.Fprintln(n.out, message)
}

// Progress implements combine.Notifier.
func (n *TerminalNotifier) Progress(title string, fn func() error) error {
	if !n.interactive {
		return fn()
	}
	n.faint.Fprintf(n.status, "%s...", title)
	err := fn()
	// clear the progress line
	fmt.Fprint(n.status, "\r\033[K")
	return err
}
