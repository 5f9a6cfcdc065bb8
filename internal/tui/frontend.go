// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/emacsmirror/sq/internal/editor"
	"github.com/emacsmirror/sq/internal/issue"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))
)

// TerminalFrontend implements editor.Frontend on a terminal. Multi-line
// results open the pager; single-line results go to the status line. When
// stdout is not a terminal (pipes, CI), everything degrades to plain
// writes so output stays scriptable.
type TerminalFrontend struct {
	out    io.Writer
	errOut io.Writer
	isTTY  bool

	// WidthOverride fixes the status width regardless of terminal size.
	WidthOverride int
	// Verbose expands reported errors with their full chain.
	Verbose bool

	logger *log.Logger
}

// NewTerminalFrontend creates a frontend on stdout/stderr, detecting
// whether stdout is a terminal.
func NewTerminalFrontend(logger *log.Logger) *TerminalFrontend {
	if logger == nil {
		logger = log.Default()
	}
	return &TerminalFrontend{
		out:    os.Stdout,
		errOut: os.Stderr,
		isTTY:  term.IsTerminal(int(os.Stdout.Fd())),
		logger: logger,
	}
}

// ShowBuffer displays the buffer contents, via the pager on a terminal and
// as plain output otherwise.
func (f *TerminalFrontend) ShowBuffer(b *editor.Buffer) error {
	if !f.isTTY {
		_, err := fmt.Fprintln(f.out, b.Text())
		return err
	}
	f.logger.Debug("opening pager", "buffer", b.Name(), "bytes", len(b.Text()))
	return Pager(PagerOptions{Title: b.Name(), Content: b.Text()})
}

// ShowStatus displays a transient one-line message.
func (f *TerminalFrontend) ShowStatus(msg string) {
	if msg == "" {
		return
	}
	if f.isTTY {
		msg = statusStyle.Render(msg)
	}
	fmt.Fprintln(f.out, msg)
}

// StatusWidth returns the columns available for a status message.
func (f *TerminalFrontend) StatusWidth() int {
	if f.WidthOverride > 0 {
		return f.WidthOverride
	}
	if f.isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// ReportError surfaces a failure on stderr. ActionableErrors render with
// their suggestions; anything else prints its message.
func (f *TerminalFrontend) ReportError(err error) {
	var ae *issue.ActionableError
	msg := err.Error()
	if errors.As(err, &ae) {
		msg = ae.Format(f.Verbose)
	}
	if f.isTTY {
		msg = errorStyle.Render("Error: ") + msg
	} else {
		msg = "Error: " + msg
	}
	fmt.Fprintln(f.errOut, msg)
}
