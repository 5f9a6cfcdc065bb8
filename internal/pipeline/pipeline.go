// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode"

	"github.com/emacsmirror/sq/internal/editor"
	"github.com/emacsmirror/sq/internal/issue"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	// DefaultTool is the executable name looked up on PATH when no
	// override is configured.
	DefaultTool = "sq"

	// OutputBufferName is the name of the shared output buffer. There is
	// exactly one such buffer per Invoker; every invocation overwrites it.
	OutputBufferName = "*sq output*"
)

var (
	// ErrToolStart is wrapped into the error returned when the external
	// executable cannot be found or started at all. No process ran, so the
	// output buffer stays cleared.
	ErrToolStart = errors.New("cannot start external tool")

	// ErrEmptyArguments is returned when an invocation is attempted with
	// no arguments to pass to the tool.
	ErrEmptyArguments = errors.New("empty argument list")
)

// Invoker runs the external tool and routes its output to the host surface.
// It is synchronous and single-flight: Invoke blocks until the process
// exits, and the shared buffer carries no locking.
type Invoker struct {
	// Tool is the executable to spawn, located via PATH lookup unless it
	// is an explicit path. Empty means DefaultTool.
	Tool string
	// Buffers is the host's buffer registry holding the output buffer.
	Buffers *editor.BufferSet
	// Frontend presents results and reports spawn failures.
	Frontend editor.Frontend
	// Logger receives debug diagnostics; quiet unless verbose is on.
	Logger *log.Logger
}

// NewInvoker creates an Invoker with a fresh buffer set and default tool.
func NewInvoker(frontend editor.Frontend) *Invoker {
	return &Invoker{
		Tool:     DefaultTool,
		Buffers:  editor.NewBufferSet(),
		Frontend: frontend,
		Logger:   log.Default(),
	}
}

// Invoke runs the tool with args, feeding it the bytes src resolves to
// against doc, and presents the captured output.
//
// Stdout and stderr are captured as one merged stream, and the process's
// exit status is deliberately not interpreted: diagnostics from a failing
// run appear as buffer content like any other output. The one fatal case is
// the tool not starting at all, which is reported through the frontend's
// error channel and leaves the buffer cleared.
func (iv *Invoker) Invoke(ctx context.Context, doc editor.Document, args []string, src Source) error {
	if len(args) == 0 {
		return ErrEmptyArguments
	}

	buf := iv.Buffers.Acquire(OutputBufferName)
	buf.Clear()

	input, err := src.Resolve(doc)
	if err != nil {
		return err
	}

	tool := iv.Tool
	if tool == "" {
		tool = DefaultTool
	}

	iv.Logger.Debug("invoking external tool", "tool", tool, "args", args, "stdin_bytes", len(input))

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdin = bytes.NewReader(input)

	out, runErr := cmd.CombinedOutput()
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			spawnErr := iv.spawnError(tool, runErr)
			iv.Frontend.ReportError(spawnErr)
			return spawnErr
		}
		// Non-zero exit: whatever the process wrote on either stream is
		// the result, same as a successful run.
		iv.Logger.Debug("tool exited non-zero", "tool", tool, "exit_code", exitErr.ExitCode())
	}

	buf.SetText(strings.TrimRightFunc(string(out), unicode.IsSpace))
	buf.MarkUnmodified()

	return iv.present(buf)
}

// present routes the buffer to the status line when its content is a single
// line that fits, and to the buffer display otherwise.
func (iv *Invoker) present(buf *editor.Buffer) error {
	text := buf.Text()
	if !strings.ContainsRune(text, '\n') && lipgloss.Width(text) <= iv.Frontend.StatusWidth() {
		iv.Frontend.ShowStatus(text)
		return nil
	}
	return iv.Frontend.ShowBuffer(buf)
}

// OutputBuffer returns the shared output buffer, creating it if no
// invocation has run yet.
func (iv *Invoker) OutputBuffer() *editor.Buffer {
	return iv.Buffers.Acquire(OutputBufferName)
}

func (iv *Invoker) spawnError(tool string, cause error) error {
	return issue.NewErrorContext().
		WithOperation("start external tool").
		WithResource(tool).
		WithSuggestion(fmt.Sprintf("Check that %q is installed and on your PATH", tool)).
		WithSuggestion("Use --tool or the [tool] config section to point at the executable").
		Wrap(fmt.Errorf("%w: %w", ErrToolStart, cause)).
		BuildError()
}
