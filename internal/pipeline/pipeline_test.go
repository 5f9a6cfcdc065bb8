// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/emacsmirror/sq/internal/editor"
)

// fakeFrontend records display calls for assertions.
type fakeFrontend struct {
	statuses []string
	buffers  []string
	reported []error
	width    int
}

func (f *fakeFrontend) ShowBuffer(b *editor.Buffer) error {
	f.buffers = append(f.buffers, b.Text())
	return nil
}

func (f *fakeFrontend) ShowStatus(msg string) {
	f.statuses = append(f.statuses, msg)
}

func (f *fakeFrontend) StatusWidth() int {
	if f.width == 0 {
		return 80
	}
	return f.width
}

func (f *fakeFrontend) ReportError(err error) {
	f.reported = append(f.reported, err)
}

func newTestInvoker(t *testing.T, tool string) (*Invoker, *fakeFrontend) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests exercise POSIX tools")
	}
	fe := &fakeFrontend{}
	iv := NewInvoker(fe)
	iv.Tool = tool
	return iv, fe
}

func TestInvoke_CapturesStdout(t *testing.T) {
	t.Parallel()

	iv, fe := newTestInvoker(t, "cat")
	err := iv.Invoke(context.Background(), nil, []string{"-"}, Literal("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := iv.OutputBuffer().Text(); got != "hello" {
		t.Errorf("expected buffer %q, got %q", "hello", got)
	}
	if iv.OutputBuffer().Modified() {
		t.Error("expected buffer to be marked unmodified")
	}
	if len(fe.statuses) != 1 || fe.statuses[0] != "hello" {
		t.Errorf("expected single-line output on the status path, got statuses=%v buffers=%v", fe.statuses, fe.buffers)
	}
}

func TestInvoke_FeedsEntireDocument(t *testing.T) {
	t.Parallel()

	iv, _ := newTestInvoker(t, "cat")
	doc := editor.NewTextDocument([]byte("document bytes"))

	if err := iv.Invoke(context.Background(), doc, []string{"-"}, EntireDocument()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := iv.OutputBuffer().Text(); got != "document bytes" {
		t.Errorf("expected buffer %q, got %q", "document bytes", got)
	}
}

func TestInvoke_FeedsSpan(t *testing.T) {
	t.Parallel()

	iv, _ := newTestInvoker(t, "cat")
	doc := editor.NewTextDocument([]byte("hello world"))

	if err := iv.Invoke(context.Background(), doc, []string{"-"}, Span(0, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := iv.OutputBuffer().Text(); got != "hello" {
		t.Errorf("expected buffer %q, got %q", "hello", got)
	}
}

func TestInvoke_InvalidSpanLeavesBufferCleared(t *testing.T) {
	t.Parallel()

	iv, _ := newTestInvoker(t, "cat")
	iv.OutputBuffer().SetText("residue")
	doc := editor.NewTextDocument([]byte("short"))

	err := iv.Invoke(context.Background(), doc, []string{"-"}, Span(0, 99))
	if !errors.Is(err, editor.ErrInvalidSpan) {
		t.Fatalf("expected ErrInvalidSpan, got %v", err)
	}
	if got := iv.OutputBuffer().Text(); got != "" {
		t.Errorf("expected cleared buffer, got %q", got)
	}
}

func TestInvoke_MergesStderrIntoOutput(t *testing.T) {
	t.Parallel()

	iv, fe := newTestInvoker(t, "sh")
	args := []string{"-c", "echo out; echo err 1>&2"}

	if err := iv.Invoke(context.Background(), nil, args, Literal("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := iv.OutputBuffer().Text(); got != "out\nerr" {
		t.Errorf("expected merged streams %q, got %q", "out\nerr", got)
	}
	if len(fe.buffers) != 1 {
		t.Errorf("expected multi-line output on the buffer path, got statuses=%v buffers=%v", fe.statuses, fe.buffers)
	}
}

func TestInvoke_NonZeroExitIsNotAnError(t *testing.T) {
	t.Parallel()

	iv, fe := newTestInvoker(t, "sh")
	args := []string{"-c", "echo diagnostic 1>&2; exit 3"}

	if err := iv.Invoke(context.Background(), nil, args, Literal("")); err != nil {
		t.Fatalf("expected non-zero exit to pass through, got %v", err)
	}

	if got := iv.OutputBuffer().Text(); got != "diagnostic" {
		t.Errorf("expected diagnostic text in buffer, got %q", got)
	}
	if len(fe.reported) != 0 {
		t.Errorf("expected no reported errors, got %v", fe.reported)
	}
}

func TestInvoke_SpawnFailure(t *testing.T) {
	t.Parallel()

	iv, fe := newTestInvoker(t, "definitely-not-a-real-executable-4aa1")
	iv.OutputBuffer().SetText("residue from a previous run")

	err := iv.Invoke(context.Background(), nil, []string{"inspect"}, Literal("input"))
	if !errors.Is(err, ErrToolStart) {
		t.Fatalf("expected ErrToolStart, got %v", err)
	}

	// The failure goes through the error channel, not the buffer.
	if len(fe.reported) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(fe.reported))
	}
	if got := iv.OutputBuffer().Text(); got != "" {
		t.Errorf("expected buffer cleared with nothing written, got %q", got)
	}
	if len(fe.statuses) != 0 || len(fe.buffers) != 0 {
		t.Errorf("expected no display, got statuses=%v buffers=%v", fe.statuses, fe.buffers)
	}
}

func TestInvoke_OverwritesResidue(t *testing.T) {
	t.Parallel()

	iv, _ := newTestInvoker(t, "sh")

	first := []string{"-c", "echo a much longer first output"}
	if err := iv.Invoke(context.Background(), nil, first, Literal("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := []string{"-c", "echo s"}
	if err := iv.Invoke(context.Background(), nil, second, Literal("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := iv.OutputBuffer().Text(); got != "s" {
		t.Errorf("expected shorter second output to fully replace the first, got %q", got)
	}
}

func TestInvoke_TrimsTrailingWhitespace(t *testing.T) {
	t.Parallel()

	iv, _ := newTestInvoker(t, "sh")
	args := []string{"-c", `printf "x \t\n\n"`}

	if err := iv.Invoke(context.Background(), nil, args, Literal("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := iv.OutputBuffer().Text(); got != "x" {
		t.Errorf("expected trailing whitespace stripped, got %q", got)
	}
}

func TestInvoke_EmptyOutput(t *testing.T) {
	t.Parallel()

	iv, fe := newTestInvoker(t, "cat")

	if err := iv.Invoke(context.Background(), nil, []string{"-"}, Literal("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := iv.OutputBuffer().Text(); got != "" {
		t.Errorf("expected empty buffer, got %q", got)
	}
	if len(fe.statuses) != 1 {
		t.Errorf("expected empty output on the status path, got statuses=%v buffers=%v", fe.statuses, fe.buffers)
	}
}

func TestInvoke_WideSingleLineGoesToBuffer(t *testing.T) {
	t.Parallel()

	iv, fe := newTestInvoker(t, "cat")
	fe.width = 3

	if err := iv.Invoke(context.Background(), nil, []string{"-"}, Literal("hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fe.buffers) != 1 || len(fe.statuses) != 0 {
		t.Errorf("expected too-wide single line on the buffer path, got statuses=%v buffers=%v", fe.statuses, fe.buffers)
	}
}

func TestInvoke_EmptyArguments(t *testing.T) {
	t.Parallel()

	iv, _ := newTestInvoker(t, "cat")
	if err := iv.Invoke(context.Background(), nil, nil, Literal("")); !errors.Is(err, ErrEmptyArguments) {
		t.Errorf("expected ErrEmptyArguments, got %v", err)
	}
}

func TestInvokeFreeForm_SplitsOnWhitespace(t *testing.T) {
	t.Parallel()

	iv, _ := newTestInvoker(t, "echo")

	if err := iv.InvokeFreeForm(context.Background(), nil, "hello   free-form world", Literal("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := iv.OutputBuffer().Text(); got != "hello free-form world" {
		t.Errorf("expected %q, got %q", "hello free-form world", got)
	}
}

func TestInvokeFreeForm_BlankLine(t *testing.T) {
	t.Parallel()

	iv, _ := newTestInvoker(t, "echo")
	if err := iv.InvokeFreeForm(context.Background(), nil, " \t ", Literal("")); !errors.Is(err, ErrEmptyArguments) {
		t.Errorf("expected ErrEmptyArguments, got %v", err)
	}
}

func TestInvokeOp_Unknown(t *testing.T) {
	t.Parallel()

	iv, _ := newTestInvoker(t, "cat")
	if err := iv.InvokeOp(context.Background(), nil, "decrypt", Literal("")); err == nil {
		t.Error("expected error for unknown operation")
	}
}
