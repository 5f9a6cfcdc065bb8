// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("executable file not found in $PATH")
	err := NewErrorContext().
		WithOperation("start external tool").
		WithResource("sq").
		Wrap(cause).
		Build()

	want := "failed to start external tool: sq: executable file not found in $PATH"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Run 'sqview config init'").
		WithSuggestion("Check the TOML syntax").
		Wrap(inner).
		Build()

	short := err.Format(false)
	if !strings.Contains(short, "• Run 'sqview config init'") {
		t.Errorf("expected suggestions in output, got:\n%s", short)
	}
	if strings.Contains(short, "Error chain:") {
		t.Error("did not expect error chain in non-verbose output")
	}

	long := err.Format(true)
	if !strings.Contains(long, "Error chain:") || !strings.Contains(long, "1. inner") {
		t.Errorf("expected full chain in verbose output, got:\n%s", long)
	}
}

func TestErrorContext_RequiresOperation(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().WithResource("sq").BuildError(); err != nil {
		t.Errorf("expected nil error without operation, got %v", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "anything") != nil {
		t.Error("expected nil for nil cause")
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "read stdin")
	if err == nil || !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}
