// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/emacsmirror/sq/internal/editor"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Named operations of the command surface. Each is a fixed argument list
// passed verbatim to the tool.
const (
	OpDump     = "dump"
	OpHexDump  = "hex-dump"
	OpMPIDump  = "mpi-dump"
	OpInspect  = "inspect"
	OpFreeForm = "free-form"
)

var operations = map[string][]string{
	OpDump:    {"packet", "dump"},
	OpHexDump: {"packet", "dump", "--hex"},
	OpMPIDump: {"packet", "dump", "--mpis"},
	OpInspect: {"inspect"},
}

// ArgsFor returns the fixed argument list of a named operation. The
// returned slice is a copy; the tables themselves are never mutated.
func ArgsFor(op string) ([]string, bool) {
	args, ok := operations[op]
	if !ok {
		return nil, false
	}
	return slices.Clone(args), true
}

// Operations returns the named fixed-argument operations in sorted order.
// The free-form operation is not listed; it has no fixed arguments.
func Operations() []string {
	ops := maps.Keys(operations)
	slices.Sort(ops)
	return ops
}

// SplitArgs turns a user-typed argument string into an argument list by
// splitting strictly on whitespace. There is no quoting or escaping, so an
// argument that itself contains a space cannot be expressed this way.
func SplitArgs(line string) []string {
	return strings.Fields(line)
}

// InvokeOp runs a named fixed-argument operation.
func (iv *Invoker) InvokeOp(ctx context.Context, doc editor.Document, op string, src Source) error {
	args, ok := ArgsFor(op)
	if !ok {
		return fmt.Errorf("unknown operation %q", op)
	}
	return iv.Invoke(ctx, doc, args, src)
}

// InvokeFreeForm runs an arbitrary invocation from a user-typed argument
// string. An all-whitespace string yields ErrEmptyArguments.
func (iv *Invoker) InvokeFreeForm(ctx context.Context, doc editor.Document, argline string, src Source) error {
	return iv.Invoke(ctx, doc, SplitArgs(argline), src)
}
