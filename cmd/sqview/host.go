// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/emacsmirror/sq/internal/editor"
	"github.com/emacsmirror/sq/internal/issue"
	"github.com/emacsmirror/sq/internal/pipeline"
	"github.com/emacsmirror/sq/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newInvoker wires the pipeline to the terminal frontend using the loaded
// configuration and global flags.
func newInvoker() *pipeline.Invoker {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	frontend := tui.NewTerminalFrontend(logger)
	frontend.Verbose = verbose
	frontend.WidthOverride = appConfig.UI.StatusWidth

	iv := pipeline.NewInvoker(frontend)
	iv.Logger = logger

	iv.Tool = appConfig.Tool.Path
	if toolOverride != "" {
		iv.Tool = toolOverride
	}

	return iv
}

// readDocument loads the artifact to operate on: the file named by the
// first positional argument, or stdin when none is given.
func readDocument(args []string) (*editor.TextDocument, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return editor.NewTextDocument(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return editor.NewTextDocument(data), nil
}

// sourceFromFlags resolves the --from/--to span flags into an input source.
// With neither flag set the entire document is used; --from alone selects
// through the end of the document and --to alone selects from the start.
func sourceFromFlags(cmd *cobra.Command, doc *editor.TextDocument, from, to int) pipeline.Source {
	fromSet := cmd.Flags().Changed("from")
	toSet := cmd.Flags().Changed("to")

	if !fromSet && !toSet {
		return pipeline.EntireDocument()
	}
	if !toSet {
		to = doc.Len()
	}
	return pipeline.Span(from, to)
}

// handleInvokeError maps pipeline failures to CLI exit behavior. Spawn
// failures were already reported through the frontend; here we add the
// rendered help text and a non-zero exit.
func handleInvokeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pipeline.ErrToolStart) {
		if md, rErr := issue.Get(issue.ToolNotFoundId).Render("dark"); rErr == nil {
			fmt.Fprint(os.Stderr, md)
		}
		return &ExitError{Code: 1}
	}
	if errors.Is(err, editor.ErrInvalidSpan) {
		return &ExitError{Code: 1, Err: err}
	}
	return err
}
