// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/emacsmirror/sq/internal/issue"
	"github.com/emacsmirror/sq/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	runFile string
	runFrom int
	runTo   int

	// runCmd forwards an arbitrary sq invocation.
	runCmd = &cobra.Command{
		Use:   "run <arguments>",
		Short: "Arbitrary sq invocation on the artifact",
		Long: `Pass a free-form argument string to sq, feeding it the artifact on stdin.

The argument string is split strictly on whitespace; there is no quoting or
escaping, so an argument that itself contains a space cannot be expressed
through this command.

The artifact is read from --file, or from stdin when no file is given.

Examples:
  sqview run "armor --kind secret-key" --file key.pgp
  cat message.pgp | sqview run dearmor`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRun,
	}
)

func init() {
	runCmd.Flags().StringVar(&runFile, "file", "", "read the artifact from this file instead of stdin")
	runCmd.Flags().IntVar(&runFrom, "from", 0, "start byte offset of the span to forward")
	runCmd.Flags().IntVar(&runTo, "to", 0, "end byte offset of the span to forward")
}

func runRun(cmd *cobra.Command, args []string) error {
	argline := strings.Join(args, " ")

	var fileArgs []string
	if runFile != "" {
		fileArgs = []string{runFile}
	}
	doc, err := readDocument(fileArgs)
	if err != nil {
		return err
	}

	iv := newInvoker()
	src := sourceFromFlags(cmd, doc, runFrom, runTo)

	err = iv.InvokeFreeForm(cmd.Context(), doc, argline, src)
	if errors.Is(err, pipeline.ErrEmptyArguments) {
		if md, rErr := issue.Get(issue.EmptyArgumentsId).Render("dark"); rErr == nil {
			fmt.Fprint(os.Stderr, md)
		}
		return &ExitError{Code: 1}
	}
	return handleInvokeError(err)
}
