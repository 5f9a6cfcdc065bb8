// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/emacsmirror/sq/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	inspectFrom int
	inspectTo   int

	// inspectCmd shows a high-level summary of an artifact.
	inspectCmd = &cobra.Command{
		Use:   "inspect [file]",
		Short: "High-level summary of an OpenPGP artifact",
		Long: `Run the artifact through 'sq inspect' and show the summary.

The artifact is read from the file argument, or from stdin when no file is
given. Use --from/--to to forward only a byte span of the input.

Examples:
  sqview inspect cert.pgp
  curl -s https://example.org/key.asc | sqview inspect`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInspect,
	}
)

func init() {
	inspectCmd.Flags().IntVar(&inspectFrom, "from", 0, "start byte offset of the span to forward")
	inspectCmd.Flags().IntVar(&inspectTo, "to", 0, "end byte offset of the span to forward")
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := readDocument(args)
	if err != nil {
		return err
	}

	iv := newInvoker()
	src := sourceFromFlags(cmd, doc, inspectFrom, inspectTo)
	return handleInvokeError(iv.InvokeOp(cmd.Context(), doc, pipeline.OpInspect, src))
}
