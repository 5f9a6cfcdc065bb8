// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/emacsmirror/sq/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	dumpHex  bool
	dumpMPIs bool
	dumpFrom int
	dumpTo   int

	// dumpCmd shows the structural packet dump of an artifact.
	dumpCmd = &cobra.Command{
		Use:   "dump [file]",
		Short: "Structural packet dump of an OpenPGP artifact",
		Long: `Run the artifact through 'sq packet dump' and show the result.

The artifact is read from the file argument, or from stdin when no file is
given. Use --from/--to to forward only a byte span of the input.

Examples:
  sqview dump message.pgp
  sqview dump --hex message.pgp
  sqview dump --mpis secret.pgp
  sqview dump --from 0 --to 512 big.pgp
  gpg --export | sqview dump`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDump,
	}
)

func init() {
	dumpCmd.Flags().BoolVar(&dumpHex, "hex", false, "annotate the dump with raw byte offsets and values")
	dumpCmd.Flags().BoolVar(&dumpMPIs, "mpis", false, "include multi-precision integers in the dump")
	dumpCmd.Flags().IntVar(&dumpFrom, "from", 0, "start byte offset of the span to forward")
	dumpCmd.Flags().IntVar(&dumpTo, "to", 0, "end byte offset of the span to forward")
}

func runDump(cmd *cobra.Command, args []string) error {
	if dumpHex && dumpMPIs {
		return errors.New("--hex and --mpis are mutually exclusive")
	}

	doc, err := readDocument(args)
	if err != nil {
		return err
	}

	op := pipeline.OpDump
	switch {
	case dumpHex:
		op = pipeline.OpHexDump
	case dumpMPIs:
		op = pipeline.OpMPIDump
	}

	iv := newInvoker()
	src := sourceFromFlags(cmd, doc, dumpFrom, dumpTo)
	return handleInvokeError(iv.InvokeOp(cmd.Context(), doc, op, src))
}
