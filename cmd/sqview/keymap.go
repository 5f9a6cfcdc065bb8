// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/emacsmirror/sq/internal/keymap"

	"github.com/spf13/cobra"
)

var (
	keymapPrefix string

	// keymapCmd prints the chord bindings an embedding host would register.
	keymapCmd = &cobra.Command{
		Use:   "keymap",
		Short: "Show the key chord bindings for embedding hosts",
		Long: `Print the chord-to-operation table that an embedding editor host
registers at setup time. The five default bindings hang off a prefix chord,
configurable via --prefix or the [keymap] config section.

Examples:
  sqview keymap
  sqview keymap --prefix "C-c q"`,
		Args: cobra.NoArgs,
		RunE: runKeymap,
	}
)

func init() {
	keymapCmd.Flags().StringVar(&keymapPrefix, "prefix", "", "prefix chord for the default bindings")
}

func runKeymap(cmd *cobra.Command, _ []string) error {
	prefix := keymapPrefix
	if prefix == "" {
		prefix = appConfig.Keymap.Prefix
	}

	km := keymap.New()
	km.Bind(prefix)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("Key bindings"))
	for _, b := range km.Bindings() {
		fmt.Fprintf(out, "  %s  %s\n", CmdStyle.Render(fmt.Sprintf("%-10s", b.Chord)), b.Op)
	}
	return nil
}
