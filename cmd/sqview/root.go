// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for sqview.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/emacsmirror/sq/internal/config"
	"github.com/emacsmirror/sq/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// toolOverride replaces the configured sq executable
	toolOverride string

	// appConfig holds the loaded configuration for all commands.
	appConfig = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "sqview",
		Short: "View OpenPGP artifacts through the sq command-line tool",
		Long: TitleStyle.Render("sqview") + SubtitleStyle.Render(" - view OpenPGP artifacts through sq") + `

sqview forwards an OpenPGP artifact (a key, signature, certificate or
message) to the Sequoia 'sq' command-line tool and shows the captured
output: in a scrollable pager when it spans multiple lines, as a one-line
status message otherwise. All parsing and cryptography happen inside sq;
sqview is a thin conduit.

` + SubtitleStyle.Render("Examples:") + `
  sqview dump message.pgp          Structural packet dump
  sqview dump --hex message.pgp    Packet dump with raw byte offsets
  sqview dump --mpis key.pgp       Packet dump including MPIs
  sqview inspect cert.pgp          High-level artifact summary
  sqview run "armor --kind secret-key" key.pgp
                                   Arbitrary sq invocation
  cat sig.pgp | sqview inspect     Read the artifact from stdin`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/sqview/config.toml)")
	rootCmd.PersistentFlags().StringVar(&toolOverride, "tool", "", "sq executable to invoke (default from config)")

	// Add subcommands
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(keymapCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Config problems never block an invocation; warn and run on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	if cfg != nil {
		appConfig = cfg
		if !verbose {
			verbose = cfg.UI.Verbose
		}
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
