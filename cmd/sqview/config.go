// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/emacsmirror/sq/internal/config"

	"github.com/spf13/cobra"
)

var (
	// configCmd groups configuration management commands.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage sqview configuration",
	}

	// configShowCmd prints the effective configuration.
	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	// configInitCmd writes a default config file.
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	content, err := config.GenerateTOML(appConfig)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Created ")+cfgPath)
	return nil
}
