// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/secretsanta/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var (
		path      string
		system    bool
		overwrite bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to a file",
		Long: `Writes the configuration currently in effect (defaults merged with any
config file, environment variables and flags) as YAML, so the participant
list and event details can be edited in one place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			if target == "" {
				var err error
				target, err = config.GetConfigPath(system)
				if err != nil {
					return err
				}
			}
			if err := config.WriteConfigFile(&appConfig, target, overwrite); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote configuration to %s\n", target)
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "Destination file (default is the user config path)")
	initCmd.Flags().BoolVar(&system, "system", false, "Write to the system-wide config path")
	initCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")

	showCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file locations that are searched",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, system := range []bool{false, true} {
				p, err := config.GetConfigPath(system)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "./"+config.FileName+".yaml")
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
