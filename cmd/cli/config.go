// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"strings"

	"ir-verbs/internal/config"
	"ir-verbs/internal/logger"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newConfigCmd is the parent command for all configuration-related subcommands
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ir-verbs configuration",
		Long: `Provides subcommands to inspect and change the ir-verbs configuration file.
Values from IRVERBS_* environment variables take precedence over the file.`,
	}

	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigSetDataFileCmd())
	configCmd.AddCommand(newConfigGetDataFileCmd())

	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			configPath, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config to YAML: %w", err)
			}

			dimColor.Fprintf(out, "# %s\n", configPath)
			if strings.TrimSpace(string(data)) == "{}" {
				dimColor.Fprintln(out, "# nothing set, defaults in use")
				return nil
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}
}

func newConfigSetDataFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-data-file <path>",
		Short: "Set the CSV file verbs are read from",
		Long: `Sets the CSV file the quiz reads verbs from instead of the built-in table.
Use an absolute path or a path starting with '~/' (e.g., '~/verbs.csv').
To go back to the built-in table, set the path to an empty string: irverbs config set-data-file ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dataFile := args[0]

			if dataFile != "" && !strings.HasPrefix(dataFile, "/") && !strings.HasPrefix(dataFile, "~/") {
				return fmt.Errorf("path must be absolute or start with '~/'")
			}

			configPath, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			_, err = config.UpdateConfigFile(configPath, func(cfg *config.Config) {
				cfg.DataFile = dataFile
			})
			if err != nil {
				return fmt.Errorf("error saving configuration: %w", err)
			}
			logger.Info("Data file updated", "data_file", dataFile, "config", configPath)

			if dataFile == "" {
				successColor.Fprintln(out, "Data file reset to the built-in verb table.")
			} else {
				successColor.Fprintf(out, "Data file set to: %s\n", dataFile)
			}
			return nil
		},
	}
}

func newConfigGetDataFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-data-file",
		Short: "Show the configured data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			if cfg.DataFile == "" {
				fmt.Fprintln(out, "Data file not configured, using the built-in verb table.")
				return nil
			}

			fmt.Fprintf(out, "Configured data file: %s\n", identifierColor.Sprint(cfg.DataFile))
			resolvedPath, err := config.ResolvePath(cfg.DataFile)
			if err != nil {
				fmt.Fprintf(out, "Warning: Could not resolve configured path: %v\n", err)
				return nil
			}
			fmt.Fprintf(out, "Resolved path:        %s\n", resolvedPath)
			if _, err := os.Stat(resolvedPath); err != nil {
				statusColor.Fprintf(out, "Warning: %v\n", err)
			}
			return nil
		},
	}
}
