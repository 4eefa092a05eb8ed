package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying the
search order: --config, ~/.invasion/configs, ./configs, built-in defaults.

Examples:
  invasion config
  invasion config --format toml > ~/.invasion/configs/invasion.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", config.FormatYAML, "Output format: yaml or toml")
	configCmd.AddCommand(validateCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadInvasion(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Encode(cfg, flagFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runValidate(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadFile(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
	return nil
}
