package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/wificonfig/internal/config"
	"github.com/muurk/wificonfig/internal/logging"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetFormatCmd)
	configCmd.AddCommand(configShowPasswordsCmd)

	rootCmd.AddCommand(configCmd)
}

// configCmd groups the preference subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage output preferences",
	Long: `Read and change the preferences file that controls how 'list' prints
networks. The file never holds WiFi credentials.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File:           %s\n", path)
		fmt.Fprintf(out, "Default format: %s\n", settings.Preferences.DefaultFormat)
		fmt.Fprintf(out, "Show passwords: %t\n", settings.Preferences.ShowPasswords)
		return nil
	},
}

var configSetFormatCmd = &cobra.Command{
	Use:       "set-format <format>",
	Short:     "Set the default output format for 'list'",
	Example:   `  wificonfig config set-format compact`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Formats,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.ValidFormat(args[0]) {
			return fmt.Errorf("invalid format %q (valid: %v)", args[0], config.Formats)
		}
		settings.Preferences.DefaultFormat = args[0]
		return savePreferences(cmd, "default_format", args[0])
	},
}

var configShowPasswordsCmd = &cobra.Command{
	Use:     "show-passwords <true|false>",
	Short:   "Choose whether 'list' prints passwords by default",
	Example: `  wificonfig config show-passwords false`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		show, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("invalid value %q: expected true or false", args[0])
		}
		settings.Preferences.ShowPasswords = show
		return savePreferences(cmd, "show_passwords", strconv.FormatBool(show))
	},
}

func savePreferences(cmd *cobra.Command, key, value string) error {
	if err := settings.Save(); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	logging.Debug("Preference saved", zap.String("key", key), zap.String("value", value))
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s = %s\n", key, value)
	return nil
}
