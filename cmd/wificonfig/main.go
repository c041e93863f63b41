// Wificonfig inspects the WiFi networks compiled into this build.
//
// It registers the compiled-in credential list with a fresh multi-AP
// manager, exactly as firmware does at startup, and shows or checks the
// result. Changing the list requires editing internal/wificonfig and
// rebuilding.
//
// Usage:
//
//	wificonfig [command] [flags]
//
// See 'wificonfig --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/wificonfig/internal/config"
	"github.com/muurk/wificonfig/internal/logging"
	"github.com/muurk/wificonfig/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Loaded by the root PersistentPreRunE
var settings *config.Settings

var rootCmd = &cobra.Command{
	Use:   "wificonfig",
	Short: "Inspect the compiled-in WiFi network list",
	Long: `Inspect the WiFi networks compiled into this build.

The known networks are registered with a multi-access-point manager the same
way the device does at startup. Use 'list' to see them and 'check' to find
entries the manager would reject.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.InitializeFromEnv(); err != nil {
			return err
		}

		var err error
		settings, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}
		return nil
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wificonfig %s\n", version.Full())
	},
}
