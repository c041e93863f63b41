package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/wificonfig/internal/config"
	"github.com/muurk/wificonfig/internal/logging"
	"github.com/muurk/wificonfig/internal/multiap"
	"github.com/muurk/wificonfig/internal/ui"
	"github.com/muurk/wificonfig/internal/wificonfig"
)

// Command flags
var (
	outputFormat  string
	showPasswords bool
	capacity      int
)

func init() {
	listCmd.Flags().StringVar(&outputFormat, "format", "", "Output format (detailed, compact, json, yaml); defaults to the saved preference")
	listCmd.Flags().BoolVar(&showPasswords, "show-passwords", false, "Print passwords instead of masking them")

	checkCmd.Flags().IntVar(&capacity, "capacity", 0, "Maximum number of access points the manager accepts (0 = unlimited)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
}

// listCmd shows the networks registered at startup
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the compiled-in networks",
	Long: `Register the compiled-in networks with an empty manager and print what
the manager holds afterwards, in registration order.

Passwords are masked unless --show-passwords is given or show_passwords is
set in the preferences file.`,
	Example: `  # Human-readable list
  wificonfig list

  # One network per line
  wificonfig list --format compact

  # YAML for scripting
  wificonfig list --format yaml`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}

	logging.Debug("Listing compiled-in networks",
		zap.String("format", format),
		zap.Int("networks", len(wificonfig.Networks)),
	)

	manager := multiap.New()
	wificonfig.AddWifis(manager)
	logging.LogRegistration("compiled-in", len(wificonfig.Networks), manager.Len())

	out, err := ui.FormatNetworks(manager.APs(), format, resolveShowPasswords(), ui.GetTerminalWidth())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// checkCmd reports entries the manager would drop
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the compiled-in networks for problems",
	Long: `Register the compiled-in networks with an empty manager and report every
entry it rejects, along with security warnings (open networks, duplicates,
short passphrases, plaintext credentials in the binary).

At startup the manager drops rejected entries silently; this command makes
them visible. Exits with an error when any entry is rejected.`,
	Example: `  # Check against an unlimited manager
  wificonfig check

  # Check against a manager that holds at most 5 networks
  wificonfig check --capacity 5`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if capacity < 0 {
		return fmt.Errorf("--capacity must be >= 0, got %d", capacity)
	}

	logging.Debug("Checking compiled-in networks",
		zap.Int("networks", len(wificonfig.Networks)),
		zap.Int("capacity", capacity),
	)

	report := wificonfig.Check(wificonfig.Networks, capacity)
	logging.LogRegistration("check", len(report.Findings), report.Manager.Len())
	for _, f := range report.Findings {
		if !f.Accepted() {
			logging.Warn("Network would be dropped at startup",
				zap.Int("entry", f.Index+1),
				zap.String("ssid", f.Credential.SSID),
				zap.Error(f.Err),
			)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderReport(report, ui.GetTerminalWidth()))

	if n := report.Rejected(); n > 0 {
		return fmt.Errorf("%d network(s) rejected", n)
	}
	return nil
}

// resolveFormat picks the --format flag, falling back to the preference.
func resolveFormat() (string, error) {
	format := outputFormat
	if format == "" && settings != nil && settings.Preferences != nil {
		format = settings.Preferences.DefaultFormat
	}
	if format == "" {
		format = config.FormatDetailed
	}
	if !config.ValidFormat(format) {
		return "", fmt.Errorf("invalid format %q (valid: %v)", format, config.Formats)
	}
	return format, nil
}

func resolveShowPasswords() bool {
	if showPasswords {
		return true
	}
	return settings != nil && settings.Preferences != nil && settings.Preferences.ShowPasswords
}
