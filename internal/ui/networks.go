package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/muurk/wificonfig/internal/config"
	"github.com/muurk/wificonfig/internal/multiap"
)

// PasswordMask replaces a password when passwords are hidden
const PasswordMask = "********"

// MaskPassword returns the text to display for a password.
func MaskPassword(password string, show bool) string {
	if password == "" {
		return "(open)"
	}
	if show {
		return password
	}
	return PasswordMask
}

// networkEntry is the serialized form used by json and yaml output
type networkEntry struct {
	SSID     string `json:"ssid" yaml:"ssid"`
	Password string `json:"password" yaml:"password"`
	Open     bool   `json:"open" yaml:"open"`
}

type networkList struct {
	Networks []networkEntry `json:"networks" yaml:"networks"`
}

func toNetworkList(aps []multiap.AccessPoint, showPasswords bool) networkList {
	list := networkList{Networks: make([]networkEntry, 0, len(aps))}
	for _, ap := range aps {
		list.Networks = append(list.Networks, networkEntry{
			SSID:     ap.SSID,
			Password: MaskPassword(ap.Password, showPasswords),
			Open:     ap.Open(),
		})
	}
	return list
}

// FormatNetworks renders the access points in one of config.Formats.
func FormatNetworks(aps []multiap.AccessPoint, format string, showPasswords bool, width int) (string, error) {
	switch format {
	case config.FormatDetailed:
		return RenderNetworks(aps, showPasswords, width), nil
	case config.FormatCompact:
		return RenderNetworksCompact(aps, showPasswords), nil
	case config.FormatJSON:
		data, err := json.MarshalIndent(toNetworkList(aps, showPasswords), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	case config.FormatYAML:
		data, err := yaml.Marshal(toNetworkList(aps, showPasswords))
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: %s)", format, strings.Join(config.Formats, ", "))
	}
}

// RenderNetworks returns a bordered box listing every access point.
func RenderNetworks(aps []multiap.AccessPoint, showPasswords bool, width int) string {
	lines := []string{
		HeaderTitleStyle.Render(fmt.Sprintf("KNOWN NETWORKS (%d)", len(aps))),
		RenderHorizontalDivider(10, "─"),
	}

	if len(aps) == 0 {
		lines = append(lines, PasswordStyle.Render("No networks registered."))
	}

	for i, ap := range aps {
		password := PasswordStyle.Render(MaskPassword(ap.Password, showPasswords))
		if ap.Open() {
			password = OpenNetworkStyle.Render(MaskPassword(ap.Password, showPasswords))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			IndexStyle.Render(fmt.Sprintf("%d.", i+1)),
			SSIDStyle.Render(ap.SSID),
			"  ",
			password,
		))
	}

	return BoxStyle(width, PrimaryColor).Render(strings.Join(lines, "\n"))
}

// RenderNetworksCompact returns one unstyled line per access point.
func RenderNetworksCompact(aps []multiap.AccessPoint, showPasswords bool) string {
	if len(aps) == 0 {
		return "No networks registered."
	}
	var b strings.Builder
	for i, ap := range aps {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s  %s", i+1, ap.SSID, MaskPassword(ap.Password, showPasswords))
	}
	return b.String()
}
