package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - accepted entries
	ErrorColor   = lipgloss.Color("#FF5555") // Red - rejected entries
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

var (
	// HeaderTitleStyle is for the box title (e.g., "KNOWN NETWORKS")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// IndexStyle is for the entry number column
	IndexStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(4)

	// SSIDStyle is for network names
	SSIDStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// PasswordStyle is for (masked) passwords
	PasswordStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// OpenNetworkStyle marks networks without a password
	OpenNetworkStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Italic(true)

	// AcceptedStyle is for accepted entry markers
	AcceptedStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// RejectedStyle is for rejected entry markers and errors
	RejectedStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// WarningStyle is for warning lines
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
)

// GetTerminalWidth returns the current terminal width, clamped to
// [MinTerminalWidth, MaxContentWidth].
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// BoxStyle returns a rounded border box in the given color
func BoxStyle(width int, color lipgloss.Color) lipgloss.Style {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(width-2).
		Padding(0, 1)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
