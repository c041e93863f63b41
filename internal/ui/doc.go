// Package ui renders wificonfig output for the terminal.
//
// Styles use lipgloss and degrade to plain text when stdout is not a
// terminal. Passwords are masked unless the caller explicitly asks for them.
package ui
