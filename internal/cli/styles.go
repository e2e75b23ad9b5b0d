// Package cli renders calculation results for the terminal and runs batch jobs.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	PrimaryColor = lipgloss.Color("#39D98A") // Oscilloscope green
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	ErrorColor   = lipgloss.Color("#FF6B6B") // Red
	InfoColor    = lipgloss.Color("#95E1D3") // Light teal
	SubtleColor  = lipgloss.Color("#666666") // Gray
)

// Text styles.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).MarginBottom(1)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	BoldStyle    = lipgloss.NewStyle().Bold(true)
	PlotStyle    = lipgloss.NewStyle().Foreground(PrimaryColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	WaveIcon    = "∿"
)

func withIcon(style lipgloss.Style, icon, message string) string {
	return style.Render(icon + " " + message)
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string { return withIcon(SuccessStyle, SuccessIcon, message) }

// FormatError formats an error message with icon.
func FormatError(message string) string { return withIcon(ErrorStyle, ErrorIcon, message) }

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string { return withIcon(WarningStyle, WarningIcon, message) }

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string { return withIcon(InfoStyle, InfoIcon, message) }

// FormatTitle formats a title with the wave icon.
func FormatTitle(title string) string { return withIcon(TitleStyle, WaveIcon, title) }

// FormatVerdict renders a yes/no verdict in success or error color.
func FormatVerdict(holds bool, label string) string {
	if holds {
		return FormatSuccess(label)
	}
	return FormatError(label)
}
