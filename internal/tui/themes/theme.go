// Package themes holds the color schemes of the convolution player.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Plot          lipgloss.Style
	Button        lipgloss.Style
	ActiveButton  lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
}

func build(primary, secondary, foreground, muted, border, errColor, warning lipgloss.Color) Theme {
	return Theme{
		Primary:   primary,
		Secondary: secondary,
		Muted:     muted,
		Border:    border,
		Error:     errColor,
		Warning:   warning,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground),
		Plot: lipgloss.NewStyle().
			Foreground(primary),
		Button: lipgloss.NewStyle().
			Foreground(foreground).
			Padding(0, 1),
		ActiveButton: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#000000")).
			Bold(true).
			Padding(0, 1),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		StatusError: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}

// Default is the default theme.
var Default = build(
	lipgloss.Color("#39d98a"),
	lipgloss.Color("#a78bfa"),
	lipgloss.Color("#fafafa"),
	lipgloss.Color("#737373"),
	lipgloss.Color("#404040"),
	lipgloss.Color("#ef4444"),
	lipgloss.Color("#f59e0b"),
)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build(
	lipgloss.Color("#a6e3a1"),
	lipgloss.Color("#cba6f7"),
	lipgloss.Color("#cdd6f4"),
	lipgloss.Color("#6c7086"),
	lipgloss.Color("#45475a"),
	lipgloss.Color("#f38ba8"),
	lipgloss.Color("#f9e2af"),
)

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin", "mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
