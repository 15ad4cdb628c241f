package internal

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual appearance of the terminal shell.
type Theme struct {
	AccentColor          lipgloss.Color // Breadcrumb of the active view
	HighlightColor       lipgloss.Color // Selected row background
	HighlightedTextColor lipgloss.Color // Text on the selected row
	TextColor            lipgloss.Color // Default text color
	HintColor            lipgloss.Color // Footer and breadcrumb history
	ErrorColor           lipgloss.Color // Error banner
	Padding              Padding        // Space around the whole screen
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		AccentColor:          lipgloss.Color("#008080"),
		HighlightColor:       lipgloss.Color("#008080"),
		HighlightedTextColor: lipgloss.Color("#FFFFFF"),
		TextColor:            lipgloss.Color("#D0D0D0"),
		HintColor:            lipgloss.Color("#808080"),
		ErrorColor:           lipgloss.Color("#FF5F5F"),
		Padding:              Padding{Top: 0, Right: 1, Bottom: 0, Left: 1},
	}
}

// LightTheme is for terminals with a light background.
func LightTheme() Theme {
	return Theme{
		AccentColor:          lipgloss.Color("#005F5F"),
		HighlightColor:       lipgloss.Color("#008080"),
		HighlightedTextColor: lipgloss.Color("#FFFFFF"),
		TextColor:            lipgloss.Color("#000000"),
		HintColor:            lipgloss.Color("#5F5F5F"),
		ErrorColor:           lipgloss.Color("#AF0000"),
		Padding:              UniformPadding(1),
	}
}

// ThemeByName returns the built-in theme called name.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme for the shell.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Screen     lipgloss.Style
	Breadcrumb lipgloss.Style
	Active     lipgloss.Style
	Row        lipgloss.Style
	Selected   lipgloss.Style
	Hint       lipgloss.Style
	Error      lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme Theme) Styles {
	p := theme.Padding
	return Styles{
		Screen:     lipgloss.NewStyle().Padding(p.Top, p.Right, p.Bottom, p.Left),
		Breadcrumb: lipgloss.NewStyle().Foreground(theme.HintColor),
		Active:     lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true),
		Row:        lipgloss.NewStyle().Foreground(theme.TextColor),
		Selected: lipgloss.NewStyle().
			Foreground(theme.HighlightedTextColor).
			Background(theme.HighlightColor),
		Hint:  lipgloss.NewStyle().Foreground(theme.HintColor),
		Error: lipgloss.NewStyle().Foreground(theme.ErrorColor).Bold(true),
	}
}
