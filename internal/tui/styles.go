package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#1f2a37"),
		Primary:    lipgloss.Color("#0f766e"),
		Accent:     lipgloss.Color("#c2410c"),
		Muted:      lipgloss.Color("#6b7280"),
		Border:     lipgloss.Color("#d1d5db"),
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f3f4f6"),
		Primary:    lipgloss.Color("#2dd4bf"),
		Accent:     lipgloss.Color("#fb923c"),
		Muted:      lipgloss.Color("#9ca3af"),
		Border:     lipgloss.Color("#374151"),
		IsDark:     true,
	}
}

// Styles holds every lipgloss style the screens use.
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Error    lipgloss.Style

	Question lipgloss.Style
	Option   lipgloss.Style
	Scale    lipgloss.Style
	Selected lipgloss.Style
	Card     lipgloss.Style
}

// NewStyles builds the styles for a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Theme:    t,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Foreground(t.Accent),
		Body:     lipgloss.NewStyle().Foreground(t.Foreground),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Bold:     lipgloss.NewStyle().Bold(true).Foreground(t.Foreground),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Question: lipgloss.NewStyle().Bold(true).Foreground(t.Foreground).MarginBottom(1),
		Option:   lipgloss.NewStyle().Foreground(t.Foreground),
		Scale:    lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),
	}
}

// DefaultStyles returns the dark styles.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
