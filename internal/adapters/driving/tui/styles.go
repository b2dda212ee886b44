package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour palette for the review view.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Warning marks destructive selections.
	Warning lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Foreground: lipgloss.Color("252"),
		Muted:      lipgloss.Color("241"),
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
	}
}

// Styles contains pre-configured lipgloss styles for the review view.
type Styles struct {
	// Title style for the header line.
	Title lipgloss.Style

	// Item style for unselected rows.
	Item lipgloss.Style

	// Cursor style for the row under the cursor.
	Cursor lipgloss.Style

	// Checked style for the selection marker.
	Checked lipgloss.Style

	// Help style for the keybinding footer.
	Help lipgloss.Style

	// Summary style for the selection count line.
	Summary lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() *Styles {
	theme := DefaultTheme()
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Item:    lipgloss.NewStyle().Foreground(theme.Foreground),
		Cursor:  lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Checked: lipgloss.NewStyle().Foreground(theme.Warning),
		Help:    lipgloss.NewStyle().Foreground(theme.Muted),
		Summary: lipgloss.NewStyle().Foreground(theme.Muted),
	}
}
