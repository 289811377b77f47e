package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across the player. Unlike the
// teacher's Theme-driven NewStyles, the palette here is fixed: a story
// player has no per-user theming concern to expose.
type Styles struct {
	Choice    lipgloss.Style
	ChoiceNum lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles returns the player's fixed style set.
func NewStyles() Styles {
	return Styles{
		Choice:    lipgloss.NewStyle(),
		ChoiceNum: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
