package session

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles groups the lipgloss styles the menu loop renders with.
type Styles struct {
	Title  lipgloss.Style
	Menu   lipgloss.Style
	Key    lipgloss.Style
	Prompt lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles binds the palette to r, so the color profile follows the
// writer r was created for: a pipe or buffer gets plain text.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:  r.NewStyle().Bold(true).Foreground(colorPrimary),
		Menu:   r.NewStyle().Foreground(colorMuted),
		Key:    r.NewStyle().Bold(true).Foreground(colorAccent),
		Prompt: r.NewStyle().Bold(true),
		Result: r.NewStyle(),
		Error:  r.NewStyle().Foreground(colorError),
	}
}

// PlainStyles renders everything unstyled.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Title: s, Menu: s, Key: s, Prompt: s, Result: s, Error: s}
}
