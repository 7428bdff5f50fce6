// Package ui provides the visual styling for the cyberhub interactive chat.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors, shared by both themes.
var (
	Destructive = lipgloss.Color("#e53935") // errors, wrong quiz answers
	Success     = lipgloss.Color("#43a047") // confirmations, correct answers
	Warning     = lipgloss.Color("#fb8c00") // out-of-sequence notices
	Info        = lipgloss.Color("#1e88e5") // flow prompts, quiz questions
	Highlight   = lipgloss.Color("#d81b60") // menu, quiz chrome, greetings
)

// Theme holds a color scheme.
type Theme struct {
	Background lipgloss.Color
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
		Background: lipgloss.Color("#f4f5f6"),
		Foreground: lipgloss.Color("#10212e"),
		Primary:    lipgloss.Color("#10212e"),
		Accent:     lipgloss.Color("#00838f"),
		Muted:      lipgloss.Color("#8a949e"),
		Border:     lipgloss.Color("#dce0e5"),
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#12181f"),
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#4dd0e1"),
		Accent:     lipgloss.Color("#4dd0e1"),
		Muted:      lipgloss.Color("#6b7683"),
		Border:     lipgloss.Color("#2a3540"),
		IsDark:     true,
	}
}

// Styles holds the styled components used by the chat view.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
	Badge lipgloss.Style

	// Transcript roles
	UserInput lipgloss.Style

	// Reply kinds
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Prompt  lipgloss.Style
	Accent  lipgloss.Style

	Divider lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		UserInput: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Success: lipgloss.NewStyle().
			Foreground(Success),

		Error: lipgloss.NewStyle().
			Foreground(Destructive),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Prompt: lipgloss.NewStyle().
			Foreground(Info),

		Accent: lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles with the light theme.
func DefaultStyles() Styles {
	return NewStyles(LightTheme())
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
