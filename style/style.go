package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/drumtake-cli/drumtake/color"
)

// New returns a fresh lipgloss.Style to build on.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored builds a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a render function painting strings in the given color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a render function capping output at max columns.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders the padded banner used above menus.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}
