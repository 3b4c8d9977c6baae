// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha shades the UI draws from.
var (
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")

	Mauve = lipgloss.Color("#cba6f7")
	Red   = lipgloss.Color("#f38ba8")
)

// Semantic roles, so call sites name the intent instead of the shade.
var (
	AccentColor = Mauve
	FaintColor  = Overlay
	HiRed       = Red
)
