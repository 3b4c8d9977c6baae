// Package tui provides the fullscreen takes browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/drumtake-cli/drumtake/style"
	"github.com/drumtake-cli/drumtake/takes"
)

// listItem implements the list.Item interface over a saved take.
type listItem struct {
	take *takes.Take
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() string {
	return t.take.String()
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() string {
	var parts []string

	if t.take.Channel != "" {
		parts = append(parts, t.take.Channel)
	}

	if duration, ok := t.take.ProbedDuration().Get(); ok {
		total := int(duration)
		parts = append(parts, fmt.Sprintf("%02d:%02d", total/60, total%60))
	}

	parts = append(parts, style.Faint(t.take.CreatedAt.Format("2006-01-02")))

	return strings.Join(parts, " • ")
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	return t.take.Title + " " + t.take.Query
}
