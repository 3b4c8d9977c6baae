package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/player"
	"github.com/drumtake-cli/drumtake/takes"
)

// Run starts the takes browser. Picking a take leaves the alternate screen,
// hands the terminal to the player and returns to the browser afterwards.
func Run() error {
	session := player.NewSession()

	for {
		catalog, err := takes.Get()
		if err != nil {
			return err
		}

		saved := lo.Values(catalog)
		slices.SortFunc(saved, func(a, b *takes.Take) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})

		bubble := newBubble(saved)
		program := tea.NewProgram(bubble, tea.WithAltScreen())

		final, err := program.Run()
		if err != nil {
			return err
		}

		b, ok := final.(*browserBubble)
		if !ok || b.selected == nil {
			return nil
		}

		take := b.selected
		stemPath := take.StemPath()
		if exists, _ := filesystem.API().Exists(stemPath); !exists {
			fmt.Printf("take files for %s are missing on disk\n", take.Title)
			if err := takes.Remove(take); err != nil {
				return err
			}
			continue
		}

		duration := take.ProbedDuration()
		if duration.IsAbsent() {
			duration = player.ProbeDuration(stemPath)
		}

		if _, err := session.Listen(stemPath, duration); err != nil {
			return err
		}
	}
}
