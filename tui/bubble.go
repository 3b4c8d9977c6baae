package tui

import (
	"fmt"
	"path/filepath"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"

	"github.com/drumtake-cli/drumtake/constant"
	"github.com/drumtake-cli/drumtake/icon"
	"github.com/drumtake-cli/drumtake/internal/ui"
	"github.com/drumtake-cli/drumtake/open"
	"github.com/drumtake-cli/drumtake/style"
	"github.com/drumtake-cli/drumtake/takes"
)

// browserBubble is the bubbletea model for the saved takes list.
type browserBubble struct {
	listC  list.Model
	keymap *keymap

	// selected is set when the user picks a take to listen to,
	// the program quits and the caller takes over the terminal.
	selected *takes.Take

	notifier *ui.Model

	width, height int
}

func newBubble(saved []*takes.Take) *browserBubble {
	k := newKeymap()

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(style.AccentColor).
		BorderForeground(style.AccentColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(style.FaintColor).
		BorderForeground(style.AccentColor)

	items := lo.Map(saved, func(t *takes.Take, _ int) list.Item {
		return &listItem{take: t}
	})

	l := list.New(items, delegate, 0, 0)
	l.Title = fmt.Sprintf("%s %s takes", icon.Get(icon.Drum), constant.Drumtake)
	l.KeyMap = k.forList()
	l.AdditionalShortHelpKeys = k.ShortHelp
	l.SetStatusBarItemName("take", "takes")

	return &browserBubble{
		listC:    l,
		keymap:   k,
		notifier: &ui.Model{},
	}
}

func (b *browserBubble) Init() tea.Cmd {
	return nil
}

func (b *browserBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.listC.SetSize(msg.Width, msg.Height)
		return b, nil

	case tea.KeyMsg:
		if b.listC.FilterState() == list.Filtering {
			break
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.listen):
			if item, ok := b.listC.SelectedItem().(*listItem); ok {
				b.selected = item.take
				return b, tea.Quit
			}

		case bubblesKey.Matches(msg, b.keymap.remove):
			item, ok := b.listC.SelectedItem().(*listItem)
			if !ok {
				break
			}

			if err := takes.Remove(item.take); err != nil {
				return b, ui.Notify(fmt.Sprintf("remove failed: %v", err))
			}

			b.listC.RemoveItem(b.listC.Index())
			return b, ui.Notify(fmt.Sprintf("removed %s", item.take.Title))

		case bubblesKey.Matches(msg, b.keymap.openFolder):
			item, ok := b.listC.SelectedItem().(*listItem)
			if !ok {
				break
			}

			if err := open.Start(filepath.Dir(item.take.StemPath())); err != nil {
				return b, ui.Notify(fmt.Sprintf("open failed: %v", err))
			}
			return b, ui.Notify("opened take folder")
		}

	case string, ui.ClearNotificationMsg:
		return b, b.notifier.Update(msg)
	}

	l, cmd := b.listC.Update(msg)
	b.listC = l
	return b, cmd
}

func (b *browserBubble) View() string {
	if len(b.listC.Items()) == 0 {
		empty := wordwrap.String(
			"No saved takes yet. Run "+style.Bold(constant.Drumtake)+" to search a song and isolate its drums.",
			max(b.width-2, 20),
		)
		return lipgloss.NewStyle().Padding(1, 2).Render(empty)
	}

	return b.notifier.View(b.listC.View())
}
