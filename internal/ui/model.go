// Package ui holds the shared notification widget used by fullscreen views.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drumtake-cli/drumtake/style"
)

const notificationLifetime = 3 * time.Second

// Model tracks a single transient status message.
type Model struct {
	message string
	shownAt time.Time
}

// ClearNotificationMsg resets the notification once its lifetime passes.
type ClearNotificationMsg struct{}

// Notify emits message as a tea.Msg so the owning bubble can route it here.
func Notify(message string) tea.Cmd {
	return func() tea.Msg {
		return message
	}
}

// ClearNotification schedules the reset tick.
func ClearNotification() tea.Cmd {
	return tea.Tick(notificationLifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case string:
		m.message = msg
		m.shownAt = time.Now()
		return ClearNotification()
	case ClearNotificationMsg:
		if time.Since(m.shownAt) >= notificationLifetime {
			m.message = ""
		}
	}
	return nil
}

// View appends the active notification to the last line of content.
func (m *Model) View(content string) string {
	if m.message == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	if len(lines) > 0 {
		lines[len(lines)-1] += "  " + style.Faint(m.message)
	}
	return strings.Join(lines, "\n")
}
