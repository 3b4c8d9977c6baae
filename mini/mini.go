// Package mini implements a lightweight, minimalist interface for song search, stem separation and playback.
package mini

import (
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/drumtake-cli/drumtake/player"
	"github.com/drumtake-cli/drumtake/util"
	"github.com/drumtake-cli/drumtake/video"
)

var (
	truncateAt = 100
)

type Options struct {
	Continue bool
}

type mini struct {
	width, height int

	state         state
	statesHistory util.Stack[state]

	selectedSource video.Source

	cachedTracks map[string][]*video.Track

	query         string
	selectedTrack *video.Track

	stemPath     string
	stemDuration mo.Option[float64]

	session *player.Session
}

func newMini() *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		cachedTracks:  make(map[string][]*video.Track),
		session:       player.NewSession(),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	// Process and listen states are transient, going back lands on the
	// selection that produced them.
	if !lo.Contains([]state{processState, listenState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

func Run(options *Options) error {
	m := newMini()
	m.state = sourceSelectState
	if options.Continue {
		m.state = takeSelectState
	}

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	util.ClearScreen()

	for {
		if err := m.handleState(); err != nil {
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case takeSelectState:
		return m.handleTakeSelectState()
	case sourceSelectState:
		return m.handleSourceSelectState()
	case searchState:
		return m.handleSearchState()
	case trackSelectState:
		return m.handleTrackSelectState()
	case processState:
		return m.handleProcessState()
	case listenState:
		return m.handleListenState()
	case quitState:
		os.Exit(0)
	}

	return nil
}
