// Package player implements the interactive transport controller around an
// externally spawned decoder process, with a basic fire-and-forget fallback.
//
// The interactive path drives ffplay: every transport action (seek, resume,
// volume change) kills the live decoder and spawns a fresh one at the target
// offset. At most one decoder is ever alive. When stdin is not a terminal or
// ffplay is missing, playback degrades to a generic platform player with no
// transport controls.
package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/samber/mo"
	"golang.org/x/term"

	"github.com/drumtake-cli/drumtake/log"
	"github.com/drumtake-cli/drumtake/style"
)

// errSpawnFailed marks an interactive decoder that could not be started at
// all. Listen recovers from it by falling through to the basic adapter.
var errSpawnFailed = errors.New("interactive decoder failed to spawn")

// Session is the long-lived playback controller. One Session serves the whole
// process; its fields carry the one-time notices and the cached ffplay probe
// so hints never repeat across playback calls.
type Session struct {
	hintShown   bool
	noticeShown bool

	probeOnce sync.Once
	probeErr  error

	// Seams for tests. NewSession wires the real implementations.
	out         io.Writer
	isTerminal  func(fd int) bool
	probeFfplay func() error
	spawn       spawnFunc
	spawnBasic  basicSpawnFunc
	now         func() time.Time
	makeRaw     func(fd int) (*term.State, error)
	restore     func(fd int, state *term.State) error
	keys        <-chan keyEvent  // nil means read from stdin
	interrupts  <-chan os.Signal // nil means subscribe to os.Interrupt
}

// NewSession constructs a playback session bound to the real terminal,
// clock and process spawners.
func NewSession() *Session {
	return &Session{
		out:         os.Stdout,
		isTerminal:  term.IsTerminal,
		probeFfplay: probeFfplay,
		spawn:       spawnFfplay,
		spawnBasic:  spawnBasicPlayer,
		now:         time.Now,
		makeRaw:     term.MakeRaw,
		restore:     term.Restore,
	}
}

// Listen plays the file at path to completion or until the user stops it.
// Returns completed=true only when the audio ran to its natural end.
func (s *Session) Listen(path string, duration mo.Option[float64]) (completed bool, err error) {
	if reason, ok := s.interactiveAvailable(); ok {
		completed, err = s.listenInteractive(path, duration)
		if !errors.Is(err, errSpawnFailed) {
			return completed, err
		}

		if !s.noticeShown {
			s.noticeShown = true
			fmt.Fprintln(s.output(), style.Faint("interactive player failed to start, using basic playback"))
		}
		log.Warnf("interactive decoder spawn failed for %s, falling back", path)
	} else if !s.hintShown {
		s.hintShown = true
		fmt.Fprintln(s.output(), style.Faint("interactive playback unavailable ("+reason+"), using basic playback"))
	}

	return s.listenBasic(path, duration)
}

// interactiveAvailable reports whether the interactive controller can run.
// The ffplay version probe runs once per Session.
func (s *Session) interactiveAvailable() (reason string, ok bool) {
	if !s.isTerminal(int(os.Stdin.Fd())) {
		return "stdin is not a terminal", false
	}

	s.probeOnce.Do(func() {
		s.probeErr = s.probeFfplay()
	})
	if s.probeErr != nil {
		return "ffplay is not available", false
	}

	return "", true
}

func (s *Session) output() io.Writer {
	if s.out == nil {
		return os.Stdout
	}
	return s.out
}

func probeFfplay() error {
	cmd := exec.Command("ffplay", "-version")
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}
