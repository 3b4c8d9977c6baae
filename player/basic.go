package player

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/drumtake-cli/drumtake/key"
)

// basicSpawnFunc starts a fire-and-forget playback of the whole file.
type basicSpawnFunc func(path string) (decodeProc, error)

// defaultFallbacks is used when player.fallbacks is unset or empty.
var defaultFallbacks = []string{"ffplay", "mpv", "afplay", "mplayer", "play"}

// listenBasic plays the file with a generic platform player. No seek, no
// pause; the elapsed display is a wall-clock estimate clamped at the probed
// total. An interrupt stops playback and resolves without an error.
func (s *Session) listenBasic(path string, duration mo.Option[float64]) (bool, error) {
	label := filepath.Base(path)

	proc, err := s.spawnBasic(path)
	if err != nil {
		return false, err
	}

	interrupts := s.interrupts
	if interrupts == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		defer signal.Stop(ch)
		interrupts = ch
	}

	out := s.output()
	started := s.now()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-proc.Done():
			fmt.Fprint(out, "\r\x1b[K")
			fmt.Fprintf(out, "done listening to %s.\n", label)
			return true, nil

		case <-interrupts:
			proc.Stop()
			<-proc.Done()
			fmt.Fprint(out, "\r\x1b[K")
			fmt.Fprintf(out, "stopped %s.\n", label)
			return false, nil

		case <-ticker.C:
			elapsed := s.now().Sub(started).Seconds()
			if total, ok := duration.Get(); ok && elapsed > total {
				elapsed = total
			}
			fmt.Fprintf(out, "\r\x1b[K%s / %s", formatTime(mo.Some(elapsed)), formatTime(duration))
		}
	}
}

// spawnBasicPlayer walks the configured fallback list and starts the first
// player present on PATH.
func spawnBasicPlayer(path string) (decodeProc, error) {
	candidates := viper.GetStringSlice(key.PlayerFallbacks)
	if len(candidates) == 0 {
		candidates = defaultFallbacks
	}

	for _, name := range candidates {
		if _, err := exec.LookPath(name); err != nil {
			continue
		}

		return startProc(exec.Command(name, basicArgs(name, path)...))
	}

	return nil, fmt.Errorf("no audio player found, install one of: %s", strings.Join(candidates, ", "))
}

func basicArgs(name, path string) []string {
	switch name {
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "error", path}
	case "mpv":
		return []string{"--no-video", "--really-quiet", path}
	default:
		return []string{path}
	}
}
