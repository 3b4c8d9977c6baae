package player

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/mo"

	"github.com/drumtake-cli/drumtake/log"
	"github.com/drumtake-cli/drumtake/style"
)

// ProbeDuration extracts the container duration of an audio file in seconds
// via ffprobe. It never fails: every failure mode warns once and degrades to
// an unknown duration the caller displays as such for the whole session.
func ProbeDuration(path string) mo.Option[float64] {
	return probeDuration(path, runFfprobe)
}

func runFfprobe(path string) (string, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

func probeDuration(path string, run func(string) (string, error)) mo.Option[float64] {
	out, err := run(path)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			warn("ffprobe is not installed, track duration will show as unknown")
		} else {
			warn(fmt.Sprintf("duration probe failed for %s", path))
			log.Warnf("ffprobe error for %s: %v", path, err)
		}
		return mo.None[float64]()
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		warn("duration probe returned unexpected output")
		log.Warnf("ffprobe output for %s was not numeric: %q", path, out)
		return mo.None[float64]()
	}

	return mo.Some(seconds)
}

func warn(msg string) {
	fmt.Println(style.Faint(msg))
}
