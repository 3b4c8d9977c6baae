package player

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/mo"
)

const barWidth = 20

// formatTime renders seconds as MM:SS. Unknown durations render as "--:--".
func formatTime(seconds mo.Option[float64]) string {
	secs, ok := seconds.Get()
	if !ok || secs < 0 {
		return "--:--"
	}

	whole := int(secs)
	return fmt.Sprintf("%02d:%02d", whole/60, whole%60)
}

// renderBar draws a fixed-width progress bar. With an unknown duration the
// bar stays all-empty for the whole session.
func renderBar(position float64, duration mo.Option[float64]) string {
	total, ok := duration.Get()

	filled := 0
	if ok && total > 0 {
		ratio := position / total
		if ratio > 1 {
			ratio = 1
		}
		if ratio < 0 {
			ratio = 0
		}
		filled = int(math.Round(ratio * barWidth))
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// statusLine renders the single in-place status line for the interactive controller.
func statusLine(file string, position float64, duration mo.Option[float64], playing bool, volume float64) string {
	state := "paused"
	if playing {
		state = "playing"
	}

	pct := int(math.Round(volume * 100))

	return fmt.Sprintf("listening to %s [%s] %s / %s · %s · vol %d%%",
		file,
		renderBar(position, duration),
		formatTime(mo.Some(position)),
		formatTime(duration),
		state,
		pct,
	)
}

// controlsLine is the static hint line shown under the status line.
const controlsLine = "controls: space play/pause · ← -5s · → +5s · ↑ louder · ↓ softer · q exit"
