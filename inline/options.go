// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/samber/mo"

	"github.com/drumtake-cli/drumtake/util"
	"github.com/drumtake-cli/drumtake/video"
)

// TrackPicker reduces a search result set to a single track.
type TrackPicker func([]*video.Track) *video.Track

type Options struct {
	Out         io.Writer
	Sources     []video.Source
	Json        bool
	Query       string
	TrackPicker mo.Option[TrackPicker]

	// Download fetches the picked track's audio into the takes
	// directory and prints the resulting path.
	Download bool
}

// ParseTrackPicker builds a picker from its CLI description.
// Supported kinds are first, last, exact, closest and index.
func ParseTrackPicker(kind, value string) (TrackPicker, error) {
	switch kind {
	case "first":
		return func(tracks []*video.Track) *video.Track {
			if len(tracks) == 0 {
				return nil
			}
			return tracks[0]
		}, nil
	case "last":
		return func(tracks []*video.Track) *video.Track {
			if len(tracks) == 0 {
				return nil
			}
			return tracks[len(tracks)-1]
		}, nil
	case "exact":
		return func(tracks []*video.Track) *video.Track {
			for _, t := range tracks {
				if t.Title == value {
					return t
				}
			}
			return nil
		}, nil
	case "closest":
		return func(tracks []*video.Track) *video.Track {
			return video.Closest(value, tracks)
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(tracks []*video.Track) *video.Track {
			if len(tracks) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(tracks)-1))
			return tracks[i]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}
