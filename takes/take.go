package takes

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/samber/mo"

	"github.com/drumtake-cli/drumtake/video"
)

// Take represents one processed search-to-stem result preserved in the catalog.
type Take struct {
	Query     string    `json:"query"`
	Title     string    `json:"title"`
	Channel   string    `json:"channel"`
	VideoID   string    `json:"video_id"`
	SourceID  string    `json:"source_id"`
	Folder    string    `json:"folder"`
	StemFile  string    `json:"stem_file"`
	StemKind  string    `json:"stem_kind"`
	Duration  *float64  `json:"duration,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Take) encode() string {
	return fmt.Sprintf("%s (%s)", t.VideoID, t.SourceID)
}

func (t *Take) String() string {
	return fmt.Sprintf("%s · %s", t.Title, t.StemKind)
}

// StemPath returns the location of the isolated stem on disk. The file name
// is recorded at save time, the configured audio format decides its extension.
func (t *Take) StemPath() string {
	return filepath.Join(t.Folder, t.StemFile)
}

// ProbedDuration returns the stored duration as an Option.
func (t *Take) ProbedDuration() mo.Option[float64] {
	if t.Duration == nil {
		return mo.None[float64]()
	}
	return mo.Some(*t.Duration)
}

func newTake(query string, track *video.Track, stemPath, stemKind string) *Take {
	take := &Take{
		Query:     query,
		Title:     track.Title,
		Channel:   track.Channel,
		VideoID:   track.ID,
		Folder:    filepath.Dir(stemPath),
		StemFile:  filepath.Base(stemPath),
		StemKind:  stemKind,
		CreatedAt: time.Now(),
	}

	if track.Source != nil {
		take.SourceID = track.Source.ID()
	}

	if duration, ok := track.Duration.Get(); ok {
		take.Duration = &duration
	}

	return take
}
