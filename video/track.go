// Package video defines the domain models and interfaces for song discovery and audio retrieval.
package video

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/mo"

	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/util"
	"github.com/drumtake-cli/drumtake/where"
)

// Track represents a song discovered through a source search.
type Track struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Channel    string `json:"channel"`
	WebpageURL string `json:"webpage_url"`
	Source     Source `json:"-"`

	// Duration is the track length in seconds, when the source reports one.
	Duration mo.Option[float64] `json:"-"`
}

func (t *Track) String() string {
	return t.Title
}

// Dirname returns the filesystem-safe directory name for the track.
func (t *Track) Dirname() string {
	return util.SanitizeFilename(t.Title)
}

// Path returns the track's directory under the takes folder, creating it on first use.
func (t *Track) Path() (string, error) {
	path := filepath.Join(where.Takes(), t.Dirname())
	err := filesystem.API().MkdirAll(path, os.ModePerm)
	return path, err
}

// Label returns the human-facing one-line description of the track.
func (t *Track) Label() string {
	if t.Channel == "" {
		return t.Title
	}
	return fmt.Sprintf("%s (%s)", t.Title, t.Channel)
}
