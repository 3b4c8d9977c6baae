// Package takes provides the persistent catalog of processed stem-separation results.
package takes

import (
	"github.com/metafates/gache"

	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/video"
	"github.com/drumtake-cli/drumtake/where"
)

// cacher provides an abstracted, disk-backed registry for take records.
var cacher = gache.New[map[string]*Take](
	&gache.Options{
		Path:       where.TakesIndex(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of takes from the persistent store.
func Get() (map[string]*Take, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Take), nil
	}
	return cached, nil
}

// Save records a processed track in the catalog, keyed to the stem file the
// separation produced. Re-processing the same video replaces the previous
// record.
func Save(query string, track *video.Track, stemPath, stemKind string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newTake(query, track, stemPath, stemKind)
	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a take record from the catalog.
// The take folder on disk is left alone.
func Remove(take *Take) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, take.encode())
	return cacher.Set(saved)
}
