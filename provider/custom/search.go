// Package custom provides a bridge between the Go core and Lua-based track source scripts.
package custom

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/drumtake-cli/drumtake/constant"
	"github.com/drumtake-cli/drumtake/internal/cache"
	"github.com/drumtake-cli/drumtake/video"
)

func (s *luaSource) Search(query string) ([]*video.Track, error) {
	cacheKey := cache.GenerateKey(query, s.Name())
	var cachedTracks []*video.Track
	if cache.Read(cacheKey, &cachedTracks) {
		for _, t := range cachedTracks {
			t.Source = s
		}
		return cachedTracks, nil
	}

	val, err := s.call(constant.SearchTracksFn, lua.LTTable, lua.LString(query))
	if err != nil {
		return nil, err
	}

	table := val.(*lua.LTable)
	var tracks []*video.Track

	var errs []error
	table.ForEach(func(k, v lua.LValue) {
		if k.Type() != lua.LTNumber || v.Type() != lua.LTTable {
			return // Skip invalid entries
		}

		track, err := trackFromTable(v.(*lua.LTable))
		if err != nil {
			errs = append(errs, err)
			return
		}

		track.Source = s
		tracks = append(tracks, track)
	})

	if len(tracks) == 0 && len(errs) > 0 {
		return nil, errs[0]
	}

	if len(tracks) > 0 {
		_ = cache.Write(cacheKey, tracks)
	}

	return tracks, nil
}
