// Package custom provides a bridge between the Go core and Lua-based track source scripts.
package custom

import (
	"fmt"
	"strconv"

	"github.com/samber/mo"
	lua "github.com/yuin/gopher-lua"

	"github.com/drumtake-cli/drumtake/video"
)

// Helper to get string from table with default
func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return val.String()
	}
	return ""
}

// Helper to get a duration in seconds from a table.
// Accepts a Lua number or a numeric string.
func getDuration(table *lua.LTable, key string) mo.Option[float64] {
	val := table.RawGetString(key)
	switch val.Type() {
	case lua.LTNumber:
		return mo.Some(float64(val.(lua.LNumber)))
	case lua.LTString:
		if parsed, err := strconv.ParseFloat(val.String(), 64); err == nil {
			return mo.Some(parsed)
		}
	}
	return mo.None[float64]()
}

func trackFromTable(table *lua.LTable) (*video.Track, error) {
	title := getString(table, "title")
	if title == "" {
		title = getString(table, "name")
	}
	url := getString(table, "url")

	if title == "" || url == "" {
		return nil, fmt.Errorf("track must have title and url")
	}

	id := getString(table, "id")
	if id == "" {
		id = url // Use URL as ID for custom providers usually
	}

	track := &video.Track{
		ID:         id,
		Title:      title,
		Channel:    getString(table, "channel"),
		WebpageURL: url,
		Duration:   getDuration(table, "duration"),
	}

	return track, nil
}
