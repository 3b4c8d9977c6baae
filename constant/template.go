// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Source Function Identifiers - these constants define the required global function signatures for Lua source modules.
const (
	SearchTracksFn = "SearchTracks"
)

// SourceTemplate is a Go text/template for scaffolding new Lua source files.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias track { id: string, title: string, channel: string|nil, duration: number|nil, url: string }


----- IMPORTS -----
--- END IMPORTS ---



----- VARIABLES -----
--- END VARIABLES ---



----- MAIN -----

--- Searches for tracks with given query.
-- @param query string Query to search for
-- @return track[] Table of tracks
function {{ .SearchTracksFn }}(query)
	return {}
end

--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
