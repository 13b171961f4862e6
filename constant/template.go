package constant

// SearchVideosFn is the global function every Lua provider must define.
const SearchVideosFn = "SearchVideos"

// SourceTemplate scaffolds a new Lua search provider.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias video { id: string, title: string, channel: string|nil }


----- IMPORTS -----
--- END IMPORTS ---



----- VARIABLES -----
--- END VARIABLES ---



----- MAIN -----

--- Searches for videos matching the query.
-- @param query string Query to search for
-- @return video[] Table of videos
function {{ .SearchVideosFn }}(query)
	return {}
end

--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
