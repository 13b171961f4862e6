package custom

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AvaAvarai/IndimensionalYoutube/source"
	lua "github.com/yuin/gopher-lua"
)

func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString || val.Type() == lua.LTNumber {
		return strings.TrimSpace(val.String())
	}
	return ""
}

// idFromURL extracts the video id from watch, short and embed links.
func idFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	if id := u.Query().Get("v"); id != "" {
		return id
	}

	path := strings.Trim(u.Path, "/")
	switch {
	case u.Host == "youtu.be":
		return path
	case strings.HasPrefix(path, "embed/"), strings.HasPrefix(path, "shorts/"):
		return path[strings.Index(path, "/")+1:]
	default:
		return ""
	}
}

// videoFromTable reads { id, title, channel } or { url, title, channel }.
func videoFromTable(table *lua.LTable) (*source.Video, error) {
	video := &source.Video{
		ID:      getString(table, "id"),
		Title:   getString(table, "title"),
		Channel: getString(table, "channel"),
	}

	if video.ID == "" {
		video.ID = idFromURL(getString(table, "url"))
	}

	if video.ID == "" {
		return nil, fmt.Errorf("video must have an id or a url")
	}

	if !video.Valid() {
		return nil, fmt.Errorf("invalid video id %q", video.ID)
	}

	if video.Title == "" {
		video.Title = video.ID
	}

	return video, nil
}
