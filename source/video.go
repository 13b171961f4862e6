package source

import (
	"fmt"
	"net/url"
	"regexp"
)

// Video is a single search result.
type Video struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Channel string `json:"channel,omitempty"`
	Source  Source `json:"-"`
}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{6,20}$`)

// Valid reports whether the ID looks like a video id and can be put into a URL unescaped.
func (v *Video) Valid() bool {
	return idPattern.MatchString(v.ID)
}

// URL is the watch page of the video.
func (v *Video) URL() string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(v.ID)
}

// EmbedURL is the address loaded by the IFrame player.
func (v *Video) EmbedURL() string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&enablejsapi=1", url.PathEscape(v.ID))
}

func (v *Video) String() string {
	if v.Title == "" {
		return v.ID
	}
	return v.Title
}
