package youtube

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
)

const initialDataMarker = "var ytInitialData = "

type runs struct {
	Runs []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

// text joins the runs. Titles with highlighted words are split across several.
func (r runs) text() string {
	var b strings.Builder
	for _, run := range r.Runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

type videoRenderer struct {
	VideoID   string `json:"videoId"`
	Title     runs   `json:"title"`
	OwnerText runs   `json:"ownerText"`
}

// initialData cuts the ytInitialData object out of a results page.
func initialData(page string) []byte {
	idx := strings.Index(page, initialDataMarker)
	if idx < 0 {
		return nil
	}

	return balancedObject([]byte(page[idx+len(initialDataMarker):]))
}

// balancedObject returns the JSON object starting at b[0] by tracking brace depth outside strings.
func balancedObject(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}

	var (
		depth   int
		inStr   bool
		escaped bool
	)

	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}

		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}

	return nil
}

var errEnoughVideos = errors.New("enough videos")

// videosFromInitialData streams the document once, collecting videoRenderer
// nodes in document order.
func videosFromInitialData(data []byte, limit int) []*source.Video {
	var (
		videos []*source.Video
		seen   = make(map[string]bool)
	)

	dec := json.NewDecoder(bytes.NewReader(data))

	var walk func() error
	walk = func() error {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		delim, ok := tok.(json.Delim)
		if !ok {
			return nil
		}

		switch delim {
		case '{':
			for dec.More() {
				tok, err := dec.Token()
				if err != nil {
					return err
				}

				if tok != "videoRenderer" {
					if err := walk(); err != nil {
						return err
					}
					continue
				}

				var vr videoRenderer
				if err := dec.Decode(&vr); err != nil {
					return err
				}

				if vr.VideoID == "" || seen[vr.VideoID] {
					continue
				}

				seen[vr.VideoID] = true
				videos = append(videos, &source.Video{
					ID:      vr.VideoID,
					Title:   vr.Title.text(),
					Channel: vr.OwnerText.text(),
				})

				if limit > 0 && len(videos) >= limit {
					return errEnoughVideos
				}
			}
		case '[':
			for dec.More() {
				if err := walk(); err != nil {
					return err
				}
			}
		}

		// closing delimiter
		_, err = dec.Token()
		return err
	}

	if err := walk(); err != nil && !errors.Is(err, errEnoughVideos) {
		log.Debugf("ytInitialData ends early: %s", err)
	}

	return videos
}
