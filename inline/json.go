package inline

import (
	"encoding/json"
	"io"

	"github.com/AvaAvarai/IndimensionalYoutube/session"
)

type Video struct {
	ID      string `json:"id" jsonschema:"description=Platform video id"`
	Title   string `json:"title"`
	Channel string `json:"channel,omitempty"`
	URL     string `json:"url" jsonschema:"format=uri"`
}

// Result is one shuffle.
type Result struct {
	Index int    `json:"index" jsonschema:"minimum=0"`
	Query string `json:"query" jsonschema:"description=Search term used by the shuffle"`
	Genre string `json:"genre,omitempty"`

	Video *Video `json:"video,omitempty"`
	Empty bool   `json:"empty"`
	Error string `json:"error,omitempty" jsonschema:"description=Provider error behind an empty result"`
}

type Output struct {
	Source   string    `json:"source"`
	Mode     string    `json:"mode" jsonschema:"enum=free,enum=genre-cycle"`
	Keyword  string    `json:"keyword,omitempty"`
	Degraded bool      `json:"degraded" jsonschema:"description=Set when the word list could not be loaded"`
	Results  []*Result `json:"results"`
}

func newResult(index int, outcome session.Outcome) *Result {
	result := &Result{
		Index: index,
		Query: outcome.Query,
		Genre: outcome.Genre.OrEmpty(),
	}

	switch outcome.Kind {
	case session.OutcomePlaying:
		result.Video = &Video{
			ID:      outcome.Video.ID,
			Title:   outcome.Video.Title,
			Channel: outcome.Video.Channel,
			URL:     outcome.Video.URL(),
		}
	default:
		result.Empty = true
		if outcome.Err != nil {
			result.Error = outcome.Err.Error()
		}
	}

	return result
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
