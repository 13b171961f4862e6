// Package picker chooses one video out of a result set.
package picker

import (
	"errors"

	"github.com/AvaAvarai/IndimensionalYoutube/random"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/samber/lo"
)

// ErrEmptyResults is returned when there is nothing to pick from.
// Shells show it as "No videos found." and wait for the user.
var ErrEmptyResults = errors.New("no videos found")

type Picker struct {
	rng random.Source
}

func New(rng random.Source) *Picker {
	return &Picker{rng: rng}
}

// Pick returns a uniformly random element of results.
// Nil entries are never returned.
func (p *Picker) Pick(results []*source.Video) (*source.Video, error) {
	results = lo.Compact(results)
	if len(results) == 0 {
		return nil, ErrEmptyResults
	}

	return results[p.rng.Intn(len(results))], nil
}

// PickExcept behaves like Pick but skips the video with the given id while alternatives exist.
func (p *Picker) PickExcept(results []*source.Video, id string) (*source.Video, error) {
	others := lo.Filter(results, func(v *source.Video, _ int) bool {
		return v != nil && v.ID != id
	})

	if len(others) == 0 {
		return p.Pick(results)
	}

	return p.Pick(others)
}
