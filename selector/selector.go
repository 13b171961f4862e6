// Package selector decides which search term to send next.
package selector

import (
	"fmt"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/random"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Selector produces queries from a QueryConfig.
// It is safe for concurrent use if its random source is.
type Selector struct {
	rng   random.Source
	words []string
}

// New creates a selector drawing free-mode queries from words.
// An empty word list falls back to the single term "random".
func New(rng random.Source, words []string) *Selector {
	if len(words) == 0 {
		words = []string{constant.FallbackTerm}
	}

	return &Selector{
		rng:   rng,
		words: words,
	}
}

// Words returns the free-mode vocabulary.
func (s *Selector) Words() []string {
	return s.words
}

// NextQuery returns the next search term and the current genre after the selection.
//
// A fixed term always wins and leaves the genre untouched.
// In genre-cycle mode the query is a genre name; with avoidCurrentGenre the
// current genre is excluded, which needs at least two genres.
// Otherwise a word is drawn from the word list.
func (s *Selector) NextQuery(cfg QueryConfig, avoidCurrentGenre bool) (string, mo.Option[string], error) {
	if term, ok := cfg.Term(); ok {
		return term, cfg.CurrentGenre, nil
	}

	if cfg.Mode == ModeGenreCycle {
		genre, err := s.nextGenre(cfg, avoidCurrentGenre)
		if err != nil {
			return "", cfg.CurrentGenre, err
		}
		return genre, mo.Some(genre), nil
	}

	return s.words[s.rng.Intn(len(s.words))], cfg.CurrentGenre, nil
}

func (s *Selector) nextGenre(cfg QueryConfig, avoid bool) (string, error) {
	if len(cfg.Genres) == 0 {
		return "", &ConfigError{Reason: "genre-cycle mode needs at least one genre"}
	}

	if !avoid {
		genre := cfg.Genres[s.rng.Intn(len(cfg.Genres))]
		log.Infof("selected genre %s", genre)
		return genre, nil
	}

	if len(cfg.Genres) < 2 {
		return "", &ConfigError{Reason: fmt.Sprintf("courageous shuffle needs at least two genres, got %d", len(cfg.Genres))}
	}

	current, hasCurrent := cfg.CurrentGenre.Get()
	candidates := lo.Filter(cfg.Genres, func(g string, _ int) bool {
		return !hasCurrent || g != current
	})

	if len(candidates) == 0 {
		return "", &ConfigError{Reason: fmt.Sprintf("no genre other than %q is available", current)}
	}

	genre := candidates[s.rng.Intn(len(candidates))]
	if hasCurrent {
		log.Infof("courageous shuffle: switching from %s to %s", current, genre)
	} else {
		log.Infof("courageous shuffle: selected %s", genre)
	}

	return genre, nil
}
