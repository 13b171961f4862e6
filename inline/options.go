package inline

import (
	"fmt"
	"io"

	"github.com/AvaAvarai/IndimensionalYoutube/selector"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/samber/mo"
)

// MaxCycles bounds the number of shuffles of a single run.
const MaxCycles = 100

type Options struct {
	Out    io.Writer
	Engine *session.Engine

	// Cycles is the number of shuffles to run.
	Cycles     int
	Courageous bool
	Json       bool

	// Overrides applied before the first shuffle.
	Keyword mo.Option[string]
	Mode    mo.Option[selector.Mode]
	Genres  mo.Option[[]string]

	Degraded bool
}

func (o *Options) validate() error {
	if o.Engine == nil {
		return fmt.Errorf("inline: engine is required")
	}

	if o.Cycles < 1 || o.Cycles > MaxCycles {
		return fmt.Errorf("cycles must be between 1 and %d, got %d", MaxCycles, o.Cycles)
	}

	return nil
}

// setup lists the configuration events implied by the overrides.
// Genres go first so that a mode override is checked against them.
func (o *Options) setup() []session.Event {
	var events []session.Event

	if genres, ok := o.Genres.Get(); ok {
		events = append(events, session.SetGenres{Genres: genres})
	}
	if mode, ok := o.Mode.Get(); ok {
		events = append(events, session.SetMode{Mode: mode})
	}
	if term, ok := o.Keyword.Get(); ok {
		events = append(events, session.SetKeyword{Term: term})
	}

	return events
}
