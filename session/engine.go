package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/AvaAvarai/IndimensionalYoutube/history"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/picker"
	"github.com/AvaAvarai/IndimensionalYoutube/selector"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/google/uuid"
	"github.com/samber/mo"
	"golang.org/x/time/rate"
)

// Options configure an Engine. Source, Selector and Picker are required.
type Options struct {
	Source   source.Source
	Selector *selector.Selector
	Picker   *picker.Picker
	Config   selector.QueryConfig

	// MaxFailures is the number of consecutive playback failures after
	// which the engine stops searching. Zero means never stop.
	MaxFailures int

	// Limiter paces searches triggered by playback failures. Nil disables pacing.
	Limiter *rate.Limiter
}

// Engine serializes shell events into the session state machine.
// All methods are safe for concurrent use.
type Engine struct {
	source   source.Source
	selector *selector.Selector
	picker   *picker.Picker
	limiter  *rate.Limiter

	maxFailures int

	// searchMu allows a single provider search at a time.
	searchMu sync.Mutex

	mu         sync.Mutex
	state      State
	generation uint64
	lastAvoid  bool
	failures   int
}

func New(options Options) (*Engine, error) {
	if options.Source == nil || options.Selector == nil || options.Picker == nil {
		return nil, errors.New("session: source, selector and picker are required")
	}

	if options.MaxFailures < 0 {
		return nil, fmt.Errorf("session: max failures can not be negative, got %d", options.MaxFailures)
	}

	if err := options.Config.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		source:      options.Source,
		selector:    options.Selector,
		picker:      options.Picker,
		limiter:     options.Limiter,
		maxFailures: options.MaxFailures,
		state: State{
			ID:      uuid.NewString(),
			Status:  StatusIdle,
			Config:  options.Config,
			Current: mo.None[*source.Video](),
			History: history.New(),
		},
	}, nil
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Status
}

func (e *Engine) History() *history.History {
	return e.state.History
}

// SourceName is the display name of the search provider.
func (e *Engine) SourceName() string {
	return e.source.Name()
}

// Handle applies ev and reports what happened.
// A *selector.ConfigError is returned as error and leaves the state as it was.
func (e *Engine) Handle(ctx context.Context, ev Event) (Outcome, error) {
	switch ev := ev.(type) {
	case Shuffle:
		e.mu.Lock()
		e.failures = 0
		e.mu.Unlock()
		return e.search(ctx, ev.AvoidCurrentGenre, "")
	case PlaybackFailed:
		return e.playbackFailed(ctx, ev)
	case PlaybackStarted:
		return e.playbackStarted(ev), nil
	case SetKeyword:
		e.mu.Lock()
		defer e.mu.Unlock()
		e.state.Config = e.state.Config.WithKeyword(ev.Term)
		log.Infof("keyword set to %q", ev.Term)
		return Outcome{Kind: OutcomeUpdated}, nil
	case SetMode:
		return e.updateConfig(func(c selector.QueryConfig) selector.QueryConfig {
			c.Mode = ev.Mode
			return c
		})
	case SetGenres:
		return e.updateConfig(func(c selector.QueryConfig) selector.QueryConfig {
			return c.WithGenres(ev.Genres)
		})
	default:
		return Outcome{}, fmt.Errorf("session: unknown event %T", ev)
	}
}

func (e *Engine) updateConfig(update func(selector.QueryConfig) selector.QueryConfig) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := update(e.state.Config)
	if err := next.Validate(); err != nil {
		return Outcome{}, err
	}

	e.state.Config = next
	return Outcome{Kind: OutcomeUpdated}, nil
}

// reportsCurrent tells whether a playback report about id concerns the
// video being played. An empty id is taken to mean the current video.
// Callers hold mu.
func (e *Engine) reportsCurrent(id string) bool {
	if e.state.Status != StatusPlaying {
		return false
	}

	current, ok := e.state.Current.Get()
	return id == "" || (ok && current.ID == id)
}

func (e *Engine) playbackStarted(ev PlaybackStarted) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.reportsCurrent(ev.VideoID) {
		return Outcome{Kind: OutcomeIgnored}
	}

	e.failures = 0
	return Outcome{Kind: OutcomeUpdated, Video: e.state.Current.OrEmpty()}
}

func (e *Engine) playbackFailed(ctx context.Context, ev PlaybackFailed) (Outcome, error) {
	e.mu.Lock()
	if !e.reportsCurrent(ev.VideoID) {
		status := e.state.Status
		e.mu.Unlock()
		log.Debugf("ignoring playback failure of %q while %s", ev.VideoID, status)
		return Outcome{Kind: OutcomeIgnored}, nil
	}

	failed := e.state.Current.OrEmpty()
	e.failures++
	log.Warnf("playback failed (%d in a row): %s", e.failures, ev.Reason)

	if e.maxFailures > 0 && e.failures >= e.maxFailures {
		e.state.Status = StatusIdle
		e.state.Current = mo.None[*source.Video]()
		e.mu.Unlock()
		log.Errorf("giving up after %d playback failures", e.maxFailures)
		return Outcome{Kind: OutcomeGaveUp}, nil
	}

	e.state.Status = StatusFailed
	avoid := e.lastAvoid
	e.mu.Unlock()

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			e.mu.Lock()
			if e.state.Status == StatusFailed {
				e.toIdle()
			}
			e.mu.Unlock()
			return Outcome{}, err
		}
	}

	var exclude string
	if failed != nil {
		exclude = failed.ID
	}

	return e.search(ctx, avoid, exclude)
}

// search runs one select, search and pick cycle.
// exclude is the id of a video that just failed to play.
func (e *Engine) search(ctx context.Context, avoid bool, exclude string) (Outcome, error) {
	e.mu.Lock()
	query, genre, err := e.selector.NextQuery(e.state.Config, avoid)
	if err != nil {
		if e.state.Status == StatusFailed {
			e.toIdle()
		}
		e.mu.Unlock()
		return Outcome{}, err
	}

	e.generation++
	generation := e.generation
	e.lastAvoid = avoid
	e.state.Status = StatusSearching
	e.state.Query = query
	e.state.Config.CurrentGenre = genre
	e.mu.Unlock()

	log.Infof("searching %s for %q", e.source.Name(), query)

	e.searchMu.Lock()
	if e.stale(generation) {
		e.searchMu.Unlock()
		return Outcome{Kind: OutcomeSuperseded, Query: query}, nil
	}

	var results []*source.Video
	if err = ctx.Err(); err == nil {
		results, err = e.source.Search(query)
	}
	e.searchMu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if generation != e.generation {
		log.Debugf("discarding results for %q, a newer search started", query)
		return Outcome{Kind: OutcomeSuperseded, Query: query}, nil
	}

	if err != nil {
		log.Warnf("search for %q failed: %s", query, err)
		e.toIdle()
		return Outcome{Kind: OutcomeEmpty, Query: query, Genre: genre, Err: err}, nil
	}

	video, err := e.picker.PickExcept(results, exclude)
	if err != nil {
		log.Infof("no videos found for %q", query)
		e.toIdle()
		return Outcome{Kind: OutcomeEmpty, Query: query, Genre: genre}, nil
	}

	entry := e.state.History.Append(video, query)
	e.state.Status = StatusPlaying
	e.state.Current = mo.Some(video)
	log.Infof("playing %q (%s)", video.Title, video.ID)

	return Outcome{
		Kind:  OutcomePlaying,
		Video: video,
		Entry: entry,
		Query: query,
		Genre: genre,
	}, nil
}

func (e *Engine) stale(generation uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return generation != e.generation
}

func (e *Engine) toIdle() {
	e.state.Status = StatusIdle
	e.state.Current = mo.None[*source.Video]()
}
