package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/genre"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/player"
	"github.com/AvaAvarai/IndimensionalYoutube/provider"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/AvaAvarai/IndimensionalYoutube/wordlist"
	"github.com/spf13/viper"
)

// shell is everything a user interface needs to run a session.
type shell struct {
	engine   *session.Engine
	player   player.Player
	events   chan session.Event
	degraded bool
}

// signalContext is cancelled on interrupt or termination.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// newEngine builds a session from the configured provider, word list and genres.
func newEngine(ctx context.Context) (*session.Engine, *wordlist.List, error) {
	genres, err := genre.ResolveAll(viper.GetStringSlice(key.GenresList), constant.DefaultGenres, true)
	if err != nil {
		return nil, nil, err
	}
	viper.Set(key.GenresList, genres)

	src, err := provider.Default()
	if err != nil {
		return nil, nil, err
	}

	words := wordlist.FromViper(ctx)

	engine, err := session.NewFromViper(src, words.Words)
	if err != nil {
		return nil, nil, fmt.Errorf("session: %w", err)
	}

	return engine, words, nil
}

// newShell is newEngine plus the configured player, whose events are
// queued for the interface to pass on.
func newShell(ctx context.Context) (*shell, error) {
	engine, words, err := newEngine(ctx)
	if err != nil {
		return nil, err
	}

	events := make(chan session.Event, 8)
	p, err := player.FromViper(func(ev session.Event) {
		select {
		case events <- ev:
		default:
			log.Warnf("player event %T dropped, the queue is full", ev)
		}
	})
	if err != nil {
		return nil, err
	}

	return &shell{
		engine:   engine,
		player:   p,
		events:   events,
		degraded: words.Degraded,
	}, nil
}
