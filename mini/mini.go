// Package mini is a prompt-driven shell for terminals where a full-screen
// interface is unwanted.
package mini

import (
	"context"
	"errors"

	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/player"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	"github.com/samber/lo"
)

var (
	truncateAt = 100
	pageSize   = 10
)

type Options struct {
	Engine *session.Engine
	Player player.Player

	// PlayerEvents delivers the events Player reports. May be nil.
	PlayerEvents chan session.Event

	Degraded bool
}

type mini struct {
	ctx    context.Context
	engine *session.Engine
	player player.Player

	degraded bool

	state         state
	statesHistory util.Stack[state]

	// avoid makes the next shuffle courageous.
	avoid bool
}

func newMini(ctx context.Context, options *Options) *mini {
	return &mini{
		ctx:           ctx,
		engine:        options.Engine,
		player:        options.Player,
		degraded:      options.Degraded,
		statesHistory: util.Stack[state]{},
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{shuffleState, keywordState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run shuffles once and then loops over the menu until the user quits.
func Run(ctx context.Context, options *Options) error {
	if options.Engine == nil || options.Player == nil {
		return errors.New("mini: engine and player are required")
	}

	defer options.Player.Close()

	m := newMini(ctx, options)
	m.state = shuffleState

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	if options.PlayerEvents != nil {
		go m.forward(options.PlayerEvents)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		if err := m.handleState(); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case shuffleState:
		return m.handleShuffleState()
	case menuState:
		return m.handleMenuState()
	case keywordState:
		return m.handleKeywordState()
	case historyState:
		return m.handleHistoryState()
	case quitState:
		return errQuit
	}

	return nil
}

// forward hands player events to the engine while the menu waits for input.
func (m *mini) forward(events <-chan session.Event) {
	for {
		select {
		case <-m.ctx.Done():
			return
		case ev := <-events:
			outcome, err := m.settle(m.engine.Handle(m.ctx, ev))
			if err != nil {
				log.Warnf("player event %T: %s", ev, err)
				continue
			}
			log.Debugf("player event %T: %s", ev, outcome.Kind)
		}
	}
}

// settle plays the video of a playing outcome.
// Videos the player refuses are reported back until one starts or the engine stops.
func (m *mini) settle(outcome session.Outcome, err error) (session.Outcome, error) {
	for err == nil && outcome.Kind == session.OutcomePlaying {
		playErr := m.player.Play(outcome.Video)
		if playErr == nil {
			return outcome, nil
		}

		log.Warnf("player refused %s: %s", outcome.Video.ID, playErr)
		outcome, err = m.engine.Handle(m.ctx, session.PlaybackFailed{VideoID: outcome.Video.ID, Reason: playErr.Error()})
	}

	return outcome, err
}
