// Package tui is the full-screen terminal shell. Videos play in an
// external player and the terminal shows what is playing and why.
package tui

import (
	"context"
	"errors"

	"github.com/AvaAvarai/IndimensionalYoutube/player"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Engine *session.Engine
	Player player.Player

	// PlayerEvents delivers the events Player reports. May be nil.
	PlayerEvents chan session.Event

	// Degraded is set when the word list could not be loaded.
	Degraded bool
}

// Run starts the shell and blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	if options.Engine == nil || options.Player == nil {
		return errors.New("tui: engine and player are required")
	}

	defer options.Player.Close()

	bubble := newBubble(ctx, options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
