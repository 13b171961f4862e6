package tui

import (
	"fmt"

	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/open"
	"github.com/AvaAvarai/IndimensionalYoutube/query"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	tea "github.com/charmbracelet/bubbletea"
)

// outcomeMsg is the result of handing an event to the engine.
type outcomeMsg struct {
	event   session.Event
	outcome session.Outcome
	err     error
}

// playerEventMsg is an event reported by the player process.
type playerEventMsg struct {
	event session.Event
}

// playFailedMsg means the player refused the video before it started.
type playFailedMsg struct {
	video *source.Video
	err   error
}

func (b *statefulBubble) handle(ev session.Event) tea.Cmd {
	return func() tea.Msg {
		outcome, err := b.engine.Handle(b.ctx, ev)
		return outcomeMsg{event: ev, outcome: outcome, err: err}
	}
}

// setKeyword applies the keyword and shuffles with it in one step.
func (b *statefulBubble) setKeyword(term string) tea.Cmd {
	return func() tea.Msg {
		ev := session.SetKeyword{Term: term}
		if _, err := b.engine.Handle(b.ctx, ev); err != nil {
			return outcomeMsg{event: ev, err: err}
		}

		if err := query.Remember(term, 1); err != nil {
			log.Warnf("remember keyword: %s", err)
		}

		shuffle := session.Shuffle{}
		outcome, err := b.engine.Handle(b.ctx, shuffle)
		return outcomeMsg{event: shuffle, outcome: outcome, err: err}
	}
}

func (b *statefulBubble) play(video *source.Video) tea.Cmd {
	return func() tea.Msg {
		if err := b.player.Play(video); err != nil {
			return playFailedMsg{video: video, err: err}
		}
		return nil
	}
}

func (b *statefulBubble) waitForPlayerEvent() tea.Cmd {
	if b.playerEvents == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case ev := <-b.playerEvents:
			return playerEventMsg{event: ev}
		case <-b.ctx.Done():
			return nil
		}
	}
}

func (b *statefulBubble) togglePause() tea.Cmd {
	return func() tea.Msg {
		if err := b.player.TogglePause(); err != nil {
			log.Warnf("toggle pause: %s", err)
		}
		return nil
	}
}

func (b *statefulBubble) openURL(url string) tea.Cmd {
	return func() tea.Msg {
		if err := open.Start(url); err != nil {
			return fmt.Sprintf("could not open browser: %s", err)
		}
		return "opened in browser"
	}
}
