package tui

import (
	"context"
	"errors"

	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/selector"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmds = append(cmds, uiCmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, tea.Batch(append(cmds, cmd)...)
	case outcomeMsg:
		return b, tea.Batch(append(cmds, b.onOutcome(msg))...)
	case playerEventMsg:
		cmds = append(cmds, b.waitForPlayerEvent())
		if _, failed := msg.event.(session.PlaybackFailed); failed && b.state == playingState {
			b.setState(loadingState)
		}
		return b, tea.Batch(append(cmds, b.handle(msg.event))...)
	case playFailedMsg:
		if msg.video != b.current {
			return b, tea.Batch(cmds...)
		}
		log.Warnf("player refused %s: %s", msg.video.ID, msg.err)
		if b.state == playingState {
			b.setState(loadingState)
		}
		return b, tea.Batch(append(cmds, b.handle(session.PlaybackFailed{VideoID: msg.video.ID, Reason: msg.err.Error()}))...)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case loadingState:
		cmd = b.updateLoading(msg)
	case playingState, emptyState:
		cmd = b.updatePlaying(msg)
	case keywordState:
		cmd = b.updateKeyword(msg)
	case historyState:
		cmd = b.updateHistory(msg)
	case errorState:
		cmd = b.updateError(msg)
	}

	return b, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) onOutcome(msg outcomeMsg) tea.Cmd {
	if msg.err != nil {
		if errors.Is(msg.err, selector.ErrConfig) {
			b.restoreState()
			return notify(msg.err.Error())
		}

		if errors.Is(msg.err, context.Canceled) {
			return nil
		}

		b.raiseError(msg.err)
		return nil
	}

	outcome := msg.outcome

	switch outcome.Kind {
	case session.OutcomePlaying:
		b.current = outcome.Video
		b.gaveUp = false
		b.setState(playingState)
		return b.play(outcome.Video)
	case session.OutcomeEmpty:
		b.current = nil
		b.lastEmpty = outcome
		b.setState(emptyState)
	case session.OutcomeGaveUp:
		b.current = nil
		b.gaveUp = true
		b.setState(emptyState)
	case session.OutcomeSuperseded:
		// the newer search reports on its own
	default:
		if b.state == loadingState {
			b.restoreState()
		}

		if ev, ok := msg.event.(session.SetMode); ok {
			return notify("mode: " + ev.Mode.String())
		}
	}

	return nil
}

// restoreState shows whatever the engine is doing after an aborted action.
func (b *statefulBubble) restoreState() {
	if b.engine.Status() == session.StatusPlaying && b.current != nil {
		b.setState(playingState)
		return
	}
	b.setState(emptyState)
}

func (b *statefulBubble) shuffle(avoid bool) tea.Cmd {
	b.setState(loadingState)
	return tea.Batch(b.spinnerC.Tick, b.handle(session.Shuffle{AvoidCurrentGenre: avoid}))
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return tea.Quit
	}
	return nil
}

func (b *statefulBubble) updatePlaying(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		return tea.Quit
	case bubblesKey.Matches(keyMsg, b.keymap.shuffle):
		return b.shuffle(false)
	case bubblesKey.Matches(keyMsg, b.keymap.courageous):
		return b.shuffle(true)
	case bubblesKey.Matches(keyMsg, b.keymap.keyword):
		b.inputC.SetValue(b.engine.Snapshot().Config.FixedTerm.OrEmpty())
		b.inputC.CursorEnd()
		b.inputC.Focus()
		b.newState(keywordState)
		return textinput.Blink
	case bubblesKey.Matches(keyMsg, b.keymap.toggleMode):
		mode := lo.Ternary(
			b.engine.Snapshot().Config.Mode == selector.ModeGenreCycle,
			selector.ModeFree,
			selector.ModeGenreCycle,
		)
		return b.handle(session.SetMode{Mode: mode})
	case bubblesKey.Matches(keyMsg, b.keymap.history):
		b.historyC.ResetSelected()
		cmd := b.historyC.SetItems(historyItems(b.engine.History().Entries()))
		b.newState(historyState)
		return cmd
	case bubblesKey.Matches(keyMsg, b.keymap.openURL):
		if b.current != nil {
			return b.openURL(b.current.URL())
		}
	case bubblesKey.Matches(keyMsg, b.keymap.playPause):
		if b.state == playingState {
			return b.togglePause()
		}
	case bubblesKey.Matches(keyMsg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}

	return nil
}

func (b *statefulBubble) updateKeyword(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			term := b.inputC.Value()
			b.inputC.Blur()
			b.setState(loadingState)
			return tea.Batch(b.spinnerC.Tick, b.setKeyword(term))
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.previousState()
			return nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateHistory(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.historyC.SelectedItem().(*listItem); ok {
				return b.openURL(item.entry.URL())
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return nil
		}
	}

	var cmd tea.Cmd
	b.historyC, cmd = b.historyC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.lastError = nil
			b.restoreState()
		}
	}
	return nil
}

func notify(text string) tea.Cmd {
	return func() tea.Msg {
		return text
	}
}

var _ list.Item = (*listItem)(nil)
