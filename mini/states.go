package mini

import (
	"errors"
	"fmt"

	"github.com/AvaAvarai/IndimensionalYoutube/history"
	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/open"
	"github.com/AvaAvarai/IndimensionalYoutube/query"
	"github.com/AvaAvarai/IndimensionalYoutube/selector"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

type state int

const (
	shuffleState state = iota + 1
	menuState
	keywordState
	historyState
	quitState
)

func (m *mini) handleShuffleState() error {
	ev := session.Shuffle{AvoidCurrentGenre: m.avoid}
	m.avoid = false

	erase := progress("Shuffling..")
	outcome, err := m.settle(m.engine.Handle(m.ctx, ev))
	erase()

	m.setState(menuState)

	if errors.Is(err, selector.ErrConfig) {
		fail(err.Error())
		return nil
	}
	if err != nil {
		return err
	}

	m.report(outcome)
	return nil
}

func (m *mini) report(outcome session.Outcome) {
	switch outcome.Kind {
	case session.OutcomeEmpty:
		fail(fmt.Sprintf("No videos found for %q", outcome.Query))
		if outcome.Err != nil {
			info(outcome.Err.Error())
		}
	case session.OutcomeGaveUp:
		fail("Too many videos failed to play in a row")
	}
}

func (m *mini) handleMenuState() error {
	fmt.Println()

	video, playing := m.engine.Snapshot().Current.Get()
	if playing {
		title(fmt.Sprintf("%s %s", icon.Get(icon.Play), video.Title))
	} else {
		title("Nothing is playing")
	}
	info(statusLine(m.engine.Snapshot()))
	if m.degraded {
		fail("word list unavailable, searching the fallback term")
	}

	binds := []*bind{shuffle, courageous, keyword, toggleMode, recent}
	if playing {
		binds = append(binds, browser)
	}
	binds = append(binds, quit)

	b, _, err := menu([]fmt.Stringer{}, binds...)
	if err != nil {
		return err
	}

	switch b {
	case shuffle:
		m.setState(shuffleState)
	case courageous:
		m.avoid = true
		m.setState(shuffleState)
	case keyword:
		m.newState(keywordState)
	case toggleMode:
		return m.toggleMode()
	case recent:
		m.newState(historyState)
	case browser:
		if err := open.Start(video.URL()); err != nil {
			fail(err.Error())
		}
	case quit:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) toggleMode() error {
	mode := lo.Ternary(
		m.engine.Snapshot().Config.Mode == selector.ModeGenreCycle,
		selector.ModeFree,
		selector.ModeGenreCycle,
	)

	_, err := m.engine.Handle(m.ctx, session.SetMode{Mode: mode})
	if errors.Is(err, selector.ErrConfig) {
		fail(err.Error())
		return nil
	}
	return err
}

func (m *mini) handleKeywordState() error {
	current := m.engine.Snapshot().Config.FixedTerm.OrEmpty()

	in, err := getInput("Keyword (leave empty to clear)", current, query.SuggestMany)
	if err != nil {
		return err
	}

	if _, err := m.engine.Handle(m.ctx, session.SetKeyword{Term: in.value}); err != nil {
		return err
	}

	if err := query.Remember(in.value, 1); err != nil {
		log.Warnf("remember keyword: %s", err)
	}

	m.setState(shuffleState)
	return nil
}

func (m *mini) handleHistoryState() error {
	entries := historyItems(m.engine.History().Entries())
	if len(entries) == 0 {
		fail("No videos played yet")
		m.previousState()
		return nil
	}

	title("History")
	b, item, err := menu(entries, back, quit)
	if err != nil {
		return err
	}

	switch b {
	case back:
		m.previousState()
	case quit:
		m.newState(quitState)
	case nil:
		if err := open.Start(item.entry.URL()); err != nil {
			fail(err.Error())
		}
	}

	return nil
}

type historyItem struct {
	entry history.Entry
}

func (h historyItem) String() string {
	return fmt.Sprintf("#%d %s (%s)", h.entry.Index+1, h.entry.Title, h.entry.Query)
}

// historyItems lists entries newest first.
func historyItems(entries []history.Entry) []historyItem {
	entries = slices.Clone(entries)
	slices.Reverse(entries)

	return lo.Map(entries, func(entry history.Entry, _ int) historyItem {
		return historyItem{entry: entry}
	})
}

func statusLine(state session.State) string {
	line := fmt.Sprintf("%s • %s", state.Config.Mode, util.Quantify(state.History.Len(), "video", "videos"))
	if genre, ok := state.Config.CurrentGenre.Get(); ok {
		line += fmt.Sprintf(" • genre %s", genre)
	}
	if term, ok := state.Config.FixedTerm.Get(); ok {
		line += fmt.Sprintf(" • keyword %q", term)
	}
	return line
}
