package tui

import (
	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

// statefulKeymap shows the bindings that make sense in the current state.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	shuffle, courageous,
	keyword, toggleMode,
	history, openURL, playPause,
	confirm, back,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func bind(help, description string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, description))
}

func newStatefulKeymap() *statefulKeymap {
	highlight := style.Fg(color.Orange)

	return &statefulKeymap{
		quit:       bind("q", "quit", "q"),
		forceQuit:  bind("ctrl+c", "quit", "ctrl+c", "ctrl+d"),
		shuffle:    bind(highlight("s"), highlight("shuffle"), "s", "n"),
		courageous: bind("c", "courageous shuffle", "c"),
		keyword:    bind("k", "keyword", "k", "/"),
		toggleMode: bind("g", "toggle genre cycle", "g"),
		history:    bind("h", "history", "h"),
		openURL:    bind("o", "open in browser", "o"),
		playPause:  bind("space", "pause/resume", " "),
		confirm:    bind("enter", "confirm", "enter"),
		back:       bind("esc", "back", "esc"),
		up:         bind("↑", "up", "up", "k"),
		down:       bind("↓", "down", "down", "j"),
		left:       bind("←", "previous page", "left"),
		right:      bind("→", "next page", "right"),
		top:        bind("home", "top", "home"),
		bottom:     bind("end", "bottom", "end"),
		showHelp:   bind("?", "help", "?"),
	}
}

// help returns the short and the full help of the current state.
func (k *statefulKeymap) help() (short, full []key.Binding) {
	switch k.state {
	case loadingState:
		short = []key.Binding{k.forceQuit}
	case playingState:
		return []key.Binding{k.shuffle, k.courageous, k.keyword, k.quit, k.showHelp},
			[]key.Binding{k.shuffle, k.courageous, k.keyword, k.toggleMode, k.history, k.openURL, k.playPause, k.quit}
	case emptyState:
		short = []key.Binding{k.shuffle, k.courageous, k.keyword, k.toggleMode, k.history, k.quit}
	case keywordState:
		short = []key.Binding{withDescription(k.confirm, "set keyword and shuffle"), k.back}
	case historyState:
		short = []key.Binding{withDescription(k.confirm, "open in browser"), k.back}
	case errorState:
		short = []key.Binding{k.back, k.quit}
	}

	return short, short
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

// forList adapts the keymap to the history list.
func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}

func withDescription(k key.Binding, description string) key.Binding {
	return bind(k.Help().Key, description, k.Keys()...)
}
