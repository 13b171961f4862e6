package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/internal/ui"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/player"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	historyC list.Model
	helpC    help.Model

	ctx    context.Context
	engine *session.Engine
	player player.Player

	// playerEvents carries events reported by the player process.
	playerEvents chan session.Event

	current   *source.Video
	lastEmpty session.Outcome
	lastError error
	degraded  bool
	gaveUp    bool

	width, height int
	notifier      *ui.Model
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering where to return on esc.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, keywordState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.historyC.SetSize(listWidth, listHeight)
	b.historyC.Help.Width = listWidth
	b.inputC.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,

		ctx:          ctx,
		engine:       options.Engine,
		player:       options.Player,
		playerEvents: options.PlayerEvents,
		degraded:     options.Degraded,

		notifier: &ui.Model{},
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "keyword, leave empty to clear"
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = viper.GetString(key.TUIKeywordPrompt)

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.historyC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.historyC.KeyMap = keymap.forList()
	bubble.historyC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.historyC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.historyC.Title = "History"
	bubble.historyC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.Yellow).Padding(0, 1)
	bubble.historyC.Styles.NoItems = paddingStyle
	bubble.historyC.StatusMessageLifetime = time.Hour * 999
	bubble.historyC.SetShowPagination(false)
	bubble.historyC.SetShowStatusBar(false)
	bubble.historyC.SetFilteringEnabled(false)
	bubble.historyC.SetStatusBarItemName("video", "videos")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(loadingState)

	return &bubble
}

// status is the mode line shown under the current video.
func (b *statefulBubble) status() string {
	state := b.engine.Snapshot()

	line := fmt.Sprintf("%s • %s", b.engine.SourceName(), state.Config.Mode)
	if genre, ok := state.Config.CurrentGenre.Get(); ok {
		line += fmt.Sprintf(" (%s)", genre)
	}
	if term, ok := state.Config.FixedTerm.Get(); ok {
		line += fmt.Sprintf(" • keyword %q", term)
	}
	line += fmt.Sprintf(" • %s", util.Quantify(state.History.Len(), "video", "videos"))

	return line
}
