package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/picker"
	"github.com/AvaAvarai/IndimensionalYoutube/random"
	"github.com/AvaAvarai/IndimensionalYoutube/selector"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

type stubSource struct {
	mu      sync.Mutex
	results []*source.Video
	queries []string
}

func (*stubSource) Name() string { return "Stub" }
func (*stubSource) ID() string   { return "stub" }

func (s *stubSource) Search(query string) ([]*source.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	return s.results, nil
}

func (s *stubSource) setResults(results ...*source.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = results
}

type fakePlayer struct {
	mu     sync.Mutex
	played []*source.Video
	refuse map[string]bool
	paused bool
}

func (p *fakePlayer) Play(video *source.Video) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, video)
	if p.refuse[video.ID] {
		return errors.New("unplayable")
	}
	return nil
}

func (p *fakePlayer) TogglePause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = !p.paused
	return nil
}

func (p *fakePlayer) Paused() (bool, error) { return p.paused, nil }
func (p *fakePlayer) IsRunning() bool       { return true }
func (p *fakePlayer) Wait() <-chan struct{} { return nil }
func (p *fakePlayer) Close() error          { return nil }

func (p *fakePlayer) last() *source.Video {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.played) == 0 {
		return nil
	}
	return p.played[len(p.played)-1]
}

var (
	cat = &source.Video{ID: "catvideo01", Title: "Cat compilation"}
	dog = &source.Video{ID: "dogvideo01", Title: "Dog compilation"}
)

// collect runs cmd and returns the messages it produced quickly.
// Timers such as spinner ticks are left behind.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

// drive feeds msg to the bubble and follows up on engine results.
func drive(b *statefulBubble, msg tea.Msg) {
	_, cmd := b.Update(msg)
	for _, next := range collect(cmd) {
		switch next.(type) {
		case outcomeMsg, playFailedMsg, string:
			drive(b, next)
		}
	}
}

func start(b *statefulBubble) {
	for _, msg := range collect(b.Init()) {
		if _, ok := msg.(outcomeMsg); ok {
			drive(b, msg)
		}
	}
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestBubble(src *stubSource, p *fakePlayer, cfg selector.QueryConfig) *statefulBubble {
	rng := random.NewFixed(0)
	engine, err := session.New(session.Options{
		Source:   src,
		Selector: selector.New(rng, []string{"cats"}),
		Picker:   picker.New(rng),
		Config:   cfg,
	})
	So(err, ShouldBeNil)

	return newBubble(context.Background(), &Options{Engine: engine, Player: p})
}

func TestBubble(t *testing.T) {
	Convey("Given a started shell", t, func() {
		src := &stubSource{results: []*source.Video{cat, dog}}
		p := &fakePlayer{refuse: map[string]bool{}}
		b := newTestBubble(src, p, selector.QueryConfig{})

		So(b.state, ShouldEqual, loadingState)
		start(b)

		Convey("It should play the first video right away", func() {
			So(b.state, ShouldEqual, playingState)
			So(p.last(), ShouldEqual, cat)
			So(b.View(), ShouldContainSubstring, "Cat compilation")
			So(b.engine.History().Len(), ShouldEqual, 1)
		})

		Convey("Pressing s should shuffle again", func() {
			drive(b, keys("s"))
			So(b.state, ShouldEqual, playingState)
			So(b.engine.History().Len(), ShouldEqual, 2)
			So(src.queries, ShouldResemble, []string{"cats", "cats"})
		})

		Convey("A failure reported by the player should play another video", func() {
			drive(b, playerEventMsg{event: session.PlaybackFailed{Reason: "loading failed"}})
			So(b.state, ShouldEqual, playingState)
			So(p.last(), ShouldEqual, dog)
		})

		Convey("A failure of a video that was already replaced should be ignored", func() {
			drive(b, playerEventMsg{event: session.PlaybackFailed{VideoID: dog.ID, Reason: "loading failed"}})
			So(b.state, ShouldEqual, playingState)
			So(b.current, ShouldEqual, cat)
			So(b.engine.History().Len(), ShouldEqual, 1)
		})

		Convey("A video the player refuses should be replaced", func() {
			p.refuse[cat.ID] = true
			drive(b, keys("s"))
			So(b.state, ShouldEqual, playingState)
			So(p.last(), ShouldEqual, dog)
			So(b.current, ShouldEqual, dog)
		})

		Convey("Setting a keyword should shuffle with it", func() {
			drive(b, keys("k"))
			So(b.state, ShouldEqual, keywordState)

			drive(b, keys("otters"))
			drive(b, tea.KeyMsg{Type: tea.KeyEnter})

			So(b.state, ShouldEqual, playingState)
			So(b.engine.Snapshot().Query, ShouldEqual, "otters")
			So(b.engine.Snapshot().Config.FixedTerm.OrEmpty(), ShouldEqual, "otters")

			Convey("And an empty keyword should clear it", func() {
				drive(b, keys("k"))
				for range "otters" {
					drive(b, tea.KeyMsg{Type: tea.KeyBackspace})
				}
				drive(b, tea.KeyMsg{Type: tea.KeyEnter})

				So(b.engine.Snapshot().Config.FixedTerm.IsAbsent(), ShouldBeTrue)
				So(b.engine.Snapshot().Query, ShouldEqual, "cats")
			})
		})

		Convey("Escape should leave the keyword dialog untouched", func() {
			drive(b, keys("k"))
			drive(b, keys("x"))
			drive(b, tea.KeyMsg{Type: tea.KeyEsc})

			So(b.state, ShouldEqual, playingState)
			So(b.engine.Snapshot().Config.FixedTerm.IsAbsent(), ShouldBeTrue)
		})

		Convey("Genre cycle without genres should be refused with a notification", func() {
			drive(b, keys("g"))

			So(b.state, ShouldEqual, playingState)
			So(b.engine.Snapshot().Config.Mode, ShouldEqual, selector.ModeFree)
			So(b.notifier.Notification(), ShouldContainSubstring, "genre")
		})

		Convey("The history should list played videos newest first", func() {
			drive(b, keys("s"))
			drive(b, keys("h"))

			So(b.state, ShouldEqual, historyState)
			So(b.historyC.Items(), ShouldHaveLength, 2)
			So(b.historyC.Items()[0].(*listItem).entry.Index, ShouldEqual, 1)

			drive(b, tea.KeyMsg{Type: tea.KeyEsc})
			So(b.state, ShouldEqual, playingState)
		})

		Convey("Space should toggle pause", func() {
			drive(b, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			So(p.paused, ShouldBeTrue)
		})

		Convey("An empty search should show the empty state", func() {
			src.setResults()
			drive(b, keys("s"))

			So(b.state, ShouldEqual, emptyState)
			So(b.current, ShouldBeNil)
			So(b.View(), ShouldContainSubstring, "No videos found")
		})
	})

	Convey("Given genre-cycle mode with one genre", t, func() {
		src := &stubSource{results: []*source.Video{cat}}
		p := &fakePlayer{refuse: map[string]bool{}}
		b := newTestBubble(src, p, selector.QueryConfig{Mode: selector.ModeGenreCycle, Genres: []string{"Music"}})
		start(b)

		Convey("A courageous shuffle should keep playing and explain why", func() {
			So(b.state, ShouldEqual, playingState)

			drive(b, keys("c"))
			So(b.state, ShouldEqual, playingState)
			So(b.notifier.Notification(), ShouldNotBeEmpty)
			So(b.engine.History().Len(), ShouldEqual, 1)
		})

		Convey("The view should show the genre", func() {
			So(b.View(), ShouldContainSubstring, "Music")
		})
	})
}
