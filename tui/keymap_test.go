package tui

import (
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/charmbracelet/bubbles/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func helpKeys(bindings []key.Binding) []string {
	return lo.Map(bindings, func(b key.Binding, _ int) string {
		return b.Help().Desc
	})
}

func TestKeymap(t *testing.T) {
	Convey("Given a keymap", t, func() {
		k := newStatefulKeymap()

		Convey("While loading only quitting should be offered", func() {
			k.setState(loadingState)
			So(k.ShortHelp(), ShouldHaveLength, 1)
		})

		Convey("While playing the full help should list more than the short one", func() {
			k.setState(playingState)
			So(len(k.FullHelp()[0]), ShouldBeGreaterThan, len(k.ShortHelp()))
			So(helpKeys(k.FullHelp()[0]), ShouldContain, "pause/resume")
		})

		Convey("The history list should describe enter as opening the video", func() {
			k.setState(historyState)
			So(helpKeys(k.ShortHelp()), ShouldContain, "open in browser")
		})
	})

	Convey("withDescription should keep the keys", t, func() {
		k := newStatefulKeymap()
		b := withDescription(k.confirm, "go")
		So(b.Keys(), ShouldResemble, []string{"enter"})
		So(b.Help().Desc, ShouldEqual, "go")
	})
}
