package history

import (
	"fmt"
	"sync"
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHistory(t *testing.T) {
	Convey("Given an empty history", t, func() {
		h := New()

		Convey("It should have no entries", func() {
			So(h.Len(), ShouldEqual, 0)
			_, ok := h.Last()
			So(ok, ShouldBeFalse)
		})

		Convey("When appending two videos", func() {
			first := h.Append(&source.Video{ID: "aaaaaaaa", Title: "first"}, "music")
			second := h.Append(&source.Video{ID: "bbbbbbbb", Title: "second"}, "news")

			Convey("Then indices should follow selection order", func() {
				So(first.Index, ShouldEqual, 0)
				So(second.Index, ShouldEqual, 1)

				entries := h.Entries()
				So(len(entries), ShouldEqual, 2)
				So(entries[0].Title, ShouldEqual, "first")
				So(entries[0].Query, ShouldEqual, "music")
				So(entries[1].ID, ShouldEqual, "bbbbbbbb")
			})

			Convey("Then Recent should list the newest first", func() {
				recent := h.Recent(1)
				So(len(recent), ShouldEqual, 1)
				So(recent[0].Title, ShouldEqual, "second")
				So(len(h.Recent(-1)), ShouldEqual, 2)
			})

			Convey("Then mutating a returned slice should not change the history", func() {
				entries := h.Entries()
				entries[0].Title = "changed"
				So(h.Entries()[0].Title, ShouldEqual, "first")
			})

			Convey("Then the entry URL should point to the video", func() {
				So(second.URL(), ShouldEndWith, "v=bbbbbbbb")
			})
		})
	})

	Convey("Concurrent appends should produce unique, dense indices", t, func() {
		h := New()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				h.Append(&source.Video{ID: fmt.Sprintf("video%04d", i)}, "q")
			}(i)
		}
		wg.Wait()

		So(h.Len(), ShouldEqual, 50)
		for i, entry := range h.Entries() {
			So(entry.Index, ShouldEqual, i)
		}
	})
}
