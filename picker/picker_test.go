package picker

import (
	"errors"
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/random"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPick(t *testing.T) {
	Convey("Given a picker", t, func() {
		p := New(random.New())

		Convey("An empty result set should be reported", func() {
			_, err := p.Pick(nil)
			So(errors.Is(err, ErrEmptyResults), ShouldBeTrue)

			_, err = p.Pick([]*source.Video{nil})
			So(errors.Is(err, ErrEmptyResults), ShouldBeTrue)
		})

		Convey("The picked video should be a member of the results", func() {
			results := []*source.Video{
				{ID: "aaaaaaaa", Title: "a"},
				{ID: "bbbbbbbb", Title: "b"},
				{ID: "cccccccc", Title: "c"},
			}
			seen := make(map[string]bool)
			for i := 0; i < 300; i++ {
				video, err := p.Pick(results)
				So(err, ShouldBeNil)
				So(results, ShouldContain, video)
				seen[video.ID] = true
			}
			So(len(seen), ShouldEqual, 3)
		})

		Convey("The random source decides the index", func() {
			results := []*source.Video{{ID: "aaaaaaaa"}, {ID: "bbbbbbbb"}}
			video, err := New(random.NewFixed(1)).Pick(results)
			So(err, ShouldBeNil)
			So(video.ID, ShouldEqual, "bbbbbbbb")
		})
	})
}

func TestPickExcept(t *testing.T) {
	Convey("Given results containing the excluded id", t, func() {
		results := []*source.Video{{ID: "aaaaaaaa"}, {ID: "bbbbbbbb"}}
		p := New(random.New())

		Convey("The excluded video should never be picked while others exist", func() {
			for i := 0; i < 50; i++ {
				video, err := p.PickExcept(results, "aaaaaaaa")
				So(err, ShouldBeNil)
				So(video.ID, ShouldEqual, "bbbbbbbb")
			}
		})

		Convey("The excluded video is picked when it is the only result", func() {
			video, err := p.PickExcept(results[:1], "aaaaaaaa")
			So(err, ShouldBeNil)
			So(video.ID, ShouldEqual, "aaaaaaaa")
		})
	})
}
