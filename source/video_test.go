package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVideo(t *testing.T) {
	Convey("Given a video", t, func() {
		video := &Video{ID: "dQw4w9WgXcQ", Title: "Never Gonna Give You Up"}

		Convey("It should be valid", func() {
			So(video.Valid(), ShouldBeTrue)
		})

		Convey("URL should point to the watch page", func() {
			So(video.URL(), ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		})

		Convey("EmbedURL should enable the js api", func() {
			So(video.EmbedURL(), ShouldStartWith, "https://www.youtube.com/embed/dQw4w9WgXcQ")
			So(video.EmbedURL(), ShouldContainSubstring, "enablejsapi=1")
		})

		Convey("String should prefer the title", func() {
			So(video.String(), ShouldEqual, "Never Gonna Give You Up")
			So((&Video{ID: "abcdefgh"}).String(), ShouldEqual, "abcdefgh")
		})
	})

	Convey("Ids with markup should be rejected", t, func() {
		So((&Video{ID: "<script>"}).Valid(), ShouldBeFalse)
		So((&Video{ID: ""}).Valid(), ShouldBeFalse)
	})
}
