package custom

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func TestVideoFromTable(t *testing.T) {
	Convey("videoFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Should read id, title and channel", func() {
			tbl := L.NewTable()
			tbl.RawSetString("id", lua.LString("dQw4w9WgXcQ"))
			tbl.RawSetString("title", lua.LString("Song"))
			tbl.RawSetString("channel", lua.LString("Rick"))

			video, err := videoFromTable(tbl)
			So(err, ShouldBeNil)
			So(video.ID, ShouldEqual, "dQw4w9WgXcQ")
			So(video.Title, ShouldEqual, "Song")
			So(video.Channel, ShouldEqual, "Rick")
		})

		Convey("Should take the id from a url", func() {
			for _, url := range []string{
				"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1",
				"https://youtu.be/dQw4w9WgXcQ",
				"https://www.youtube.com/embed/dQw4w9WgXcQ",
				"https://www.youtube.com/shorts/dQw4w9WgXcQ",
			} {
				tbl := L.NewTable()
				tbl.RawSetString("url", lua.LString(url))

				video, err := videoFromTable(tbl)
				So(err, ShouldBeNil)
				So(video.ID, ShouldEqual, "dQw4w9WgXcQ")
				So(video.Title, ShouldEqual, "dQw4w9WgXcQ")
			}
		})

		Convey("Should fail without id and url", func() {
			tbl := L.NewTable()
			tbl.RawSetString("title", lua.LString("nothing"))

			_, err := videoFromTable(tbl)
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject ids that are not ids", func() {
			tbl := L.NewTable()
			tbl.RawSetString("id", lua.LString("\"><script>"))

			_, err := videoFromTable(tbl)
			So(err, ShouldNotBeNil)
		})
	})
}
