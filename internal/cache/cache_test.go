package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type entry struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

func TestCache(t *testing.T) {
	Convey("Given a cache key", t, func() {
		key := GenerateKey("https://example.com", "GET")

		Convey("Keys should be stable and case-insensitive", func() {
			So(key, ShouldEqual, GenerateKey("HTTPS://EXAMPLE.COM", "get"))
			So(key, ShouldNotEqual, GenerateKey("https://example.com", "POST"))
		})

		Convey("A missing entry should not be read", func() {
			var got entry
			So(Read(GenerateKey("missing"), &got), ShouldBeFalse)
		})

		Convey("A written entry should be read back", func() {
			So(Write(key, entry{Status: 200, Body: "ok"}), ShouldBeNil)

			var got entry
			So(Read(key, &got), ShouldBeTrue)
			So(got, ShouldResemble, entry{Status: 200, Body: "ok"})
		})

		Convey("An expired entry should be ignored and collected", func() {
			So(Write(key, entry{Status: 200}), ShouldBeNil)
			path := filepath.Join(dir(), key)
			old := time.Now().Add(-2 * TTL)
			So(filesystem.API().Chtimes(path, old, old), ShouldBeNil)

			var got entry
			So(Read(key, &got), ShouldBeFalse)

			CollectGarbage()
			exists, err := filesystem.API().Exists(path)
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
