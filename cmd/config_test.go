package cmd

import (
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/config"
	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestParseValue(t *testing.T) {
	Convey("Given config fields of every kind", t, func() {
		Convey("Integers should be parsed", func() {
			v, err := parseValue(config.Default[key.SearchLimit], []string{"35"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 35)

			_, err = parseValue(config.Default[key.SearchLimit], []string{"many"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans should be parsed", func() {
			v, err := parseValue(config.Default[key.GenresCycle], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("Lists should accept repeated and comma separated values", func() {
			v, err := parseValue(config.Default[key.GenresList], []string{"music, news", "cooking shows"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"music", "news", "cooking shows"})
		})

		Convey("A missing value should be refused", func() {
			_, err := parseValue(config.Default[key.Player], nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestNormalizeValue(t *testing.T) {
	Convey("Given values that name something", t, func() {
		Convey("Genres should resolve to their canonical names", func() {
			v, err := normalizeValue(key.GenresList, []string{"music", "gamng", "Cooking shows"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"Music", "Gaming", "Cooking shows"})
		})

		Convey("Players should be lower cased and checked", func() {
			v, err := normalizeValue(key.Player, "MPV")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "mpv")

			_, err = normalizeValue(key.Player, "vlc")
			So(err, ShouldNotBeNil)
		})

		Convey("Providers should be matched by name or id", func() {
			v, err := normalizeValue(key.SearchProvider, "YouTube-API")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "youtube-api")

			_, err = normalizeValue(key.SearchProvider, "vimeo")
			So(err, ShouldNotBeNil)
		})

		Convey("Unknown icon variants should be refused", func() {
			_, err := normalizeValue(key.IconsVariant, "sparkles")
			So(err, ShouldNotBeNil)
		})

		Convey("Other keys should pass through", func() {
			v, err := normalizeValue(key.SearchLimit, 10)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 10)
		})
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("A misspelled key should suggest the closest one", t, func() {
		_, err := lookupField("player.retry.max_failure")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.PlayerRetryMaxFailures)
	})
}
