package query

import (
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchKeywordSuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered keywords", t, func() {
		So(Remember("otters", 1), ShouldBeNil)
		So(Remember("Otter facts", 10), ShouldBeNil)

		Convey("Suggestions should be sorted by rank", func() {
			s := SuggestMany("ott")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
			So(s[0], ShouldEqual, "otter facts")
			So(Suggest("ott").MustGet(), ShouldEqual, "otter facts")
		})

		Convey("Remembering again should refresh cached suggestions", func() {
			_ = SuggestMany("ott")
			So(Remember("otters", 100), ShouldBeNil)
			So(SuggestMany("ott")[0], ShouldEqual, "otters")
		})

		Convey("Blank keywords should not be stored", func() {
			So(Remember("   ", 5), ShouldBeNil)
			So(SuggestMany(""), ShouldNotContain, "")
		})

		Convey("Disabled suggestions should neither store nor return anything", func() {
			viper.Set(key.SearchKeywordSuggestions, false)
			defer viper.Set(key.SearchKeywordSuggestions, true)

			So(Remember("beavers", 1), ShouldBeNil)
			So(SuggestMany("ott"), ShouldBeEmpty)
			So(Suggest("ott").IsAbsent(), ShouldBeTrue)

			viper.Set(key.SearchKeywordSuggestions, true)
			So(SuggestMany("beav"), ShouldBeEmpty)
		})

		Convey("Input should be sanitized", func() {
			So(sanitize("  OTTERS  "), ShouldEqual, "otters")
		})
	})
}
