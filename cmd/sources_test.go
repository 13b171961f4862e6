package cmd

import (
	"strings"
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/provider"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderSource(t *testing.T) {
	Convey("Given a provider name and url", t, func() {
		var b strings.Builder
		So(renderSource(&b, "invidious", "https://yewtu.be", "ava"), ShouldBeNil)
		lines := strings.Split(b.String(), "\n")

		Convey("The header should carry the metadata", func() {
			So(lines[1], ShouldEqual, "-- @name    invidious")
			So(lines[2], ShouldEqual, "-- @url     https://yewtu.be")
			So(lines[3], ShouldEqual, "-- @author  ava")
		})

		Convey("The divider should be wider than the longest field", func() {
			So(lines[0], ShouldEqual, strings.Repeat("-", len("https://yewtu.be")+12))
		})

		Convey("The search function should be defined", func() {
			So(b.String(), ShouldContainSubstring, "function SearchVideos(query)")
		})
	})
}

func TestProviderLine(t *testing.T) {
	Convey("Provider lines should show the id and name", t, func() {
		line := providerLine(&provider.Provider{ID: "invidious custom", Name: "invidious"})
		So(line, ShouldStartWith, "invidious custom ")
		So(line, ShouldContainSubstring, "invidious")
	})
}
