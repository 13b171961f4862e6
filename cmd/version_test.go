package cmd

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPrintBuild(t *testing.T) {
	Convey("Given build information", t, func() {
		info := buildInfo{
			App:      "itube",
			Version:  "1.2.0",
			Revision: "abc123",
			Platform: "linux/amd64",
			Provider: "youtube",
			Player:   "mpv",
		}

		Convey("Every field should be printed", func() {
			var b strings.Builder
			So(printBuild(&b, info), ShouldBeNil)

			out := b.String()
			for _, s := range []string{"itube", "1.2.0", "abc123", "linux/amd64", "youtube", "mpv"} {
				So(out, ShouldContainSubstring, s)
			}
		})
	})
}

func TestEnvVariables(t *testing.T) {
	Convey("The variable list should cover config keys and extras", t, func() {
		names := envVariables()
		So(names, ShouldContain, "ITUBE_SEARCH_PROVIDER")
		So(names, ShouldContain, "ITUBE_CONFIG_PATH")
		So(names, ShouldContain, "ITUBE_YOUTUBE_API_KEY")
	})
}
