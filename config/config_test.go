package config

import (
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetStringSlice(key.GenresList), ShouldContain, "Travel")
			So(viper.GetString(key.SearchFallbackTerm), ShouldEqual, "random")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("player.retry.max_failures"), ShouldEqual, "player_retry_max_failures")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.ServerCRTIntensity]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "ITUBE_SERVER_CRT_INTENSITY")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.ServerCRTIntensity)
		})

		Convey("JSON should include the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"int"`)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given loaded defaults", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Defaults should be valid", func() {
			So(Validate(), ShouldBeNil)
		})

		Convey("An out of range intensity should be rejected", func() {
			viper.Set(key.ServerCRTIntensity, 150)
			defer viper.Set(key.ServerCRTIntensity, 50)
			So(Validate(), ShouldNotBeNil)
		})

		Convey("A negative failure cap should be rejected", func() {
			viper.Set(key.PlayerRetryMaxFailures, -1)
			defer viper.Set(key.PlayerRetryMaxFailures, 8)
			So(Validate(), ShouldNotBeNil)
		})
	})
}
