package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		for name, fn := range map[string]func() string{
			"Config":  Config,
			"Cache":   Cache,
			"Logs":    Logs,
			"Sources": Sources,
			"Temp":    Temp,
		} {
			Convey(name+"() should resolve to an existing directory", func() {
				path := fn()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}

		Convey("Wordlist() should live in the config directory", func() {
			So(filepath.Dir(Wordlist()), ShouldEqual, Config())
			So(filepath.Base(Wordlist()), ShouldEqual, "dict.txt")
		})

		Convey("The config path can be overridden", func() {
			custom := filepath.Join(os.TempDir(), "itube-where-test")
			So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)
			So(EnvConfigPath, ShouldEqual, "ITUBE_CONFIG_PATH")
		})
	})
}
