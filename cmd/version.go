package cmd

import (
	"io"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/AvaAvarai/IndimensionalYoutube/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
}

type buildInfo struct {
	App      string
	Version  string
	Revision string
	BuiltAt  string
	BuiltBy  string
	Platform string
	Provider string
	Player   string
}

func currentBuild() buildInfo {
	return buildInfo{
		App:      constant.App,
		Version:  constant.Version,
		Revision: lo.Ternary(constant.Revision == "", "unknown", constant.Revision),
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Provider: viper.GetString(key.SearchProvider),
		Player:   viper.GetString(key.Player),
	}
}

var versionTemplate = template.Must(template.New("version").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"accent": style.Fg(color.Red),
}).Parse(`{{ accent "▶" }} {{ accent .App }}

  {{ faint "Version" }}      {{ bold .Version }}
  {{ faint "Git commit" }}   {{ bold .Revision }}
  {{ faint "Build date" }}   {{ bold .BuiltAt }}
  {{ faint "Built by" }}     {{ bold .BuiltBy }}
  {{ faint "Platform" }}     {{ bold .Platform }}
  {{ faint "Provider" }}     {{ bold .Provider }}
  {{ faint "Player" }}       {{ bold .Player }}
`))

func printBuild(w io.Writer, info buildInfo) error {
	return versionTemplate.Execute(w, info)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()
		handleErr(printBuild(cmd.OutOrStdout(), currentBuild()))
	},
}
