package cmd

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/provider"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage search providers",
	Long: `Videos are found by a search provider. Two are built in: a scraper of
the YouTube results page and a client of the YouTube Data API.
More can be added as Lua scripts, see "itube where --sources".`,
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Print provider ids only")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "Only list Lua providers")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "Only list built-in providers")

	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sourcesListCmd.SetOut(os.Stdout)
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available search providers",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		sections := []lo.Tuple2[string, []*provider.Provider]{
			lo.T2("Builtin", provider.Builtins()),
			lo.T2("Custom", provider.Customs()),
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			sections = sections[:1]
		case lo.Must(cmd.Flags().GetBool("custom")):
			sections = sections[1:]
		}

		heading := style.New().Foreground(color.HiBlue).Bold(true).Render
		for i, section := range sections {
			if !raw {
				if i > 0 {
					cmd.Println()
				}
				cmd.Println(heading(section.A + ":"))
			}

			for _, p := range section.B {
				if raw {
					cmd.Println(p.ID)
				} else {
					cmd.Println(providerLine(p))
				}
			}
		}
	},
}

func providerLine(p *provider.Provider) string {
	line := fmt.Sprintf("%s %s", p.ID, style.Faint("("+p.Name+")"))
	if p.ID == viper.GetString(key.SearchProvider) {
		line += " " + style.Fg(color.Green)("default")
	}
	return line
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove [name...]",
	Short: "Remove Lua providers",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.Customs(), func(p *provider.Provider, _ int) string {
			return p.Name
		}), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			p, ok := provider.Get(name)
			if !ok || !p.IsCustom {
				handleErr(fmt.Errorf("no Lua provider named %q", name))
			}

			handleErr(filesystem.API().Remove(filepath.Join(where.Sources(), p.Name+provider.CustomProviderExtension)))
			succeed("removed %s", style.Fg(color.Yellow)(p.Name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesInstallCmd)
}

var sourcesInstallCmd = &cobra.Command{
	Use:     "install [url...]",
	Short:   "Download Lua providers into the sources directory",
	Long:    `Download Lua providers. Each script is loaded once before it is saved, so a broken download never replaces a working provider.`,
	Args:    cobra.MinimumNArgs(1),
	Example: "  itube sources install https://example.com/providers/invidious.lua",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		for _, url := range args {
			erase := util.PrintErasable(fmt.Sprintf("%s Installing %s...", icon.Get(icon.Progress), url))
			dest, changed, err := provider.Install(ctx, url)
			erase()
			handleErr(err)

			succeed("%s %s", style.Fg(color.Yellow)(dest), lo.Ternary(changed, "installed", "is up to date"))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "Name of the new provider")
	sourcesGenCmd.Flags().StringP("url", "u", "", "Site the provider searches")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
	sourcesGenCmd.SetOut(os.Stdout)
}

var sourcesGenCmd = &cobra.Command{
	Use:     "gen",
	Short:   "Generate a Lua provider skeleton",
	Long:    `Generate a Lua provider defining ` + constant.SearchVideosFn + ` and print its path.`,
	Example: "  itube sources gen --name invidious --url https://yewtu.be",
	Run: func(cmd *cobra.Command, args []string) {
		name := lo.Must(cmd.Flags().GetString("name"))
		target := filepath.Join(where.Sources(), util.SanitizeFilename(name)+provider.CustomProviderExtension)

		file, err := filesystem.API().Create(target)
		handleErr(err)
		defer util.Ignore(file.Close)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		handleErr(renderSource(file, name, lo.Must(cmd.Flags().GetString("url")), author))
		cmd.Println(target)
	},
}

var sourceTemplate = template.Must(template.New("source").Funcs(template.FuncMap{
	"repeat": strings.Repeat,
	"plus":   func(a, b int) int { return a + b },
	"max":    util.Max[int],
}).Parse(constant.SourceTemplate))

// renderSource writes a Lua provider skeleton.
func renderSource(w io.Writer, name, url, author string) error {
	return sourceTemplate.Execute(w, struct {
		Name           string
		URL            string
		SearchVideosFn string
		Author         string
	}{
		Name:           name,
		URL:            url,
		SearchVideosFn: constant.SearchVideosFn,
		Author:         author,
	})
}
