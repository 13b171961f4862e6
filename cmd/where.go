package cmd

import (
	"os"

	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// location is a path printed by where or emptied by clear.
type location struct {
	name  string
	flag  string
	short mo.Option[string]
	path  func() string
	// hidden locations are only printed when asked for
	hidden bool
}

func (l location) register(cmd *cobra.Command, usage string) {
	if short, ok := l.short.Get(); ok {
		cmd.Flags().BoolP(l.flag, short, false, usage)
	} else {
		cmd.Flags().Bool(l.flag, false, usage)
	}
}

var whereLocations = []location{
	{name: "Config", flag: "config", short: mo.Some("c"), path: where.Config},
	{name: "Sources", flag: "sources", short: mo.Some("s"), path: where.Sources},
	{name: "Word list", flag: "wordlist", short: mo.Some("w"), path: where.Wordlist},
	{name: "Logs", flag: "logs", short: mo.Some("l"), path: where.Logs},
	{name: "Cache", flag: "cache", path: where.Cache, hidden: true},
	{name: "Keywords", flag: "keywords", path: where.Keywords, hidden: true},
	{name: "Temp", flag: "temp", path: where.Temp, hidden: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range whereLocations {
		l.register(whereCmd, l.name+" path")
		if l.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereLocations, func(l location, _ int) string {
		return l.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where itube keeps its config, providers and logs",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range whereLocations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(whereLocations, func(l location, _ int) bool {
			return l.hidden
		})

		for i, l := range visible {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(l.name+"?"), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())
		}
	},
}
