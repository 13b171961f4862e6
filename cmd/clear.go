package cmd

import (
	"fmt"
	"os"

	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

var clearLocations = []location{
	{name: "cache directory", flag: "cache", short: mo.Some("c"), path: where.Cache},
	{name: "remembered keywords", flag: "keywords", short: mo.Some("k"), path: where.Keywords},
	{name: "logs", flag: "logs", short: mo.Some("l"), path: where.Logs},
	{name: "temp directory", flag: "temp", path: where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, l := range clearLocations {
		l.register(clearCmd, "clear "+l.name)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached word lists, remembered keywords, logs and temporary files",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearLocations, func(l location, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, l := range selected {
			name := util.Capitalize(l.name)
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), name))
			err := util.Delete(l.path())
			erase()
			if err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
			succeed("%s cleared", name)
		}
	},
}
