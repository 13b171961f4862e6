package cmd

import (
	"io"
	"os"

	"github.com/AvaAvarai/IndimensionalYoutube/provider/custom"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	sourcesCmd.AddCommand(sourcesRunCmd)
	sourcesRunCmd.Flags().IntP("limit", "l", 10, "Maximum number of videos to print")
	sourcesRunCmd.SetOut(os.Stdout)
}

var sourcesRunCmd = &cobra.Command{
	Use:   "run [file] [query]",
	Short: "Search once with a local Lua provider",
	Long: `Load a Lua provider from any path and print what it returns for query.
Useful while writing a provider, before installing it.`,
	Args:    cobra.ExactArgs(2),
	Example: "  itube sources run ./invidious.lua \"cats\"",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := custom.LoadSource(args[0])
		handleErr(err)

		if closer, ok := src.(io.Closer); ok {
			defer util.Ignore(closer.Close)
		}

		videos, err := src.Search(args[1])
		handleErr(err)

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		for _, video := range lo.Subset(videos, 0, uint(max(limit, 0))) {
			cmd.Printf("%s\t%s %s\n", video.URL(), video.Title, style.Faint(video.Channel))
		}

		cmd.PrintErrln(style.Faint(util.Quantify(len(videos), "video", "videos") + " found"))
	},
}
