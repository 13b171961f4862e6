package cmd

import (
	"github.com/AvaAvarai/IndimensionalYoutube/mini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)
}

var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Shuffle from a prompt menu instead of the full-screen interface",
	Long:  `Run the shuffle session in a plain prompt menu. Videos still play in the configured player.`,
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		ctx, cancel := signalContext()
		defer cancel()

		s, err := newShell(ctx)
		handleErr(err)

		handleErr(mini.Run(ctx, &mini.Options{
			Engine:       s.engine,
			Player:       s.player,
			PlayerEvents: s.events,
			Degraded:     s.degraded,
		}))
	},
}
