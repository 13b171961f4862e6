// Package cmd implements the command-line interface of itube.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/provider"
	"github.com/AvaAvarai/IndimensionalYoutube/query"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/AvaAvarai/IndimensionalYoutube/tui"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	"github.com/AvaAvarai/IndimensionalYoutube/version"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("provider", "p", "", "Search provider to use")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.All(), func(p *provider.Provider, _ int) string {
			return p.ID
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.SearchProvider, rootCmd.PersistentFlags().Lookup("provider")))

	rootCmd.PersistentFlags().StringP("keyword", "k", "", "Search this term on every shuffle")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("keyword", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.SearchKeyword, rootCmd.PersistentFlags().Lookup("keyword")))

	rootCmd.PersistentFlags().StringSliceP("genres", "G", []string{}, "Genres used in genre-cycle mode")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("genres", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return constant.DefaultGenres, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.GenresList, rootCmd.PersistentFlags().Lookup("genres")))

	rootCmd.PersistentFlags().BoolP("cycle", "g", false, "Start in genre-cycle mode")
	lo.Must0(viper.BindPFlag(key.GenresCycle, rootCmd.PersistentFlags().Lookup("cycle")))

	rootCmd.PersistentFlags().StringP("wordlist", "w", "", "Word list path or URL used in free mode")
	lo.Must0(viper.BindPFlag(key.SearchWordlist, rootCmd.PersistentFlags().Lookup("wordlist")))

	rootCmd.PersistentFlags().String("player", "", "Media player to use: mpv or iina")
	lo.Must0(viper.BindPFlag(key.Player, rootCmd.PersistentFlags().Lookup("player")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// leftover mpv sockets of crashed sessions
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Shuffle through random YouTube videos",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Shuffle through random YouTube videos, by word or by genre"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		ctx, cancel := signalContext()
		defer cancel()

		s, err := newShell(ctx)
		handleErr(err)

		handleErr(tui.Run(ctx, &tui.Options{
			Engine:       s.engine,
			Player:       s.player,
			PlayerEvents: s.events,
			Degraded:     s.degraded,
		}))
	},
}

// Execute runs the command selected by the arguments.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
