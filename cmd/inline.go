package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/genre"
	"github.com/AvaAvarai/IndimensionalYoutube/inline"
	"github.com/AvaAvarai/IndimensionalYoutube/selector"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().IntP("cycles", "n", 1, "Number of shuffles to run")
	inlineCmd.Flags().BoolP("courageous", "c", false, "Switch to another genre on every shuffle after the first")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("mode", "m", "", "Selection mode: free or genre-cycle")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to this file instead of stdout")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{selector.ModeFree.String(), selector.ModeGenreCycle.String()}, cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Shuffle without any interaction and print the picked videos",
	Long: `Run shuffles non-interactively. Every picked video is printed as
its URL and title separated by a tab, or described in a JSON document with --json.

Nothing is played, which makes inline mode suitable for scripts:

  itube inline -n 5 | cut -f1 | xargs -n1 mpv`,
	Example: "  itube inline --genres Music,News --mode genre-cycle --courageous -n 3 --json",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		engine, words, err := newEngine(ctx)
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		}

		options := &inline.Options{
			Out:        writer,
			Engine:     engine,
			Cycles:     lo.Must(cmd.Flags().GetInt("cycles")),
			Courageous: lo.Must(cmd.Flags().GetBool("courageous")),
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			Degraded:   words.Degraded,
		}

		if m := lo.Must(cmd.Flags().GetString("mode")); m != "" {
			mode, err := selector.ParseMode(m)
			handleErr(err)
			options.Mode = mo.Some(mode)
		}

		handleErr(inline.Run(ctx, options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "video", "result", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genres known to genre-cycle mode",
}

func init() {
	genresCmd.AddCommand(genresListCmd)
	genresListCmd.SetOut(os.Stdout)
}

var genresListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the default genres",
	Run: func(cmd *cobra.Command, args []string) {
		for _, g := range constant.DefaultGenres {
			cmd.Println(g)
		}
	},
}

func init() {
	genresCmd.AddCommand(genresResolveCmd)
	genresResolveCmd.SetOut(os.Stdout)
}

var genresResolveCmd = &cobra.Command{
	Use:     "resolve [name...]",
	Short:   "Show which default genre each name matches",
	Args:    cobra.MinimumNArgs(1),
	Example: "  itube genres resolve musc tech,gam",
	Run: func(cmd *cobra.Command, args []string) {
		names := lo.FlatMap(args, func(arg string, _ int) []string {
			return genre.Split(arg)
		})

		for _, name := range names {
			resolved, err := genre.Resolve(name, constant.DefaultGenres)
			handleErr(err)
			cmd.Printf("%s -> %s\n", name, resolved)
		}
	},
}
