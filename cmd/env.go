package cmd

import (
	"os"
	"sort"

	"github.com/AvaAvarai/IndimensionalYoutube/auth"
	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/config"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envVariables lists every variable itube reads, sorted.
func envVariables() []string {
	names := lo.Map(config.EnvExposed, func(k string, _ int) string {
		field := config.Default[k]
		return field.Env()
	})
	names = append(names, where.EnvConfigPath, auth.EnvAPIKey)
	sort.Strings(names)

	return lo.Uniq(names)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables itube reads",
	Long: `Show the environment variables itube reads and their values.
Every config key has one, and they take precedence over the config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		name := style.New().Bold(true).Foreground(color.Purple).Render

		for _, env := range envVariables() {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			if env == auth.EnvAPIKey && present {
				value = auth.Mask(value)
			}

			cmd.Printf("%s=%s\n", name(env), lo.Ternary(present, style.Fg(color.Green)(value), style.Fg(color.Red)("unset")))
		}
	},
}
