package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AvaAvarai/IndimensionalYoutube/auth"
	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/open"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const apiConsoleURL = "https://console.cloud.google.com/apis/library/youtube.googleapis.com"

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the YouTube Data API key used by the youtube-api provider",
	Long: `The youtube-api provider searches through the YouTube Data API v3.
Its key is kept in the system keyring, or read from ` + auth.EnvAPIKey + ` when set.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().StringP("key", "k", "", "The API key. Prompted for when omitted")
	authSetCmd.Flags().Bool("open", false, "Open the Google Cloud console to create a key first")
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the API key in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("open")) {
			if err := open.Start(apiConsoleURL); err != nil {
				fmt.Println(apiConsoleURL)
			}
		}

		apiKey := lo.Must(cmd.Flags().GetString("key"))
		if apiKey == "" {
			prompt := &survey.Password{
				Message: "YouTube Data API key",
			}
			handleErr(survey.AskOne(prompt, &apiKey, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetAPIKey(apiKey))
		fmt.Printf(
			"%s stored key %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Yellow)(auth.Mask(apiKey)),
		)
	},
}

func init() {
	authCmd.AddCommand(authDeleteCmd)
	authDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Remove the API key from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirmed bool
			confirm := &survey.Confirm{
				Message: "Remove the stored API key?",
				Default: false,
			}
			handleErr(survey.AskOne(confirm, &confirmed))

			if !confirmed {
				return
			}
		}

		handleErr(auth.DeleteAPIKey())
		fmt.Printf("%s removed the API key\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
	authStatusCmd.SetOut(os.Stdout)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an API key is available",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey, err := auth.APIKey()
		switch {
		case errors.Is(err, auth.ErrNotFound):
			cmd.Println(style.Fg(color.Red)("no API key, run \"itube auth set\""))
		case err != nil:
			handleErr(err)
		default:
			origin := "keyring"
			if os.Getenv(auth.EnvAPIKey) != "" {
				origin = auth.EnvAPIKey
			}
			cmd.Printf("%s %s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), auth.Mask(apiKey), style.Faint("("+origin+")"))
		}
	},
}
