package cmd

import (
	"fmt"
	"net"

	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/open"
	"github.com/AvaAvarai/IndimensionalYoutube/server"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "Address to listen on")
	lo.Must0(viper.BindPFlag(key.ServerAddress, serveCmd.Flags().Lookup("address")))

	serveCmd.Flags().Bool("crt", true, "Enable the CRT overlay")
	lo.Must0(viper.BindPFlag(key.ServerCRT, serveCmd.Flags().Lookup("crt")))

	serveCmd.Flags().Int("crt-intensity", 50, "CRT overlay intensity, from 0 to 100")
	lo.Must0(viper.BindPFlag(key.ServerCRTIntensity, serveCmd.Flags().Lookup("crt-intensity")))

	serveCmd.Flags().BoolP("open", "o", true, "Open the page in the default browser")
	lo.Must0(viper.BindPFlag(key.ServerOpenBrowser, serveCmd.Flags().Lookup("open")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Shuffle in the browser with the embedded YouTube player",
	Long: `Serve a page that plays the shuffled videos in the YouTube IFrame player.
Videos the embedded player refuses are replaced automatically.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		engine, words, err := newEngine(ctx)
		handleErr(err)

		options := server.OptionsFromViper()
		options.Degraded = words.Degraded

		address := viper.GetString(key.ServerAddress)
		url := pageURL(address)

		ready := func() {
			fmt.Printf("%s serving on %s\n", icon.Get(icon.Link), style.Fg(style.AccentColor)(url))
			if viper.GetBool(key.ServerOpenBrowser) {
				if err := open.Start(url); err != nil {
					log.Warnf("open browser: %s", err)
				}
			}
		}

		handleErr(server.New(engine, options).Run(ctx, address, ready))
	},
}

// pageURL is where a browser reaches a server listening on address.
func pageURL(address string) string {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return "http://" + address
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}

	return "http://" + net.JoinHostPort(host, port)
}
