package config

import (
	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
)

// Default is every known key.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.SearchProvider, "youtube", "Search provider to use.\nType \"itube sources list\" to show available providers")
	register(key.SearchLimit, 20, "Maximum number of results requested from the provider")
	register(key.SearchKeyword, "", "Fixed search term.\nWhen set, it is used verbatim instead of genres or the word list")
	register(key.SearchWordlist, "", "Word list used in free mode.\nA local path or an http(s) URL. Empty means dict.txt in the config directory")
	register(key.SearchFallbackTerm, constant.FallbackTerm, "Query used when the word list can not be loaded")
	register(key.SearchKeywordSuggestions, true, "Remember keywords and suggest them in the keyword prompts")
	register(key.GenresList, constant.DefaultGenres, "Genres used in genre-cycle mode")
	register(key.GenresCycle, false, "Start in genre-cycle mode")
	register(key.Player, "mpv", "Media player to use")
	register(key.PlayerRetryMaxFailures, 8, "Consecutive playback failures before giving up.\n0 means never give up")
	register(key.PlayerRetryIntervalMs, 500, "Minimum delay between failure-driven searches, in milliseconds")
	register(key.PlayerRetryBurst, 3, "Failure-driven searches allowed without delay")
	register(key.ServerAddress, "127.0.0.1:8765", "Address the browser shell listens on")
	register(key.ServerCRT, true, "Enable the CRT overlay in the browser shell")
	register(key.ServerCRTIntensity, 50, "CRT overlay intensity. From 0 to 100")
	register(key.ServerOpenBrowser, true, "Open the browser shell page on start")
	register(key.NetworkSpoofTLS, true, "Use a browser-like TLS fingerprint for scraping providers")
	register(key.NetworkTimeout, 20, "HTTP timeout in seconds")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUIShowURLs, true, "Show the URL of the playing video")
	register(key.TUIKeywordPrompt, "> ", "Prompt string of the keyword dialog")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}
