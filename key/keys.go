// Package key lists every configuration key known to the application.
package key

// Search - query generation and provider selection.
const (
	SearchProvider     = "search.provider"
	SearchLimit        = "search.limit"
	SearchKeyword      = "search.keyword"
	SearchWordlist     = "search.wordlist"
	SearchFallbackTerm = "search.fallback_term"

	SearchKeywordSuggestions = "search.keyword_suggestions"
)

// Genres - genre-cycle mode.
const (
	GenresList  = "genres.list"
	GenresCycle = "genres.cycle"
)

// Player - external player and the playback failure policy.
const (
	Player                 = "player.default"
	PlayerRetryMaxFailures = "player.retry.max_failures"
	PlayerRetryIntervalMs  = "player.retry.interval_ms"
	PlayerRetryBurst       = "player.retry.burst"
)

// Server - browser shell.
const (
	ServerAddress      = "server.address"
	ServerCRT          = "server.crt"
	ServerCRTIntensity = "server.crt_intensity"
	ServerOpenBrowser  = "server.open_browser"
)

// Network
const (
	NetworkSpoofTLS = "network.spoof_tls"
	NetworkTimeout  = "network.timeout"
)

// Iconography
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI)
const (
	TUIItemSpacing   = "tui.item_spacing"
	TUIShowURLs      = "tui.show_urls"
	TUIKeywordPrompt = "tui.keyword_prompt"
)

// Logging
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
