// Package constant holds application identifiers and built-in defaults.
package constant

const (
	// App is the application identifier used for paths, env prefixes and branding.
	App = "itube"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is sent with every outgoing request to search providers.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Repository is the GitHub owner/name pair used for release checks.
	Repository = "AvaAvarai/IndimensionalYoutube"
)

// Build information, set with -ldflags "-X".
var (
	BuiltAt  string
	BuiltBy  string
	Revision string
)
