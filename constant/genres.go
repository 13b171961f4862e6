package constant

// DefaultGenres is the genre set used for genre-cycle mode when none is configured.
var DefaultGenres = []string{
	"Music",
	"Gaming",
	"News",
	"Sports",
	"Comedy",
	"Education",
	"Film",
	"Technology",
	"Travel",
}

// FallbackTerm is the only query available when the word list can not be loaded.
const FallbackTerm = "random"

// WordlistFilename is the default name of the word list inside the config directory.
const WordlistFilename = "dict.txt"
