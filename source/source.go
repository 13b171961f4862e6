// Package source defines videos and the interface every search provider implements.
package source

// Source is a search provider.
type Source interface {
	// Name is the human readable provider name.
	Name() string

	// ID is the stable identifier used in config and on the command line.
	ID() string

	// Search returns the videos matching query. An empty slice is a valid answer.
	Search(query string) ([]*Video, error)
}
