package session

import "github.com/AvaAvarai/IndimensionalYoutube/selector"

// Event is something a shell or the player reports to the engine.
type Event interface {
	event()
}

// Shuffle asks for a new video. AvoidCurrentGenre is the courageous shuffle.
type Shuffle struct {
	AvoidCurrentGenre bool
}

// PlaybackFailed reports that the current video could not be played.
// A non-empty VideoID names the video the report is about; reports for
// any other video than the current one are ignored.
type PlaybackFailed struct {
	VideoID string
	Reason  string
}

// PlaybackStarted reports that the current video is actually playing.
type PlaybackStarted struct {
	VideoID string
}

// SetKeyword sets the fixed search term. An empty term clears it.
type SetKeyword struct {
	Term string
}

// SetMode switches between free and genre-cycle mode.
type SetMode struct {
	Mode selector.Mode
}

// SetGenres replaces the genre set.
type SetGenres struct {
	Genres []string
}

func (Shuffle) event()         {}
func (PlaybackFailed) event()  {}
func (PlaybackStarted) event() {}
func (SetKeyword) event()      {}
func (SetMode) event()         {}
func (SetGenres) event()       {}
