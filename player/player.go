// Package player drives an external media player for the terminal shells.
// The primary backend is mpv, controlled over its JSON-IPC socket.
package player

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/spf13/viper"
)

// Player is a media playback backend.
type Player interface {
	// Play loads the video, replacing whatever is currently playing.
	Play(video *source.Video) error

	TogglePause() error

	// Paused reports whether playback is suspended.
	Paused() (bool, error)

	IsRunning() bool

	// Wait returns a channel that is closed when the player process exits.
	Wait() <-chan struct{}

	Close() error
}

// Handler receives playback events produced by a player.
type Handler func(session.Event)

const (
	NameMPV  = "mpv"
	NameIINA = "iina"
)

// Names lists the supported backends.
var Names = []string{NameMPV, NameIINA}

// New returns the backend called name. Events are delivered to handle
// when the backend can report them.
func New(name string, handle Handler) (Player, error) {
	switch strings.ToLower(name) {
	case NameMPV:
		return NewMPV(handle), nil
	case NameIINA:
		return NewIINA(), nil
	default:
		return nil, fmt.Errorf("unknown player %q, expected one of %s", name, strings.Join(Names, ", "))
	}
}

// FromViper returns the backend set by player.default.
func FromViper(handle Handler) (Player, error) {
	return New(viper.GetString(key.Player), handle)
}

// Binary is the executable a backend needs on PATH.
func Binary(name string) string {
	if strings.EqualFold(name, NameIINA) {
		return "iina"
	}
	return "mpv"
}

// Available reports the resolved path of the backend executable.
func Available(name string) (string, error) {
	return exec.LookPath(Binary(name))
}
