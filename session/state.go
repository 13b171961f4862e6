// Package session owns the state of a shuffle session and drives the
// search, pick and retry cycle in response to shell events.
package session

import (
	"fmt"

	"github.com/AvaAvarai/IndimensionalYoutube/history"
	"github.com/AvaAvarai/IndimensionalYoutube/selector"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/samber/mo"
)

// Status is the position of the session in its state machine.
type Status int

const (
	StatusIdle Status = iota
	StatusSearching
	StatusPlaying
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSearching:
		return "searching"
	case StatusPlaying:
		return "playing"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is a snapshot of a session.
// History is shared with the engine and keeps growing after the snapshot is taken.
type State struct {
	ID      string
	Status  Status
	Config  selector.QueryConfig
	Current mo.Option[*source.Video]
	History *history.History

	// Query is the term of the latest search, whether or not it found anything.
	Query string
}
