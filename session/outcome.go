package session

import (
	"github.com/AvaAvarai/IndimensionalYoutube/history"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/samber/mo"
)

// Kind classifies what handling an event led to.
type Kind int

const (
	// OutcomeUpdated means the event changed configuration or bookkeeping only.
	OutcomeUpdated Kind = iota
	// OutcomePlaying means a video was picked and should be played.
	OutcomePlaying
	// OutcomeEmpty means the search found nothing, or the provider failed.
	OutcomeEmpty
	// OutcomeIgnored means the event did not apply to the current status.
	OutcomeIgnored
	// OutcomeSuperseded means a newer search started before this one finished.
	OutcomeSuperseded
	// OutcomeGaveUp means too many videos failed to play in a row.
	OutcomeGaveUp
)

func (k Kind) String() string {
	switch k {
	case OutcomeUpdated:
		return "updated"
	case OutcomePlaying:
		return "playing"
	case OutcomeEmpty:
		return "empty"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSuperseded:
		return "superseded"
	case OutcomeGaveUp:
		return "gave-up"
	default:
		return "unknown"
	}
}

type Outcome struct {
	Kind  Kind
	Video *source.Video
	Entry history.Entry
	Query string
	Genre mo.Option[string]

	// Err is the provider error behind an OutcomeEmpty, if any.
	Err error
}
