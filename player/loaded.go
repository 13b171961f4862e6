package player

import (
	"sync"

	"github.com/AvaAvarai/IndimensionalYoutube/session"
)

// keptEntries bounds how many past playlist entries stay attributable.
const keptEntries = 16

// loadedVideos remembers which video each mpv playlist entry holds,
// so that events about a replaced file are not taken for the current one.
type loadedVideos struct {
	mu      sync.Mutex
	current string
	entries map[int64]string
}

func newLoadedVideos() *loadedVideos {
	return &loadedVideos{entries: make(map[int64]string)}
}

// begin marks id as the video being loaded.
func (l *loadedVideos) begin(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.current = id
}

// loaded records the playlist entry from a loadfile reply.
func (l *loadedVideos) loaded(id string, reply any) {
	fields, ok := reply.(map[string]any)
	if !ok {
		return
	}

	entry, ok := fields["playlist_entry_id"].(float64)
	if !ok {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[int64(entry)] = id
	for old := range l.entries {
		if old <= int64(entry)-keptEntries {
			delete(l.entries, old)
		}
	}
}

// attribute stamps ev with the video it is about.
func (l *loadedVideos) attribute(ev session.Event, data any) session.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch ev := ev.(type) {
	case session.PlaybackFailed:
		ev.VideoID = l.current
		if event, ok := data.(mpvEvent); ok && event.PlaylistEntryID != 0 {
			if id, known := l.entries[event.PlaylistEntryID]; known {
				ev.VideoID = id
			}
		}
		return ev
	case session.PlaybackStarted:
		ev.VideoID = l.current
		return ev
	default:
		return ev
	}
}
