// Package history records the videos selected during a session.
// Nothing is persisted; the history dies with the process.
package history

import (
	"sync"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"golang.org/x/exp/slices"
)

// Entry is one successful selection. Entries are never modified after Append.
type Entry struct {
	Title string    `json:"title" jsonschema:"description=Title of the selected video"`
	ID    string    `json:"id" jsonschema:"description=Video id"`
	Index int       `json:"index" jsonschema:"description=Zero-based position in the session history"`
	Query string    `json:"query" jsonschema:"description=Search term that produced the video"`
	At    time.Time `json:"at"`
}

// URL is the watch page of the entry.
func (e Entry) URL() string {
	return (&source.Video{ID: e.ID}).URL()
}

// History is an append-only, goroutine safe list of entries.
type History struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

func New() *History {
	return &History{now: time.Now}
}

// Append records video as the next entry and returns it.
func (h *History) Append(video *source.Video, query string) Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := Entry{
		Title: video.Title,
		ID:    video.ID,
		Index: len(h.entries),
		Query: query,
		At:    h.now(),
	}
	h.entries = append(h.entries, entry)
	return entry
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Recent returns up to n entries, newest first.
func (h *History) Recent(n int) []Entry {
	entries := h.Entries()
	slices.Reverse(entries)
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Last returns the newest entry.
func (h *History) Last() (Entry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}
