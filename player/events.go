package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/samber/lo"
)

// EventCallback receives mpv events. For property changes name is the
// property and data its value; otherwise name is the event type and
// data the whole event object.
type EventCallback func(name string, data any)

// EventListener reads mpv events from a dedicated IPC connection.
type EventListener struct {
	socketPath string
	conn       net.Conn
	callback   EventCallback
	stopCh     chan struct{}
	mu         sync.Mutex
	listening  bool
}

func NewEventListener(socketPath string, callback EventCallback) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		callback:   callback,
		stopCh:     make(chan struct{}),
	}
}

// Start opens the event connection and observes the pause property.
// end-file and playback-restart are broadcast by mpv without observing.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	payload, _ := json.Marshal(ipcCommand{Command: []any{"observe_property", 1, "pause"}})
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		conn.Close()
		return fmt.Errorf("observe pause: %w", err)
	}

	el.conn = conn
	el.listening = true

	go el.readLoop()

	log.Infof("mpv event listener started on %s", el.socketPath)
	return nil
}

func (el *EventListener) Stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if !el.listening {
		return
	}

	close(el.stopCh)
	if el.conn != nil {
		el.conn.Close()
	}
	el.listening = false
}

func (el *EventListener) readLoop() {
	defer func() {
		el.mu.Lock()
		el.listening = false
		el.mu.Unlock()
	}()

	reader := bufio.NewReader(el.conn)
	var pending []byte

	for {
		select {
		case <-el.stopCh:
			return
		default:
		}

		if err := el.conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
			return
		}

		line, err := reader.ReadBytes('\n')
		pending = append(pending, line...)

		if err == nil {
			el.processEvent(pending)
			pending = nil
			continue
		}

		// a timeout is normal, the partial line stays pending
		if errors.Is(err, os.ErrDeadlineExceeded) {
			continue
		}

		select {
		case <-el.stopCh:
		default:
			log.Warnf("event listener read error: %s", err)
		}
		return
	}
}

type mpvEvent struct {
	Event     string `json:"event"`
	Name      string `json:"name"`
	Data      any    `json:"data"`
	Reason    string `json:"reason"`
	FileError string `json:"file_error"`

	PlaylistEntryID int64 `json:"playlist_entry_id"`
}

func (el *EventListener) processEvent(line []byte) {
	var event mpvEvent
	if err := json.Unmarshal(line, &event); err != nil || event.Event == "" {
		return
	}

	if el.callback == nil {
		return
	}

	if event.Event == "property-change" {
		if event.Name != "" {
			el.callback(event.Name, event.Data)
		}
		return
	}

	el.callback(event.Event, event)
}

// Translate maps an mpv event onto a session event.
// Only failed loads and (re)started playback are of interest.
func Translate(name string, data any) (session.Event, bool) {
	switch name {
	case "playback-restart":
		return session.PlaybackStarted{}, true
	case "end-file":
		event, ok := data.(mpvEvent)
		if !ok || event.Reason != "error" {
			return nil, false
		}
		return session.PlaybackFailed{
			Reason: lo.Ternary(event.FileError != "", event.FileError, "mpv could not load the video"),
		}, true
	default:
		return nil, false
	}
}
