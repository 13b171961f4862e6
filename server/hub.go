package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

const (
	clientBuffer = 8
	writeTimeout = 5 * time.Second
)

type client struct {
	id     uuid.UUID
	events chan Message
}

// hub fans messages out to every connected page.
type hub struct {
	mu      sync.Mutex
	clients map[uuid.UUID]*client
}

func newHub() *hub {
	return &hub{clients: make(map[uuid.UUID]*client)}
}

func (h *hub) subscribe() *client {
	c := &client{
		id:     uuid.New(),
		events: make(chan Message, clientBuffer),
	}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	return c
}

func (h *hub) unsubscribe(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.events)
	}
}

// broadcast never blocks. A page too slow to keep up misses the message.
func (h *hub) broadcast(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, c := range h.clients {
		select {
		case c.events <- msg:
		default:
			log.Warnf("dropping %s event for slow client %s", msg.Event, id)
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.events)
	}
}

func (h *hub) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Warnf("accepting the websocket failed: %s", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	ctx := conn.CloseRead(r.Context())

	c := s.hub.subscribe()
	defer s.hub.unsubscribe(c)

	log.Infof("new websocket connection %s", c.id)

	// a page opened mid-session starts with the current video
	if current, ok := s.engine.Snapshot().Current.Get(); ok {
		if err := write(ctx, conn, Message{Event: EventPlay, Video: current}); err != nil {
			log.Warnf("sending the current video to %s failed: %s", c.id, err)
			return
		}
	}

	for {
		select {
		case <-ctx.Done():
			log.Infof("websocket connection %s closed", c.id)
			return
		case msg, ok := <-c.events:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}

			if err := write(ctx, conn, msg); err != nil {
				log.Warnf("sending %s to %s failed: %s", msg.Event, c.id, err)
				return
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return conn.Write(ctx, websocket.MessageText, data)
}
