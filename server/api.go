package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/AvaAvarai/IndimensionalYoutube/history"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/selector"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
)

// Message is pushed to pages over the websocket and returned by the POST endpoints.
type Message struct {
	Event string        `json:"event"`
	Video *source.Video `json:"video,omitempty"`
	Query string        `json:"query,omitempty"`
	Genre string        `json:"genre,omitempty"`
	Error string        `json:"error,omitempty"`
}

const (
	EventPlay  = "play"
	EventEmpty = "empty"
	EventError = "error"
)

// message maps an outcome onto what pages should show.
// Outcomes that change nothing on screen map to false.
func message(outcome session.Outcome) (Message, bool) {
	msg := Message{
		Query: outcome.Query,
		Genre: outcome.Genre.OrEmpty(),
	}

	switch outcome.Kind {
	case session.OutcomePlaying:
		msg.Event = EventPlay
		msg.Video = outcome.Video
	case session.OutcomeEmpty:
		msg.Event = EventEmpty
		if outcome.Err != nil {
			msg.Error = outcome.Err.Error()
		}
	case session.OutcomeGaveUp:
		msg.Event = EventError
		msg.Error = "too many videos failed to play, shuffle to try again"
	default:
		return Message{}, false
	}

	return msg, true
}

type stateView struct {
	ID       string        `json:"id"`
	Status   string        `json:"status"`
	Source   string        `json:"source"`
	Query    string        `json:"query"`
	Mode     string        `json:"mode"`
	Genre    string        `json:"genre,omitempty"`
	Genres   []string      `json:"genres"`
	Keyword  string        `json:"keyword,omitempty"`
	Current  *source.Video `json:"current,omitempty"`
	History  int           `json:"history"`
	Degraded bool          `json:"degraded"`
}

func (s *Server) state() stateView {
	state := s.engine.Snapshot()

	return stateView{
		ID:       state.ID,
		Status:   state.Status.String(),
		Source:   s.engine.SourceName(),
		Query:    state.Query,
		Mode:     state.Config.Mode.String(),
		Genre:    state.Config.CurrentGenre.OrEmpty(),
		Genres:   state.Config.Genres,
		Keyword:  state.Config.FixedTerm.OrEmpty(),
		Current:  state.Current.OrEmpty(),
		History:  state.History.Len(),
		Degraded: s.options.Degraded,
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, `{"status":"ok"}`)
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries := s.engine.History().Entries()

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpError(w, http.StatusBadRequest, "limit must be a non-negative number")
			return
		}
		entries = s.engine.History().Recent(n)
	}

	if entries == nil {
		entries = []history.Entry{}
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	avoid, _ := strconv.ParseBool(r.FormValue("avoid"))
	s.dispatch(w, r, session.Shuffle{AvoidCurrentGenre: avoid})
}

// handleKeyword sets or clears the fixed term and shuffles right away.
func (s *Server) handleKeyword(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("term")
	if _, err := s.engine.Handle(r.Context(), session.SetKeyword{Term: term}); err != nil {
		s.fail(w, err)
		return
	}

	s.dispatch(w, r, session.Shuffle{})
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	mode, err := selector.ParseMode(r.FormValue("mode"))
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := s.engine.Handle(r.Context(), session.SetMode{Mode: mode}); err != nil {
		s.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.state())
}

// handlePlayerError receives the IFrame player's onError code and the id
// of the video it was loading. Every open page reports the same failure.
func (s *Server) handlePlayerError(w http.ResponseWriter, r *http.Request) {
	reason := "youtube player error"
	if code := r.FormValue("code"); code != "" {
		reason = fmt.Sprintf("youtube player error %s", code)
	}

	s.dispatch(w, r, session.PlaybackFailed{VideoID: r.FormValue("id"), Reason: reason})
}

func (s *Server) handlePlayerStarted(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, session.PlaybackStarted{VideoID: r.FormValue("id")})
}

// dispatch hands ev to the engine and broadcasts whatever changed.
// The search outlives the request so a closed tab does not abort it.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, ev session.Event) {
	outcome, err := s.engine.Handle(context.WithoutCancel(r.Context()), ev)
	if err != nil {
		s.fail(w, err)
		return
	}

	msg, ok := message(outcome)
	if !ok {
		writeJSON(w, http.StatusOK, Message{Event: outcome.Kind.String()})
		return
	}

	s.hub.broadcast(msg)
	writeJSON(w, http.StatusOK, msg)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	msg := Message{Event: EventError, Error: err.Error()}

	if errors.Is(err, selector.ErrConfig) {
		writeJSON(w, http.StatusUnprocessableEntity, msg)
		return
	}

	log.Errorf("handling request: %s", err)
	s.hub.broadcast(msg)
	writeJSON(w, http.StatusInternalServerError, msg)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("encode response: %s", err)
	}
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}
