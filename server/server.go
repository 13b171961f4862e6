// Package server is the browser shell. It serves a page embedding the
// YouTube IFrame player, a small JSON API driving the session engine and
// a websocket pushing play, empty and error events to every open page.
package server

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Options control the page presentation.
type Options struct {
	// CRT enables the scanline overlay on page load.
	CRT bool

	// Intensity of the overlay, 0 to 100.
	Intensity int

	// Degraded is set when the word list could not be loaded.
	Degraded bool
}

// OptionsFromViper reads the server.* keys.
func OptionsFromViper() Options {
	return Options{
		CRT:       viper.GetBool(key.ServerCRT),
		Intensity: viper.GetInt(key.ServerCRTIntensity),
	}
}

type Server struct {
	engine  *session.Engine
	options Options
	hub     *hub
	tpl     *template.Template
}

func New(engine *session.Engine, options Options) *Server {
	options.Intensity = lo.Clamp(options.Intensity, 0, 100)

	return &Server{
		engine:  engine,
		options: options,
		hub:     newHub(),
		tpl:     template.Must(template.New("page").Parse(pageTpl)),
	}
}

// Handler returns the routes of the browser shell.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("POST /api/shuffle", s.handleShuffle)
	mux.HandleFunc("POST /api/keyword", s.handleKeyword)
	mux.HandleFunc("POST /api/mode", s.handleMode)
	mux.HandleFunc("POST /api/player/error", s.handlePlayerError)
	mux.HandleFunc("POST /api/player/started", s.handlePlayerStarted)
	return mux
}

// Run serves on addr until ctx is done, then shuts down gracefully.
// ready, when not nil, is called once the listener is accepting.
func (s *Server) Run(ctx context.Context, addr string, ready func()) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("server listening on %s", listener.Addr())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if ready != nil {
		go ready()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server shutting down")
	s.hub.closeAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("graceful shutdown failed: %s", err)
		return srv.Close()
	}

	return nil
}
