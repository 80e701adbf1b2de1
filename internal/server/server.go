// Package server exposes the WebSocket endpoint and health check.
package server

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/openpad/gamepad/internal/hub"
)

type Server struct {
	hub         *hub.Hub
	broadcaster *hub.Broadcaster
	ctrl        hub.Controller
	addr        string
	httpServer  *http.Server
	log         zerolog.Logger
}

func New(h *hub.Hub, b *hub.Broadcaster, ctrl hub.Controller, addr string, log zerolog.Logger) *Server {
	return &Server{
		hub:         h,
		broadcaster: b,
		ctrl:        ctrl,
		addr:        addr,
		log:         log.With().Str("component", "server").Logger(),
	}
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	s.log.Info().Str("addr", s.addr).Msg("http server listening")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.log.Info().Msg("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}
