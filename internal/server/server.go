package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/lumenlearn/go-offline-sync/internal/config"
	"github.com/lumenlearn/go-offline-sync/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server is the lifecycle contract for the diagnostics endpoint.
type Server interface {
	// RunServer starts serving requests. It returns immediately; serving
	// happens on a background goroutine.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

type debugServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewServer creates the diagnostics server on cfg.DebugAddress. Returns
// [ErrNoDebugAddress] when the address is empty, letting the caller skip the
// endpoint entirely.
func NewServer(handler *Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.DebugAddress == "" {
		return nil, ErrNoDebugAddress
	}

	return &debugServer{
		server: &http.Server{
			Addr:    cfg.DebugAddress,
			Handler: handler.Init(),
		},
		logger: logger,
	}, nil
}

func (s *debugServer) RunServer() {
	s.logger.Info().
		Str("func", "debugServer.RunServer").
		Str("address", s.server.Addr).
		Msg("diagnostics endpoint listening")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Err(err).
				Str("func", "debugServer.RunServer").
				Msg("diagnostics endpoint stopped")
		}
	}()
}

func (s *debugServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Err(err).
			Str("func", "debugServer.Shutdown").
			Msg("diagnostics endpoint shutdown failed")
	}
}
