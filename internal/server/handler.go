// Package server exposes the engine's local diagnostics endpoint: aggregate
// statistics for support tooling and a manual sync trigger for debugging.
// It binds to a loopback address and carries no authentication.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/internal/service"
	"github.com/lumenlearn/go-offline-sync/internal/utils"
)

type Handler struct {
	orchestrator service.Orchestrator
	version      string
	logger       *logger.Logger
}

func NewHandler(orchestrator service.Orchestrator, version string, logger *logger.Logger) *Handler {
	return &Handler{
		orchestrator: orchestrator,
		version:      version,
		logger:       logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/debug/stats", h.stats)
	router.Post("/debug/sync", h.triggerSync)

	return router
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.orchestrator.Statistics(r.Context())
	if err != nil {
		h.logger.Err(err).
			Str("func", "Handler.stats").
			Msg("failed to assemble statistics")
		utils.WriteJSON(w, map[string]string{"error": "failed to assemble statistics"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"version":    h.version,
		"statistics": stats,
	}, http.StatusOK)
}

// triggerSync forces a pass; if one is already in flight, a follow-up pass
// is scheduled and the request still returns 202.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	// detached from the request context: the pass outlives the response
	go func() {
		if err := h.orchestrator.Sync(context.Background(), true); err != nil {
			h.logger.Err(err).
				Str("func", "Handler.triggerSync").
				Msg("manual sync failed")
		}
	}()

	utils.WriteJSON(w, map[string]string{"status": "sync triggered"}, http.StatusAccepted)
}
