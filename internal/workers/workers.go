package workers

import (
	"context"

	"github.com/lumenlearn/go-offline-sync/internal/config"
	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/internal/service"
)

// Workers aggregates the engine's background workers.
type Workers struct {
	Sync    *SyncWorker
	workers []Worker
}

// NewWorkers builds the standard worker set: periodic sync, reconnect
// trigger and expiry sweep. The sync worker is also exposed directly so the
// host application can switch it between foreground and background cadence.
func NewWorkers(services *service.Services, connectivity service.ConnectivitySource, cfg config.AgentSync, logger *logger.Logger) *Workers {
	syncWorker := NewSyncWorker(services.Orchestrator, cfg.Interval, cfg.BackgroundInterval, logger)

	return &Workers{
		Sync: syncWorker,
		workers: []Worker{
			syncWorker,
			NewReconnectWorker(services.Orchestrator, connectivity, cfg.ReconnectDebounce, logger),
			NewCleanupWorker(services.Orchestrator, cfg.CleanupInterval, logger),
		},
	}
}

// Start launches every worker.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse start order and waits for each.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
