package workers

import (
	"context"
	"sync"
	"time"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/internal/service"
)

// CleanupWorker periodically sweeps expired offline content and stale
// partial files.
type CleanupWorker struct {
	orchestrator service.Orchestrator
	interval     time.Duration
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewCleanupWorker(orchestrator service.Orchestrator, interval time.Duration, logger *logger.Logger) *CleanupWorker {
	return &CleanupWorker{
		orchestrator: orchestrator,
		interval:     interval,
		logger:       logger,
	}
}

// Start implements [Worker]. One sweep runs immediately so that content
// expired while the application was closed does not wait a full interval.
func (w *CleanupWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()

		w.sweep(loopCtx)

		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				w.sweep(loopCtx)
			}
		}
	}()
}

func (w *CleanupWorker) sweep(ctx context.Context) {
	if err := w.orchestrator.Cleanup(ctx); err != nil {
		w.logger.Err(err).
			Str("func", "CleanupWorker.sweep").
			Msg("expiry sweep failed")
	}
}

// Stop implements [Worker].
func (w *CleanupWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
