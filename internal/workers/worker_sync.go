package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/internal/service"
)

// SyncWorker runs a sync pass on a ticker. It has two cadences: the normal
// interval while the host application is in the foreground and a slower one
// while it is backgrounded; SetBackground switches between them.
type SyncWorker struct {
	orchestrator       service.Orchestrator
	interval           time.Duration
	backgroundInterval time.Duration
	logger             *logger.Logger

	reset chan time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSyncWorker(orchestrator service.Orchestrator, interval, backgroundInterval time.Duration, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{
		orchestrator:       orchestrator,
		interval:           interval,
		backgroundInterval: backgroundInterval,
		logger:             logger,
		reset:              make(chan time.Duration, 1),
	}
}

// Start implements [Worker]. It stops any previously running loop first.
func (w *SyncWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case interval := <-w.reset:
				t.Reset(interval)
			case <-t.C:
				w.runPass(loopCtx)
			}
		}
	}()
}

func (w *SyncWorker) runPass(ctx context.Context) {
	err := w.orchestrator.Sync(ctx, false)
	if err == nil || errors.Is(err, service.ErrEngineOffline) || errors.Is(err, service.ErrSyncPaused) {
		// offline and paused are normal states for a periodic trigger
		return
	}

	w.logger.Err(err).
		Str("func", "SyncWorker.runPass").
		Msg("periodic sync failed")
}

// SetBackground switches the ticker between foreground and background
// cadence. Takes effect from the next tick.
func (w *SyncWorker) SetBackground(background bool) {
	interval := w.interval
	if background {
		interval = w.backgroundInterval
	}

	select {
	case w.reset <- interval:
	default:
	}
}

// Stop implements [Worker].
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
