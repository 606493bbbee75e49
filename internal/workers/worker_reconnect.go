package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/internal/service"
)

// ReconnectWorker triggers a sync pass when connectivity returns after an
// offline stretch. The trigger is debounced: a flapping link that reconnects
// several times within the window causes a single pass.
type ReconnectWorker struct {
	orchestrator service.Orchestrator
	connectivity service.ConnectivitySource
	debounce     time.Duration
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewReconnectWorker(orchestrator service.Orchestrator, connectivity service.ConnectivitySource, debounce time.Duration, logger *logger.Logger) *ReconnectWorker {
	return &ReconnectWorker{
		orchestrator: orchestrator,
		connectivity: connectivity,
		debounce:     debounce,
		logger:       logger,
	}
}

// Start implements [Worker].
func (w *ReconnectWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		w.loop(loopCtx)
	}()
}

func (w *ReconnectWorker) loop(ctx context.Context) {
	reconnects, cancelSub := w.connectivity.Reconnects()
	defer cancelSub()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		var fire <-chan time.Time
		if timer != nil {
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			return

		case change, ok := <-reconnects:
			if !ok {
				return
			}
			w.logger.Info().
				Str("func", "ReconnectWorker.loop").
				Str("previous", string(change.Previous)).
				Str("current", string(change.Current)).
				Msg("connectivity restored; sync scheduled")

			// restart the window on every reconnect so a flapping link
			// settles before the pass runs
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			w.runPass(ctx)
		}
	}
}

func (w *ReconnectWorker) runPass(ctx context.Context) {
	err := w.orchestrator.Sync(ctx, false)
	if err == nil || errors.Is(err, service.ErrEngineOffline) || errors.Is(err, service.ErrSyncPaused) {
		// the link may have dropped again within the debounce window
		return
	}

	w.logger.Err(err).
		Str("func", "ReconnectWorker.runPass").
		Msg("reconnect sync failed")
}

// Stop implements [Worker].
func (w *ReconnectWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
