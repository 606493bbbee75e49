// Package connectivity observes network reachability for the sync engine.
//
// A [Monitor] seeds its state with one synchronous probe at Start, then
// re-probes on a ticker. Only categorical state changes are published; a
// wifi -> wifi re-check emits nothing. An offline -> non-offline transition
// additionally emits on the dedicated reconnect stream, which is the sole
// automatic trigger for a sync pass.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/lumenlearn/go-offline-sync/internal/events"
	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/models"
)

const defaultProbeInterval = 15 * time.Second

type Monitor struct {
	prober   Prober
	interval time.Duration
	logger   *logger.Logger

	changes    *events.Broadcaster[models.ConnectivityChange]
	reconnects *events.Broadcaster[models.ConnectivityChange]

	mu    sync.RWMutex
	state models.ConnectivityState

	stopMu sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor creates a Monitor around prober. If interval is zero or
// negative it defaults to 15 seconds. The monitor is idle until Start is
// called.
func NewMonitor(prober Prober, interval time.Duration, logger *logger.Logger) *Monitor {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &Monitor{
		prober:     prober,
		interval:   interval,
		logger:     logger,
		changes:    events.NewBroadcaster[models.ConnectivityChange](),
		reconnects: events.NewBroadcaster[models.ConnectivityChange](),
		state:      models.ConnectivityUnknown,
	}
}

// Start performs one synchronous probe to seed the current state, then
// launches the background re-probe loop. The loop exits when ctx is
// cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.Stop()

	seed := m.prober.Probe(ctx)
	m.mu.Lock()
	m.state = seed
	m.mu.Unlock()

	m.logger.Info().
		Str("func", "Monitor.Start").
		Str("state", string(seed)).
		Msg("connectivity monitor seeded")

	m.stopMu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.stopMu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				m.observe(m.prober.Probe(loopCtx))
			}
		}
	}()
}

// Stop cancels the background loop and blocks until it has exited. Safe to
// call when the monitor is not running.
func (m *Monitor) Stop() {
	m.stopMu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.stopMu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// State returns the current connectivity classification.
func (m *Monitor) State() models.ConnectivityState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsOnline reports whether the current state permits remote traffic.
func (m *Monitor) IsOnline() bool {
	return m.State().IsOnline()
}

// Changes returns a subscription to categorical state transitions.
func (m *Monitor) Changes() (<-chan models.ConnectivityChange, func()) {
	return m.changes.Subscribe()
}

// Reconnects returns a subscription that fires only on offline -> online
// transitions.
func (m *Monitor) Reconnects() (<-chan models.ConnectivityChange, func()) {
	return m.reconnects.Subscribe()
}

// observe records a probe result, publishing only when the category changed.
func (m *Monitor) observe(next models.ConnectivityState) {
	m.mu.Lock()
	prev := m.state
	if next == prev {
		m.mu.Unlock()
		return
	}
	m.state = next
	m.mu.Unlock()

	change := models.ConnectivityChange{
		Previous:    prev,
		Current:     next,
		Reconnected: !prev.IsOnline() && next.IsOnline(),
	}

	m.logger.Info().
		Str("func", "Monitor.observe").
		Str("previous", string(prev)).
		Str("current", string(next)).
		Bool("reconnected", change.Reconnected).
		Msg("connectivity state changed")

	m.changes.Publish(change)
	if change.Reconnected {
		m.reconnects.Publish(change)
	}
}

// Close releases the broadcast streams after Stop.
func (m *Monitor) Close() {
	m.Stop()
	m.changes.Close()
	m.reconnects.Close()
}
