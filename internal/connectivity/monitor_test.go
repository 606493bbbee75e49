// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumenlearn Authors

package connectivity

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/models"
)

// scriptedProber replays a fixed sequence of states, repeating the last one
// once the script is exhausted.
type scriptedProber struct {
	mu     sync.Mutex
	states []models.ConnectivityState
	idx    int
	calls  int
}

func (p *scriptedProber) Probe(_ context.Context) models.ConnectivityState {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	state := p.states[p.idx]
	if p.idx < len(p.states)-1 {
		p.idx++
	}
	return state
}

func (p *scriptedProber) probeCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func waitFor(t *testing.T, ch <-chan models.ConnectivityChange) models.ConnectivityChange {
	t.Helper()
	select {
	case change := <-ch:
		return change
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for connectivity change")
		return models.ConnectivityChange{}
	}
}

func TestMonitor_Start_SeedsSynchronously(t *testing.T) {
	prober := &scriptedProber{states: []models.ConnectivityState{models.ConnectivityWifi}}
	m := NewMonitor(prober, time.Hour, logger.Nop())
	defer m.Close()

	m.Start(context.Background())

	assert.Equal(t, models.ConnectivityWifi, m.State())
	assert.True(t, m.IsOnline())
}

func TestMonitor_PublishesOnlyCategoricalChanges(t *testing.T) {
	prober := &scriptedProber{states: []models.ConnectivityState{
		models.ConnectivityWifi,
		models.ConnectivityWifi, // no change: nothing published
		models.ConnectivityCellular,
	}}
	m := NewMonitor(prober, 5*time.Millisecond, logger.Nop())
	defer m.Close()

	changes, cancel := m.Changes()
	defer cancel()

	m.Start(context.Background())

	change := waitFor(t, changes)
	assert.Equal(t, models.ConnectivityWifi, change.Previous)
	assert.Equal(t, models.ConnectivityCellular, change.Current)
	assert.False(t, change.Reconnected)
}

func TestMonitor_ReconnectStreamFiresOnOfflineToOnline(t *testing.T) {
	prober := &scriptedProber{states: []models.ConnectivityState{
		models.ConnectivityWifi,
		models.ConnectivityOffline,
		models.ConnectivityWifi,
	}}
	m := NewMonitor(prober, 5*time.Millisecond, logger.Nop())
	defer m.Close()

	reconnects, cancel := m.Reconnects()
	defer cancel()

	m.Start(context.Background())

	change := waitFor(t, reconnects)
	assert.Equal(t, models.ConnectivityOffline, change.Previous)
	assert.Equal(t, models.ConnectivityWifi, change.Current)
	assert.True(t, change.Reconnected)
	assert.True(t, m.IsOnline())
}

func TestMonitor_WifiToCellularIsNotAReconnect(t *testing.T) {
	prober := &scriptedProber{states: []models.ConnectivityState{
		models.ConnectivityWifi,
		models.ConnectivityCellular,
	}}
	m := NewMonitor(prober, 5*time.Millisecond, logger.Nop())
	defer m.Close()

	reconnects, cancelReconnects := m.Reconnects()
	defer cancelReconnects()
	changes, cancelChanges := m.Changes()
	defer cancelChanges()

	m.Start(context.Background())

	// the categorical change arrives...
	waitFor(t, changes)

	// ...but the reconnect stream stays quiet
	select {
	case change := <-reconnects:
		t.Fatalf("unexpected reconnect event: %+v", change)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMonitor_StopHaltsProbing(t *testing.T) {
	prober := &scriptedProber{states: []models.ConnectivityState{models.ConnectivityWifi}}
	m := NewMonitor(prober, 5*time.Millisecond, logger.Nop())

	m.Start(context.Background())
	m.Stop()

	callsAtStop := prober.probeCalls()

	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAtStop, prober.probeCalls(), "prober must not be called after Stop")
}

func TestInterfaceProber_OfflineWhenCheckURLUnreachable(t *testing.T) {
	// a port that is guaranteed closed
	p := NewInterfaceProber("http://127.0.0.1:1")

	state := p.Probe(context.Background())
	require.Equal(t, models.ConnectivityOffline, state)
}

func TestClassifyName(t *testing.T) {
	tests := []struct {
		name string
		want models.ConnectivityState
	}{
		{"wlan0", models.ConnectivityWifi},
		{"wlp3s0", models.ConnectivityWifi},
		{"wwan0", models.ConnectivityCellular},
		{"rmnet_data0", models.ConnectivityCellular},
		{"eth0", models.ConnectivityEthernet},
		{"en0", models.ConnectivityEthernet},
		{"tun0", models.ConnectivityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyName(tt.name))
		})
	}
}
