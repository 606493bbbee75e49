// Package bandwidth derives a throughput estimate for the current link.
//
// The estimate is seeded from a static table keyed by connectivity type and
// refined with an exponential moving average over timed transfers. Samples
// arrive organically from the adapter and the download manager; an optional
// active probe against a known endpoint can top the estimate up when the
// engine has been quiet.
package bandwidth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/models"
)

// EMA weights: new = old*smoothingOld + sample*smoothingNew.
const (
	smoothingOld = 0.8
	smoothingNew = 0.2
)

// Seed estimates in kbps per connectivity type.
var seedKbps = map[models.ConnectivityState]float64{
	models.ConnectivityWifi:     10_000,
	models.ConnectivityCellular: 2_000,
	models.ConnectivityEthernet: 50_000,
	models.ConnectivityUnknown:  1_000,
	models.ConnectivityOffline:  0,
}

type Estimator struct {
	threshold float64
	probeURL  string
	client    *resty.Client
	logger    *logger.Logger

	mu   sync.RWMutex
	kbps float64
}

// NewEstimator creates an Estimator with the given low-bandwidth threshold
// in kbps. probeURL may be empty, which disables active probing.
func NewEstimator(threshold float64, probeURL string, logger *logger.Logger) *Estimator {
	return &Estimator{
		threshold: threshold,
		probeURL:  probeURL,
		client:    resty.New().SetTimeout(15 * time.Second),
		logger:    logger,
		kbps:      seedKbps[models.ConnectivityUnknown],
	}
}

// Seed resets the estimate to the static table value for the given
// connectivity type. Called on every categorical connectivity change; the
// moving average then refines from real transfers.
func (e *Estimator) Seed(state models.ConnectivityState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.kbps = seedKbps[state]
}

// RecordSample folds one timed transfer into the moving average. Zero-byte
// or zero-duration observations carry no signal and are discarded.
func (e *Estimator) RecordSample(bytes int64, elapsed time.Duration) {
	if bytes <= 0 || elapsed <= 0 {
		return
	}

	sample := float64(bytes) * 8 / 1000 / elapsed.Seconds()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kbps == 0 {
		e.kbps = sample
		return
	}
	e.kbps = e.kbps*smoothingOld + sample*smoothingNew
}

// CurrentKbps returns the current throughput estimate.
func (e *Estimator) CurrentKbps() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.kbps
}

// IsLowBandwidth reports whether the estimate is below the configured
// threshold. Advisory: it gates content filtering, not queue draining.
func (e *Estimator) IsLowBandwidth() bool {
	return e.CurrentKbps() < e.threshold
}

// Probe fetches the configured known-size endpoint once and records the
// timed transfer. No-op when no probe URL is configured.
func (e *Estimator) Probe(ctx context.Context) error {
	if e.probeURL == "" {
		return nil
	}

	start := time.Now()
	resp, err := e.client.R().SetContext(ctx).Get(e.probeURL)
	if err != nil {
		return fmt.Errorf("bandwidth probe request: %w", err)
	}

	elapsed := time.Since(start)
	e.RecordSample(resp.Size(), elapsed)

	e.logger.Debug().
		Str("func", "Estimator.Probe").
		Int64("bytes", resp.Size()).
		Dur("elapsed", elapsed).
		Float64("kbps", e.CurrentKbps()).
		Msg("bandwidth probe completed")

	return nil
}
