// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumenlearn Authors

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lumenlearn/go-offline-sync/internal/adapter"
	"github.com/lumenlearn/go-offline-sync/internal/events"
	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/internal/store"
	"github.com/lumenlearn/go-offline-sync/models"
)

// Progress checkpoints published during a pass. The fractions are coarse on
// purpose: the pass has four phases of very different cost and per-item
// granularity already flows through the download progress stream.
const (
	progressQueueDrained   = 0.4
	progressContentDrained = 0.7
	progressUserDataSynced = 0.85
)

type syncOrchestrator struct {
	queue        QueueService
	downloads    DownloadService
	analytics    store.AnalyticsRepository
	remote       adapter.RemoteAdapter
	connectivity ConnectivitySource
	bandwidth    BandwidthSource
	userData     UserDataSyncer
	logger       *logger.Logger

	events *events.Broadcaster[models.SyncEvent]

	// guards status, paused, inFlight, pendingForce and passCancel together
	// so that the single-flight decision and the state it depends on are
	// atomic.
	mu           sync.Mutex
	status       models.SyncStatus
	paused       bool
	inFlight     bool
	pendingForce bool
	passCancel   context.CancelFunc
}

// NewSyncOrchestrator wires the engine's coordinating service. userData may
// be nil when the host application has no delta hook to run.
func NewSyncOrchestrator(
	queue QueueService,
	downloads DownloadService,
	analytics store.AnalyticsRepository,
	remote adapter.RemoteAdapter,
	connectivity ConnectivitySource,
	bandwidth BandwidthSource,
	userData UserDataSyncer,
	logger *logger.Logger,
) Orchestrator {
	return &syncOrchestrator{
		queue:        queue,
		downloads:    downloads,
		analytics:    analytics,
		remote:       remote,
		connectivity: connectivity,
		bandwidth:    bandwidth,
		userData:     userData,
		logger:       logger,
		events:       events.NewBroadcaster[models.SyncEvent](),
		status:       models.SyncIdle,
	}
}

// Sync implements [Orchestrator].
func (o *syncOrchestrator) Sync(ctx context.Context, force bool) error {
	o.mu.Lock()

	if o.paused {
		o.mu.Unlock()
		return ErrSyncPaused
	}

	if o.inFlight {
		if force {
			o.pendingForce = true
		}
		o.mu.Unlock()
		return nil
	}

	if !o.connectivity.IsOnline() {
		o.mu.Unlock()
		o.publish(models.SyncIdle, 0, MsgSyncOffline, nil)
		return ErrEngineOffline
	}

	o.inFlight = true
	o.status = models.SyncSyncing
	// the pass context lets Pause abort queue drains and downloads that are
	// already underway instead of waiting for them to finish
	passCtx, cancel := context.WithCancel(ctx)
	o.passCancel = cancel
	o.mu.Unlock()

	defer cancel()
	return o.runPasses(passCtx)
}

// runPasses executes one pass plus any follow-up passes requested by forced
// Sync calls that arrived while a pass was in flight. inFlight is held for
// the whole sequence so the single-flight guarantee covers follow-ups too.
func (o *syncOrchestrator) runPasses(ctx context.Context) error {
	defer func() {
		if r := recover(); r != nil {
			o.mu.Lock()
			o.inFlight = false
			o.pendingForce = false
			o.passCancel = nil
			paused := o.paused
			if !paused {
				o.status = models.SyncFailed
			}
			o.mu.Unlock()
			if !paused {
				o.publish(models.SyncFailed, 0, MsgSyncFailed, fmt.Errorf("sync pass panicked: %v", r))
			}
			o.logger.Error().
				Str("func", "syncOrchestrator.runPasses").
				Any("panic", r).
				Msg("sync pass panicked")
		}
	}()

	var lastErr error
	for {
		lastErr = o.pass(ctx)

		o.mu.Lock()
		if o.pendingForce && lastErr == nil && !o.paused {
			o.pendingForce = false
			o.mu.Unlock()
			continue
		}
		o.pendingForce = false
		o.inFlight = false
		o.passCancel = nil
		if o.paused || errors.Is(lastErr, ErrSyncPaused) {
			// Pause already set and published the paused state; the pass
			// finishing afterwards must not overwrite it with an outcome.
			if !o.paused {
				// resumed while the aborted pass was still unwinding
				o.status = models.SyncIdle
			}
			o.mu.Unlock()
			return ErrSyncPaused
		}
		if lastErr != nil {
			o.status = models.SyncFailed
		} else {
			// the outcome stays visible in Status until the next trigger
			// resets it to syncing; there is no separate snap back to idle
			o.status = models.SyncCompleted
		}
		o.mu.Unlock()
		break
	}

	if lastErr != nil {
		o.publish(models.SyncFailed, 0, MsgSyncFailed, lastErr)
		return lastErr
	}

	o.publish(models.SyncCompleted, 1.0, MsgSyncCompleted, nil)
	return nil
}

// pass runs the four phases of a single synchronization pass in order:
// pending-operation drain, content drain, user-data hook, analytics flush.
// Phase errors after the first phase do not abort the pass; the queue drain
// error aborts because later phases assume the store is readable.
func (o *syncOrchestrator) pass(ctx context.Context) error {
	started := time.Now()
	o.publish(models.SyncSyncing, 0, MsgSyncStarted, nil)

	applied, err := o.queue.Drain(ctx)
	if err != nil {
		if o.isPaused() {
			return ErrSyncPaused
		}
		return fmt.Errorf("drain operation queue: %w", err)
	}
	if o.isPaused() {
		return ErrSyncPaused
	}
	o.publish(models.SyncSyncing, progressQueueDrained, MsgSyncStarted, nil)

	downloaded, err := o.downloads.DrainQueued(ctx)
	if err != nil {
		o.logger.Err(err).
			Str("func", "syncOrchestrator.pass").
			Msg("content drain failed; continuing pass")
	}
	if o.isPaused() {
		return ErrSyncPaused
	}
	o.publish(models.SyncSyncing, progressContentDrained, MsgSyncStarted, nil)

	if o.userData != nil {
		if err = o.userData.SyncUserData(ctx); err != nil {
			o.logger.Err(err).
				Str("func", "syncOrchestrator.pass").
				Msg("user data sync failed; continuing pass")
		}
	}
	if o.isPaused() {
		return ErrSyncPaused
	}
	o.publish(models.SyncSyncing, progressUserDataSynced, MsgSyncStarted, nil)

	if err = o.flushAnalytics(ctx); err != nil {
		o.logger.Err(err).
			Str("func", "syncOrchestrator.pass").
			Msg("analytics flush failed; events stay buffered")
	}

	o.logger.Info().
		Str("func", "syncOrchestrator.pass").
		Int("operations_applied", applied).
		Int("content_downloaded", downloaded).
		Dur("elapsed", time.Since(started)).
		Msg("sync pass finished")

	return nil
}

// flushAnalytics uploads buffered telemetry and marks it synced. Events are
// marked only after a successful upload, so a failure re-sends the batch
// next pass (the backend deduplicates by event id).
func (o *syncOrchestrator) flushAnalytics(ctx context.Context) error {
	pending, err := o.analytics.GetUnsynced(ctx)
	if err != nil {
		return fmt.Errorf("load buffered analytics: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	if err = o.remote.UploadAnalytics(ctx, pending); err != nil {
		return fmt.Errorf("upload analytics batch: %w", err)
	}

	ids := make([]int64, len(pending))
	for i, event := range pending {
		ids[i] = event.ID
	}
	if err = o.analytics.MarkSynced(ctx, ids); err != nil {
		return fmt.Errorf("mark analytics synced: %w", err)
	}

	o.logger.Debug().
		Str("func", "syncOrchestrator.flushAnalytics").
		Int("events", len(pending)).
		Msg("analytics batch uploaded")

	return nil
}

func (o *syncOrchestrator) isPaused() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.paused
}

// Pause implements [Orchestrator]. An in-flight pass is aborted between
// operations via its context; active downloads are cancelled and their
// partial files stay on disk for the stale-part sweep.
func (o *syncOrchestrator) Pause() {
	o.mu.Lock()
	o.paused = true
	o.status = models.SyncPaused
	cancel := o.passCancel
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	o.downloads.CancelAll()
	o.publish(models.SyncPaused, 0, MsgSyncPaused, nil)

	o.logger.Info().
		Str("func", "syncOrchestrator.Pause").
		Msg("engine paused")
}

// Resume implements [Orchestrator].
func (o *syncOrchestrator) Resume(ctx context.Context) error {
	o.mu.Lock()
	o.paused = false
	if !o.inFlight {
		o.status = models.SyncIdle
	}
	o.mu.Unlock()

	o.publish(models.SyncIdle, 0, MsgSyncResumed, nil)
	o.logger.Info().
		Str("func", "syncOrchestrator.Resume").
		Msg("engine resumed")

	if !o.connectivity.IsOnline() {
		return nil
	}
	return o.Sync(ctx, false)
}

// Cleanup implements [Orchestrator].
func (o *syncOrchestrator) Cleanup(ctx context.Context) error {
	swept, err := o.downloads.SweepExpired(ctx)
	if err != nil {
		return fmt.Errorf("sweep expired content: %w", err)
	}

	if swept > 0 {
		o.logger.Info().
			Str("func", "syncOrchestrator.Cleanup").
			Int("swept", swept).
			Msg("expired content removed")
	}
	return nil
}

func (o *syncOrchestrator) Status() models.SyncStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

func (o *syncOrchestrator) Events() (<-chan models.SyncEvent, func()) {
	return o.events.Subscribe()
}

// TrackEvent implements [Orchestrator]. The record is buffered locally and
// uploaded with the next pass, so tracking works fully offline.
func (o *syncOrchestrator) TrackEvent(ctx context.Context, name string, properties json.RawMessage) error {
	event := models.AnalyticsEvent{
		Name:       name,
		Properties: properties,
		CreatedAt:  time.Now().UTC(),
	}
	if err := o.analytics.Insert(ctx, event); err != nil {
		return fmt.Errorf("buffer analytics event: %w", err)
	}
	return nil
}

// Statistics implements [Orchestrator].
func (o *syncOrchestrator) Statistics(ctx context.Context) (models.SyncStatistics, error) {
	contents, err := o.downloads.GetAllContent(ctx)
	if err != nil {
		return models.SyncStatistics{}, fmt.Errorf("load content registry: %w", err)
	}

	pending, err := o.queue.Pending(ctx)
	if err != nil {
		return models.SyncStatistics{}, fmt.Errorf("count pending operations: %w", err)
	}

	stats := models.SyncStatistics{
		TotalContent:      len(contents),
		PendingOperations: pending,
		BandwidthKbps:     o.bandwidth.CurrentKbps(),
		LowBandwidth:      o.bandwidth.IsLowBandwidth(),
		Connectivity:      o.connectivity.State(),
		Status:            o.Status(),
	}
	for _, content := range contents {
		stats.TotalBytes += content.SizeBytes
		if content.IsDownloaded {
			stats.DownloadedContent++
			stats.DownloadedBytes += content.SizeBytes
		}
	}

	return stats, nil
}

func (o *syncOrchestrator) publish(status models.SyncStatus, progress float64, message string, cause error) {
	event := models.SyncEvent{
		Status:   status,
		Progress: progress,
		Message:  message,
		At:       time.Now().UTC(),
	}
	if cause != nil {
		event.Error = cause.Error()
	}
	o.events.Publish(event)
}
