package service

import (
	"context"
	"encoding/json"

	"github.com/lumenlearn/go-offline-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// ConnectivitySource is the view of the connectivity monitor the services
// depend on. Narrowed to an interface so tests can script transitions.
type ConnectivitySource interface {
	// State returns the current connectivity classification.
	State() models.ConnectivityState

	// IsOnline reports whether remote traffic is currently possible.
	IsOnline() bool

	// Reconnects returns a subscription that fires only on offline ->
	// online transitions, plus a cancel function.
	Reconnects() (<-chan models.ConnectivityChange, func())
}

// BandwidthSource is the view of the bandwidth estimator the services
// depend on.
type BandwidthSource interface {
	// CurrentKbps returns the current throughput estimate.
	CurrentKbps() float64

	// IsLowBandwidth reports whether the estimate is below the configured
	// threshold. Advisory: gates content filtering, never queue draining.
	IsLowBandwidth() bool

	// Probe optionally refreshes the estimate with an active transfer.
	Probe(ctx context.Context) error
}

// QueueService owns the durable pending-operation queue and its drain logic.
type QueueService interface {
	// Enqueue persists the operation and, when currently online, attempts
	// immediate execution before returning (best-effort low-latency path).
	// The operation remains enqueued until execution succeeds. The returned
	// operation carries the generated id and creation timestamp.
	Enqueue(ctx context.Context, op models.SyncOperation) (models.SyncOperation, error)

	// Drain loads all pending operations and executes them sequentially in
	// (priority descending, createdAt ascending) order. Per-operation
	// failures are isolated; Drain returns the number of operations that
	// were applied remotely and an error only when the queue itself cannot
	// be read.
	Drain(ctx context.Context) (int, error)

	// Pending returns the number of operations currently queued.
	Pending(ctx context.Context) (int, error)
}

// DownloadService owns the offline content registry and bulk downloads.
type DownloadService interface {
	// QueueContentForDownload registers content for offline use. Calling it
	// twice with the same id overwrites the record, never duplicates it.
	// When online and not low-bandwidth the download starts immediately.
	QueueContentForDownload(ctx context.Context, content models.OfflineContent) error

	// Download fetches every URL of the record in order, streaming to a
	// content-type-scoped directory and persisting fractional progress so
	// it survives restarts. On completion the file is stored under its
	// content hash and the record is marked downloaded.
	Download(ctx context.Context, content models.OfflineContent) error

	// DrainQueued downloads all undownloaded registry entries that pass
	// the bandwidth filter, bounded by the configured parallelism. Returns
	// the number of completed downloads.
	DrainQueued(ctx context.Context) (int, error)

	// Cancel aborts the in-flight download for the given content id, if
	// any. Partially written files are left for the sweep.
	Cancel(contentID string)

	// CancelAll aborts every in-flight download. Used by pause.
	CancelAll()

	// GetContent returns one registry record.
	GetContent(ctx context.Context, id string) (models.OfflineContent, error)

	// GetAllContent returns every registry record.
	GetAllContent(ctx context.Context) ([]models.OfflineContent, error)

	// Remove deletes the registry record and any files belonging to it.
	// Content-addressed files shared with another record are kept.
	Remove(ctx context.Context, id string) error

	// SweepExpired removes every record whose TTL has passed, together
	// with its files, regardless of download state. Also clears orphaned
	// partial files older than a day. Returns the number of records swept.
	SweepExpired(ctx context.Context) (int, error)

	// Progress returns a subscription to per-content progress fractions.
	Progress() (<-chan models.DownloadProgress, func())
}

// UserDataSyncer is the pluggable hook for higher-level user data deltas
// (course progress, preferences). Opaque to the engine; invoked once per
// sync pass after the queue and content drains.
type UserDataSyncer interface {
	SyncUserData(ctx context.Context) error
}

// Orchestrator coordinates sync passes and exposes engine control.
type Orchestrator interface {
	// Sync runs one pass: drain queue, drain content, user-data hook,
	// analytics flush. A concurrent call while a pass is in flight is a
	// no-op unless force is true, in which case one follow-up pass runs
	// after the current one finishes.
	Sync(ctx context.Context, force bool) error

	// Pause cancels active downloads and holds the engine in the paused
	// state until Resume.
	Pause()

	// Resume leaves the paused state and, when online, starts a pass.
	Resume(ctx context.Context) error

	// Cleanup runs the expiry sweep.
	Cleanup(ctx context.Context) error

	// Status returns the current state machine state.
	Status() models.SyncStatus

	// Events returns a subscription to status transitions.
	Events() (<-chan models.SyncEvent, func())

	// TrackEvent buffers a telemetry record for upload with the next pass.
	TrackEvent(ctx context.Context, name string, properties json.RawMessage) error

	// Statistics assembles aggregate counters for diagnostics and UI.
	Statistics(ctx context.Context) (models.SyncStatistics, error)
}
