package service

import "errors"

var (
	// ErrEngineOffline is returned when an operation requires connectivity
	// and the monitor reports offline.
	ErrEngineOffline = errors.New("engine is offline")

	// ErrSyncPaused is returned when a sync is requested while the engine
	// is explicitly paused.
	ErrSyncPaused = errors.New("sync is paused")

	// ErrNoDownloadURLs is returned when a content record is queued without
	// any download URLs.
	ErrNoDownloadURLs = errors.New("content has no download urls")
)

// Human-readable status messages published on the event stream. The UI
// shows them verbatim; keeping them in one place ensures consistent wording.
const (
	MsgSyncStarted   = "synchronizing..."
	MsgSyncCompleted = "sync completed"
	MsgSyncFailed    = "sync failed"
	MsgSyncOffline   = "offline - changes will sync when connection returns"
	MsgSyncPaused    = "sync paused"
	MsgSyncResumed   = "sync resumed"
)
