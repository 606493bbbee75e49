package models

import "time"

// SyncStatus is the orchestrator state machine's current state.
type SyncStatus string

const (
	SyncIdle      SyncStatus = "idle"
	SyncSyncing   SyncStatus = "syncing"
	SyncCompleted SyncStatus = "completed"
	SyncFailed    SyncStatus = "failed"
	SyncPaused    SyncStatus = "paused"
)

// SyncEvent is published on every orchestrator status transition.
// Progress is a 0.0-1.0 fraction of the current pass; Message is a
// human-readable summary suitable for direct display.
type SyncEvent struct {
	Status   SyncStatus `json:"status"`
	Progress float64    `json:"progress"`
	Message  string     `json:"message"`
	Error    string     `json:"error,omitempty"`
	At       time.Time  `json:"at"`
}

// DownloadProgress reports fractional progress for a single content item.
type DownloadProgress struct {
	ContentID string  `json:"content_id"`
	Progress  float64 `json:"progress"`
}

// SyncStatistics aggregates engine counters for diagnostics and UI.
type SyncStatistics struct {
	TotalContent      int               `json:"total_content"`
	DownloadedContent int               `json:"downloaded_content"`
	PendingOperations int               `json:"pending_operations"`
	TotalBytes        int64             `json:"total_bytes"`
	DownloadedBytes   int64             `json:"downloaded_bytes"`
	BandwidthKbps     float64           `json:"bandwidth_kbps"`
	LowBandwidth      bool              `json:"low_bandwidth"`
	Connectivity      ConnectivityState `json:"connectivity"`
	Status            SyncStatus        `json:"status"`
}
