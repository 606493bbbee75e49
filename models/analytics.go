package models

import (
	"encoding/json"
	"time"
)

// AnalyticsEvent is a locally buffered telemetry record awaiting upload.
type AnalyticsEvent struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Properties json.RawMessage `json:"properties,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	Synced     bool            `json:"synced"`
}
