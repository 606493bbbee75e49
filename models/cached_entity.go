package models

import (
	"encoding/json"
	"time"
)

// CachedEntity is a locally cached copy of a remote resource. After a
// successful queue drain the server's returned representation is written
// here, making the server the source of truth post-sync. Title and Body
// feed the full-text shadow index used by search.
type CachedEntity struct {
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Title      string          `json:"title"`
	Body       string          `json:"body"`
	Data       json.RawMessage `json:"data,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// SearchQuery filters cached entities by full-text match with optional
// type narrowing and offset pagination.
type SearchQuery struct {
	Match      string `json:"match"`
	EntityType string `json:"entity_type,omitempty"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}
