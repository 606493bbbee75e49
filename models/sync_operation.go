package models

import (
	"encoding/json"
	"time"
)

// OperationKind names the remote mutation a queued operation replays.
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

// Priority orders queued work. Higher values drain first; ties are broken
// by CreatedAt ascending.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MaxRetries is the hard cap on attempts for a single queued operation.
// An operation that fails MaxRetries times is dropped, not retried forever.
const MaxRetries = 3

// SyncOperation is a pending remote mutation awaiting replay. It is owned
// by the persistent store; callers re-read the stored row before mutating
// RetryCount or LastError.
type SyncOperation struct {
	ID            string          `json:"id"`
	OperationKind OperationKind   `json:"operation_kind"`
	EntityType    string          `json:"entity_type"`
	EntityID      string          `json:"entity_id"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	RetryCount    int             `json:"retry_count"`
	LastError     string          `json:"last_error,omitempty"`
	Priority      Priority        `json:"priority"`
}

// NewSyncOperation builds an operation with the default medium priority.
// The queue service fills in the id and creation timestamp on enqueue.
func NewSyncOperation(kind OperationKind, entityType, entityID string, payload json.RawMessage) SyncOperation {
	return SyncOperation{
		OperationKind: kind,
		EntityType:    entityType,
		EntityID:      entityID,
		Payload:       payload,
		Priority:      PriorityMedium,
	}
}
