// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumenlearn Authors

// Package adapter provides transport-layer abstractions for communicating
// with the backend resource API.
//
// The primary abstraction is [RemoteAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/lumenlearn/go-offline-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter defines transport-agnostic communication with the backend
// resource API. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type RemoteAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Execute replays a single queued mutation against the resource API:
	// create maps to POST, update to PUT, delete to DELETE, all addressed
	// as /{entityType}/{entityId}. On 2xx it returns the server's returned
	// representation of the entity (possibly empty for deletes). The schema
	// of the payload and response is owned by the backend and opaque here.
	Execute(ctx context.Context, op models.SyncOperation) (json.RawMessage, error)

	// UploadAnalytics sends a batch of buffered telemetry events to
	// POST /analytics/batch. Returns an error if the request fails or the
	// server responds with a non-2xx status.
	UploadAnalytics(ctx context.Context, events []models.AnalyticsEvent) error
}
