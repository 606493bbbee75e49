package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when a box lookup targets a key that does
	// not exist in the requested box.
	ErrKeyNotFound = errors.New("key not found in box")

	// ErrOperationNotFound is returned when a query or update targets a
	// queued sync operation (identified by id) that does not exist.
	ErrOperationNotFound = errors.New("sync operation was not found")

	// ErrContentNotFound is returned when a registry lookup targets an
	// offline content record that does not exist.
	ErrContentNotFound = errors.New("offline content was not found")

	// ErrEntityNotFound is returned when a cached entity lookup produces an
	// empty result set.
	ErrEntityNotFound = errors.New("cached entity was not found")
)
