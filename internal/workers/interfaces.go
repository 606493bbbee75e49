// Package workers provides the engine's background workers: the periodic
// sync ticker, the reconnect trigger and the content expiry sweep.
// It defines the Worker interface and a Workers aggregate that starts and
// stops all of them in a unified way.
package workers

import "context"

// Worker is the interface implemented by every background worker.
//
// Start launches the worker's goroutine and returns immediately. Stop
// cancels it and blocks until it has fully exited; it is safe to call when
// the worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
