package server

import "errors"

// ErrNoDebugAddress means the diagnostics endpoint is disabled by
// configuration rather than broken.
var ErrNoDebugAddress = errors.New("no debug address configured")
