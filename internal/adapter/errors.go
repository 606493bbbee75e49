package adapter

import "errors"

// Sentinel errors mapped from remote responses. The transient ones
// additionally wrap [ErrTransient]; errors_mapper.go holds the
// classification.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")

	ErrRequestTimeout      = errors.New("request timed out")
	ErrTooManyRequests     = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
)

// ErrTransient marks failures worth retrying on a later pass. Rejections of
// the request itself never wrap it; outages, throttling and transport-level
// failures do.
var ErrTransient = errors.New("transient remote failure")
