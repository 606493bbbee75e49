package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// permanentByStatus covers rejections of the request itself: replaying the
// identical operation cannot succeed, so the queue drops it instead of
// retrying.
var permanentByStatus = map[int]error{
	http.StatusBadRequest:   ErrBadRequest,
	http.StatusUnauthorized: ErrUnauthorized,
	http.StatusForbidden:    ErrForbidden,
	http.StatusNotFound:     ErrNotFound,
	http.StatusConflict:     ErrConflict,
}

// transientByStatus covers outages and throttling: the operation itself is
// fine and a later pass may succeed.
var transientByStatus = map[int]error{
	http.StatusRequestTimeout:      ErrRequestTimeout,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrGatewayTimeout,
}

// mapHTTPError translates a non-2xx response into the package's sentinel
// errors. Transient failures additionally wrap [ErrTransient] so callers can
// pick a retry policy with a single [errors.Is] check.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	if sentinel, ok := permanentByStatus[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}
	if sentinel, ok := transientByStatus[code]; ok {
		return fmt.Errorf("%w: %w: %s", sentinel, ErrTransient, body)
	}
	if code >= http.StatusInternalServerError {
		// unlisted 5xx is still an outage
		return fmt.Errorf("%w: http %d: %s", ErrTransient, code, body)
	}
	return fmt.Errorf("http %d: %s", code, body)
}

// IsTransient reports whether err represents a failure a later sync pass may
// clear.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
