package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lumenlearn/go-offline-sync/internal/config"
	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/models"
)

// SampleRecorder receives one timed-transfer observation per completed
// exchange. Satisfied by the bandwidth estimator; exchanges feed the
// moving average without dedicated probe traffic.
type SampleRecorder interface {
	RecordSample(bytes int64, elapsed time.Duration)
}

type httpRemoteAdapter struct {
	client  *resty.Client
	samples SampleRecorder

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs an HTTP/REST implementation of
// [RemoteAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying resty client with the resolved
// base URL and request timeout. Every completed exchange is reported to
// samples (may be nil) so the bandwidth estimate tracks real traffic.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPRemoteAdapter(cfg config.AgentRemote, samples SampleRecorder, logger *logger.Logger) (RemoteAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	a := &httpRemoteAdapter{client: client, samples: samples, logger: logger}

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if a.samples != nil && resp.Time() > 0 {
			a.samples.RecordSample(resp.Size(), resp.Time())
		}
		return nil
	})

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpRemoteAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpRemoteAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Execute implements [RemoteAdapter]. It dispatches the HTTP verb matching
// op.OperationKind against /{entityType}/{entityId} and returns the body of
// a 2xx response as the server's representation of the entity.
func (h *httpRemoteAdapter) Execute(ctx context.Context, op models.SyncOperation) (json.RawMessage, error) {
	path := fmt.Sprintf("/%s/%s", url.PathEscape(op.EntityType), url.PathEscape(op.EntityID))

	req := h.authedRequest(ctx).SetHeader("Content-Type", "application/json")
	if len(op.Payload) > 0 {
		req.SetBody([]byte(op.Payload))
	}

	var resp *resty.Response
	var err error

	switch op.OperationKind {
	case models.OperationCreate:
		resp, err = req.Post(path)
	case models.OperationUpdate:
		resp, err = req.Put(path)
	case models.OperationDelete:
		resp, err = req.Delete(path)
	default:
		return nil, fmt.Errorf("unsupported operation kind %q", op.OperationKind)
	}
	if err != nil {
		// transport-level failures (DNS, refused connection, timeout) are
		// retryable by definition
		return nil, fmt.Errorf("%s %s request: %w: %w", op.OperationKind, path, ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

// UploadAnalytics implements [RemoteAdapter]. It POSTs the batch to
// /analytics/batch in a single request.
func (h *httpRemoteAdapter) UploadAnalytics(ctx context.Context, events []models.AnalyticsEvent) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(events).
		Post("/analytics/batch")
	if err != nil {
		return fmt.Errorf("upload analytics request: %w: %w", ErrTransient, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		if expired, expErr := tokenExpired(token); expErr == nil && expired {
			h.logger.Warn().
				Str("func", "httpRemoteAdapter.authedRequest").
				Msg("bearer token is expired; request will likely be rejected")
		}
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// tokenExpired inspects the unverified exp claim of a JWT bearer token.
// Signature verification belongs to the server; the client only wants an
// early warning before sending a doomed request.
func tokenExpired(tokenString string) (bool, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false, fmt.Errorf("invalid token claims")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, err
	}

	return exp.Before(time.Now()), nil
}
