package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/go-offline-sync/internal/config"
	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/models"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   []byte
}

func newTestAdapter(t *testing.T, handler http.HandlerFunc) (RemoteAdapter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPRemoteAdapter(config.AgentRemote{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, nil, logger.Nop())
	require.NoError(t, err)

	return a, srv
}

func TestHTTPRemoteAdapter_Execute_MethodMapping(t *testing.T) {
	tests := []struct {
		kind       models.OperationKind
		wantMethod string
	}{
		{models.OperationCreate, http.MethodPost},
		{models.OperationUpdate, http.MethodPut},
		{models.OperationDelete, http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			var mu sync.Mutex
			var got recordedRequest

			a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				mu.Lock()
				got = recordedRequest{method: r.Method, path: r.URL.Path, auth: r.Header.Get("Authorization"), body: body}
				mu.Unlock()
				w.Write([]byte(`{"title":"Algebra basics"}`))
			})
			a.SetToken("session-token")

			op := models.SyncOperation{
				OperationKind: tt.kind,
				EntityType:    "course",
				EntityID:      "c-1",
				Payload:       []byte(`{"title":"Algebra basics"}`),
			}

			body, err := a.Execute(context.Background(), op)
			require.NoError(t, err)
			assert.JSONEq(t, `{"title":"Algebra basics"}`, string(body))

			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, tt.wantMethod, got.method)
			assert.Equal(t, "/course/c-1", got.path)
			assert.Equal(t, "Bearer session-token", got.auth)
			assert.JSONEq(t, `{"title":"Algebra basics"}`, string(got.body))
		})
	}
}

func TestHTTPRemoteAdapter_Execute_UnsupportedKind(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := a.Execute(context.Background(), models.SyncOperation{OperationKind: "merge"})
	require.Error(t, err)
}

func TestHTTPRemoteAdapter_Execute_StatusMapping(t *testing.T) {
	tests := []struct {
		status    int
		want      error
		transient bool
	}{
		{http.StatusBadRequest, ErrBadRequest, false},
		{http.StatusUnauthorized, ErrUnauthorized, false},
		{http.StatusForbidden, ErrForbidden, false},
		{http.StatusNotFound, ErrNotFound, false},
		{http.StatusConflict, ErrConflict, false},
		{http.StatusRequestTimeout, ErrRequestTimeout, true},
		{http.StatusTooManyRequests, ErrTooManyRequests, true},
		{http.StatusInternalServerError, ErrInternalServerError, true},
		{http.StatusBadGateway, ErrBadGateway, true},
		{http.StatusServiceUnavailable, ErrServiceUnavailable, true},
		{http.StatusGatewayTimeout, ErrGatewayTimeout, true},
		// unlisted 5xx still counts as an outage
		{http.StatusInsufficientStorage, ErrTransient, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := a.Execute(context.Background(), models.SyncOperation{
				OperationKind: models.OperationCreate,
				EntityType:    "course",
				EntityID:      "c-1",
			})
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.transient, IsTransient(err))
		})
	}
}

func TestHTTPRemoteAdapter_Execute_NetworkErrorIsTransient(t *testing.T) {
	a, err := NewHTTPRemoteAdapter(config.AgentRemote{
		BaseURL:        "http://127.0.0.1:1",
		RequestTimeout: time.Second,
	}, nil, logger.Nop())
	require.NoError(t, err)

	_, err = a.Execute(context.Background(), models.SyncOperation{
		OperationKind: models.OperationCreate,
		EntityType:    "course",
		EntityID:      "c-1",
	})
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestHTTPRemoteAdapter_UploadAnalytics(t *testing.T) {
	var mu sync.Mutex
	var got recordedRequest

	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		got = recordedRequest{method: r.Method, path: r.URL.Path, body: body}
		mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	})

	events := []models.AnalyticsEvent{
		{ID: 1, Name: "lesson_completed", Properties: json.RawMessage(`{"lesson":"l-1"}`)},
		{ID: 2, Name: "quiz_started"},
	}

	require.NoError(t, a.UploadAnalytics(context.Background(), events))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/analytics/batch", got.path)

	var decoded []models.AnalyticsEvent
	require.NoError(t, json.Unmarshal(got.body, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "lesson_completed", decoded[0].Name)
}

func TestHTTPRemoteAdapter_UploadAnalytics_ServerError(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := a.UploadAnalytics(context.Background(), []models.AnalyticsEvent{{Name: "x"}})
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestHTTPRemoteAdapter_RecordsTransferSamples(t *testing.T) {
	samples := &captureRecorder{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 4096))
	}))
	defer srv.Close()

	a, err := NewHTTPRemoteAdapter(config.AgentRemote{BaseURL: srv.URL}, samples, logger.Nop())
	require.NoError(t, err)

	_, err = a.Execute(context.Background(), models.SyncOperation{
		OperationKind: models.OperationCreate,
		EntityType:    "course",
		EntityID:      "c-1",
	})
	require.NoError(t, err)

	samples.mu.Lock()
	defer samples.mu.Unlock()
	require.NotEmpty(t, samples.bytes)
	assert.Positive(t, samples.bytes[0])
}

type captureRecorder struct {
	mu    sync.Mutex
	bytes []int64
}

func (c *captureRecorder) RecordSample(bytes int64, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bytes = append(c.bytes, bytes)
}

func TestHTTPRemoteAdapter_TokenRoundTrip(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {})

	assert.Empty(t, a.Token())

	a.SetToken("  spaced-token  ")
	assert.Equal(t, "spaced-token", a.Token())
}

func TestNewHTTPRemoteAdapter_BaseURLValidation(t *testing.T) {
	_, err := NewHTTPRemoteAdapter(config.AgentRemote{BaseURL: "   "}, nil, logger.Nop())
	require.Error(t, err)

	a, err := NewHTTPRemoteAdapter(config.AgentRemote{BaseURL: "api.lumenlearn.io/v1/"}, nil, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, a)
}

func TestTokenExpired(t *testing.T) {
	sign := func(exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "learner-1",
			"exp": exp.Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)
		return signed
	}

	expired, err := tokenExpired(sign(time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	assert.True(t, expired)

	expired, err = tokenExpired(sign(time.Now().Add(time.Hour)))
	require.NoError(t, err)
	assert.False(t, expired)

	_, err = tokenExpired("not-a-jwt")
	assert.Error(t, err)
}
