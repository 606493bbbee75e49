package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lumenlearn/go-offline-sync/internal/adapter"
	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/internal/store"
	"github.com/lumenlearn/go-offline-sync/internal/utils"
	"github.com/lumenlearn/go-offline-sync/models"
)

type queueService struct {
	queue        store.QueueRepository
	entities     store.EntityRepository
	remote       adapter.RemoteAdapter
	connectivity ConnectivitySource
	ids          *utils.IDGenerator
	logger       *logger.Logger
}

func NewQueueService(
	queue store.QueueRepository,
	entities store.EntityRepository,
	remote adapter.RemoteAdapter,
	connectivity ConnectivitySource,
	logger *logger.Logger,
) QueueService {
	return &queueService{
		queue:        queue,
		entities:     entities,
		remote:       remote,
		connectivity: connectivity,
		ids:          utils.NewIDGenerator(),
		logger:       logger,
	}
}

// Enqueue implements [QueueService]. The operation is durable before the
// immediate-execution attempt, so a crash mid-attempt loses nothing.
func (s *queueService) Enqueue(ctx context.Context, op models.SyncOperation) (models.SyncOperation, error) {
	if op.ID == "" {
		op.ID = s.ids.Generate()
	}
	if op.CreatedAt.IsZero() {
		op.CreatedAt = time.Now().UTC()
	}
	op.RetryCount = 0
	op.LastError = ""

	if err := s.queue.Save(ctx, op); err != nil {
		return models.SyncOperation{}, fmt.Errorf("enqueue operation: %w", err)
	}

	s.logger.Debug().
		Str("func", "queueService.Enqueue").
		Str("operation_id", op.ID).
		Str("kind", string(op.OperationKind)).
		Str("entity_type", op.EntityType).
		Str("priority", op.Priority.String()).
		Msg("operation enqueued")

	// Best-effort low-latency path; failure handling is identical to a
	// drain pass and the row stays queued until a pass succeeds.
	if s.connectivity.IsOnline() {
		s.executeOne(ctx, op)
	}

	return op, nil
}

// Drain implements [QueueService]. Operations execute strictly sequentially
// to avoid interleaved writes against the same entity; parallelising this
// loop is a throughput/consistency trade-off that must not change silently.
func (s *queueService) Drain(ctx context.Context) (int, error) {
	ops, err := s.queue.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load pending operations: %w", err)
	}

	applied := 0
	for _, op := range ops {
		if ctx.Err() != nil {
			return applied, ctx.Err()
		}
		if s.executeOne(ctx, op) {
			applied++
		}
	}

	return applied, nil
}

func (s *queueService) Pending(ctx context.Context) (int, error) {
	return s.queue.Count(ctx)
}

// executeOne replays a single operation. Returns true when the remote call
// succeeded and the row was removed.
func (s *queueService) executeOne(ctx context.Context, op models.SyncOperation) bool {
	body, err := s.remote.Execute(ctx, op)
	if err != nil {
		s.recordFailure(ctx, op.ID, err)
		return false
	}

	if err = s.queue.Delete(ctx, op.ID); err != nil {
		s.logger.Err(err).
			Str("func", "queueService.executeOne").
			Str("operation_id", op.ID).
			Msg("operation applied remotely but could not be removed from the queue")
		return false
	}

	s.updateLocalCache(ctx, op, body)

	s.logger.Info().
		Str("func", "queueService.executeOne").
		Str("operation_id", op.ID).
		Str("kind", string(op.OperationKind)).
		Str("entity_type", op.EntityType).
		Str("entity_id", op.EntityID).
		Msg("operation applied remotely")

	return true
}

// recordFailure applies the retry policy with a read-modify-write against
// the store: the row is re-read so a concurrent attempt's increment is
// never overwritten from a stale in-memory copy. Only transient failures
// (outages, throttling, transport errors) earn a retry; a permanent
// rejection of the operation itself is dropped immediately because the
// identical replay can never succeed.
func (s *queueService) recordFailure(ctx context.Context, opID string, cause error) {
	current, err := s.queue.Get(ctx, opID)
	if errors.Is(err, store.ErrOperationNotFound) {
		// another path already applied or dropped it
		return
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "queueService.recordFailure").
			Str("operation_id", opID).
			Msg("failed to reload operation after remote failure")
		return
	}

	current.RetryCount++
	current.LastError = cause.Error()

	if !adapter.IsTransient(cause) || current.RetryCount >= models.MaxRetries {
		reason := "retries exhausted"
		if !adapter.IsTransient(cause) {
			reason = "remote rejected the operation"
		}
		if err = s.queue.Delete(ctx, opID); err != nil {
			s.logger.Err(err).
				Str("func", "queueService.recordFailure").
				Str("operation_id", opID).
				Msg("failed to drop operation")
			return
		}
		s.logger.Warn().
			Str("func", "queueService.recordFailure").
			Str("operation_id", opID).
			Str("entity_type", current.EntityType).
			Str("entity_id", current.EntityID).
			Str("last_error", current.LastError).
			Str("reason", reason).
			Msg("operation dropped; local change is lost")
		return
	}

	if err = s.queue.Update(ctx, current); err != nil {
		s.logger.Err(err).
			Str("func", "queueService.recordFailure").
			Str("operation_id", opID).
			Msg("failed to persist retry state")
		return
	}

	s.logger.Warn().
		Str("func", "queueService.recordFailure").
		Str("operation_id", opID).
		Int("retry_count", current.RetryCount).
		Str("last_error", current.LastError).
		Msg("operation failed; will retry on next drain")
}

// updateLocalCache writes the server's returned representation into the
// cached-entity table. The server is the source of truth post-sync.
func (s *queueService) updateLocalCache(ctx context.Context, op models.SyncOperation, body json.RawMessage) {
	if op.OperationKind == models.OperationDelete {
		if err := s.entities.Delete(ctx, op.EntityType, op.EntityID); err != nil {
			s.logger.Err(err).
				Str("func", "queueService.updateLocalCache").
				Str("entity_type", op.EntityType).
				Str("entity_id", op.EntityID).
				Msg("failed to drop cached entity after remote delete")
		}
		return
	}

	if len(body) == 0 {
		return
	}

	title, text := extractSearchFields(body)
	entity := models.CachedEntity{
		EntityType: op.EntityType,
		EntityID:   op.EntityID,
		Title:      title,
		Body:       text,
		Data:       body,
		UpdatedAt:  time.Now().UTC(),
	}

	if err := s.entities.Upsert(ctx, entity); err != nil {
		s.logger.Err(err).
			Str("func", "queueService.updateLocalCache").
			Str("entity_type", op.EntityType).
			Str("entity_id", op.EntityID).
			Msg("failed to cache server representation")
	}
}

// extractSearchFields pulls the conventional title/description strings out
// of an otherwise opaque payload so the full-text shadow has something to
// index. Missing fields simply leave the shadow entry sparse.
func extractSearchFields(body json.RawMessage) (title, text string) {
	var fields struct {
		Title       string `json:"title"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Body        string `json:"body"`
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", ""
	}

	title = fields.Title
	if title == "" {
		title = fields.Name
	}
	text = fields.Description
	if text == "" {
		text = fields.Body
	}
	return title, text
}
