package store

import (
	"context"
	"time"

	"github.com/lumenlearn/go-offline-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/store_mocks.go -package=mocks

// BoxStorage is durable key-value storage scoped by a logical box name.
// Values are opaque byte slices; callers own serialization. No retries at
// this layer; callers handle failure.
type BoxStorage interface {
	Put(ctx context.Context, box, key string, value []byte) error
	Get(ctx context.Context, box, key string) ([]byte, error)
	Delete(ctx context.Context, box, key string) error
	Keys(ctx context.Context, box string) ([]string, error)
}

// QueueRepository persists pending sync operations. GetAll returns rows in
// drain order: priority descending, created_at ascending.
type QueueRepository interface {
	Save(ctx context.Context, op models.SyncOperation) error
	Get(ctx context.Context, id string) (models.SyncOperation, error)
	GetAll(ctx context.Context) ([]models.SyncOperation, error)
	Update(ctx context.Context, op models.SyncOperation) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ContentRepository persists the offline content registry.
type ContentRepository interface {
	Upsert(ctx context.Context, content models.OfflineContent) error
	Get(ctx context.Context, id string) (models.OfflineContent, error)
	GetAll(ctx context.Context) ([]models.OfflineContent, error)
	GetUndownloaded(ctx context.Context) ([]models.OfflineContent, error)
	UpdateProgress(ctx context.Context, id string, progress float64) error
	MarkDownloaded(ctx context.Context, id, contentHash string) error
	Delete(ctx context.Context, id string) error
	GetExpired(ctx context.Context, now time.Time) ([]models.OfflineContent, error)
}

// AnalyticsRepository buffers telemetry events until they are uploaded.
type AnalyticsRepository interface {
	Insert(ctx context.Context, event models.AnalyticsEvent) error
	GetUnsynced(ctx context.Context) ([]models.AnalyticsEvent, error)
	MarkSynced(ctx context.Context, ids []int64) error
}

// EntityRepository caches server representations of remote resources and
// keeps the full-text shadow index in step for search.
type EntityRepository interface {
	Upsert(ctx context.Context, entity models.CachedEntity) error
	Get(ctx context.Context, entityType, entityID string) (models.CachedEntity, error)
	Delete(ctx context.Context, entityType, entityID string) error
	Search(ctx context.Context, query models.SearchQuery) ([]models.CachedEntity, error)
}
