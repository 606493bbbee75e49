package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/models"
)

func newTestContentRepo(t *testing.T) (*contentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &contentRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func contentColumns() []string {
	return []string{
		"id", "type", "title", "download_urls", "size_bytes", "priority",
		"created_at", "expires_at", "is_downloaded", "download_progress", "content_hash",
	}
}

func TestContentRepository_Upsert_EncodesURLs(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	content := models.OfflineContent{
		ID:           "video-1",
		Type:         models.ContentVideo,
		Title:        "Fractions, part 1",
		DownloadURLs: []string{"https://cdn.example.com/v/1.mp4", "https://cdn.example.com/v/1.vtt"},
		SizeBytes:    1 << 20,
		Priority:     models.PriorityHigh,
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO offline_content").
		WithArgs(content.ID, content.Type, content.Title,
			`["https://cdn.example.com/v/1.mp4","https://cdn.example.com/v/1.vtt"]`,
			content.SizeBytes, content.Priority, content.CreatedAt,
			content.ExpiresAt, content.IsDownloaded, content.DownloadProgress, content.ContentHash).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Upsert(context.Background(), content))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_Get_RestoresURLsAndExpiry(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	expires := now.Add(72 * time.Hour)

	rows := sqlmock.NewRows(contentColumns()).
		AddRow("doc-1", "document", "Syllabus", `["https://cdn.example.com/d/1.pdf"]`,
			int64(2048), int(models.PriorityMedium), now, expires, true, 1.0, "abc123")

	mock.ExpectQuery("SELECT(.|\n)+FROM offline_content").
		WithArgs("doc-1").
		WillReturnRows(rows)

	content, err := repo.Get(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn.example.com/d/1.pdf"}, content.DownloadURLs)
	require.NotNil(t, content.ExpiresAt)
	assert.WithinDuration(t, expires, *content.ExpiresAt, time.Second)
	assert.True(t, content.IsDownloaded)
	assert.Equal(t, "abc123", content.ContentHash)
}

func TestContentRepository_Get_NotFound(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)+FROM offline_content").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestContentRepository_GetUndownloaded_FiltersDownloaded(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(contentColumns()).
		AddRow("quiz-1", "quiz", "Quiz 1", `[]`, int64(100), int(models.PriorityLow),
			now, nil, false, 0.25, "")

	mock.ExpectQuery("SELECT(.|\n)+FROM offline_content(.|\n)+WHERE is_downloaded = 0").
		WillReturnRows(rows)

	items, err := repo.GetUndownloaded(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "quiz-1", items[0].ID)
	assert.Nil(t, items[0].ExpiresAt)
	assert.InDelta(t, 0.25, items[0].DownloadProgress, 1e-9)
}

func TestContentRepository_MarkDownloaded(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE offline_content").
		WithArgs("deadbeef", "video-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkDownloaded(context.Background(), "video-1", "deadbeef"))
}

func TestContentRepository_MarkDownloaded_NotFound(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE offline_content").
		WithArgs("deadbeef", "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkDownloaded(context.Background(), "gone", "deadbeef")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestContentRepository_GetExpired(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	past := now.Add(-time.Hour)

	rows := sqlmock.NewRows(contentColumns()).
		AddRow("old-1", "video", "Old lecture", `["https://cdn.example.com/v/old.mp4"]`,
			int64(5000), int(models.PriorityLow), now.Add(-48*time.Hour), past, true, 1.0, "cafe01")

	mock.ExpectQuery("SELECT(.|\n)+FROM offline_content(.|\n)+WHERE expires_at IS NOT NULL").
		WithArgs(now).
		WillReturnRows(rows)

	items, err := repo.GetExpired(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "old-1", items[0].ID)
}

func TestContentRepository_Upsert_DBError(t *testing.T) {
	repo, mock, db := newTestContentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO offline_content").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Upsert(context.Background(), models.OfflineContent{ID: "x", DownloadURLs: []string{}})
	assert.Error(t, err)
}
