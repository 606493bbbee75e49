package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/models"
)

type contentRepository struct {
	*DB
	logger *logger.Logger
}

func NewContentRepository(db *DB, logger *logger.Logger) ContentRepository {
	return &contentRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *contentRepository) Upsert(ctx context.Context, content models.OfflineContent) error {
	log := logger.FromContext(ctx)

	urls, err := json.Marshal(content.DownloadURLs)
	if err != nil {
		return fmt.Errorf("failed to encode download urls (id=%s): %w", content.ID, err)
	}

	_, err = c.DB.ExecContext(ctx, upsertContent,
		content.ID,
		content.Type,
		content.Title,
		string(urls),
		content.SizeBytes,
		content.Priority,
		content.CreatedAt,
		content.ExpiresAt,
		content.IsDownloaded,
		content.DownloadProgress,
		content.ContentHash,
	)
	if err != nil {
		log.Err(err).
			Str("func", "contentRepository.Upsert").
			Str("content_id", content.ID).
			Msg("failed to execute upsert for offline content")
		return fmt.Errorf("failed to upsert offline content (id=%s): %w", content.ID, err)
	}

	return nil
}

func (c *contentRepository) Get(ctx context.Context, id string) (models.OfflineContent, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, getSingleContent, id)

	content, err := scanContent(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OfflineContent{}, ErrContentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "contentRepository.Get").
			Str("content_id", id).
			Msg("failed to scan offline content row")
		return models.OfflineContent{}, fmt.Errorf("failed to scan offline content row: %w", err)
	}

	return content, nil
}

func (c *contentRepository) GetAll(ctx context.Context) ([]models.OfflineContent, error) {
	return c.queryContent(ctx, "contentRepository.GetAll", getAllContent)
}

func (c *contentRepository) GetUndownloaded(ctx context.Context) ([]models.OfflineContent, error) {
	return c.queryContent(ctx, "contentRepository.GetUndownloaded", getUndownloadedContent)
}

func (c *contentRepository) GetExpired(ctx context.Context, now time.Time) ([]models.OfflineContent, error) {
	return c.queryContent(ctx, "contentRepository.GetExpired", getExpiredContent, now)
}

func (c *contentRepository) UpdateProgress(ctx context.Context, id string, progress float64) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, updateContentProgress, progress, id)
	if err != nil {
		log.Err(err).
			Str("func", "contentRepository.UpdateProgress").
			Str("content_id", id).
			Msg("failed to execute progress update for offline content")
		return fmt.Errorf("failed to update download progress (id=%s): %w", id, err)
	}

	return nil
}

func (c *contentRepository) MarkDownloaded(ctx context.Context, id, contentHash string) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, markContentDownloaded, contentHash, id)
	if err != nil {
		log.Err(err).
			Str("func", "contentRepository.MarkDownloaded").
			Str("content_id", id).
			Msg("failed to execute downloaded mark for offline content")
		return fmt.Errorf("failed to mark content downloaded (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "contentRepository.MarkDownloaded").
			Str("content_id", id).
			Msg("failed to get rows affected after downloaded mark")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "contentRepository.MarkDownloaded").
			Str("content_id", id).
			Msg("no rows affected during downloaded mark: content not found")
		return ErrContentNotFound
	}

	return nil
}

func (c *contentRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, deleteContent, id)
	if err != nil {
		log.Err(err).
			Str("func", "contentRepository.Delete").
			Str("content_id", id).
			Msg("failed to execute delete for offline content")
		return fmt.Errorf("failed to delete offline content (id=%s): %w", id, err)
	}

	return nil
}

func (c *contentRepository) queryContent(ctx context.Context, fn, query string, args ...any) ([]models.OfflineContent, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Msg("failed to execute query for offline content")
		return nil, fmt.Errorf("failed to query offline content: %w", err)
	}
	defer rows.Close()

	var items []models.OfflineContent

	for rows.Next() {
		item, scanErr := scanContent(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", fn).
				Msg("failed to scan offline content row")
			return nil, fmt.Errorf("failed to scan offline content row: %w", scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", fn).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating offline content rows: %w", rowsErr)
	}

	return items, nil
}

func scanContent(scan func(dest ...any) error) (models.OfflineContent, error) {
	var content models.OfflineContent
	var urls string
	var expiresAt sql.NullTime

	err := scan(
		&content.ID,
		&content.Type,
		&content.Title,
		&urls,
		&content.SizeBytes,
		&content.Priority,
		&content.CreatedAt,
		&expiresAt,
		&content.IsDownloaded,
		&content.DownloadProgress,
		&content.ContentHash,
	)
	if err != nil {
		return models.OfflineContent{}, err
	}

	if expiresAt.Valid {
		t := expiresAt.Time
		content.ExpiresAt = &t
	}
	if err = json.Unmarshal([]byte(urls), &content.DownloadURLs); err != nil {
		return models.OfflineContent{}, fmt.Errorf("failed to decode download urls: %w", err)
	}

	return content, nil
}
