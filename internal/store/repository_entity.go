package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/models"
)

const defaultSearchLimit = 20

type entityRepository struct {
	*DB
	logger *logger.Logger
}

func NewEntityRepository(db *DB, logger *logger.Logger) EntityRepository {
	return &entityRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert writes the cached entity row and refreshes its full-text shadow
// entry in one transaction so search never observes a half-updated pair.
func (e *entityRepository) Upsert(ctx context.Context, entity models.CachedEntity) error {
	log := logger.FromContext(ctx)

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Upsert").
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, upsertEntity,
		entity.EntityType,
		entity.EntityID,
		entity.Title,
		entity.Body,
		[]byte(entity.Data),
		entity.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Upsert").
			Str("entity_type", entity.EntityType).
			Str("entity_id", entity.EntityID).
			Msg("failed to execute upsert for cached entity")
		return fmt.Errorf("failed to upsert cached entity (%s/%s): %w", entity.EntityType, entity.EntityID, err)
	}

	if _, err = tx.ExecContext(ctx, deleteEntityShadow, entity.EntityType, entity.EntityID); err != nil {
		log.Err(err).
			Str("func", "entityRepository.Upsert").
			Str("entity_type", entity.EntityType).
			Str("entity_id", entity.EntityID).
			Msg("failed to delete stale full-text shadow entry")
		return fmt.Errorf("failed to delete stale shadow entry (%s/%s): %w", entity.EntityType, entity.EntityID, err)
	}

	if _, err = tx.ExecContext(ctx, insertEntityShadow,
		entity.EntityType,
		entity.EntityID,
		entity.Title,
		entity.Body,
	); err != nil {
		log.Err(err).
			Str("func", "entityRepository.Upsert").
			Str("entity_type", entity.EntityType).
			Str("entity_id", entity.EntityID).
			Msg("failed to insert full-text shadow entry")
		return fmt.Errorf("failed to insert shadow entry (%s/%s): %w", entity.EntityType, entity.EntityID, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "entityRepository.Upsert").
			Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (e *entityRepository) Get(ctx context.Context, entityType, entityID string) (models.CachedEntity, error) {
	log := logger.FromContext(ctx)

	var entity models.CachedEntity
	var data []byte

	err := e.DB.QueryRowContext(ctx, getSingleEntity, entityType, entityID).Scan(
		&entity.EntityType,
		&entity.EntityID,
		&entity.Title,
		&entity.Body,
		&data,
		&entity.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedEntity{}, ErrEntityNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Get").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to scan cached entity row")
		return models.CachedEntity{}, fmt.Errorf("failed to scan cached entity row: %w", err)
	}

	entity.Data = data
	return entity, nil
}

func (e *entityRepository) Delete(ctx context.Context, entityType, entityID string) error {
	log := logger.FromContext(ctx)

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Delete").
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteEntity, entityType, entityID); err != nil {
		log.Err(err).
			Str("func", "entityRepository.Delete").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to execute delete for cached entity")
		return fmt.Errorf("failed to delete cached entity (%s/%s): %w", entityType, entityID, err)
	}

	if _, err = tx.ExecContext(ctx, deleteEntityShadow, entityType, entityID); err != nil {
		log.Err(err).
			Str("func", "entityRepository.Delete").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to delete full-text shadow entry")
		return fmt.Errorf("failed to delete shadow entry (%s/%s): %w", entityType, entityID, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "entityRepository.Delete").
			Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Search runs a full-text match over the shadow index and joins back to the
// content table for the authoritative rows. The query is built with squirrel
// because the type filter and pagination are optional.
func (e *entityRepository) Search(ctx context.Context, query models.SearchQuery) ([]models.CachedEntity, error) {
	log := logger.FromContext(ctx)

	if query.Limit <= 0 {
		query.Limit = defaultSearchLimit
	}

	builder := sq.Select("c.entity_type", "c.entity_id", "c.title", "c.body", "c.data", "c.updated_at").
		From("content_fts f").
		Join("content c ON c.entity_type = f.entity_type AND c.entity_id = f.entity_id").
		Where("content_fts MATCH ?", query.Match).
		OrderBy("rank").
		Limit(uint64(query.Limit)).
		Offset(uint64(query.Offset))

	if query.EntityType != "" {
		builder = builder.Where(sq.Eq{"c.entity_type": query.EntityType})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Search").
			Msg("failed to build search query")
		return nil, fmt.Errorf("failed to build search query: %w", err)
	}

	rows, err := e.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Search").
			Str("match", query.Match).
			Msg("failed to execute search query")
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}
	defer rows.Close()

	var entities []models.CachedEntity

	for rows.Next() {
		var entity models.CachedEntity
		var data []byte

		scanErr := rows.Scan(
			&entity.EntityType,
			&entity.EntityID,
			&entity.Title,
			&entity.Body,
			&data,
			&entity.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entityRepository.Search").
				Msg("failed to scan search result row")
			return nil, fmt.Errorf("failed to scan search result row: %w", scanErr)
		}

		entity.Data = data
		entities = append(entities, entity)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entityRepository.Search").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating search result rows: %w", rowsErr)
	}

	return entities, nil
}
