package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/models"
)

type queueRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

func (q *queueRepository) Save(ctx context.Context, op models.SyncOperation) error {
	log := logger.FromContext(ctx)

	_, err := q.DB.ExecContext(ctx, saveOperation,
		op.ID,
		op.OperationKind,
		op.EntityType,
		op.EntityID,
		[]byte(op.Payload),
		op.CreatedAt,
		op.RetryCount,
		op.LastError,
		op.Priority,
	)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Save").
			Str("operation_id", op.ID).
			Str("entity_type", op.EntityType).
			Msg("failed to execute insert for sync operation")
		return fmt.Errorf("failed to save sync operation (id=%s): %w", op.ID, err)
	}

	return nil
}

func (q *queueRepository) Get(ctx context.Context, id string) (models.SyncOperation, error) {
	log := logger.FromContext(ctx)

	row := q.DB.QueryRowContext(ctx, getSingleOperation, id)

	op, err := scanOperation(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncOperation{}, ErrOperationNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Get").
			Str("operation_id", id).
			Msg("failed to scan sync operation row")
		return models.SyncOperation{}, fmt.Errorf("failed to scan sync operation row: %w", err)
	}

	return op, nil
}

func (q *queueRepository) GetAll(ctx context.Context) ([]models.SyncOperation, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, getAllOperations)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.GetAll").
			Msg("failed to execute query for all sync operations")
		return nil, fmt.Errorf("failed to query all sync operations: %w", err)
	}
	defer rows.Close()

	var ops []models.SyncOperation

	for rows.Next() {
		op, scanErr := scanOperation(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "queueRepository.GetAll").
				Msg("failed to scan sync operation row")
			return nil, fmt.Errorf("failed to scan sync operation row: %w", scanErr)
		}
		ops = append(ops, op)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "queueRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating sync operation rows: %w", rowsErr)
	}

	return ops, nil
}

func (q *queueRepository) Update(ctx context.Context, op models.SyncOperation) error {
	log := logger.FromContext(ctx)

	result, err := q.DB.ExecContext(ctx, updateOperation, op.RetryCount, op.LastError, op.ID)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Update").
			Str("operation_id", op.ID).
			Msg("failed to execute update for sync operation")
		return fmt.Errorf("failed to update sync operation (id=%s): %w", op.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Update").
			Str("operation_id", op.ID).
			Msg("failed to get rows affected after update")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", op.ID, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "queueRepository.Update").
			Str("operation_id", op.ID).
			Msg("no rows affected during update: operation not found")
		return ErrOperationNotFound
	}

	return nil
}

func (q *queueRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	_, err := q.DB.ExecContext(ctx, deleteOperation, id)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Delete").
			Str("operation_id", id).
			Msg("failed to execute delete for sync operation")
		return fmt.Errorf("failed to delete sync operation (id=%s): %w", id, err)
	}

	return nil
}

func (q *queueRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := q.DB.QueryRowContext(ctx, countOperations).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "queueRepository.Count").
			Msg("failed to count sync operations")
		return 0, fmt.Errorf("failed to count sync operations: %w", err)
	}

	return count, nil
}

func scanOperation(scan func(dest ...any) error) (models.SyncOperation, error) {
	var op models.SyncOperation
	var payload []byte

	err := scan(
		&op.ID,
		&op.OperationKind,
		&op.EntityType,
		&op.EntityID,
		&payload,
		&op.CreatedAt,
		&op.RetryCount,
		&op.LastError,
		&op.Priority,
	)
	if err != nil {
		return models.SyncOperation{}, err
	}

	op.Payload = payload
	return op, nil
}
