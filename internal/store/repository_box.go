package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
)

type boxRepository struct {
	*DB
	logger *logger.Logger
}

func NewBoxRepository(db *DB, logger *logger.Logger) BoxStorage {
	return &boxRepository{
		DB:     db,
		logger: logger,
	}
}

func (b *boxRepository) Put(ctx context.Context, box, key string, value []byte) error {
	log := logger.FromContext(ctx)

	_, err := b.DB.ExecContext(ctx, putBoxValue, box, key, value)
	if err != nil {
		log.Err(err).
			Str("func", "boxRepository.Put").
			Str("box", box).
			Str("key", key).
			Msg("failed to execute upsert for box value")
		return fmt.Errorf("failed to put box value (box=%s, key=%s): %w", box, key, err)
	}

	return nil
}

func (b *boxRepository) Get(ctx context.Context, box, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var value []byte
	err := b.DB.QueryRowContext(ctx, getBoxValue, box, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "boxRepository.Get").
			Str("box", box).
			Str("key", key).
			Msg("failed to query box value")
		return nil, fmt.Errorf("failed to query box value (box=%s, key=%s): %w", box, key, err)
	}

	return value, nil
}

func (b *boxRepository) Delete(ctx context.Context, box, key string) error {
	log := logger.FromContext(ctx)

	_, err := b.DB.ExecContext(ctx, deleteBoxValue, box, key)
	if err != nil {
		log.Err(err).
			Str("func", "boxRepository.Delete").
			Str("box", box).
			Str("key", key).
			Msg("failed to execute delete for box value")
		return fmt.Errorf("failed to delete box value (box=%s, key=%s): %w", box, key, err)
	}

	return nil
}

func (b *boxRepository) Keys(ctx context.Context, box string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := b.DB.QueryContext(ctx, getBoxKeys, box)
	if err != nil {
		log.Err(err).
			Str("func", "boxRepository.Keys").
			Str("box", box).
			Msg("failed to execute query for box keys")
		return nil, fmt.Errorf("failed to query box keys (box=%s): %w", box, err)
	}
	defer rows.Close()

	var keys []string

	for rows.Next() {
		var key string
		if scanErr := rows.Scan(&key); scanErr != nil {
			log.Err(scanErr).
				Str("func", "boxRepository.Keys").
				Str("box", box).
				Msg("failed to scan box key row")
			return nil, fmt.Errorf("failed to scan box key row: %w", scanErr)
		}
		keys = append(keys, key)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "boxRepository.Keys").
			Str("box", box).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating box key rows: %w", rowsErr)
	}

	return keys, nil
}
