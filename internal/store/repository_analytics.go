package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lumenlearn/go-offline-sync/internal/logger"
	"github.com/lumenlearn/go-offline-sync/models"
)

type analyticsRepository struct {
	*DB
	logger *logger.Logger
}

func NewAnalyticsRepository(db *DB, logger *logger.Logger) AnalyticsRepository {
	return &analyticsRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *analyticsRepository) Insert(ctx context.Context, event models.AnalyticsEvent) error {
	log := logger.FromContext(ctx)

	_, err := a.DB.ExecContext(ctx, insertAnalyticsEvent,
		event.Name,
		[]byte(event.Properties),
		event.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "analyticsRepository.Insert").
			Str("event_name", event.Name).
			Msg("failed to execute insert for analytics event")
		return fmt.Errorf("failed to insert analytics event (name=%s): %w", event.Name, err)
	}

	return nil
}

func (a *analyticsRepository) GetUnsynced(ctx context.Context) ([]models.AnalyticsEvent, error) {
	log := logger.FromContext(ctx)

	rows, err := a.DB.QueryContext(ctx, getUnsyncedAnalytics)
	if err != nil {
		log.Err(err).
			Str("func", "analyticsRepository.GetUnsynced").
			Msg("failed to execute query for unsynced analytics events")
		return nil, fmt.Errorf("failed to query unsynced analytics events: %w", err)
	}
	defer rows.Close()

	var events []models.AnalyticsEvent

	for rows.Next() {
		var event models.AnalyticsEvent
		var properties []byte

		scanErr := rows.Scan(
			&event.ID,
			&event.Name,
			&properties,
			&event.CreatedAt,
			&event.Synced,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "analyticsRepository.GetUnsynced").
				Msg("failed to scan analytics event row")
			return nil, fmt.Errorf("failed to scan analytics event row: %w", scanErr)
		}

		event.Properties = properties
		events = append(events, event)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "analyticsRepository.GetUnsynced").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating analytics event rows: %w", rowsErr)
	}

	return events, nil
}

func (a *analyticsRepository) MarkSynced(ctx context.Context, ids []int64) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.Update("analytics").
		Set("synced", 1).
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "analyticsRepository.MarkSynced").
			Msg("failed to build synced update query")
		return fmt.Errorf("failed to build synced update query: %w", err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "analyticsRepository.MarkSynced").
			Int("ids", len(ids)).
			Msg("failed to execute synced update for analytics events")
		return fmt.Errorf("failed to mark analytics events synced: %w", err)
	}

	return nil
}
