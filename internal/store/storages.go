package store

import (
	"context"
	"fmt"

	"github.com/lumenlearn/go-offline-sync/internal/config"
	"github.com/lumenlearn/go-offline-sync/internal/logger"
)

// Storages groups all engine storage repositories into a single value that
// can be passed around the service layer.
type Storages struct {
	// Boxes is the generic key-value storage used for small engine state.
	Boxes BoxStorage
	// Queue is the durable pending-operation store.
	Queue QueueRepository
	// Content is the offline content registry.
	Content ContentRepository
	// Analytics is the locally buffered telemetry store.
	Analytics AnalyticsRepository
	// Entities is the searchable cache of server representations.
	Entities EntityRepository

	db *DB
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories
//     sharing the single connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.AgentStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Boxes:     NewBoxRepository(db, logger),
		Queue:     NewQueueRepository(db, logger),
		Content:   NewContentRepository(db, logger),
		Analytics: NewAnalyticsRepository(db, logger),
		Entities:  NewEntityRepository(db, logger),
		db:        db,
	}, nil
}
