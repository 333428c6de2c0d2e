package store

import (
	"context"
	"fmt"

	"github.com/avilov/zonesync/internal/config"
	"github.com/avilov/zonesync/internal/logger"
)

// ClientStorages aggregates the local repositories built on one SQLite
// connection.
type ClientStorages struct {
	Records LocalStore
	Tokens  TokenStore

	db *DB
}

// NewClientStorages opens the local database, applies pending migrations, and
// wires the record and token repositories on top of it.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	return &ClientStorages{
		Records: NewLocalRecordRepository(db, log),
		Tokens:  NewTokenRepository(db, log),
		db:      db,
	}, nil
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
