package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSnapshotTable = `CREATE TABLE IF NOT EXISTS cv_snapshots (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresSlot stores snapshots in a PostgreSQL table.
type PostgresSlot struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and ensures the snapshot table exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresSlot, error) {
	if databaseURL == "" {
		return nil, &Error{Message: "database URL is empty"}
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, &Error{Message: "failed to connect to database", Cause: err}
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &Error{Message: "failed to ping database", Cause: err}
	}

	if _, err := pool.Exec(ctx, createSnapshotTable); err != nil {
		pool.Close()
		return nil, &Error{Message: "failed to create snapshot table", Cause: err}
	}

	return &PostgresSlot{pool: pool}, nil
}

func (s *PostgresSlot) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM cv_snapshots WHERE key = $1`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &Error{Message: fmt.Sprintf("failed to load snapshot %s", key), Cause: err}
	}
	return value, nil
}

func (s *PostgresSlot) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO cv_snapshots (key, value)
		 VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		return &Error{Message: fmt.Sprintf("failed to save snapshot %s", key), Cause: err}
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresSlot) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
