package statestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhisek/ailearn/internal/progress"
)

const createStateTable = `
CREATE TABLE IF NOT EXISTS ailearn_state (
	key        TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	// DSN is a libpq connection string or URL.
	DSN string

	// Key names the row. Empty means DefaultKey.
	Key string

	MaxConns        int32
	MaxConnLifetime time.Duration
}

// DefaultPostgresConfig returns pool settings sized for one learner.
func DefaultPostgresConfig() PostgresConfig {
	return PostgresConfig{
		Key:             DefaultKey,
		MaxConns:        4,
		MaxConnLifetime: time.Hour,
	}
}

// Postgres stores the progress blob in the ailearn_state table.
type Postgres struct {
	pool *pgxpool.Pool
	key  string
}

var _ progress.Backend = (*Postgres)(nil)

// OpenPostgres connects, pings and creates the state table.
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, createStateTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}
	return &Postgres{pool: pool, key: key}, nil
}

// Load returns the blob or progress.ErrNoState when the row is absent.
func (p *Postgres) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := p.pool.QueryRow(ctx,
		`SELECT data::text FROM ailearn_state WHERE key = $1`, p.key,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, progress.ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("load state %q: %w", p.key, err)
	}
	return data, nil
}

// Save upserts the blob.
func (p *Postgres) Save(ctx context.Context, data []byte) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO ailearn_state (key, data, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT(key) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at`,
		p.key, string(data),
	)
	if err != nil {
		return fmt.Errorf("save state %q: %w", p.key, err)
	}
	return nil
}

// Delete removes the row.
func (p *Postgres) Delete(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM ailearn_state WHERE key = $1`, p.key); err != nil {
		return fmt.Errorf("delete state %q: %w", p.key, err)
	}
	return nil
}

// Close releases the pool.
func (p *Postgres) Close() {
	p.pool.Close()
}
