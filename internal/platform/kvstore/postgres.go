package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores blobs in a single key/value table so a networked deployment
// can swap in without touching the domain packages.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps an existing pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// ConnectPostgres dials PostgreSQL, verifies the connection and ensures the
// blob table exists.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("kvstore: parse config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("kvstore: new pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("kvstore: ping: %w", err)
	}
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv_blobs (key TEXT PRIMARY KEY, value JSONB NOT NULL)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("kvstore: ensure table: %w", err)
	}
	return pool, nil
}

// Load reads and decodes the blob under key.
func (s *Postgres) Load(ctx context.Context, key string, v any) error {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_blobs WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrKeyMissing
	}
	if err != nil {
		return fmt.Errorf("kvstore: select %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return nil
}

// Save encodes v and overwrites the blob under key.
func (s *Postgres) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kvstore: marshal %s: %w", key, err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO kv_blobs (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, data)
	if err != nil {
		return fmt.Errorf("kvstore: upsert %s: %w", key, err)
	}
	return nil
}

// SeedOnce inserts the blob only when the key is absent. A unique violation
// means another writer seeded first, which is not an error.
func (s *Postgres) SeedOnce(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kvstore: marshal %s: %w", key, err)
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO kv_blobs (key, value) VALUES ($1, $2)`, key, data)
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("kvstore: seed %s: %w", key, err)
	}
	return nil
}

// isUniqueViolation matches a PostgreSQL duplicate-key error anywhere in the
// wrap chain.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
