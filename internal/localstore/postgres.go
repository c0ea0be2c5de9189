package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres stores slots in the local_state table, one row per
// (namespace, key). Schema is created by database/migration.
type Postgres struct {
	db        *sql.DB
	namespace string
}

func NewPostgres(db *sql.DB, namespace string) *Postgres {
	return &Postgres{db: db, namespace: namespace}
}

var (
	_ Store  = (*Postgres)(nil)
	_ Pinger = (*Postgres)(nil)
)

func (p *Postgres) Get(ctx context.Context, key string) (string, error) {
	const q = `
		SELECT value
		FROM local_state
		WHERE namespace = $1 AND key = $2
	`
	var value string
	if err := p.db.QueryRowContext(ctx, q, p.namespace, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO local_state (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	if _, err := p.db.ExecContext(ctx, q, p.namespace, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete is a no-op for missing keys.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM local_state WHERE namespace = $1 AND key = $2`
	if _, err := p.db.ExecContext(ctx, q, p.namespace, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
