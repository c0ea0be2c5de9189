// Package migration creates the schema backing the postgres local store.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"resumebuilder/internal/logger"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_local_state",
		SQL: `CREATE TABLE IF NOT EXISTS local_state (
  namespace  TEXT        NOT NULL,
  key        TEXT        NOT NULL,
  value      TEXT        NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (namespace, key)
);`,
	},
	{
		Name: "create_index_local_state_updated_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_local_state_updated_at ON local_state (updated_at);`,
	},
}

// EnsureMigrated runs the schema steps unless the local_state table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB) error {
	start := time.Now()
	log := logger.Component("migration")

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.local_state') IS NOT NULL").Scan(&exists); err != nil {
		log.Error().Err(err).Msg("migration check failed")
		return fmt.Errorf("check local_state table: %w", err)
	}
	if exists {
		log.Debug().Dur("duration", time.Since(start)).Msg("schema present, skipping migration")
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).Str("migration_step", step.Name).Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info().
			Str("migration_step", step.Name).
			Dur("step_duration", time.Since(stepStart)).
			Msg("migration step applied")
	}

	log.Info().Dur("duration", time.Since(start)).Msg("migration complete")
	return nil
}
