package localstore

import (
	"context"
	"fmt"

	"resumebuilder/internal/config"
	"resumebuilder/internal/database"
	"resumebuilder/internal/database/migration"
	"resumebuilder/internal/logger"
)

// Driver names accepted by Open.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

var openPostgres = database.Open

// Open builds the Store selected by cfg.Driver. The postgres driver also
// ensures the local_state schema exists.
func Open(ctx context.Context, cfg config.LocalStoreConfig) (Store, error) {
	log := logger.Component("localstore")

	switch cfg.Driver {
	case DriverMemory:
		log.Warn().Msg("using in-memory local store, state will not survive a restart")
		return NewMemory(), nil
	case DriverFile, "":
		s, err := NewFile(cfg.Path, cfg.Namespace)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.Path).Msg("using file local store")
		return s, nil
	case DriverPostgres:
		db, err := openPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open postgres local store: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate postgres local store: %w", err)
		}
		log.Info().Str("db_host", cfg.Database.Host).Msg("using postgres local store")
		return NewPostgres(db, cfg.Namespace), nil
	case DriverRedis:
		s, err := NewRedis(ctx, cfg.Redis, cfg.Namespace)
		if err != nil {
			return nil, fmt.Errorf("open redis local store: %w", err)
		}
		log.Info().Str("redis_addr", cfg.Redis.Addr).Msg("using redis local store")
		return s, nil
	default:
		return nil, fmt.Errorf("unknown local store driver %q", cfg.Driver)
	}
}
