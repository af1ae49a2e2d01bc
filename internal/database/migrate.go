package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded SQL migrations in file name order.
// Every migration is written to be re-runnable.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	names, err := MigrationNames()
	if err != nil {
		return err
	}

	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		logger.Debug().Str("migration", name).Msg("migration applied")
	}

	logger.Info().Int("count", len(names)).Msg("database migrations applied")

	return nil
}

// MigrationNames lists the embedded migrations in the order Migrate applies them.
func MigrationNames() ([]string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)
	return names, nil
}
