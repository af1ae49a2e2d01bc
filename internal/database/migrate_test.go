package database

import (
	"context"
	"testing"
	"time"

	"food-dashboard/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMigrationNames(t *testing.T) {
	names, err := MigrationNames()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"migrations/001_create_foods.sql",
		"migrations/002_foods_position.sql",
	}, names)
}

func TestNewPool_InvalidHost(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := config.DatabaseConfig{
		Host:            "invalid-host.invalid",
		Port:            5432,
		User:            "postgres",
		Database:        "gofood",
		MaxConnections:  2,
		MinConnections:  1,
		MaxConnLifetime: 60,
	}

	pool, err := NewPool(ctx, cfg, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, pool)
}

func TestMigrate_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "postgres",
		Password:        "postgres",
		Database:        "testdb",
		MaxConnections:  4,
		MinConnections:  1,
		MaxConnLifetime: 60,
	}

	pool, err := Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, Ping(ctx, pool))
	// Second run must be a no-op.
	require.NoError(t, Migrate(ctx, pool, zerolog.Nop()))

	var count int
	err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM foods").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
