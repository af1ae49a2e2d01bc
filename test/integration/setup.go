package integration

import (
	"context"
	"testing"
	"time"

	"food-dashboard/internal/config"
	"food-dashboard/internal/database"
	"food-dashboard/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a migrated test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
}

// SetupTestDB starts a PostgreSQL container and opens a migrated pool against it.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	pool, err := database.Open(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(pool.Close)

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
	}
}

// SeedFoods inserts foods directly, in the given order.
func SeedFoods(t *testing.T, pool *pgxpool.Pool, foods ...model.Food) {
	t.Helper()

	ctx := context.Background()
	for _, f := range foods {
		_, err := pool.Exec(ctx,
			`INSERT INTO foods (id, name, description, price, available, image)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			f.ID, f.Name, f.Description, f.Price, f.Available, f.Image,
		)
		if err != nil {
			t.Fatalf("failed to seed food %s: %v", f.ID, err)
		}
	}
}

// CleanupDB removes all foods.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "TRUNCATE foods"); err != nil {
		t.Logf("failed to clean foods: %v", err)
	}
}
