package repository

import (
	"context"
	"testing"
	"time"

	"food-dashboard/internal/database"
	"food-dashboard/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer, applies migrations and returns a pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
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

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

func sampleFoods() []model.Food {
	return []model.Food{
		{ID: "1", Name: "Cake", Description: "Chocolate", Price: 10, Available: true, Image: "http://img/cake.png"},
		{ID: "2", Name: "Pie", Description: "Apple", Price: 5, Available: true, Image: "http://img/pie.png"},
		{ID: "3", Name: "Ao molho", Description: "Pasta", Price: 19.9, Available: false, Image: "http://img/pasta.png"},
	}
}

// runFoodRepositoryContract exercises behaviour every FoodRepository must share.
func runFoodRepositoryContract(t *testing.T, newRepo func(t *testing.T) FoodRepository) {
	ctx := context.Background()

	t.Run("List on empty store", func(t *testing.T) {
		repo := newRepo(t)

		foods, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, foods)
		assert.Empty(t, foods)
	})

	t.Run("List preserves insertion order", func(t *testing.T) {
		repo := newRepo(t)
		for _, f := range sampleFoods() {
			f := f
			require.NoError(t, repo.Create(ctx, &f))
		}

		foods, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, foods, 3)
		assert.Equal(t, sampleFoods(), foods)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("GetByID", func(t *testing.T) {
		repo := newRepo(t)
		cake := sampleFoods()[0]
		require.NoError(t, repo.Create(ctx, &cake))

		found, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, cake, *found)

		missing, err := repo.GetByID(ctx, "999")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Update keeps position", func(t *testing.T) {
		repo := newRepo(t)
		for _, f := range sampleFoods() {
			f := f
			require.NoError(t, repo.Create(ctx, &f))
		}

		updated := sampleFoods()[0]
		updated.Price = 12
		require.NoError(t, repo.Update(ctx, &updated))

		foods, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, foods, 3)
		assert.Equal(t, "1", foods[0].ID)
		assert.Equal(t, 12.0, foods[0].Price)
		assert.Equal(t, sampleFoods()[1], foods[1])
	})

	t.Run("Update unknown id", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.Update(ctx, &model.Food{ID: "404", Name: "Ghost"})
		assert.ErrorIs(t, err, model.ErrFoodNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := newRepo(t)
		for _, f := range sampleFoods() {
			f := f
			require.NoError(t, repo.Create(ctx, &f))
		}

		require.NoError(t, repo.Delete(ctx, "2"))

		foods, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, foods, 2)
		assert.Equal(t, "1", foods[0].ID)
		assert.Equal(t, "3", foods[1].ID)

		assert.ErrorIs(t, repo.Delete(ctx, "2"), model.ErrFoodNotFound)
	})
}

func TestMemoryFoodRepository(t *testing.T) {
	runFoodRepositoryContract(t, func(t *testing.T) FoodRepository {
		return NewMemoryFoodRepository(zerolog.Nop())
	})
}

func TestMemoryFoodRepository_DuplicateID(t *testing.T) {
	repo := NewMemoryFoodRepository(zerolog.Nop())
	ctx := context.Background()

	food := model.Food{ID: "1", Name: "Cake"}
	require.NoError(t, repo.Create(ctx, &food))

	err := repo.Create(ctx, &food)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestMemoryFoodRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryFoodRepository(zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryFoodRepository_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryFoodRepository(zerolog.Nop())
	ctx := context.Background()

	food := model.Food{ID: "1", Name: "Cake"}
	require.NoError(t, repo.Create(ctx, &food))

	foods, err := repo.List(ctx)
	require.NoError(t, err)
	foods[0].Name = "Changed"

	stored, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Cake", stored.Name)
}

func TestFoodRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	runFoodRepositoryContract(t, func(t *testing.T) FoodRepository {
		_, err := pool.Exec(context.Background(), "TRUNCATE foods")
		require.NoError(t, err)
		return NewFoodRepository(pool, zerolog.Nop())
	})
}
