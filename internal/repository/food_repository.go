package repository

import (
	"context"
	"errors"
	"fmt"

	"food-dashboard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// foodRepository implements the FoodRepository interface using PostgreSQL.
type foodRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFoodRepository creates a new PostgreSQL-backed food repository.
func NewFoodRepository(pool *pgxpool.Pool, logger zerolog.Logger) FoodRepository {
	return &foodRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "food").Logger(),
	}
}

// List retrieves every food in insertion order.
func (r *foodRepository) List(ctx context.Context) ([]model.Food, error) {
	query := `
		SELECT id, name, description, price, available, image
		FROM foods
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query foods")
		return nil, fmt.Errorf("failed to query foods: %w", err)
	}
	defer rows.Close()

	foods := []model.Food{}
	for rows.Next() {
		var f model.Food
		err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Price, &f.Available, &f.Image)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan food row")
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating food rows")
		return nil, fmt.Errorf("error iterating foods: %w", err)
	}

	return foods, nil
}

// GetByID retrieves a single food by its ID.
func (r *foodRepository) GetByID(ctx context.Context, id string) (*model.Food, error) {
	query := `
		SELECT id, name, description, price, available, image
		FROM foods
		WHERE id = $1
	`

	var f model.Food
	err := r.pool.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.Description, &f.Price, &f.Available, &f.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("food_id", id).Msg("food not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("food_id", id).Msg("failed to query food")
		return nil, fmt.Errorf("failed to query food: %w", err)
	}

	return &f, nil
}

// Create inserts a food.
func (r *foodRepository) Create(ctx context.Context, food *model.Food) error {
	query := `
		INSERT INTO foods (id, name, description, price, available, image)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		food.ID, food.Name, food.Description, food.Price, food.Available, food.Image,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("food_id", food.ID).Msg("failed to insert food")
		return fmt.Errorf("failed to insert food: %w", err)
	}

	r.logger.Debug().Str("food_id", food.ID).Msg("food inserted")

	return nil
}

// Update overwrites the stored food with the same ID.
func (r *foodRepository) Update(ctx context.Context, food *model.Food) error {
	query := `
		UPDATE foods
		SET name = $2, description = $3, price = $4, available = $5, image = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		food.ID, food.Name, food.Description, food.Price, food.Available, food.Image,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("food_id", food.ID).Msg("failed to update food")
		return fmt.Errorf("failed to update food: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("food_id", food.ID).Msg("no food to update")
		return model.ErrFoodNotFound
	}

	return nil
}

// Delete removes the food with the given ID.
func (r *foodRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM foods WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("food_id", id).Msg("failed to delete food")
		return fmt.Errorf("failed to delete food: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("food_id", id).Msg("no food to delete")
		return model.ErrFoodNotFound
	}

	return nil
}

// Count returns the number of stored foods.
func (r *foodRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM foods`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count foods")
		return 0, fmt.Errorf("failed to count foods: %w", err)
	}
	return count, nil
}
