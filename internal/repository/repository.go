package repository

import (
	"context"

	"food-dashboard/internal/model"
)

// FoodRepository defines the interface for food data access operations.
type FoodRepository interface {
	// List retrieves every food in insertion order.
	List(ctx context.Context) ([]model.Food, error)

	// GetByID retrieves a single food by its ID. Returns nil when no food matches.
	GetByID(ctx context.Context, id string) (*model.Food, error)

	// Create inserts a food. The ID must already be assigned.
	Create(ctx context.Context, food *model.Food) error

	// Update overwrites every field of the food with the same ID.
	// Returns model.ErrFoodNotFound if the ID does not exist.
	Update(ctx context.Context, food *model.Food) error

	// Delete removes the food with the given ID.
	// Returns model.ErrFoodNotFound if the ID does not exist.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored foods.
	Count(ctx context.Context) (int, error)
}
