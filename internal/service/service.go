package service

import (
	"context"

	"food-dashboard/internal/model"
)

// FoodService defines operations for food catalogue management.
type FoodService interface {
	// List retrieves the whole catalogue in insertion order.
	List(ctx context.Context) ([]model.Food, error)

	// Create assigns a new ID to the requested food and stores it.
	Create(ctx context.Context, req *model.CreateFoodRequest) (*model.Food, error)

	// Update replaces the food identified by id. The ID in the body is ignored.
	Update(ctx context.Context, id string, food *model.Food) (*model.Food, error)

	// Delete removes the food identified by id.
	Delete(ctx context.Context, id string) error
}
