package repository

import (
	"context"
	"fmt"
	"sync"

	"food-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// memoryFoodRepository keeps foods in a slice so List preserves insertion order.
// It backs the API when STORAGE_DRIVER=memory.
type memoryFoodRepository struct {
	mu     sync.RWMutex
	foods  []model.Food
	logger zerolog.Logger
}

// NewMemoryFoodRepository creates an in-process food repository.
func NewMemoryFoodRepository(logger zerolog.Logger) FoodRepository {
	return &memoryFoodRepository{
		foods:  []model.Food{},
		logger: logger.With().Str("repository", "food-memory").Logger(),
	}
}

func (r *memoryFoodRepository) List(ctx context.Context) ([]model.Food, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Food, len(r.foods))
	copy(out, r.foods)
	return out, nil
}

func (r *memoryFoodRepository) GetByID(ctx context.Context, id string) (*model.Food, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		f := r.foods[i]
		return &f, nil
	}
	return nil, nil
}

func (r *memoryFoodRepository) Create(ctx context.Context, food *model.Food) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(food.ID) >= 0 {
		return fmt.Errorf("failed to insert food: duplicate id %q", food.ID)
	}
	r.foods = append(r.foods, *food)

	r.logger.Debug().Str("food_id", food.ID).Msg("food inserted")
	return nil
}

func (r *memoryFoodRepository) Update(ctx context.Context, food *model.Food) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(food.ID)
	if i < 0 {
		return model.ErrFoodNotFound
	}
	r.foods[i] = *food
	return nil
}

func (r *memoryFoodRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.ErrFoodNotFound
	}
	r.foods = append(r.foods[:i], r.foods[i+1:]...)
	return nil
}

func (r *memoryFoodRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.foods), nil
}

// indexOf must be called with the lock held.
func (r *memoryFoodRepository) indexOf(id string) int {
	for i := range r.foods {
		if r.foods[i].ID == id {
			return i
		}
	}
	return -1
}
