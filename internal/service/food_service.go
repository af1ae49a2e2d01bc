package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"food-dashboard/internal/model"
	"food-dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// foodService implements FoodService.
type foodService struct {
	foodRepo repository.FoodRepository
	newID    func() string
	logger   zerolog.Logger
}

// NewFoodService creates a new food service.
func NewFoodService(foodRepo repository.FoodRepository, logger zerolog.Logger) FoodService {
	return &foodService{
		foodRepo: foodRepo,
		newID:    uuid.NewString,
		logger:   logger.With().Str("service", "food").Logger(),
	}
}

// List retrieves the whole catalogue.
func (s *foodService) List(ctx context.Context) ([]model.Food, error) {
	foods, err := s.foodRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list foods")
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	s.logger.Debug().Int("count", len(foods)).Msg("listed foods")

	return foods, nil
}

// Create validates the request, assigns an ID and stores the food.
func (s *foodService) Create(ctx context.Context, req *model.CreateFoodRequest) (*model.Food, error) {
	if err := validate(req.Name, req.Price); err != nil {
		s.logger.Warn().Err(err).Str("name", req.Name).Msg("rejected food")
		return nil, err
	}

	food := &model.Food{
		ID:          s.newID(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       roundPrice(req.Price),
		Available:   req.Available,
		Image:       req.Image,
	}

	if err := s.foodRepo.Create(ctx, food); err != nil {
		s.logger.Error().Err(err).Str("food_id", food.ID).Msg("failed to create food")
		return nil, fmt.Errorf("failed to create food: %w", err)
	}

	s.logger.Info().
		Str("food_id", food.ID).
		Str("name", food.Name).
		Float64("price", food.Price).
		Msg("food created")

	return food, nil
}

// Update validates the replacement and overwrites the stored food.
func (s *foodService) Update(ctx context.Context, id string, food *model.Food) (*model.Food, error) {
	if id == "" {
		return nil, model.ErrMissingFoodID
	}

	if err := validate(food.Name, food.Price); err != nil {
		s.logger.Warn().Err(err).Str("food_id", id).Msg("rejected food update")
		return nil, err
	}

	updated := *food
	updated.ID = id
	updated.Name = strings.TrimSpace(updated.Name)
	updated.Price = roundPrice(updated.Price)

	if err := s.foodRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, model.ErrFoodNotFound) {
			s.logger.Debug().Str("food_id", id).Msg("food not found for update")
			return nil, model.ErrFoodNotFound
		}
		s.logger.Error().Err(err).Str("food_id", id).Msg("failed to update food")
		return nil, fmt.Errorf("failed to update food: %w", err)
	}

	s.logger.Info().Str("food_id", id).Msg("food updated")

	return &updated, nil
}

// Delete removes the food identified by id.
func (s *foodService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrMissingFoodID
	}

	if err := s.foodRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrFoodNotFound) {
			s.logger.Debug().Str("food_id", id).Msg("food not found for delete")
			return model.ErrFoodNotFound
		}
		s.logger.Error().Err(err).Str("food_id", id).Msg("failed to delete food")
		return fmt.Errorf("failed to delete food: %w", err)
	}

	s.logger.Info().Str("food_id", id).Msg("food deleted")

	return nil
}

func validate(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return model.ErrMissingName
	}
	if price < 0 {
		return model.ErrInvalidPrice
	}
	return nil
}

// roundPrice rounds half away from zero to whole cents, as the foods table's
// DECIMAL(10,2) does. The 6-digit format absorbs the binary error of price*100.
func roundPrice(price float64) float64 {
	cents, _ := strconv.ParseFloat(strconv.FormatFloat(price*100, 'f', 6, 64), 64)
	return math.Round(cents) / 100
}
