package seed

import (
	"context"
	"fmt"

	"food-dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Seeder writes a seed catalogue into a repository that has no foods yet.
type Seeder struct {
	loader Loader
	repo   repository.FoodRepository
	logger zerolog.Logger
}

// NewSeeder creates a seeder reading through loader.
func NewSeeder(loader Loader, repo repository.FoodRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader: loader,
		repo:   repo,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Apply loads path and inserts its foods when the repository is empty.
// It returns the number of inserted foods. Foods without an id get a fresh uuid.
func (s *Seeder) Apply(ctx context.Context, path string) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count foods before seeding: %w", err)
	}
	if count > 0 {
		s.logger.Info().Int("existing", count).Msg("catalogue not empty, skipping seed")
		return 0, nil
	}

	foods, err := s.loader.Load(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("failed to load seed: %w", err)
	}

	seen := make(map[string]struct{}, len(foods))
	inserted := 0
	for _, f := range foods {
		food := f
		if food.ID == "" {
			food.ID = uuid.NewString()
		}
		if _, dup := seen[food.ID]; dup {
			s.logger.Warn().Str("food_id", food.ID).Msg("duplicate id in seed, skipping")
			continue
		}
		seen[food.ID] = struct{}{}

		if food.Name == "" || food.Price < 0 {
			s.logger.Warn().Str("food_id", food.ID).Msg("invalid food in seed, skipping")
			continue
		}

		if err := s.repo.Create(ctx, &food); err != nil {
			return inserted, fmt.Errorf("failed to insert seed food %s: %w", food.ID, err)
		}
		inserted++
	}

	s.logger.Info().Int("inserted", inserted).Str("path", path).Msg("catalogue seeded")

	return inserted, nil
}

