package seed

import (
	"context"
	"fmt"
	"os"

	"food-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for seed files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a seed file from disk.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Food, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	foods, err := decodeCatalogue(file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode seed file")
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("foods_loaded", len(foods)).
		Msg("seed file loaded successfully")

	return foods, nil
}
