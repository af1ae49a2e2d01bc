//go:build ignore

package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"food-dashboard/internal/model"
)

// generateSampleFoods writes a gzipped seed catalogue for SEED_FILE.
// Ids are left empty so the seeder assigns fresh ones.
func main() {
	dataDir := "data/seeds"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	foods := []model.Food{
		{
			Name:        "Ao molho",
			Description: "Macarrão ao molho branco, fughi e cheiro verde das montanhas.",
			Price:       19.90,
			Available:   true,
			Image:       "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-food/food1.png",
		},
		{
			Name:        "Veggie",
			Description: "Macarrão com pimentão, ervilha e ervas finas colhidas no himalaia.",
			Price:       21.90,
			Available:   true,
			Image:       "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-food/food2.png",
		},
		{
			Name:        "A la Camarón",
			Description: "Macarrão com vegetais de primeira linha e camarão dos 7 mares.",
			Price:       25.90,
			Available:   false,
			Image:       "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-food/food3.png",
		},
	}

	filePath := filepath.Join(dataDir, "foods.json.gz")
	if err := writeSeedFile(filePath, foods); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d foods\n", filePath, len(foods))
	fmt.Printf("\nRun the API with SEED_FILE=%s to load it into an empty catalogue.\n", filePath)
}

func writeSeedFile(filePath string, foods []model.Food) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	enc := json.NewEncoder(gzipWriter)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string][]model.Food{"foods": foods}); err != nil {
		return fmt.Errorf("failed to write foods: %w", err)
	}

	return nil
}
