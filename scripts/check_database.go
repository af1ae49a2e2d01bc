//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"food-dashboard/internal/config"
	"food-dashboard/internal/database"
	"food-dashboard/internal/repository"
)

// Connects with the API's DB_* settings, applies migrations and reports the catalogue size.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	count, err := repository.NewFoodRepository(pool, logger).Count(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Count failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to database: %s\n", dbName)
	fmt.Printf("Foods in catalogue: %d\n", count)
}
