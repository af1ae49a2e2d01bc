package main

import (
	"fmt"
	"os"

	"food-dashboard/internal/client"
	"food-dashboard/internal/config"
	"food-dashboard/internal/dashboard"
	"food-dashboard/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadDashboard()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
	}
	defer logFile.Close()

	logger := config.NewLoggerTo(cfg.Logger, logFile)
	logger.Info().Str("api", cfg.APIBaseURL).Msg("starting food dashboard")

	api := client.New(cfg.APIBaseURL, cfg.APIKey, logger, client.WithTimeout(cfg.RequestTimeout))
	ctrl := dashboard.NewController(api, logger)

	p := tea.NewProgram(tui.New(ctrl, cfg.RequestTimeout), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited: %w", err)
	}

	logger.Info().Msg("food dashboard stopped")
	return nil
}
