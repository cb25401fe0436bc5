package main

import (
	"log"

	"github.com/dhakad-labs/habitflow/internal/adapters/gemini"
	"github.com/dhakad-labs/habitflow/internal/adapters/repository"
	"github.com/dhakad-labs/habitflow/internal/config"
	"github.com/dhakad-labs/habitflow/internal/core/domain"
	"github.com/dhakad-labs/habitflow/internal/core/services"
)

// app bundles the wired services shared by the serve and export commands.
type app struct {
	cfg     *config.Config
	state   *repository.SQLiteStateRepository
	habits  *services.HabitService
	tracker *services.TrackerService
	stats   *services.StatsService
	reports *services.ReportService
	insight *services.InsightService
	profile domain.ProfileRepository
}

func newApp() (*app, error) {
	cfg := config.LoadFromEnv()

	log.Printf("Opening state store at %s", cfg.Storage.Path)
	state, err := repository.NewSQLiteStateRepository(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	if cfg.Gemini.APIKey == "" {
		log.Println("GEMINI_API_KEY not set, insights will use fallback content.")
	}
	generator := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)

	stats := services.NewStatsService(state, state, state)

	return &app{
		cfg:     cfg,
		state:   state,
		habits:  services.NewHabitService(state, state),
		tracker: services.NewTrackerService(state, state, state),
		stats:   stats,
		reports: services.NewReportService(stats),
		insight: services.NewInsightService(state, state, state, state, generator),
		profile: state,
	}, nil
}

func (a *app) Close() {
	if err := a.state.Close(); err != nil {
		log.Printf("Failed to close state store: %v", err)
	}
}
