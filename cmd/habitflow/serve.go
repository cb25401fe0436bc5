package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	adapterHTTP "github.com/dhakad-labs/habitflow/internal/adapters/handler/http"
	"github.com/dhakad-labs/habitflow/internal/core/services"
	"github.com/dhakad-labs/habitflow/internal/core/workers"
)

var seedHabits bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HabitFlow HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&seedHabits, "seed", false, "create starter habits when the store is empty")
}

func runServe(cmd *cobra.Command, _ []string) error {
	startTime := time.Now()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if seedHabits {
		if err := a.habits.EnsureSeed(cmd.Context()); err != nil {
			return err
		}
	}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:   adapterHTTP.NewHabitHandler(a.habits),
		TrackerHandler: adapterHTTP.NewTrackerHandler(a.tracker),
		StatsHandler:   adapterHTTP.NewStatsHandler(a.stats),
		InsightHandler: adapterHTTP.NewInsightHandler(a.insight),
		ExportHandler:  adapterHTTP.NewExportHandler(a.reports),
		ProfileHandler: adapterHTTP.NewProfileHandler(a.profile),
		State:          a.state,
		StartTime:      startTime,
	})

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	worker := workers.NewInsightWorker(a.insight, services.RefreshCooldown)
	worker.Start(workerCtx)

	srv := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("HabitFlow running on http://localhost:%s", a.cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("Server stopped gracefully.")
	return nil
}
