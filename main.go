package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/veskov/courtside/internal/bdl"
	"github.com/veskov/courtside/internal/config"
	server "github.com/veskov/courtside/internal/http"
	"github.com/veskov/courtside/internal/metrics"
	"github.com/veskov/courtside/internal/notifier/slack"
	"github.com/veskov/courtside/internal/roster"
	"github.com/veskov/courtside/internal/team"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	gamesClient := bdl.NewClient(bdl.Config{
		BaseURL: cfg.NBA.BaseURL,
		APIKey:  cfg.NBA.APIKey,
	})
	rosterClient := roster.NewClient(roster.Config{})
	teamSvc := team.New(gamesClient, rosterClient, metricsSvc, team.Config{
		Season:    cfg.NBA.Season,
		GamesTTL:  cfg.Caches.GamesTTL,
		RosterTTL: cfg.Caches.RosterTTL,
	})
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)

	s := server.NewServer(
		teamSvc,
		metricsSvc,
		metricsHandler,
		cfg,
		notifier,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port, "team", cfg.Team.Name)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
