package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dermalens/triage-api/config"
	"github.com/dermalens/triage-api/data"
	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/logging"
	"github.com/dermalens/triage-api/scheduler"
	"github.com/dermalens/triage-api/server"
	"github.com/joho/godotenv"

	_ "net/http/pprof"
)

func init() {
	// Get the working directory and read the env variables
	if err := godotenv.Load(); err != nil {
		// If failed, try loading from executable directory
		ex, err := os.Executable()
		if err != nil {
			logging.Error("Failed to get executable path", "error", err)
			os.Exit(1)
		}

		exPath := filepath.Dir(ex)

		if err := os.Chdir(exPath); err != nil {
			logging.Error("Failed to change directory", "error", err)
			os.Exit(1)
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize structured logging to console and rotating files
	logging.InitLogger("logs")

	// Engine container with atomic swaps for zero-downtime reloads
	container := data.NewEngineContainer()
	container.SetServerStartTime(time.Now())

	// Scheduler owns the initial engine build and the daily tuning reload
	sched := scheduler.NewScheduler(container, knowledge.NewFileLoader(), cfg.TuningFile, cfg.ReloadHour)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	srv := server.NewServer(cfg, container)

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit

	// Create a context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}
}
