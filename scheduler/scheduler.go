// Package scheduler provides automated tuning reloads and health monitoring
// for the triage API. It handles cron-based engine rebuilds, health checks,
// and coordinates reloads with the engine container using dependency injection.
package scheduler

import (
	"fmt"
	"time"

	"github.com/dermalens/triage-api/health"
	"github.com/dermalens/triage-api/interfaces"
	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/logging"
	"github.com/dermalens/triage-api/triage"
	"github.com/go-co-op/gocron"
)

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler handles engine rebuilds and health monitoring using dependency injection
type Scheduler struct {
	store      interfaces.EngineStore
	loader     interfaces.TuningLoader
	tuningFile string
	reloadHour int
	checker    interfaces.HealthChecker
	scheduler  *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(store interfaces.EngineStore, loader interfaces.TuningLoader, tuningFile string, reloadHour int) *Scheduler {
	return &Scheduler{
		store:      store,
		loader:     loader,
		tuningFile: tuningFile,
		reloadHour: reloadHour,
		checker:    health.NewHealthChecker(store, reloadHour),
		scheduler:  gocron.NewScheduler(time.Local),
	}
}

// Start initializes the scheduler with engine reloads and health monitoring
func (s *Scheduler) Start() error {
	// Initial build
	if err := s.reloadEngine(); err != nil {
		logging.Error("Failed to perform initial engine build", "error", err)
		return fmt.Errorf("initial engine build failed: %w", err)
	}

	// Schedule a daily reload at the configured hour
	at := fmt.Sprintf("%02d:00", s.reloadHour)
	_, err := s.scheduler.Every(1).Days().At(at).Do(func() {
		if err := s.reloadEngine(); err != nil {
			logging.Error("Failed to reload engine", "error", err)
		}
	})

	if err != nil {
		logging.Error("Failed to schedule reloads", "error", err)
		return fmt.Errorf("failed to schedule reloads: %w", err)
	}

	s.scheduler.StartAsync()

	// Start health monitoring
	s.startHealthMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// reloadEngine rebuilds the engine from the current tuning file and swaps it in
func (s *Scheduler) reloadEngine() error {
	// Prevent concurrent reloads
	if !s.store.BeginReload() {
		logging.Info("Reload already in progress, skipping...")
		return nil
	}
	defer s.store.EndReload()

	logging.Info(fmt.Sprintf("Starting engine reload at: %s", time.Now().Format(time.RFC3339)))
	start := time.Now()

	tuning, err := s.loader.Load(s.tuningFile)
	if err != nil {
		logging.Error("Failed to load tuning", "error", err, "file", s.tuningFile)
		return fmt.Errorf("failed to load tuning: %w", err)
	}

	kb, err := knowledge.New(tuning)
	if err != nil {
		logging.Error("Failed to build knowledge base", "error", err)
		return fmt.Errorf("failed to build knowledge base: %w", err)
	}

	// Atomic swap using injected engine store
	s.store.UpdateEngine(triage.NewEngine(kb))

	elapsed := time.Since(start)
	logging.Info("Engine reload completed",
		"duration", elapsed.String(),
		"diseases", len(kb.Profiles()),
		"symptoms", len(kb.AllSymptoms()),
	)

	return nil
}

// startHealthMonitoring monitors the freshness of the engine
func (s *Scheduler) startHealthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			status, data, _ := s.checker.HealthCheck()
			if status != "healthy" {
				logging.Warn("Engine health degraded",
					"status", status,
					"engine_age_hours", data["engine_age_hours"],
					"next_reload", s.checker.CalculateNextReload().Format(time.RFC3339),
				)
			}
		}
	}()
}
