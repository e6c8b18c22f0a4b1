// Package health provides health checking functionality for the triage API.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/dermalens/triage-api/interfaces"
)

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	store      interfaces.EngineStore
	reloadHour int
}

// NewHealthChecker creates a new health checker with injected dependencies
func NewHealthChecker(store interfaces.EngineStore, reloadHour int) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		store:      store,
		reloadHour: reloadHour,
	}
}

// HealthCheck returns HTTP-specific health data with stricter thresholds
// Used by the scheduler's periodic health monitor
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	engine := h.store.GetEngine()
	lastReload := h.store.GetLastReloaded()
	isReloading := h.store.IsReloading()

	engineAge := time.Since(lastReload)

	// Determine health status and HTTP code using stricter thresholds
	switch {
	case engine == nil:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case engineAge > 48*time.Hour:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case engineAge > 25*time.Hour:
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	diseases := 0
	symptoms := 0
	if engine != nil {
		diseases = len(engine.Base().Profiles())
		symptoms = len(engine.Base().AllSymptoms())
	}

	// Build response data (no system metrics, only engine-related fields)
	data = map[string]any{
		"last_reload":      lastReload.Format(time.RFC3339),
		"engine_age_hours": math.Round(engineAge.Hours()*10) / 10,
		"diseases":         diseases,
		"symptoms":         symptoms,
		"is_reloading":     isReloading,
	}

	return status, data, httpStatus
}

// CalculateNextReload returns the next scheduled tuning reload time
func (h *HealthCheckerImpl) CalculateNextReload() time.Time {
	now := time.Now()

	today := time.Date(now.Year(), now.Month(), now.Day(), h.reloadHour, 0, 0, 0, now.Location())
	if now.Before(today) {
		return today
	}

	return today.AddDate(0, 0, 1)
}
