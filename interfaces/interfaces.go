// Package interfaces defines core abstractions for the triage API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"net/http"
	"time"

	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/triage"
)

// EngineStore defines the contract for engine storage operations.
// It provides thread-safe access to the assembled scoring engine with
// atomic swaps for zero-downtime tuning reloads.
type EngineStore interface {
	// Engine retrieval
	GetEngine() *triage.Engine
	GetLastReloaded() time.Time
	IsReloading() bool
	GetServerStartTime() time.Time

	// Engine replacement
	SetServerStartTime(startTime time.Time)
	UpdateEngine(engine *triage.Engine)
	BeginReload() bool
	EndReload()
}

// TuningLoader defines the contract for reading tuning overrides.
type TuningLoader interface {
	Load(path string) (knowledge.Tuning, error)
}

// Scheduler defines the contract for job scheduling and health monitoring.
// It manages the periodic tuning reload and system health checks.
type Scheduler interface {
	// Lifecycle management
	Start() error
	Stop()
}

// HTTPHandler defines the contract for HTTP request handlers.
// It provides a consistent interface for all API endpoints.
type HTTPHandler interface {
	// ServeHTTP implements the http.Handler interface
	ServeHTTP(w http.ResponseWriter, r *http.Request)

	// Specific endpoint handlers
	AnalyzeCase(w http.ResponseWriter, r *http.Request)
	ServeSymptoms(w http.ResponseWriter, r *http.Request)
	ServeDiseases(w http.ResponseWriter, r *http.Request)
	FindDisease(w http.ResponseWriter, r *http.Request)
	MatchDisease(w http.ResponseWriter, r *http.Request)
	FindMatches(w http.ResponseWriter, r *http.Request)
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// HealthChecker defines the contract for health check functionality.
// It provides system health monitoring and reporting.
type HealthChecker interface {
	// HealthCheck returns current system health status
	HealthCheck() (status string, data map[string]any, httpStatus int)

	// CalculateNextReload returns the next scheduled tuning reload time
	CalculateNextReload() time.Time
}

// InputValidator defines the contract for request validation.
// It rejects malformed or hostile input before it reaches the engine.
type InputValidator interface {
	// ValidateInput validates free-form user input strings
	ValidateInput(input string) error

	// ValidateDiseaseName validates and canonicalizes a disease label
	ValidateDiseaseName(input string) (string, error)

	// ValidateConfidence checks a classifier confidence value
	ValidateConfidence(confidence float64) error

	// ValidateSymptoms validates a symptom list and returns the cleaned copy
	ValidateSymptoms(symptoms []string) ([]string, error)
}
