// Package handlers provides HTTP request handlers for the triage API endpoints.
// This file implements the HTTPHandler interface with dependency injection.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/dermalens/triage-api/interfaces"
	"github.com/dermalens/triage-api/logging"
	"github.com/dermalens/triage-api/metrics"
	"github.com/dermalens/triage-api/triage"
	"github.com/go-chi/chi/v5"
)

// HTTPHandlerImpl implements the interfaces.HTTPHandler interface
type HTTPHandlerImpl struct {
	store      interfaces.EngineStore
	validator  interfaces.InputValidator
	reloadHour int
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(store interfaces.EngineStore, validator interfaces.InputValidator, reloadHour int) interfaces.HTTPHandler {
	return &HTTPHandlerImpl{
		store:      store,
		validator:  validator,
		reloadHour: reloadHour,
	}
}

// ServeHTTP implements the http.Handler interface
func (h *HTTPHandlerImpl) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// This is a placeholder - the actual routing is handled by chi
	http.Error(w, "Not implemented", http.StatusNotImplemented)
}

// HealthResponseImpl defines the structure for consistent JSON ordering
type HealthResponseImpl struct {
	Status         string                 `json:"status"`
	LastReload     string                 `json:"last_reload"`
	EngineAgeHours float64                `json:"engine_age_hours"`
	UptimeSeconds  float64                `json:"uptime_seconds"`
	Data           map[string]interface{} `json:"data"`
	System         map[string]interface{} `json:"system"`
}

// RespondWithJSON writes a JSON response with compression optimization
func (h *HTTPHandlerImpl) RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error response
func (h *HTTPHandlerImpl) RespondWithError(w http.ResponseWriter, code int, message string) {
	errorResponse := map[string]interface{}{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	h.RespondWithJSON(w, code, errorResponse)
}

// engine returns the current engine or writes a 503 when the store is empty
func (h *HTTPHandlerImpl) engine(w http.ResponseWriter) *triage.Engine {
	engine := h.store.GetEngine()
	if engine == nil {
		h.RespondWithError(w, http.StatusServiceUnavailable, "Engine not ready, try again shortly")
		return nil
	}
	return engine
}

// formatUptimeHuman formats duration into a human-readable string
func (h *HTTPHandlerImpl) formatUptimeHuman(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string

	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}

// calculateNextReload calculates the next scheduled tuning reload time
func (h *HTTPHandlerImpl) calculateNextReload() time.Time {
	now := time.Now()

	today := time.Date(now.Year(), now.Month(), now.Day(), h.reloadHour, 0, 0, 0, now.Location())
	if now.Before(today) {
		return today
	}

	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), h.reloadHour, 0, 0, 0, tomorrow.Location())
}

// parseSymptomsParam parses and validates the symptoms query parameter
func (h *HTTPHandlerImpl) parseSymptomsParam(r *http.Request) ([]string, error) {
	raw := r.URL.Query().Get("symptoms")
	if raw == "" {
		return nil, fmt.Errorf("missing symptoms parameter")
	}
	return h.validator.ValidateSymptoms(strings.Split(raw, ","))
}

// canonicalize runs the normalizer over reported symptoms and keeps the
// vocabulary identifiers that survived normalization
func canonicalize(engine *triage.Engine, symptoms []string) []string {
	normalized := engine.Normalizer().NormalizeAll(symptoms)
	canonical := make([]string, 0, len(normalized))
	for _, n := range normalized {
		if n.Canonical != "" {
			canonical = append(canonical, n.Canonical)
		}
	}
	return canonical
}

// AnalyzeCase runs the full triage pipeline on a classifier result
func (h *HTTPHandlerImpl) AnalyzeCase(w http.ResponseWriter, r *http.Request) {
	var req triage.Request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		logging.Warn("Malformed analyze request", "error", err)
		h.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	disease, err := h.validator.ValidateDiseaseName(req.Disease)
	if err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.ValidateConfidence(req.Confidence); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	symptoms, err := h.validator.ValidateSymptoms(req.Symptoms)
	if err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Disease = disease
	req.Symptoms = symptoms

	engine := h.engine(w)
	if engine == nil {
		return
	}

	result := engine.Analyze(req)

	metrics.TriageAnalysesTotal.WithLabelValues(
		string(result.Severity.Level),
		string(result.Recommendations.UrgencyLevel),
	).Inc()

	h.RespondWithJSON(w, http.StatusOK, result)
}

// ServeSymptoms returns the symptom vocabulary grouped by category
func (h *HTTPHandlerImpl) ServeSymptoms(w http.ResponseWriter, r *http.Request) {
	engine := h.engine(w)
	if engine == nil {
		return
	}

	kb := engine.Base()
	symptoms := kb.AllSymptoms()
	response := map[string]interface{}{
		"symptoms":   symptoms,
		"categories": kb.SymptomCategories(),
		"total":      len(symptoms),
	}

	h.RespondWithJSON(w, http.StatusOK, response)
}

// ServeDiseases returns all known disease profiles
func (h *HTTPHandlerImpl) ServeDiseases(w http.ResponseWriter, r *http.Request) {
	engine := h.engine(w)
	if engine == nil {
		return
	}

	h.RespondWithJSON(w, http.StatusOK, engine.Base().Profiles())
}

// FindDisease returns the profile and risk classification for one disease
func (h *HTTPHandlerImpl) FindDisease(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		h.RespondWithError(w, http.StatusBadRequest, "Missing disease name")
		return
	}

	name, err := h.validator.ValidateDiseaseName(name)
	if err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	engine := h.engine(w)
	if engine == nil {
		return
	}

	kb := engine.Base()
	profile := kb.Resolve(name)
	if !strings.EqualFold(profile.Name, name) {
		h.RespondWithError(w, http.StatusNotFound, "Disease not found")
		return
	}

	response := map[string]interface{}{
		"profile": profile,
		"risk":    kb.Risk(profile.Name),
	}

	h.RespondWithJSON(w, http.StatusOK, response)
}

// MatchDisease scores reported symptoms against one disease profile
func (h *HTTPHandlerImpl) MatchDisease(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	name, err := h.validator.ValidateDiseaseName(name)
	if err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	symptoms, err := h.parseSymptomsParam(r)
	if err != nil {
		logging.Warn("Unusual user input", "symptoms", r.URL.Query().Get("symptoms"))
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	engine := h.engine(w)
	if engine == nil {
		return
	}

	canonical := canonicalize(engine, symptoms)

	confidenceStr := r.URL.Query().Get("confidence")
	if confidenceStr == "" {
		h.RespondWithJSON(w, http.StatusOK, engine.Aligner().Match(name, canonical))
		return
	}

	confidence, err := strconv.ParseFloat(confidenceStr, 64)
	if err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid confidence value")
		return
	}
	if err := h.validator.ValidateConfidence(confidence); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.RespondWithJSON(w, http.StatusOK, engine.Aligner().MatchWithConfidence(name, canonical, confidence))
}

// FindMatches ranks all diseases against the reported symptoms
func (h *HTTPHandlerImpl) FindMatches(w http.ResponseWriter, r *http.Request) {
	symptoms, err := h.parseSymptomsParam(r)
	if err != nil {
		logging.Warn("Unusual user input", "symptoms", r.URL.Query().Get("symptoms"))
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	top := 3
	if topStr := r.URL.Query().Get("top"); topStr != "" {
		top, err = strconv.Atoi(topStr)
		if err != nil || top < 1 || top > 10 {
			h.RespondWithError(w, http.StatusBadRequest, "Invalid top value")
			return
		}
	}

	engine := h.engine(w)
	if engine == nil {
		return
	}

	canonical := canonicalize(engine, symptoms)
	matches := engine.Aligner().BestMatches(canonical, top)

	response := map[string]interface{}{
		"symptoms": canonical,
		"matches":  matches,
		"total":    len(matches),
	}

	h.RespondWithJSON(w, http.StatusOK, response)
}

// HealthCheck returns server health information
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	// Get memory statistics
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.store.GetServerStartTime())

	engine := h.store.GetEngine()
	lastReload := h.store.GetLastReloaded()
	isReloading := h.store.IsReloading()
	engineAge := time.Since(lastReload)

	// Determine health status based on engine availability and age
	var healthStatus string
	var httpStatus int
	switch {
	case engine == nil:
		healthStatus = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	case engineAge > 25*time.Hour:
		healthStatus = "degraded"
		httpStatus = http.StatusOK
	default:
		healthStatus = "healthy"
		httpStatus = http.StatusOK
	}

	diseases := 0
	symptoms := 0
	if engine != nil {
		diseases = len(engine.Base().Profiles())
		symptoms = len(engine.Base().AllSymptoms())
	}

	response := HealthResponseImpl{
		Status:         healthStatus,
		LastReload:     lastReload.Format(time.RFC3339),
		EngineAgeHours: engineAge.Hours(),
		UptimeSeconds:  uptime.Seconds(),
		Data: map[string]interface{}{
			"api_version":  "1.0",
			"diseases":     diseases,
			"symptoms":     symptoms,
			"is_reloading": isReloading,
			"next_reload":  h.calculateNextReload().Format(time.RFC3339),
		},
		System: map[string]interface{}{
			"goroutines":   runtime.NumGoroutine(),
			"uptime_human": h.formatUptimeHuman(uptime),
			"memory": map[string]interface{}{
				"alloc_mb":       int(m.Alloc / 1024 / 1024),
				"total_alloc_mb": int(m.TotalAlloc / 1024 / 1024),
				"sys_mb":         int(m.Sys / 1024 / 1024),
				"num_gc":         m.NumGC,
			},
		},
	}

	h.RespondWithJSON(w, httpStatus, response)
}
