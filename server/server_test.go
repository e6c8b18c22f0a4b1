package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dermalens/triage-api/config"
	"github.com/dermalens/triage-api/data"
	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/logging"
	"github.com/dermalens/triage-api/triage"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           "8080",
		Address:        "localhost",
		Env:            config.EnvTest,
		LogLevel:       "info",
		MaxRequestBody: 1048576,
		MaxHeaderSize:  1048576,
		ReloadHour:     6,
	}
}

func testContainer(t *testing.T) *data.EngineContainer {
	t.Helper()

	kb, err := knowledge.New(knowledge.DefaultTuning())
	if err != nil {
		t.Fatalf("Failed to build knowledge base: %v", err)
	}

	container := data.NewEngineContainer()
	container.SetServerStartTime(time.Now())
	container.UpdateEngine(triage.NewEngine(kb))
	return container
}

// proxyRequest builds a request that passes the direct-access check
func proxyRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	return req
}

func TestNewServer(t *testing.T) {
	logging.InitLogger("")

	cfg := testConfig()
	container := testContainer(t)

	server := NewServer(cfg, container)

	if server == nil {
		t.Fatal("Server should not be nil")
	}
	if server.server.Addr != cfg.Address+":"+cfg.Port {
		t.Errorf("Expected server address %s, got %s", cfg.Address+":"+cfg.Port, server.server.Addr)
	}
	if server.container != container {
		t.Error("Engine container should be set correctly")
	}
	if server.config != cfg {
		t.Error("Config should be set correctly")
	}
}

func TestRouteRegistration(t *testing.T) {
	logging.InitLogger("")

	server := NewServer(testConfig(), testContainer(t))

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"Analyze", http.MethodPost, "/api/v1/analyze", `{"disease":"Eczema","confidence":0.8,"symptoms":["itching"]}`, http.StatusOK},
		{"Symptoms", http.MethodGet, "/api/v1/symptoms", "", http.StatusOK},
		{"Diseases", http.MethodGet, "/api/v1/diseases", "", http.StatusOK},
		{"Disease lookup", http.MethodGet, "/api/v1/diseases/Eczema", "", http.StatusOK},
		{"Disease match", http.MethodGet, "/api/v1/diseases/Eczema/match?symptoms=itching,redness", "", http.StatusOK},
		{"Ranked matches", http.MethodGet, "/api/v1/matches?symptoms=itching", "", http.StatusOK},
		{"Health", http.MethodGet, "/health", "", http.StatusOK},
		{"Metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"Unknown route", http.MethodGet, "/api/v1/unknown", "", http.StatusNotFound},
		{"Wrong method", http.MethodGet, "/api/v1/analyze", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := proxyRequest(tt.method, tt.target, tt.body)
			rr := httptest.NewRecorder()
			server.router.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Errorf("Expected status %d for %s %s, got %d: %s",
					tt.want, tt.method, tt.target, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestEmptyContainerReturns503(t *testing.T) {
	logging.InitLogger("")

	container := data.NewEngineContainer()
	container.SetServerStartTime(time.Now())
	server := NewServer(testConfig(), container)

	req := proxyRequest(http.MethodGet, "/api/v1/diseases", "")
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 before first engine build, got %d", rr.Code)
	}
}

func TestGetHealthData(t *testing.T) {
	logging.InitLogger("")

	server := NewServer(testConfig(), testContainer(t))
	health := server.GetHealthData()

	if health.Status != "healthy" {
		t.Errorf("Expected healthy status, got %s", health.Status)
	}
	if health.DiseaseCount == 0 {
		t.Error("Expected non-zero disease count")
	}
	if health.SymptomCount == 0 {
		t.Error("Expected non-zero symptom count")
	}

	empty := NewServer(testConfig(), data.NewEngineContainer())
	if empty.GetHealthData().Status != "unhealthy" {
		t.Error("Expected unhealthy status without an engine")
	}
}

func TestServerShutdown(t *testing.T) {
	logging.InitLogger("")

	server := NewServer(testConfig(), testContainer(t))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown on an unstarted server should not fail: %v", err)
	}
}
