package logging

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/dermalens/triage-api/config"
)

// ResetForTest points the global logging service at a throwaway rotating
// logger under dir and restores the previous service when the test finishes.
func ResetForTest(t *testing.T, dir string, env config.Environment, logLevelStr string, retentionWeeks int, maxFileSize int64) {
	t.Helper()

	prev := DefaultLoggingService

	rl := NewRotatingLoggerWithSizeLimit(dir, retentionWeeks, maxFileSize)
	rl.mu.Lock()
	err := rl.doRotate(getWeekKey(time.Now()))
	rl.mu.Unlock()
	if err != nil {
		t.Fatalf("Failed to initialize rotating logger: %v", err)
	}

	consoleHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: GetConsoleLogLevel(env, logLevelStr, testing.Verbose()),
	})
	fileHandler := slog.NewJSONHandler(rl, &slog.HandlerOptions{
		Level: GetFileLogLevel(),
	})

	DefaultLoggingService = &LoggingService{
		Logger: slog.New(&multiHandler{handlers: []slog.Handler{consoleHandler, fileHandler}}),
	}

	t.Cleanup(func() {
		_ = rl.Close()
		DefaultLoggingService = prev
	})
}
