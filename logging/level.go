package logging

import (
	"log/slog"
	"strings"

	"github.com/dermalens/triage-api/config"
)

// parseLogLevel maps a LOG_LEVEL string to a slog level. Unknown or empty
// values fall back to info.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetConsoleLogLevel resolves the console handler level for an environment.
// Test runs ignore LOG_LEVEL and stay quiet unless the run is verbose; other
// environments honor LOG_LEVEL when set and otherwise default per environment.
func GetConsoleLogLevel(env config.Environment, logLevelStr string, verbose bool) slog.Level {
	if env == config.EnvTest {
		if verbose {
			return slog.LevelInfo
		}
		return slog.LevelError
	}

	if logLevelStr != "" {
		return parseLogLevel(logLevelStr)
	}

	switch env {
	case config.EnvProduction, config.EnvStaging:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// GetFileLogLevel returns the level for the rotating file handler. Files
// always capture debug so incidents can be reconstructed afterwards.
func GetFileLogLevel() slog.Level {
	return slog.LevelDebug
}
