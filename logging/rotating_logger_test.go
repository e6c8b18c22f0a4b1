package logging

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dermalens/triage-api/config"
)

func TestRotatingLogger(t *testing.T) {
	tempDir := t.TempDir()

	rl := NewRotatingLogger(tempDir, 1)

	rl.mu.Lock()
	err := rl.doRotate(getWeekKey(time.Now()))
	rl.mu.Unlock()
	if err != nil {
		t.Fatalf("Failed to rotate: %v", err)
	}

	currentWeek := getWeekKey(time.Now())
	expectedFileName := filepath.Join(tempDir, "app-"+currentWeek+".log")
	if _, statErr := os.Stat(expectedFileName); os.IsNotExist(statErr) {
		t.Errorf("Expected log file %s was not created", expectedFileName)
	}

	testMessage := "Test log message"
	_, err = rl.Write([]byte(testMessage))
	if err != nil {
		t.Fatalf("Failed to write to log: %v", err)
	}

	content, err := os.ReadFile(expectedFileName)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), testMessage) {
		t.Errorf("Log file does not contain test message: %s", string(content))
	}

	if err := rl.Close(); err != nil {
		t.Fatalf("Failed to close logger: %v", err)
	}
}

func TestGetWeekKey(t *testing.T) {
	testTime := time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)
	weekKey := getWeekKey(testTime)

	// 2025-10-07 falls in ISO week 41
	if weekKey != "2025-W41" {
		t.Errorf("Expected week key 2025-W41, got %s", weekKey)
	}
}

func TestGlobalLoggingService(t *testing.T) {
	tempDir := t.TempDir()

	ResetForTest(t, tempDir, config.EnvTest, "", 2, 100*1024*1024)

	if DefaultLoggingService == nil {
		t.Fatal("DefaultLoggingService was not initialized")
	}

	Info("Test message from global logger")

	currentWeek := getWeekKey(time.Now())
	expectedFileName := filepath.Join(tempDir, "app-"+currentWeek+".log")
	if _, err := os.Stat(expectedFileName); os.IsNotExist(err) {
		t.Errorf("Expected log file %s was not created", expectedFileName)
	}
}

func TestLoggingServiceMethods(t *testing.T) {
	tempDir := t.TempDir()

	ResetForTest(t, tempDir, config.EnvTest, "", 2, 100*1024*1024)

	Info("Info message")
	Error("Error message")
	Warn("Warning message")
	Debug("Debug message")

	currentWeek := getWeekKey(time.Now())
	expectedFileName := filepath.Join(tempDir, "app-"+currentWeek+".log")
	if _, err := os.Stat(expectedFileName); os.IsNotExist(err) {
		t.Errorf("Expected log file %s was not created", expectedFileName)
	}
}

func TestCleanupOldLogs(t *testing.T) {
	tempDir := t.TempDir()

	rl := NewRotatingLogger(tempDir, 1) // 1 week retention

	oldFile := filepath.Join(tempDir, "app-2025-W30.log")
	newFile := filepath.Join(tempDir, "app-"+getWeekKey(time.Now())+".log")

	if err := os.WriteFile(oldFile, []byte("Old log content"), 0644); err != nil {
		t.Fatalf("Failed to create old log file: %v", err)
	}
	threeWeeksAgo := time.Now().AddDate(0, 0, -21)
	if err := os.Chtimes(oldFile, threeWeeksAgo, threeWeeksAgo); err != nil {
		t.Fatalf("Failed to set old file modification time: %v", err)
	}
	if err := os.WriteFile(newFile, []byte("New log content"), 0644); err != nil {
		t.Fatalf("Failed to create new log file: %v", err)
	}

	// Force cleanup by resetting lastCleanup time
	rl.lastCleanup = time.Now().Add(-25 * time.Hour)

	if err := rl.cleanupOldLogs(); err != nil {
		t.Fatalf("Failed to cleanup old logs: %v", err)
	}

	if _, err := os.Stat(oldFile); !os.IsNotExist(err) {
		t.Errorf("Old log file %s was not deleted", oldFile)
	}
	if _, err := os.Stat(newFile); os.IsNotExist(err) {
		t.Errorf("New log file %s was incorrectly deleted", newFile)
	}
}

func TestRotatingLoggerWithSizeLimit(t *testing.T) {
	tempDir := t.TempDir()

	// Very small size limit so a single large write forces rotation
	rl := NewRotatingLoggerWithSizeLimit(tempDir, 1, 100)

	if err := rl.doRotate(getWeekKey(time.Now())); err != nil {
		t.Fatalf("Failed to rotate: %v", err)
	}

	if _, err := rl.Write([]byte("Small message")); err != nil {
		t.Fatalf("Failed to write small message: %v", err)
	}

	largeMessage := strings.Repeat("This is a very long log message that should trigger rotation. ", 10)
	if _, err := rl.Write([]byte(largeMessage)); err != nil {
		t.Fatalf("Failed to write large message: %v", err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("Failed to read log directory: %v", err)
	}

	logFiles := 0
	hasNumberedFile := false
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), "app-") && strings.HasSuffix(entry.Name(), ".log") {
			logFiles++
			if strings.Contains(entry.Name(), "_01.") {
				hasNumberedFile = true
			}
		}
	}

	if logFiles < 2 {
		t.Errorf("Expected at least 2 log files due to size rotation, got %d", logFiles)
	}
	if !hasNumberedFile {
		t.Error("Expected a numbered file after size rotation")
	}

	if err := rl.Close(); err != nil {
		t.Fatalf("Failed to close logger: %v", err)
	}
}

func TestRotatingLoggerResumesExistingFile(t *testing.T) {
	tempDir := t.TempDir()

	maxFileSize := int64(1024)
	currentWeek := getWeekKey(time.Now())
	baseFilePath := filepath.Join(tempDir, fmt.Sprintf("app-%s.log", currentWeek))

	// A file below the limit is reused and its size carried over
	if err := os.WriteFile(baseFilePath, []byte(strings.Repeat("x", 512)), 0666); err != nil {
		t.Fatalf("Failed to create initial log file: %v", err)
	}

	rl := NewRotatingLoggerWithSizeLimit(tempDir, 1, maxFileSize)
	rl.mu.Lock()
	err := rl.doRotate(currentWeek)
	rl.mu.Unlock()
	if err != nil {
		t.Fatalf("Failed to rotate: %v", err)
	}

	if rl.currentFile.Name() != baseFilePath {
		t.Errorf("Expected to reuse existing file, but got: %s", rl.currentFile.Name())
	}
	if rl.currentSize.Load() != 512 {
		t.Errorf("Expected currentSize 512, got: %d", rl.currentSize.Load())
	}
	_ = rl.Close()

	// A file already at the limit spills to a numbered file
	if err := os.WriteFile(baseFilePath, []byte(strings.Repeat("x", 2048)), 0666); err != nil {
		t.Fatalf("Failed to grow log file: %v", err)
	}

	rl = NewRotatingLoggerWithSizeLimit(tempDir, 1, maxFileSize)
	defer func() { _ = rl.Close() }()

	rl.mu.Lock()
	err = rl.doRotate(currentWeek)
	rl.mu.Unlock()
	if err != nil {
		t.Fatalf("Failed to rotate: %v", err)
	}

	if !strings.Contains(rl.currentFile.Name(), "_01.") {
		t.Errorf("Expected filename with '_01' suffix, got: %s", rl.currentFile.Name())
	}
	if rl.currentSize.Load() != 0 {
		t.Errorf("Expected currentSize 0 for new file, got: %d", rl.currentSize.Load())
	}
}

func TestRotatingLoggerConcurrentWrites(t *testing.T) {
	tempDir := t.TempDir()

	rl := NewRotatingLogger(tempDir, 1)
	defer func() { _ = rl.Close() }()

	if err := rl.doRotate(getWeekKey(time.Now())); err != nil {
		t.Fatalf("Failed to rotate: %v", err)
	}

	const numGoroutines = 10
	const numWrites = 5

	done := make(chan bool, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			for j := 0; j < numWrites; j++ {
				message := fmt.Sprintf("Goroutine %d, Write %d", id, j)
				if _, writeErr := rl.Write([]byte(message)); writeErr != nil {
					t.Errorf("Concurrent write failed: %v", writeErr)
				}
			}
			done <- true
		}(i)
	}
	for i := 0; i < numGoroutines; i++ {
		<-done
	}

	currentWeek := getWeekKey(time.Now())
	content, err := os.ReadFile(filepath.Join(tempDir, "app-"+currentWeek+".log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if len(content) == 0 {
		t.Error("Log file is empty after concurrent writes")
	}
}

func TestMultiHandlerMethods(t *testing.T) {
	tempDir := t.TempDir()

	rotatingLogger := NewRotatingLogger(tempDir, 1)
	defer func() { _ = rotatingLogger.Close() }()

	fileHandler := slog.NewJSONHandler(rotatingLogger, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	consoleHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	multi := &multiHandler{
		handlers: []slog.Handler{consoleHandler, fileHandler},
	}

	if !multi.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Expected Enabled() to return true for info level")
	}

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "Test message", 0)
	if err := multi.Handle(context.Background(), record); err != nil {
		t.Errorf("Handle method failed: %v", err)
	}

	if multi.WithAttrs([]slog.Attr{slog.String("key", "value")}) == nil {
		t.Error("WithAttrs returned nil")
	}
	if multi.WithGroup("test-group") == nil {
		t.Error("WithGroup returned nil")
	}
}

func TestResponseWriterWrapper(t *testing.T) {
	recorder := httptest.NewRecorder()

	wrapper := &responseWriterWrapper{ResponseWriter: recorder}

	wrapper.WriteHeader(http.StatusNotFound)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, recorder.Code)
	}

	data := []byte("test data")
	n, err := wrapper.Write(data)
	if err != nil {
		t.Errorf("Write failed: %v", err)
	}
	if n != len(data) {
		t.Errorf("Expected to write %d bytes, wrote %d", len(data), n)
	}

	// Status is latched after the first write
	wrapper.WriteHeader(http.StatusInternalServerError)
	if recorder.Code != http.StatusNotFound {
		t.Error("Status should not be changed after first write")
	}

	if wrapper.bytesWritten != len(data) {
		t.Errorf("Expected bytesWritten %d, got %d", len(data), wrapper.bytesWritten)
	}
}
