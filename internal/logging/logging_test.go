package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "parabolic.log")

	if err := Init(logPath, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogDebug("hidden %s", "line")
	Logger().Info("structured", zap.String("session", "abc"))
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if strings.Contains(content, "hidden line") {
		t.Fatalf("debug line written at info level: %s", content)
	}
	if !strings.Contains(content, `"session":"abc"`) {
		t.Fatalf("expected structured field, got: %s", content)
	}
}

func TestInitDebugLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	if err := Init(logPath, true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogDebug("visible %d", 1)
	if err := Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "visible 1") {
		t.Fatalf("expected debug line, got: %s", data)
	}
}

func TestInitEmptyPathIsNoop(t *testing.T) {
	if err := Init("", true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogEvent("discard")
	if logFile != nil {
		t.Fatalf("expected no log file for empty path")
	}
	if err := Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}

func TestInitBadDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Init(filepath.Join(blocker, "sub", "app.log"), false); err == nil {
		_ = Close()
		t.Fatal("expected error when parent path is a file")
	}
}
