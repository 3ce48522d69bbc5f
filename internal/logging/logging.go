// internal/logging/logging.go
// Package logging owns the process-wide structured logger. Output goes to a
// file only: the terminal belongs to the TUI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = zap.NewNop()
)

// Init points the shared logger at logPath, creating parent directories as
// needed. An empty path installs a no-op logger. Calling Init again closes the
// previous file first.
func Init(logPath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()

	if logPath == "" {
		return nil
	}

	if dir := filepath.Dir(logPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = file

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), level)
	logger = zap.New(core)
	return nil
}

// Close flushes and releases the log file, leaving a no-op logger behind.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	_ = logger.Sync()
	logger = zap.NewNop()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Logger returns the current shared logger. Callers that keep the result
// will not observe a later Init.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// LogEvent writes a free-form info line.
func LogEvent(format string, args ...any) {
	Logger().Info(fmt.Sprintf(format, args...))
}

// LogDebug writes a free-form debug line; dropped unless Init ran with debug.
func LogDebug(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}
