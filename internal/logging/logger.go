// Package logging is the diagnostic file log. Product events go through
// internal/otel instead; this is for humans reading a day's log.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Version is reported in the startup line.
const Version = "0.3.0"

var (
	// Logger is nil until Init; the helpers below are no-ops until then.
	Logger *log.Logger

	logFile *os.File
)

// Path returns the log file for the given day under dataDir.
func Path(dataDir string, day time.Time) string {
	return filepath.Join(dataDir, "logs", fmt.Sprintf("tubeview-%s.log", day.Format("2006-01-02")))
}

// Init opens today's log file under dataDir/logs, appending.
func Init(dataDir string, debug bool) error {
	path := Path(dataDir, time.Now())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	InitWriter(f, level)
	Logger.Info("tubeview started", "version", Version, "pid", os.Getpid())
	return nil
}

// InitWriter points the package logger at w without touching the filesystem.
func InitWriter(w io.Writer, level log.Level) {
	Logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
	})
}

func Close() {
	if Logger != nil {
		Logger.Info("tubeview shutting down")
	}
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// WithPrefix returns a child logger, or a discarding one before Init.
func WithPrefix(prefix string) *log.Logger {
	if Logger != nil {
		return Logger.WithPrefix(prefix)
	}
	return log.New(io.Discard)
}
