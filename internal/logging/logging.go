// Package logging builds the application logger and adapts it for gorm.
//
// The logger writes to stderr so that stdout stays reserved for the
// interactive shell dialogue.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	gormlogger "gorm.io/gorm/logger"
)

// NewLogger creates a [log.Logger] writing to w (stderr when nil) at the given
// level. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
		logger.Warn("unknown log level, using info", "level", level)
	}
	logger.SetLevel(lvl)
	return logger
}

// gormWriter flattens gorm's multi-line records into single log entries.
type gormWriter struct {
	logger *log.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.logger.Printf(strings.ReplaceAll(format, "\n", " "), args...)
}

// NewGormLogger returns a gorm logger that routes SQL tracing through logger.
func NewGormLogger(logger *log.Logger, level string) gormlogger.Interface {
	return gormlogger.New(gormWriter{logger: logger.WithPrefix("gorm")}, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  ParseGormLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// ParseGormLevel maps a textual level onto gorm's levels, defaulting to warn.
func ParseGormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
