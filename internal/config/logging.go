package config

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // Intentionally global for application-wide structured logging
var Logger zerolog.Logger

// logFileHandle tracks the current log file so it can be closed on re-init.
//
//nolint:gochecknoglobals // Tracks the global logger's file handle
var logFileHandle *os.File

// logMu protects Logger and logFileHandle.
//
//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger initializes the package-level Logger from a LoggingConfig.
//
// An unparseable level falls back to info. Format "json" writes raw zerolog
// JSON; anything else uses the human-readable console writer. When File is
// set, output goes to both the console and the file.
func InitLogger(lc LoggingConfig) error {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	if lc.Format == "json" {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	closeLogFileLocked()

	if lc.File != "" {
		logFile, fileErr := os.OpenFile(
			lc.File,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			0600,
		)
		if fileErr != nil {
			return fileErr
		}
		logFileHandle = logFile
		writers = append(writers, logFile)
	}

	multi := zerolog.MultiLevelWriter(writers...)

	Logger = zerolog.New(multi).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return nil
}

// SetLogLevel adjusts the global Logger's level, defaulting to info on
// parse failure.
func SetLogLevel(level string) {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	Logger = Logger.Level(lvl)
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

// CloseLogFile closes the current log file handle, if any, and resets the
// Logger to console-only output so later writes don't hit a closed file.
func CloseLogFile() {
	logMu.Lock()
	defer logMu.Unlock()
	closeLogFileLocked()
}

// closeLogFileLocked closes the log file and resets the logger.
// Must be called with logMu held.
func closeLogFileLocked() {
	if logFileHandle != nil {
		_ = logFileHandle.Close()
		logFileHandle = nil

		Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).
			Level(Logger.GetLevel()).
			With().
			Timestamp().
			Logger()
	}
}

// init gives the package a working console logger before any configuration
// is loaded.
//
//nolint:gochecknoinits // intentional: a logger must exist before config load
func init() {
	_ = InitLogger(LoggingConfig{Level: "info", Format: "console"})
}
