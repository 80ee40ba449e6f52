package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logDir      = "logs"
	logFileName = "paperdesk.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// newLogger creates a logger with the timestamp layout used across commands
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// setupLogging opens path for appending, rotating it first when it has grown past maxLogSize
// An empty path discards all output and returns a nil file
func setupLogging(path string, level log.Level) (*log.Logger, *os.File) {
	if path == "" {
		return newLogger(io.Discard, level), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		return newLogger(io.Discard, level), nil
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return newLogger(io.Discard, level), nil
	}
	return newLogger(f, level), f
}

// logPath picks the log file for the interactive desk: the configured file,
// else logs/paperdesk.log under --debug, else none
func (a *app) logPath() string {
	if a.config != nil && a.config.Config.Log.File != "" {
		return a.config.Config.Log.File
	}
	if a.debug {
		return filepath.Join(logDir, logFileName)
	}
	return ""
}
