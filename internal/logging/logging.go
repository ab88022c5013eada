// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the job logger. Log lines are appended to a file
// in the target directory and mirrored to standard output. The returned
// handle is passed explicitly into every pipeline component; there is no
// package-global logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LogFileName is the log file appended to in the target directory.
const LogFileName = "CSV_to_Parquet_BULK.log"

// New creates logDir if needed, opens the job log file for appending, and
// returns a logger writing to both the file and stdout. The returned close
// function releases the file handle.
func New(logDir string) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory %s: %w", logDir, err)
	}

	path := filepath.Join(logDir, LogFileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stdout, f), &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler), f.Close, nil
}

// Discard returns a logger that drops everything. Used by tests and by
// callers that have no sink to write to.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
