// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch drives a conversion run: it lists the source directory,
// converts matching files one at a time in listing order, and hands the
// aggregated summary to the summary writer. Linear single pass; failures
// are logged and skipped, never retried.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/bulkconvert/pkg/types"
)

// Default extensions for source and converted files.
const (
	DefaultSourceExt = ".csv"
	DefaultDestExt   = ".parquet"
)

// FileConverter converts one source file to the desired output path,
// returning metadata on success.
type FileConverter interface {
	ConvertFile(sourcePath, desiredPath string) (types.ConversionResult, error)
}

// SummaryWriter persists a job summary into the output directory.
type SummaryWriter interface {
	Write(s types.JobSummary, outputDir string) (string, error)
}

// Options configures one run.
type Options struct {
	SourceDir string
	TargetDir string // defaults to SourceDir
	SourceExt string // defaults to DefaultSourceExt, matched case-sensitively
	DestExt   string // defaults to DefaultDestExt
}

// Runner owns the result list for the duration of a run.
type Runner struct {
	log  *slog.Logger
	conv FileConverter
	sw   SummaryWriter
	now  func() time.Time
}

// NewRunner wires a runner from its collaborators.
func NewRunner(log *slog.Logger, conv FileConverter, sw SummaryWriter) *Runner {
	return &Runner{log: log, conv: conv, sw: sw, now: time.Now}
}

// Run executes one batch. Per-file conversion failures and a summary-write
// failure are logged and absorbed; a source-directory listing failure is
// returned. The built summary is returned either way for callers that want
// to inspect it.
func (r *Runner) Run(opts Options) (types.JobSummary, error) {
	if opts.TargetDir == "" {
		opts.TargetDir = opts.SourceDir
	}
	if opts.SourceExt == "" {
		opts.SourceExt = DefaultSourceExt
	}
	if opts.DestExt == "" {
		opts.DestExt = DefaultDestExt
	}

	start := r.now()
	r.log.Info("CSV-to-Parquet conversion job started.")
	r.log.Info(fmt.Sprintf("Source directory: %s", opts.SourceDir))
	r.log.Info(fmt.Sprintf("Target directory: %s", opts.TargetDir))

	entries, err := os.ReadDir(opts.SourceDir)
	if err != nil {
		return types.JobSummary{}, fmt.Errorf("listing %s: %w", opts.SourceDir, err)
	}

	// Non-nil so an empty run serializes as an empty list, not null.
	converted := []types.ConversionResult{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), opts.SourceExt) {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), opts.SourceExt)
		sourcePath := filepath.Join(opts.SourceDir, entry.Name())
		destPath := filepath.Join(opts.TargetDir, stem+opts.DestExt)

		result, err := r.conv.ConvertFile(sourcePath, destPath)
		if err != nil {
			r.log.Error(fmt.Sprintf("Failed to convert %s: %v", sourcePath, err))
			continue
		}
		converted = append(converted, result)
	}

	end := r.now()
	duration := end.Sub(start).Seconds()

	r.log.Info("Job completed.")
	r.log.Info(fmt.Sprintf("Duration: %.2f seconds", duration))
	r.log.Info(fmt.Sprintf("Total files converted: %d", len(converted)))
	if len(converted) > 0 {
		r.log.Info("Files created:")
		for _, f := range converted {
			r.log.Info(fmt.Sprintf("  - %s (%d rows, %d bytes)", f.Filename, f.Rows, f.SizeBytes))
		}
	} else {
		r.log.Info("No files were converted.")
	}

	s := types.JobSummary{
		JobStart:            start,
		JobEnd:              end,
		DurationSeconds:     duration,
		SourceDirectory:     opts.SourceDir,
		TargetDirectory:     opts.TargetDir,
		TotalFilesConverted: len(converted),
		ConvertedFiles:      converted,
	}

	if _, err := r.sw.Write(s, opts.TargetDir); err != nil {
		r.log.Error(fmt.Sprintf("Failed to write summary: %v", err))
	}
	return s, nil
}
