// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the record types shared across the conversion
// pipeline: the per-file conversion result and the job-level summary.
package types

import "time"

// ConversionResult records the outcome of one successful file conversion.
// It is immutable once created and lives only in the run's result list.
type ConversionResult struct {
	Filename  string `json:"filename" yaml:"filename"`
	Rows      int64  `json:"rows" yaml:"rows"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
}

// JobSummary aggregates a single batch run: timing, directories, and the
// ordered list of converted files. Built once at the end of a run, written
// once, never mutated afterwards.
type JobSummary struct {
	JobStart            time.Time          `json:"job_start" yaml:"job_start"`
	JobEnd              time.Time          `json:"job_end" yaml:"job_end"`
	DurationSeconds     float64            `json:"duration_seconds" yaml:"duration_seconds"`
	SourceDirectory     string             `json:"source_directory" yaml:"source_directory"`
	TargetDirectory     string             `json:"target_directory" yaml:"target_directory"`
	TotalFilesConverted int                `json:"total_files_converted" yaml:"total_files_converted"`
	ConvertedFiles      []ConversionResult `json:"converted_files" yaml:"converted_files"`
}
