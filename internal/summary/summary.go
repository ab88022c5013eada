// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summary serializes a job summary to a timestamped file in the
// target directory.
package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bulkconvert/internal/convert"
	"github.com/pdiddy/bulkconvert/pkg/types"
)

// Format selects the summary serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown summary format %q (want json or yaml)", s)
	}
}

const (
	filePrefix      = "Bulk_Run_Summary_"
	timestampLayout = "20060102_150405"
)

// Writer writes job summaries. The clock is injectable for tests.
type Writer struct {
	log    *slog.Logger
	format Format
	now    func() time.Time
}

// New returns a Writer producing files in the given format.
func New(log *slog.Logger, format Format) *Writer {
	return &Writer{log: log, format: format, now: time.Now}
}

// Write serializes s into outputDir, creating the directory if needed. The
// filename embeds the current timestamp at second granularity; if a rerun
// lands in the same second the name is uniquified rather than overwritten.
// Fields keep declaration order and are indented by four spaces.
func (w *Writer) Write(s types.JobSummary, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating summary directory %s: %w", outputDir, err)
	}

	name := filePrefix + w.now().Format(timestampLayout) + "." + string(w.format)
	path, err := convert.NextAvailable(filepath.Join(outputDir, name))
	if err != nil {
		return "", err
	}

	data, err := w.marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshaling summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing summary %s: %w", path, err)
	}

	w.log.Info(fmt.Sprintf("Summary written to: %s", path))
	return path, nil
}

func (w *Writer) marshal(s types.JobSummary) ([]byte, error) {
	if w.format == FormatYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(4)
		if err := enc.Encode(s); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
