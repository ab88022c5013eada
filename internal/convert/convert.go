// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns one row-oriented source file into a columnar
// Parquet file. Conversion is whole-file: the source is loaded fully into
// memory, written out in one shot, and the written file's metadata is
// reported back.
package convert

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/pdiddy/bulkconvert/internal/table"
	"github.com/pdiddy/bulkconvert/pkg/types"
)

// Converter converts single files. It holds the job logger and the arrow
// allocator; both are safe to reuse across files within a run.
type Converter struct {
	log *slog.Logger
	mem memory.Allocator
}

// New returns a Converter logging through log.
func New(log *slog.Logger) *Converter {
	return &Converter{log: log, mem: memory.DefaultAllocator}
}

// ConvertFile reads the source file, resolves a collision-free variant of
// desiredPath, and writes the table as Parquet: column order preserved, no
// added index column, snappy compression. On success it returns the output
// basename, row count, and written byte size. On failure the caller is
// expected to log and skip; a partially written output is not cleaned up.
func (c *Converter) ConvertFile(sourcePath, desiredPath string) (types.ConversionResult, error) {
	tbl, err := table.Load(sourcePath)
	if err != nil {
		return types.ConversionResult{}, err
	}

	finalPath, err := NextAvailable(desiredPath)
	if err != nil {
		return types.ConversionResult{}, err
	}

	var buf bytes.Buffer
	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	w, err := pqarrow.NewFileWriter(tbl.Schema(), &buf, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return types.ConversionResult{}, fmt.Errorf("opening parquet writer for %s: %w", finalPath, err)
	}

	rec := tbl.Record(c.mem)
	err = w.Write(rec)
	rec.Release()
	if err != nil {
		w.Close()
		return types.ConversionResult{}, fmt.Errorf("writing %s: %w", finalPath, err)
	}
	if err := w.Close(); err != nil {
		return types.ConversionResult{}, fmt.Errorf("finalizing %s: %w", finalPath, err)
	}

	if err := os.WriteFile(finalPath, buf.Bytes(), 0o644); err != nil {
		return types.ConversionResult{}, fmt.Errorf("writing %s: %w", finalPath, err)
	}

	info, err := os.Stat(finalPath)
	if err != nil {
		return types.ConversionResult{}, fmt.Errorf("stat %s: %w", finalPath, err)
	}

	c.log.Info(fmt.Sprintf("Converted: %s -> %s", filepath.Base(sourcePath), filepath.Base(finalPath)))
	return types.ConversionResult{
		Filename:  filepath.Base(finalPath),
		Rows:      tbl.NumRows(),
		SizeBytes: info.Size(),
	}, nil
}
