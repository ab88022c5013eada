// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table loads one delimited text file fully into an in-memory
// tabular structure. The first record is the header and supplies column
// names; per-column value kinds are inferred from the remaining records.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Kind is the inferred value kind of a column.
type Kind int

const (
	KindInt64 Kind = iota
	KindFloat64
	KindBool
	KindString
)

// String returns the kind name for log and error messages.
func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// arrowType maps a kind to its arrow data type.
func (k Kind) arrowType() arrow.DataType {
	switch k {
	case KindInt64:
		return arrow.PrimitiveTypes.Int64
	case KindFloat64:
		return arrow.PrimitiveTypes.Float64
	case KindBool:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// Column is a named column with its inferred kind.
type Column struct {
	Name string
	Kind Kind
}

// Table holds one source file fully in memory: the header-derived columns
// in original order and the raw cell values row by row.
type Table struct {
	columns []Column
	cells   [][]string
}

// Load reads the file at path into a Table. The file must have a header
// record; ragged records are a parse error.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing %s: missing header record", path)
	}

	header := records[0]
	rows := records[1:]

	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Column{Name: name, Kind: inferKind(rows, i)}
	}
	return &Table{columns: columns, cells: rows}, nil
}

// NumRows returns the number of data rows (excluding the header).
func (t *Table) NumRows() int64 {
	return int64(len(t.cells))
}

// Columns returns the columns in header order.
func (t *Table) Columns() []Column {
	return t.columns
}

// Schema returns the arrow schema for the table, preserving header order.
// Every field is nullable: empty cells become nulls.
func (t *Table) Schema() *arrow.Schema {
	fields := make([]arrow.Field, len(t.columns))
	for i, c := range t.columns {
		fields[i] = arrow.Field{Name: c.Name, Type: c.Kind.arrowType(), Nullable: true}
	}
	return arrow.NewSchema(fields, nil)
}

// Record materializes the cells as an arrow record matching Schema().
// The caller must Release the record.
func (t *Table) Record(mem memory.Allocator) arrow.Record {
	b := array.NewRecordBuilder(mem, t.Schema())
	defer b.Release()

	for _, row := range t.cells {
		for i, col := range t.columns {
			cell := row[i]
			if cell == "" {
				b.Field(i).AppendNull()
				continue
			}
			// Kind inference already proved these cells parse.
			switch col.Kind {
			case KindInt64:
				v, _ := strconv.ParseInt(cell, 10, 64)
				b.Field(i).(*array.Int64Builder).Append(v)
			case KindFloat64:
				v, _ := strconv.ParseFloat(cell, 64)
				b.Field(i).(*array.Float64Builder).Append(v)
			case KindBool:
				b.Field(i).(*array.BooleanBuilder).Append(strings.EqualFold(cell, "true"))
			default:
				b.Field(i).(*array.StringBuilder).Append(cell)
			}
		}
	}
	return b.NewRecord()
}

// inferKind scans column col of rows and picks the narrowest kind that
// admits every non-empty cell. Empty cells are nulls and carry no kind
// information; a column with no non-empty cells is a string column.
func inferKind(rows [][]string, col int) Kind {
	allInt, allFloat, allBool := true, true, true
	seen := false

	for _, row := range rows {
		cell := row[col]
		if cell == "" {
			continue
		}
		seen = true
		if allInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				allFloat = false
			}
		}
		if allBool && !strings.EqualFold(cell, "true") && !strings.EqualFold(cell, "false") {
			allBool = false
		}
		if !allInt && !allFloat && !allBool {
			return KindString
		}
	}

	switch {
	case !seen:
		return KindString
	case allInt:
		return KindInt64
	case allFloat:
		return KindFloat64
	case allBool:
		return KindBool
	default:
		return KindString
	}
}
