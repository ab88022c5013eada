// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_KindInference(t *testing.T) {
	path := writeCSV(t, "id,price,active,name,notes\n"+
		"1,9.50,true,alice,\n"+
		"2,3,FALSE,bob,hello\n"+
		"3,,True,carol,\n")

	tbl, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(3), tbl.NumRows())

	cols := tbl.Columns()
	require.Len(t, cols, 5)
	assert.Equal(t, KindInt64, cols[0].Kind)   // 1, 2, 3
	assert.Equal(t, KindFloat64, cols[1].Kind) // 9.50, 3, empty
	assert.Equal(t, KindBool, cols[2].Kind)    // mixed-case true/false
	assert.Equal(t, KindString, cols[3].Kind)
	assert.Equal(t, KindString, cols[4].Kind) // only one non-empty cell
}

func TestLoad_ColumnOrderPreserved(t *testing.T) {
	path := writeCSV(t, "zulu,alpha,mike\n1,2,3\n")

	tbl, err := Load(path)
	require.NoError(t, err)

	schema := tbl.Schema()
	require.Equal(t, 3, schema.NumFields())
	assert.Equal(t, "zulu", schema.Field(0).Name)
	assert.Equal(t, "alpha", schema.Field(1).Name)
	assert.Equal(t, "mike", schema.Field(2).Name)
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "a,b,c\n")

	tbl, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(0), tbl.NumRows())
	for _, col := range tbl.Columns() {
		assert.Equal(t, KindString, col.Kind)
	}
}

func TestLoad_Malformed(t *testing.T) {
	// Second record has a different field count.
	path := writeCSV(t, "a,b\n1,2\n3,4,5\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestRecord_ValuesAndNulls(t *testing.T) {
	path := writeCSV(t, "id,score\n7,1.5\n,2.5\n9,\n")

	tbl, err := Load(path)
	require.NoError(t, err)

	rec := tbl.Record(memory.DefaultAllocator)
	defer rec.Release()

	require.Equal(t, int64(3), rec.NumRows())
	require.Equal(t, arrow.PrimitiveTypes.Int64, rec.Schema().Field(0).Type)
	require.Equal(t, arrow.PrimitiveTypes.Float64, rec.Schema().Field(1).Type)

	ids := rec.Column(0).(*array.Int64)
	assert.Equal(t, int64(7), ids.Value(0))
	assert.True(t, ids.IsNull(1))
	assert.Equal(t, int64(9), ids.Value(2))

	scores := rec.Column(1).(*array.Float64)
	assert.Equal(t, 1.5, scores.Value(0))
	assert.Equal(t, 2.5, scores.Value(1))
	assert.True(t, scores.IsNull(2))
}

func TestRecord_BoolAndString(t *testing.T) {
	path := writeCSV(t, "ok,label\nTRUE,x\nfalse,y\n")

	tbl, err := Load(path)
	require.NoError(t, err)

	rec := tbl.Record(memory.DefaultAllocator)
	defer rec.Release()

	oks := rec.Column(0).(*array.Boolean)
	assert.True(t, oks.Value(0))
	assert.False(t, oks.Value(1))

	labels := rec.Column(1).(*array.String)
	assert.Equal(t, "x", labels.Value(0))
	assert.Equal(t, "y", labels.Value(1))
}
