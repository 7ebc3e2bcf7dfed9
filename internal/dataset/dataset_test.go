package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"lm-pipeline/internal/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDataset(n int) Dataset {
	rows := make([][]uint32, n)
	for i := range rows {
		rows[i] = []uint32{uint32(i), uint32(i + 1)}
	}
	return Dataset{Rows: rows}
}

func TestAssemble(t *testing.T) {
	ctx := context.Background()
	store := records.NewMemoryStore()

	for i, ids := range [][]uint32{{1, 2, 3}, {4}, {5, 6}} {
		_, err := store.Write(ctx, fmt.Sprintf("file%d.txt", i), records.TokenRecord{InputIDs: ids})
		require.NoError(t, err)
	}

	ds, err := Assemble(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, [][]uint32{{1, 2, 3}, {4}, {5, 6}}, ds.Rows)
}

func TestAssembleFromDisk(t *testing.T) {
	ctx := context.Background()
	store, err := records.NewDirStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Write(ctx, "a.txt", records.TokenRecord{InputIDs: []uint32{7, 8}})
	require.NoError(t, err)

	ds, err := Assemble(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, [][]uint32{{7, 8}}, ds.Rows)
}

func TestAssembleEmptyRecord(t *testing.T) {
	ctx := context.Background()
	store, err := records.NewDirStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Write(ctx, "empty.txt", records.TokenRecord{})
	require.NoError(t, err)
	_, err = store.Write(ctx, "full.txt", records.TokenRecord{InputIDs: []uint32{3, 4}})
	require.NoError(t, err)

	ds, err := Assemble(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, [][]uint32{{}, {3, 4}}, ds.Rows)

	path := filepath.Join(t.TempDir(), "train.jsonl")
	require.NoError(t, Dataset{Rows: [][]uint32{nil}}.WriteJSONL(path))
	loaded, err := ReadJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, [][]uint32{{}}, loaded.Rows)
}

func TestWriteJSONLBadPath(t *testing.T) {
	err := makeDataset(2).WriteJSONL(filepath.Join(t.TempDir(), "missing", "train.jsonl"))
	assert.Error(t, err)
}

func TestSplitSizes(t *testing.T) {
	for _, n := range []int{2, 9, 10, 11, 20, 95, 100, 1000} {
		train, eval, err := makeDataset(n).Split(0.1, 42)
		require.NoError(t, err, "n=%d", n)

		assert.Equal(t, EvalSize(n, 0.1), eval.Len(), "n=%d", n)
		assert.Equal(t, n, train.Len()+eval.Len(), "n=%d", n)
		assert.InDelta(t, 0.1*float64(n), float64(eval.Len()), 1, "n=%d", n)
	}
}

func TestSplitIsAPartition(t *testing.T) {
	ds := makeDataset(50)
	train, eval, err := ds.Split(0.1, 7)
	require.NoError(t, err)

	seen := make(map[uint32]int)
	for _, row := range append(train.Rows, eval.Rows...) {
		seen[row[0]]++
	}
	assert.Len(t, seen, 50)
	for id, count := range seen {
		assert.Equal(t, 1, count, "row %d", id)
	}
}

func TestSplitDeterministicForSeed(t *testing.T) {
	ds := makeDataset(30)

	train1, eval1, err := ds.Split(0.1, 42)
	require.NoError(t, err)
	train2, eval2, err := ds.Split(0.1, 42)
	require.NoError(t, err)

	assert.Equal(t, train1, train2)
	assert.Equal(t, eval1, eval2)
}

func TestSplitErrors(t *testing.T) {
	_, _, err := makeDataset(0).Split(0.1, 42)
	assert.True(t, errors.Is(err, ErrEmptySplit))

	_, _, err = makeDataset(1).Split(0.1, 42)
	assert.True(t, errors.Is(err, ErrEmptySplit))

	_, _, err = makeDataset(10).Split(0, 42)
	assert.Error(t, err)

	_, _, err = makeDataset(10).Split(1, 42)
	assert.Error(t, err)
}

func TestJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.jsonl")
	ds := Dataset{Rows: [][]uint32{{1, 2}, {3}, {}}}

	require.NoError(t, ds.WriteJSONL(path))

	loaded, err := ReadJSONL(path)
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Len())
	assert.Equal(t, []uint32{1, 2}, loaded.Rows[0])
	assert.Equal(t, []uint32{3}, loaded.Rows[1])
	assert.Empty(t, loaded.Rows[2])
}
