package records

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewDirStore(dir)
	require.NoError(t, err)

	rec := TokenRecord{InputIDs: []uint32{5, 17, 2}, AttentionMask: []uint32{1, 1, 1}}
	name, err := store.Write(ctx, filepath.Join("data", "notes.txt"), rec)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt.json", name)

	raw, err := os.ReadFile(filepath.Join(dir, "notes.txt.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"input_ids":[5,17,2],"attention_mask":[1,1,1]}`, string(raw))

	loaded, err := store.Read(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, rec, loaded)
}

func TestDirStoreEmptyRecord(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewDirStore(dir)
	require.NoError(t, err)

	name, err := store.Write(ctx, "empty.txt", TokenRecord{})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.JSONEq(t, `{"input_ids":[]}`, string(raw))

	loaded, err := store.Read(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []uint32{}, loaded.InputIDs)
}

func TestDirStoreListSkipsNonRecords(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewDirStore(dir)
	require.NoError(t, err)

	_, err = store.Write(ctx, "b.txt", TokenRecord{InputIDs: []uint32{1}})
	require.NoError(t, err)
	_, err = store.Write(ctx, "a.txt", TokenRecord{InputIDs: []uint32{2}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), os.ModePerm))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt.json", "b.txt.json"}, names)
}

func TestDirStoreReadErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewDirStore(dir)
	require.NoError(t, err)

	_, err = store.Read(ctx, "missing.json")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644))
	_, err = store.Read(ctx, "bad.json")
	assert.ErrorContains(t, err, "malformed record")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.json"), []byte(`{"attention_mask":[1]}`), 0644))
	_, err = store.Read(ctx, "empty.json")
	assert.ErrorContains(t, err, "missing input_ids")
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Write(ctx, "z.txt", TokenRecord{InputIDs: []uint32{9}})
	require.NoError(t, err)
	_, err = store.Write(ctx, "/tmp/data/y.txt", TokenRecord{InputIDs: []uint32{8, 7}})
	require.NoError(t, err)

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"y.txt.json", "z.txt.json"}, names)

	rec, err := store.Read(ctx, "y.txt.json")
	require.NoError(t, err)
	assert.Equal(t, []uint32{8, 7}, rec.InputIDs)

	_, err = store.Read(ctx, "nope.json")
	assert.True(t, errors.Is(err, ErrNotFound))
}
