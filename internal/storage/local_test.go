package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLocalProvider(t *testing.T) (*LocalProvider, string) {
	t.Helper()
	dir := t.TempDir()
	provider, err := NewLocalProvider(dir)
	require.NoError(t, err)
	return provider, dir
}

func TestLocalProvider_PutObject(t *testing.T) {
	provider, baseDir := setupTestLocalProvider(t)

	bucket := "test-bucket"
	key := "data/test-file.txt"
	content := []byte("Test content")

	err := provider.PutObject(context.Background(), bucket, key, bytes.NewReader(content))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(baseDir, bucket, "data", "test-file.txt"))
	require.NoError(t, err)
	assert.Equal(t, content, data)

	got, err := provider.GetObject(context.Background(), bucket, key)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLocalProvider_CreateBucket(t *testing.T) {
	provider, baseDir := setupTestLocalProvider(t)

	require.NoError(t, provider.CreateBucket(context.Background(), "test-bucket"))
	require.NoError(t, provider.CreateBucket(context.Background(), "test-bucket"))

	info, err := os.Stat(filepath.Join(baseDir, "test-bucket"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalProvider_ListObjects(t *testing.T) {
	provider, _ := setupTestLocalProvider(t)
	ctx := context.Background()

	files := map[string]string{
		"data/a.txt":       "aaa",
		"data/sub/b.txt":   "bb",
		"other/c.txt":      "c",
		"data-extra/d.txt": "dddd",
	}
	for key, content := range files {
		require.NoError(t, provider.PutObject(ctx, "bucket", key, bytes.NewReader([]byte(content))))
	}

	objects, err := provider.ListObjects(ctx, "bucket", "data/")
	require.NoError(t, err)
	assert.Equal(t, []Object{{Name: "data/a.txt", Size: 3}, {Name: "data/sub/b.txt", Size: 2}}, objects)

	all, err := provider.ListObjects(ctx, "bucket", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestLocalProvider_DownloadObject(t *testing.T) {
	provider, _ := setupTestLocalProvider(t)
	ctx := context.Background()

	require.NoError(t, provider.PutObject(ctx, "bucket", "data/doc.txt", bytes.NewReader([]byte("hello world"))))

	dest := filepath.Join(t.TempDir(), "nested", "doc.txt")
	require.NoError(t, provider.DownloadObject(ctx, "bucket", "data/doc.txt", dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	err = provider.DownloadObject(ctx, "bucket", "data/missing.txt", dest)
	assert.Error(t, err)
}

func TestUploadDir_PreservesRelativePaths(t *testing.T) {
	provider, baseDir := setupTestLocalProvider(t)
	ctx := context.Background()

	srcDir := t.TempDir()
	files := map[string]string{
		"a/w.bin":  "weights",
		"b/c.json": "{}",
	}
	for file, content := range files {
		path := filepath.Join(srcDir, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
		require.NoError(t, os.WriteFile(path, []byte(content), os.ModePerm))
	}

	var uploaded []string
	keys, err := UploadDir(ctx, provider, "out", "model_artifacts", srcDir, func(key string, size int64) {
		uploaded = append(uploaded, key)
		assert.Positive(t, size)
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"model_artifacts/a/w.bin", "model_artifacts/b/c.json"}, keys)
	assert.Equal(t, keys, uploaded)

	for file, content := range files {
		data, err := os.ReadFile(filepath.Join(baseDir, "out", "model_artifacts", filepath.FromSlash(file)))
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	}
}

func TestUploadDir_MissingSource(t *testing.T) {
	provider, _ := setupTestLocalProvider(t)

	_, err := UploadDir(context.Background(), provider, "out", "model_artifacts", filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

func TestCountFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "x", "y"), os.ModePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x", "y", "f1"), []byte("1"), os.ModePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f2"), []byte("2"), os.ModePerm))

	n, err := CountFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
