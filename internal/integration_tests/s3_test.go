package integrationtests

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lm-pipeline/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	trainBucket  = "my-cosmo-train-bucket"
	outputBucket = "my-cosmo-output-bucket"
)

func TestS3Provider(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	store := createObjectStore(t, ctx)

	require.NoError(t, store.CreateBucket(ctx, trainBucket))
	// creating an existing bucket is not an error
	require.NoError(t, store.CreateBucket(ctx, trainBucket))

	t.Run("PutGetList", func(t *testing.T) {
		require.NoError(t, store.PutObject(ctx, trainBucket, "data/a.txt", strings.NewReader("alpha")))
		require.NoError(t, store.PutObject(ctx, trainBucket, "data/sub/b.txt", strings.NewReader("beta beta")))
		require.NoError(t, store.PutObject(ctx, trainBucket, "other/c.txt", strings.NewReader("gamma")))

		data, err := store.GetObject(ctx, trainBucket, "data/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "alpha", string(data))

		objects, err := store.ListObjects(ctx, trainBucket, "data/")
		require.NoError(t, err)
		assert.Equal(t, []storage.Object{
			{Name: "data/a.txt", Size: 5},
			{Name: "data/sub/b.txt", Size: 9},
		}, objects)
	})

	t.Run("DownloadObject", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "nested", "b.txt")
		require.NoError(t, store.DownloadObject(ctx, trainBucket, "data/sub/b.txt", filename))

		data, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "beta beta", string(data))
	})

	t.Run("MissingObject", func(t *testing.T) {
		_, err := store.GetObject(ctx, trainBucket, "data/missing.txt")
		assert.Error(t, err)
	})

	t.Run("UploadDir", func(t *testing.T) {
		src := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(src, "a"), os.ModePerm))
		require.NoError(t, os.MkdirAll(filepath.Join(src, "b"), os.ModePerm))
		require.NoError(t, os.WriteFile(filepath.Join(src, "a", "w.bin"), []byte("weights"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(src, "b", "c.json"), []byte("{}"), 0644))

		require.NoError(t, store.CreateBucket(ctx, outputBucket))

		var uploaded int64
		keys, err := storage.UploadDir(ctx, store, outputBucket, "model_artifacts/", src, func(key string, size int64) {
			uploaded += size
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"model_artifacts/a/w.bin", "model_artifacts/b/c.json"}, keys)
		assert.Equal(t, int64(9), uploaded)

		objects, err := store.ListObjects(ctx, outputBucket, "model_artifacts/")
		require.NoError(t, err)
		assert.Len(t, objects, 2)
	})
}
