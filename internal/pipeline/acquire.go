package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"lm-pipeline/internal/storage"
)

// DownloadRawData copies every object under bucket/prefix into localDir, named
// by the key's basename. Keys ending in "/" are directory markers and skipped.
// The first failed transfer aborts the download.
func DownloadRawData(ctx context.Context, store storage.ObjectStore, bucket, prefix, localDir string) ([]string, error) {
	if err := os.MkdirAll(localDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", localDir, err)
	}

	objects, err := store.ListObjects(ctx, bucket, prefix)
	if err != nil {
		return nil, fmt.Errorf("error listing raw data: %w", err)
	}

	var keys []string
	for _, obj := range objects {
		if strings.HasSuffix(obj.Name, "/") {
			continue
		}
		keys = append(keys, obj.Name)
	}

	bar := newProgressBar(len(keys), "downloading")
	defer bar.Finish()

	files := make([]string, 0, len(keys))
	for _, key := range keys {
		target := filepath.Join(localDir, path.Base(key))
		slog.Info("downloading object", "bucket", bucket, "key", key, "target", target)

		if err := store.DownloadObject(ctx, bucket, key, target); err != nil {
			return files, fmt.Errorf("error downloading raw data: %w", err)
		}
		files = append(files, target)
		_ = bar.Add(1)
	}

	slog.Info("raw data downloaded", "bucket", bucket, "prefix", prefix, "files", len(files))

	return files, nil
}
