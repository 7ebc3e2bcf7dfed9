package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// UploadDir uploads every regular file under src to bucket, keyed by
// prefix joined with the file's slash separated path relative to src. It
// stops at the first failed upload and returns the keys written so far.
func UploadDir(ctx context.Context, store ObjectStore, bucket, prefix, src string, onUpload func(key string, size int64)) ([]string, error) {
	var keys []string

	err := filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk directory %s: %w", src, err)
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		key := path.Join(prefix, filepath.ToSlash(rel))

		file, err := os.Open(p)
		if err != nil {
			return err
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			return err
		}

		if err := store.PutObject(ctx, bucket, key, file); err != nil {
			return err
		}
		keys = append(keys, key)

		if onUpload != nil {
			onUpload(key, info.Size())
		}
		return nil
	})
	if err != nil {
		return keys, fmt.Errorf("error uploading directory %s to %s/%s: %w", src, bucket, prefix, err)
	}

	return keys, nil
}

// CountFiles returns the number of regular files under dir.
func CountFiles(dir string) (int, error) {
	n := 0
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	return n, err
}
