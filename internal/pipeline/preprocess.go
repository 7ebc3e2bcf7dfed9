package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"lm-pipeline/internal/records"
	"lm-pipeline/internal/storage"
	"lm-pipeline/internal/tokenize"
)

type Preprocessor struct {
	Store     storage.ObjectStore
	Tokenizer tokenize.Tokenizer
	Records   records.Store
	Run       *Run

	MaxLength int
}

// Preprocess downloads the raw data under bucket/prefix into dataDir and
// writes a token record for every file found there.
func (p *Preprocessor) Preprocess(ctx context.Context, bucket, prefix, dataDir string) ([]string, error) {
	if _, err := DownloadRawData(ctx, p.Store, bucket, prefix, dataDir); err != nil {
		return nil, err
	}

	return p.TokenizeDir(ctx, dataDir)
}

// TokenizeDir tokenizes every regular file directly inside dataDir and returns
// the names of the written records.
func (p *Preprocessor) TokenizeDir(ctx context.Context, dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory %s: %w", dataDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(dataDir, entry.Name()))
		}
	}

	bar := newProgressBar(len(files), "tokenizing")
	defer bar.Finish()

	names := make([]string, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return names, err
		}

		name, err := p.TokenizeFile(ctx, file)
		if err != nil {
			return names, err
		}
		names = append(names, name)
		_ = bar.Add(1)
	}

	slog.Info("preprocessing complete", "files", len(names))

	return names, nil
}

func (p *Preprocessor) TokenizeFile(ctx context.Context, path string) (string, error) {
	maxLength := p.MaxLength
	if maxLength <= 0 {
		maxLength = tokenize.DefaultMaxLength
	}

	slog.Info("processing file", "path", path)

	text, err := tokenize.ReadDocument(path)
	if err != nil {
		return "", fmt.Errorf("error reading raw data: %w", err)
	}

	rec, total := tokenize.Tokenize(p.Tokenizer, text, maxLength)
	if total > len(rec.InputIDs) {
		slog.Warn("document truncated", "path", path, "tokens", total, "max_length", maxLength, "dropped", total-len(rec.InputIDs))
	}

	name, err := p.Records.Write(ctx, path, rec)
	if err != nil {
		return "", fmt.Errorf("error saving token record: %w", err)
	}

	if err := p.Run.recordTokenizedFile(ctx, filepath.Base(path), name, len(rec.InputIDs), total); err != nil {
		return "", fmt.Errorf("error recording tokenized file: %w", err)
	}

	slog.Info("preprocessed data saved", "record", name, "tokens", len(rec.InputIDs))

	return name, nil
}
