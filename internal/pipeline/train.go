package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"lm-pipeline/internal/core"
	"lm-pipeline/internal/dataset"
	"lm-pipeline/internal/records"
	"lm-pipeline/internal/storage"
)

type Trainer struct {
	Model   core.CausalLM
	Records records.Store
	Store   storage.ObjectStore
	Run     *Run

	Args         core.TrainingArgs
	EvalFraction float64
	SplitSeed    uint64
}

// Train fits the model on every stored token record, saves it to outputDir and
// uploads the saved tree to bucket under prefix. It returns the uploaded keys.
func (t *Trainer) Train(ctx context.Context, outputDir, bucket, prefix string) ([]string, error) {
	ds, err := dataset.Assemble(ctx, t.Records)
	if err != nil {
		return nil, err
	}

	trainSet, evalSet, err := ds.Split(t.EvalFraction, t.SplitSeed)
	if err != nil {
		return nil, fmt.Errorf("error splitting dataset: %w", err)
	}
	slog.Info("dataset assembled", "rows", ds.Len(), "train_rows", trainSet.Len(), "eval_rows", evalSet.Len(), "seed", t.SplitSeed)

	splitDir, err := os.MkdirTemp("", "lm-pipeline-dataset-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset directory: %w", err)
	}
	defer os.RemoveAll(splitDir)

	req := core.TrainRequest{
		TrainFile: filepath.Join(splitDir, "train.jsonl"),
		EvalFile:  filepath.Join(splitDir, "eval.jsonl"),
		OutputDir: outputDir,
		Args:      t.Args,
	}
	if err := trainSet.WriteJSONL(req.TrainFile); err != nil {
		return nil, err
	}
	if err := evalSet.WriteJSONL(req.EvalFile); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	if err := t.Model.Train(ctx, req, func(event core.TrainingEvent) {
		t.onTrainingEvent(ctx, event)
	}); err != nil {
		return nil, fmt.Errorf("error training model: %w", err)
	}

	if err := t.Model.Save(outputDir); err != nil {
		return nil, fmt.Errorf("error saving model: %w", err)
	}
	slog.Info("model saved", "dir", outputDir)

	return t.upload(ctx, outputDir, bucket, prefix)
}

func (t *Trainer) onTrainingEvent(ctx context.Context, event core.TrainingEvent) {
	attrs := []any{"kind", event.Kind, "step", event.Step, "epoch", event.Epoch}
	for name, value := range event.Metrics {
		attrs = append(attrs, name, value)
	}
	if event.Checkpoint != "" {
		attrs = append(attrs, "checkpoint", event.Checkpoint)
	}
	slog.Info("training event", attrs...)

	if err := t.Run.recordTrainingEvent(ctx, event); err != nil {
		slog.Error("error recording training event", "step", event.Step, "error", err)
	}
}

func (t *Trainer) upload(ctx context.Context, outputDir, bucket, prefix string) ([]string, error) {
	if err := t.Store.CreateBucket(ctx, bucket); err != nil {
		return nil, fmt.Errorf("error preparing output bucket: %w", err)
	}

	n, err := storage.CountFiles(outputDir)
	if err != nil {
		return nil, fmt.Errorf("error scanning model artifacts: %w", err)
	}

	bar := newProgressBar(n, "uploading")
	defer bar.Finish()

	var recordErr error
	keys, err := storage.UploadDir(ctx, t.Store, bucket, prefix, outputDir, func(key string, size int64) {
		_ = bar.Add(1)
		if err := t.Run.recordArtifact(ctx, bucket, key, size); err != nil && recordErr == nil {
			recordErr = err
		}
	})
	if err != nil {
		return keys, fmt.Errorf("error uploading model artifacts: %w", err)
	}
	if recordErr != nil {
		return keys, fmt.Errorf("error recording model artifacts: %w", recordErr)
	}

	slog.Info("model artifacts uploaded", "bucket", bucket, "prefix", prefix, "files", len(keys))

	return keys, nil
}
