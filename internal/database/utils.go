package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StartRun records a new RUNNING run of stage with a snapshot of its config.
func StartRun(ctx context.Context, db *gorm.DB, stage string, config any) (uuid.UUID, error) {
	snapshot, err := json.Marshal(config)
	if err != nil {
		return uuid.Nil, fmt.Errorf("could not encode run config: %w", err)
	}

	run := Run{
		Id:           uuid.New(),
		Stage:        stage,
		Status:       JobRunning,
		Config:       snapshot,
		CreationTime: time.Now().UTC(),
	}

	if err := db.WithContext(ctx).Create(&run).Error; err != nil {
		slog.Error("error creating run", "stage", stage, "error", err)
		return uuid.Nil, fmt.Errorf("could not create run: %w", err)
	}

	return run.Id, nil
}

func UpdateRunStatus(ctx context.Context, txn *gorm.DB, runId uuid.UUID, status string) error {
	updates := map[string]any{"status": status}
	if status == JobCompleted || status == JobFailed {
		updates["completion_time"] = time.Now().UTC()
	}

	if err := txn.WithContext(ctx).Model(&Run{Id: runId}).Updates(updates).Error; err != nil {
		slog.Error("error updating run status", "run_id", runId, "status", status, "error", err)
		return err
	}
	return nil
}

// FinishRun marks the run COMPLETED when runErr is nil and FAILED otherwise.
func FinishRun(ctx context.Context, txn *gorm.DB, runId uuid.UUID, runErr error) error {
	if runErr == nil {
		return UpdateRunStatus(ctx, txn, runId, JobCompleted)
	}

	updates := map[string]any{
		"status":          JobFailed,
		"completion_time": time.Now().UTC(),
		"error":           sql.NullString{String: runErr.Error(), Valid: true},
	}
	if err := txn.WithContext(ctx).Model(&Run{Id: runId}).Updates(updates).Error; err != nil {
		slog.Error("error marking run failed", "run_id", runId, "error", err)
		return err
	}
	return nil
}

func RecordTokenizedFile(ctx context.Context, txn *gorm.DB, runId uuid.UUID, source, recordName string, tokenCount, originalTokenCount int) error {
	file := TokenizedFile{
		RunId:              runId,
		Source:             source,
		RecordName:         recordName,
		TokenCount:         tokenCount,
		OriginalTokenCount: originalTokenCount,
		Truncated:          originalTokenCount > tokenCount,
	}

	if err := txn.WithContext(ctx).Create(&file).Error; err != nil {
		return fmt.Errorf("could not record tokenized file %s: %w", source, err)
	}
	return nil
}

func RecordTrainingEvent(ctx context.Context, txn *gorm.DB, runId uuid.UUID, kind string, step int, epoch float64, metrics map[string]float64, checkpoint string) error {
	var encoded []byte
	if len(metrics) > 0 {
		var err error
		if encoded, err = json.Marshal(metrics); err != nil {
			return fmt.Errorf("could not encode training metrics: %w", err)
		}
	}

	event := TrainingEvent{
		RunId:      runId,
		Kind:       kind,
		Step:       step,
		Epoch:      epoch,
		Metrics:    encoded,
		Checkpoint: sql.NullString{String: checkpoint, Valid: checkpoint != ""},
		Timestamp:  time.Now().UTC(),
	}

	if err := txn.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("could not record training event: %w", err)
	}
	return nil
}

func RecordArtifact(ctx context.Context, txn *gorm.DB, runId uuid.UUID, bucket, key string, size int64) error {
	artifact := Artifact{RunId: runId, Bucket: bucket, Key: key, Size: size}

	if err := txn.WithContext(ctx).Create(&artifact).Error; err != nil {
		return fmt.Errorf("could not record artifact %s: %w", key, err)
	}
	return nil
}

// GetRun loads a run together with everything recorded for it.
func GetRun(ctx context.Context, db *gorm.DB, runId uuid.UUID) (Run, error) {
	var run Run
	err := db.WithContext(ctx).
		Preload("TokenizedFiles").
		Preload("TrainingEvents", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Artifacts").
		First(&run, "id = ?", runId).Error
	if err != nil {
		return Run{}, fmt.Errorf("could not load run %s: %w", runId, err)
	}
	return run, nil
}
