package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"

	"lm-pipeline/internal/core"
	"lm-pipeline/internal/database"
	"lm-pipeline/internal/messaging"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"gorm.io/gorm"
)

var progressOutput io.Writer = os.Stderr

// SetProgressOutput redirects progress bars, io.Discard hides them.
func SetProgressOutput(w io.Writer) {
	progressOutput = w
}

func newProgressBar(n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(progressOutput),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// Run tracks one invocation of a stage in the run ledger and announces its
// outcome to the publisher. Both db and publisher may be nil.
type Run struct {
	Id    uuid.UUID
	Stage string

	db        *gorm.DB
	publisher messaging.Publisher
}

func StartRun(ctx context.Context, db *gorm.DB, publisher messaging.Publisher, stage string, config any) (*Run, error) {
	run := &Run{Id: uuid.New(), Stage: stage, db: db, publisher: publisher}

	if db != nil {
		id, err := database.StartRun(ctx, db, stage, config)
		if err != nil {
			return nil, err
		}
		run.Id = id
	}

	slog.Info("starting run", "run_id", run.Id, "stage", stage)

	return run, nil
}

func (r *Run) recordTokenizedFile(ctx context.Context, source, recordName string, tokenCount, originalTokenCount int) error {
	if r == nil || r.db == nil {
		return nil
	}
	return database.RecordTokenizedFile(ctx, r.db, r.Id, source, recordName, tokenCount, originalTokenCount)
}

func (r *Run) recordTrainingEvent(ctx context.Context, event core.TrainingEvent) error {
	if r == nil || r.db == nil {
		return nil
	}
	return database.RecordTrainingEvent(ctx, r.db, r.Id, event.Kind, event.Step, event.Epoch, event.Metrics, event.Checkpoint)
}

func (r *Run) recordArtifact(ctx context.Context, bucket, key string, size int64) error {
	if r == nil || r.db == nil {
		return nil
	}
	return database.RecordArtifact(ctx, r.db, r.Id, bucket, key, size)
}

// Finish marks the run completed or failed and publishes a run event. Failures
// here are logged, never returned, so they cannot mask runErr.
func (r *Run) Finish(ctx context.Context, runErr error, bucket, prefix string) {
	if r == nil {
		return
	}

	if r.db != nil {
		if err := database.FinishRun(ctx, r.db, r.Id, runErr); err != nil {
			slog.Error("error recording run outcome", "run_id", r.Id, "error", err)
		}
	}

	event := messaging.RunEvent{
		RunId:  r.Id,
		Stage:  r.Stage,
		Status: database.JobCompleted,
		Bucket: bucket,
		Prefix: prefix,
	}
	if runErr != nil {
		event.Status = database.JobFailed
		event.Error = runErr.Error()
	}

	if r.publisher != nil {
		if err := r.publisher.PublishRunEvent(ctx, event); err != nil {
			slog.Error("error publishing run event", "run_id", r.Id, "error", err)
		}
	}

	if runErr != nil {
		slog.Error("run failed", "run_id", r.Id, "stage", r.Stage, "error", runErr)
	} else {
		slog.Info("run completed", "run_id", r.Id, "stage", r.Stage)
	}
}
