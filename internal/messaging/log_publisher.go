package messaging

import (
	"context"
	"log/slog"
)

// LogPublisher writes run events to the log. Used when no broker is configured.
type LogPublisher struct{}

var _ Publisher = LogPublisher{}

func (LogPublisher) PublishRunEvent(ctx context.Context, event RunEvent) error {
	attrs := []any{"run_id", event.RunId, "stage", event.Stage, "status", event.Status}
	if event.Bucket != "" {
		attrs = append(attrs, "bucket", event.Bucket, "prefix", event.Prefix)
	}
	if event.Error != "" {
		attrs = append(attrs, "error", event.Error)
		slog.Error("run event", attrs...)
		return nil
	}
	slog.Info("run event", attrs...)
	return nil
}

func (LogPublisher) Close() {}
