package messaging

import (
	"context"

	"github.com/google/uuid"
)

const RunEventsQueue = "pipeline_events"

// RunEvent announces that a pipeline stage finished, successfully or not.
type RunEvent struct {
	RunId  uuid.UUID
	Stage  string
	Status string

	Bucket string `json:",omitempty"`
	Prefix string `json:",omitempty"`
	Error  string `json:",omitempty"`
}

type Publisher interface {
	PublishRunEvent(ctx context.Context, event RunEvent) error

	Close()
}
