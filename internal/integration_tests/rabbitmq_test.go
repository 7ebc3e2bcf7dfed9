package integrationtests

import (
	"context"
	"testing"
	"time"

	"lm-pipeline/internal/database"
	"lm-pipeline/internal/messaging"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRabbitMQ(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	url := setupRabbitMQContainer(t, ctx)

	publisher, err := messaging.NewRabbitMQPublisher(url)
	require.NoError(t, err)
	defer publisher.Close()

	events := []messaging.RunEvent{
		{RunId: uuid.New(), Stage: database.StageTrain, Status: database.JobCompleted, Bucket: outputBucket, Prefix: "model_artifacts/"},
		{RunId: uuid.New(), Stage: database.StageEvaluate, Status: database.JobFailed, Error: "model not found"},
	}

	for _, event := range events {
		require.NoError(t, publisher.PublishRunEvent(ctx, event))
	}

	assert.Equal(t, events, consumeRunEvents(t, url, len(events), 10*time.Second))
}
