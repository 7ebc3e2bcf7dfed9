package python

import (
	"context"
	"errors"
	"testing"

	"lm-pipeline/plugin/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlugin struct {
	events  []shared.TrainingEvent
	err     error
	savedTo string
}

func (p *stubPlugin) Generate(ctx context.Context, inputIds []uint32, maxLength int) ([]uint32, error) {
	if p.err != nil {
		return nil, p.err
	}
	return append(inputIds, 0), nil
}

func (p *stubPlugin) Train(ctx context.Context, req shared.TrainRequest, send func(shared.TrainingEvent) error) error {
	for _, event := range p.events {
		if err := send(event); err != nil {
			return err
		}
	}
	return p.err
}

func (p *stubPlugin) Save(ctx context.Context, dir string) error {
	p.savedTo = dir
	return p.err
}

func TestPythonModel(t *testing.T) {
	stub := &stubPlugin{
		events: []shared.TrainingEvent{{Kind: shared.EventLog, Step: 25, Metrics: map[string]float64{"loss": 2}}},
	}
	model := NewPythonModel(nil, stub)

	out, err := model.Generate(context.Background(), []uint32{4, 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 5, 0}, out)

	var events []shared.TrainingEvent
	require.NoError(t, model.Train(context.Background(), shared.TrainRequest{}, func(e shared.TrainingEvent) {
		events = append(events, e)
	}))
	assert.Equal(t, stub.events, events)

	require.NoError(t, model.Save("model_artifacts"))
	assert.Equal(t, "model_artifacts", stub.savedTo)

	model.Release()
	_, err = model.Generate(context.Background(), []uint32{1}, 2)
	assert.ErrorContains(t, err, "released")
	assert.Error(t, model.Save("x"))
}

func TestPythonModelWrapsPluginErrors(t *testing.T) {
	model := NewPythonModel(nil, &stubPlugin{err: errors.New("cuda oom")})

	_, err := model.Generate(context.Background(), []uint32{1}, 2)
	assert.ErrorContains(t, err, "plugin generate failed: cuda oom")

	err = model.Train(context.Background(), shared.TrainRequest{}, func(shared.TrainingEvent) {})
	assert.ErrorContains(t, err, "plugin training failed: cuda oom")

	assert.ErrorContains(t, model.Save("out"), "plugin save failed: cuda oom")
}
