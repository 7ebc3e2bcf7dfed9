package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lm-pipeline/internal/core/python"
	"lm-pipeline/plugin/shared"
)

// ModelType represents the runtime used to serve a causal language model
type ModelType string

const (
	PythonCausalLM ModelType = "python_causal_lm"
	OnnxCausalLM   ModelType = "onnx_causal_lm"
)

var ErrUnsupported = errors.New("operation not supported by model")

// TrainingArgs mirrors the subset of trainer arguments the pipeline controls.
type TrainingArgs = shared.TrainingArgs

func DefaultTrainingArgs() TrainingArgs {
	return TrainingArgs{
		Epochs:             1,
		BatchSize:          1,
		SaveSteps:          100,
		EvalSteps:          50,
		LoggingSteps:       25,
		OverwriteOutputDir: true,
	}
}

type TrainRequest = shared.TrainRequest

type TrainingEvent = shared.TrainingEvent

const (
	EventLog        = shared.EventLog
	EventEval       = shared.EventEval
	EventCheckpoint = shared.EventCheckpoint
)

type CausalLM interface {
	// Generate returns the full sequence (prompt included), at most maxLength ids long.
	Generate(ctx context.Context, inputIds []uint32, maxLength int) ([]uint32, error)

	Train(ctx context.Context, req TrainRequest, onEvent func(TrainingEvent)) error

	Save(dir string) error

	Release()
}

type ModelLoader func(string) (CausalLM, error)

func ParseModelType(s string) (ModelType, error) {
	switch t := ModelType(s); t {
	case PythonCausalLM, OnnxCausalLM:
		return t, nil
	default:
		return "", fmt.Errorf("invalid model type '%s', must be one of %s, %s", s, PythonCausalLM, OnnxCausalLM)
	}
}

func NewModelLoaders(pythonExec, pluginScript string) map[ModelType]ModelLoader {
	return map[ModelType]ModelLoader{
		PythonCausalLM: func(modelPath string) (CausalLM, error) {
			cfgJSON, err := json.Marshal(map[string]string{"model_path": modelPath, "tokenizer_path": modelPath})
			if err != nil {
				return nil, fmt.Errorf("error encoding plugin config: %w", err)
			}
			return python.LoadPythonModel(
				pythonExec,
				pluginScript,
				"python_causal_lm_model",
				string(cfgJSON),
			)
		},
		OnnxCausalLM: func(modelDir string) (CausalLM, error) {
			return LoadOnnxModel(modelDir)
		},
	}
}
