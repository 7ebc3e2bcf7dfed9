package python

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"lm-pipeline/plugin/shared"

	"github.com/hashicorp/go-plugin"
)

// PythonModel is a causal LM served by a Python plugin process. It is not
// thread-safe; the pipeline stages drive it from a single goroutine.
type PythonModel struct {
	client *plugin.Client
	model  shared.CausalLM
}

func LoadPythonModel(PythonExecutable, PluginScript, PluginModelName, KwargsJSON string) (*PythonModel, error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: shared.Handshake,
		Plugins:         shared.PluginMap,
		Cmd: exec.Command(
			PythonExecutable,
			PluginScript,
			"--model-name", PluginModelName,
			"--model-config", KwargsJSON,
		),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("error establishing RPC connection: %w", err)
	}

	raw, err := rpcClient.Dispense("causal_lm_grpc")
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("error dispensing '%s': %w", "causal_lm_grpc", err)
	}

	model, ok := raw.(shared.CausalLM)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("dispensed interface '%s' is not of expected type shared.CausalLM (actual type: %T)", "causal_lm_grpc", raw)
	}

	slog.Info("python model plugin started", "plugin", PluginModelName)

	return NewPythonModel(client, model), nil
}

// NewPythonModel wraps an already dispensed plugin. client may be nil when the
// connection is managed elsewhere.
func NewPythonModel(client *plugin.Client, model shared.CausalLM) *PythonModel {
	return &PythonModel{client: client, model: model}
}

func (m *PythonModel) Generate(ctx context.Context, inputIds []uint32, maxLength int) ([]uint32, error) {
	if m.model == nil {
		return nil, fmt.Errorf("python model has been released")
	}
	out, err := m.model.Generate(ctx, inputIds, maxLength)
	if err != nil {
		return nil, fmt.Errorf("plugin generate failed: %w", err)
	}
	return out, nil
}

func (m *PythonModel) Train(ctx context.Context, req shared.TrainRequest, onEvent func(shared.TrainingEvent)) error {
	if m.model == nil {
		return fmt.Errorf("python model has been released")
	}
	err := m.model.Train(ctx, req, func(event shared.TrainingEvent) error {
		onEvent(event)
		return nil
	})
	if err != nil {
		return fmt.Errorf("plugin training failed: %w", err)
	}
	return nil
}

func (m *PythonModel) Save(dir string) error {
	if m.model == nil {
		return fmt.Errorf("python model has been released")
	}
	if err := m.model.Save(context.Background(), dir); err != nil {
		return fmt.Errorf("plugin save failed: %w", err)
	}
	return nil
}

func (m *PythonModel) Release() {
	if m.client != nil {
		m.client.Kill()
	}
	m.client = nil
	m.model = nil
}
