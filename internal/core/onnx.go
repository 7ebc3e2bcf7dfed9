package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	ort "github.com/yalue/onnxruntime_go"
)

type modelConfig struct {
	VocabSize  int             `json:"vocab_size"`
	EosTokenId json.RawMessage `json:"eos_token_id"`
}

func loadModelConfig(path string) (vocabSize int, eos []uint32, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, nil, err
	}
	var cfg modelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return 0, nil, err
	}
	if cfg.VocabSize <= 0 {
		return 0, nil, fmt.Errorf("config %s has no vocab_size", path)
	}

	if len(cfg.EosTokenId) > 0 && string(cfg.EosTokenId) != "null" {
		var single uint32
		if err := json.Unmarshal(cfg.EosTokenId, &single); err == nil {
			eos = []uint32{single}
		} else if err := json.Unmarshal(cfg.EosTokenId, &eos); err != nil {
			return 0, nil, fmt.Errorf("invalid eos_token_id in %s: %w", path, err)
		}
	}

	return cfg.VocabSize, eos, nil
}

// OnnxModel runs greedy decoding over a causal LM exported without a KV cache:
// inputs input_ids and attention_mask of shape [1, L], output logits [1, L, V].
type OnnxModel struct {
	session   *ort.DynamicAdvancedSession
	vocabSize int
	eos       []uint32
}

func LoadOnnxModel(modelDir string) (CausalLM, error) {
	if !ort.IsInitialized() {
		return nil, fmt.Errorf("onnx runtime environment is not initialized")
	}

	vocabSize, eos, err := loadModelConfig(filepath.Join(modelDir, "config.json"))
	if err != nil {
		return nil, fmt.Errorf("model config load error: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(
		filepath.Join(modelDir, "model.onnx"),
		[]string{"input_ids", "attention_mask"},
		[]string{"logits"},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create onnx session: %w", err)
	}

	return &OnnxModel{session: session, vocabSize: vocabSize, eos: eos}, nil
}

// nextTokenLogits returns the logits of the last position for the sequence ids.
func (m *OnnxModel) nextTokenLogits(ids []uint32) ([]float32, error) {
	L := int64(len(ids))
	V := int64(m.vocabSize)

	inputIds := make([]int64, L)
	mask := make([]int64, L)
	for i, v := range ids {
		inputIds[i] = int64(v)
		mask[i] = 1
	}

	idsT, err := ort.NewTensor(ort.NewShape(1, L), inputIds)
	if err != nil {
		return nil, err
	}
	defer idsT.Destroy()

	maskT, err := ort.NewTensor(ort.NewShape(1, L), mask)
	if err != nil {
		return nil, err
	}
	defer maskT.Destroy()

	outT, err := ort.NewEmptyTensor[float32](ort.NewShape(1, L, V))
	if err != nil {
		return nil, err
	}
	defer outT.Destroy()

	if err := m.session.Run([]ort.Value{idsT, maskT}, []ort.Value{outT}); err != nil {
		return nil, fmt.Errorf("session run error: %w", err)
	}

	flat := outT.GetData()
	last := make([]float32, V)
	copy(last, flat[(L-1)*V:L*V])
	return last, nil
}

func (m *OnnxModel) Generate(ctx context.Context, inputIds []uint32, maxLength int) ([]uint32, error) {
	return greedyDecode(ctx, inputIds, maxLength, m.eos, m.nextTokenLogits)
}

func (m *OnnxModel) Train(_ context.Context, _ TrainRequest, _ func(TrainingEvent)) error {
	return fmt.Errorf("train not supported for ONNX: %w", ErrUnsupported)
}

func (m *OnnxModel) Save(path string) error {
	return fmt.Errorf("save not supported for ONNX: %w", ErrUnsupported)
}

func (m *OnnxModel) Release() {
	if m.session != nil {
		m.session.Destroy()
		m.session = nil
	}
}
