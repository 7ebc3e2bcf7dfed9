package shared

import (
	"context"

	"lm-pipeline/plugin/proto"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
)

// Handshake is a common handshake that is shared by plugin and host.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "LM_PIPELINE_PLUGIN",
	MagicCookieValue: "causal_lm",
}

// PluginMap is the map of plugins we can dispense.
var PluginMap = map[string]plugin.Plugin{
	"causal_lm_grpc": &CausalLMGRPCPlugin{},
}

type TrainingArgs struct {
	Epochs             int  `json:"num_train_epochs" env:"EPOCHS" envDefault:"1" yaml:"epochs"`
	BatchSize          int  `json:"per_device_train_batch_size" env:"BATCH_SIZE" envDefault:"1" yaml:"batch_size"`
	SaveSteps          int  `json:"save_steps" env:"SAVE_STEPS" envDefault:"100" yaml:"save_steps"`
	EvalSteps          int  `json:"eval_steps" env:"EVAL_STEPS" envDefault:"50" yaml:"eval_steps"`
	LoggingSteps       int  `json:"logging_steps" env:"LOGGING_STEPS" envDefault:"25" yaml:"logging_steps"`
	OverwriteOutputDir bool `json:"overwrite_output_dir" env:"OVERWRITE_OUTPUT_DIR" envDefault:"true" yaml:"overwrite_output_dir"`
}

// TrainRequest points the plugin at JSONL files with one {"input_ids": [...]} row per line.
type TrainRequest struct {
	TrainFile string       `json:"train_file"`
	EvalFile  string       `json:"eval_file"`
	OutputDir string       `json:"output_dir"`
	Args      TrainingArgs `json:"args"`
}

const (
	EventLog        = "log"
	EventEval       = "eval"
	EventCheckpoint = "checkpoint"
)

type TrainingEvent struct {
	Kind       string             `json:"kind"`
	Step       int                `json:"step"`
	Epoch      float64            `json:"epoch"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
	Checkpoint string             `json:"checkpoint,omitempty"`
}

// CausalLM is the interface that we're exposing as a plugin.
type CausalLM interface {
	Generate(ctx context.Context, inputIds []uint32, maxLength int) ([]uint32, error)

	Train(ctx context.Context, req TrainRequest, send func(TrainingEvent) error) error

	Save(ctx context.Context, dir string) error
}

// CausalLMGRPCPlugin implements plugin.GRPCPlugin for CausalLM.
type CausalLMGRPCPlugin struct {
	plugin.Plugin

	// Impl is only set on the serving side.
	Impl CausalLM
}

func (p *CausalLMGRPCPlugin) GRPCServer(broker *plugin.GRPCBroker, s *grpc.Server) error {
	proto.RegisterCausalLMServer(s, &GRPCServer{Impl: p.Impl})
	return nil
}

func (p *CausalLMGRPCPlugin) GRPCClient(ctx context.Context, broker *plugin.GRPCBroker, c *grpc.ClientConn) (interface{}, error) {
	return &GRPCClient{client: proto.NewCausalLMClient(c)}, nil
}
