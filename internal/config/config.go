package config

import (
	"fmt"
	"log/slog"
	"os"

	"lm-pipeline/internal/core"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

type S3Config struct {
	Endpoint        string `env:"S3_ENDPOINT_URL" yaml:"endpoint"`
	Region          string `env:"AWS_REGION" envDefault:"us-east-1" yaml:"region"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" yaml:"access_key_id" json:"-"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" yaml:"secret_access_key" json:"-"`
	// Root directory for a local object store, takes precedence over S3 when set.
	LocalRoot string `env:"LOCAL_STORAGE_ROOT" yaml:"local_root"`
}

type PluginConfig struct {
	PythonExecutable string `env:"PYTHON_EXECUTABLE_PATH" envDefault:"python3" yaml:"python_executable"`
	PluginScript     string `env:"PYTHON_MODEL_PLUGIN_SCRIPT_PATH" envDefault:"plugin/plugin-python/plugin.py" yaml:"plugin_script"`
}

type HubConfig struct {
	Endpoint string `env:"HF_ENDPOINT" envDefault:"https://huggingface.co" yaml:"endpoint"`
	Revision string `env:"HF_REVISION" envDefault:"main" yaml:"revision"`
	Token    string `env:"HF_TOKEN" yaml:"token" json:"-"`
	CacheDir string `env:"HF_CACHE_DIR" yaml:"cache_dir"`
}

// Common holds settings shared by every pipeline stage.
type Common struct {
	DatabaseURL string       `env:"DATABASE_URL" envDefault:"sqlite://pipeline.db" yaml:"database_url" json:"-"`
	RabbitMQURL string       `env:"RABBITMQ_URL" yaml:"rabbitmq_url" json:"-"`
	S3          S3Config     `yaml:"s3"`
	Plugin      PluginConfig `yaml:"plugin"`
	Hub         HubConfig    `yaml:"hub"`
	// Required only when an onnx_causal_lm model is loaded.
	OnnxRuntimeDylib string `env:"ONNX_RUNTIME_DYLIB" yaml:"onnx_runtime_dylib"`
	Quiet            bool   `env:"QUIET" yaml:"quiet"`
}

type PreprocessConfig struct {
	Common `yaml:",inline"`

	SourceBucket string `env:"SOURCE_BUCKET" envDefault:"my-cosmo-train-bucket" yaml:"source_bucket"`
	SourcePrefix string `env:"SOURCE_PREFIX" envDefault:"data/" yaml:"source_prefix"`
	DataDir      string `env:"DATA_DIR" envDefault:"data" yaml:"data_dir"`
	OutputDir    string `env:"PREPROCESSED_DIR" envDefault:"preprocessed" yaml:"output_dir"`
	Tokenizer    string `env:"TOKENIZER" envDefault:"mosaicml/mpt-30b" yaml:"tokenizer"`
	MaxLength    int    `env:"MAX_LENGTH" envDefault:"512" yaml:"max_length"`
}

type TrainConfig struct {
	Common `yaml:",inline"`

	BaseModel       string            `env:"BASE_MODEL" envDefault:"mosaicml/mpt-30b" yaml:"base_model"`
	PreprocessedDir string            `env:"PREPROCESSED_DIR" envDefault:"preprocessed" yaml:"preprocessed_dir"`
	OutputDir       string            `env:"OUTPUT_DIR" envDefault:"model_artifacts" yaml:"output_dir"`
	OutputBucket    string            `env:"OUTPUT_BUCKET" envDefault:"my-cosmo-output-bucket" yaml:"output_bucket"`
	OutputPrefix    string            `env:"OUTPUT_PREFIX" envDefault:"model_artifacts/" yaml:"output_prefix"`
	EvalFraction    float64           `env:"EVAL_FRACTION" envDefault:"0.1" yaml:"eval_fraction"`
	SplitSeed       uint64            `env:"SPLIT_SEED" envDefault:"42" yaml:"split_seed"`
	Training        core.TrainingArgs `envPrefix:"TRAIN_" yaml:"training"`
}

// GenerateConfig describes how evaluation and deployment load a trained model.
type GenerateConfig struct {
	ModelDir  string `env:"MODEL_DIR" envDefault:"model_artifacts" yaml:"model_dir"`
	ModelType string `env:"MODEL_TYPE" envDefault:"python_causal_lm" yaml:"model_type"`
	MaxLength int    `env:"GENERATE_MAX_LENGTH" envDefault:"128" yaml:"max_length"`
}

type EvaluateConfig struct {
	Common   `yaml:",inline"`
	Generate GenerateConfig `yaml:"generate"`

	Prompt string `env:"PROMPT" envDefault:"Explain the principles of thermodynamics and their applications in material science." yaml:"prompt"`
}

type DeployConfig struct {
	Common   `yaml:",inline"`
	Generate GenerateConfig `yaml:"generate"`

	Prompt string `env:"PROMPT" envDefault:"List key factors affecting material fatigue in aerospace engineering." yaml:"prompt"`
}

// Load fills cfg from the environment (falling back to envDefault literals) and
// then applies the YAML file at path on top, if path is non-empty.
func Load[T any](path string) (*T, error) {
	cfg := new(T)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config from environment: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	slog.Info("applied config file", "path", path)

	return cfg, nil
}
