package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"lm-pipeline/internal/config"
	"lm-pipeline/internal/core"
	"lm-pipeline/internal/database"
	"lm-pipeline/internal/hub"
	"lm-pipeline/internal/messaging"
	"lm-pipeline/internal/pipeline"
	"lm-pipeline/internal/storage"
	"lm-pipeline/internal/tokenize"

	"github.com/joho/godotenv"
	ort "github.com/yalue/onnxruntime_go"
	"gorm.io/gorm"
)

func LoadEnvFile(envPath string) {
	if envPath == "" {
		log.Printf("no env file specified, using os.Environ only")
		return
	}

	log.Printf("loading env from file %s", envPath)
	err := godotenv.Load(envPath)
	if err != nil {
		log.Fatalf("error loading .env file '%s': %v", envPath, err)
	}
}

// LoadConfig parses the -env and -config flags and builds the stage config
// from the environment and the optional YAML file.
func LoadConfig[T any]() *T {
	var envPath, configPath string

	flag.StringVar(&envPath, "env", "", "path to load env from")
	flag.StringVar(&configPath, "config", "", "path to a yaml config file applied over the environment")
	flag.Parse()

	LoadEnvFile(envPath)

	cfg, err := config.Load[T](configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	return cfg
}

func ConfigureOutput(quiet bool) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if quiet {
		pipeline.SetProgressOutput(io.Discard)
	}
}

// CreateObjectStore returns a LocalProvider when cfg.LocalRoot is set and an
// S3Provider otherwise.
func CreateObjectStore(ctx context.Context, cfg config.S3Config) (storage.ObjectStore, error) {
	if cfg.LocalRoot != "" {
		store, err := storage.NewLocalProvider(cfg.LocalRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to create local storage: %w", err)
		}
		slog.Info("using local object store", "root", cfg.LocalRoot)
		return store, nil
	}

	store, err := storage.NewS3Provider(ctx, storage.S3ClientConfig{
		Endpoint:        cfg.Endpoint,
		Region:          cfg.Region,
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	return store, nil
}

// CreateDatabase opens the run ledger. An empty url disables it.
func CreateDatabase(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		slog.Warn("DATABASE_URL is empty, runs will not be recorded")
		return nil, nil
	}

	db, err := database.NewDatabase(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open run ledger: %w", err)
	}
	return db, nil
}

func CreatePublisher(rabbitMQURL string) (messaging.Publisher, error) {
	if rabbitMQURL == "" {
		return messaging.LogPublisher{}, nil
	}

	publisher, err := messaging.NewRabbitMQPublisher(rabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create rabbitmq publisher: %w", err)
	}
	return publisher, nil
}

func LoadTokenizer(location string, hubCfg config.HubConfig) (tokenize.Tokenizer, error) {
	tk, err := tokenize.LoadTokenizer(location, tokenize.LoadOptions{
		CacheDir:  hubCfg.CacheDir,
		AuthToken: hubCfg.Token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer: %w", err)
	}
	return tk, nil
}

// StartRun opens the ledger and the event publisher and records the start of
// stage. Failures here happen before any run exists, so they are fatal.
func StartRun(ctx context.Context, common config.Common, stage string, cfg any) (*pipeline.Run, messaging.Publisher) {
	db, err := CreateDatabase(common.DatabaseURL)
	if err != nil {
		log.Fatalf("%v", err)
	}

	publisher, err := CreatePublisher(common.RabbitMQURL)
	if err != nil {
		log.Fatalf("%v", err)
	}

	run, err := pipeline.StartRun(ctx, db, publisher, stage, cfg)
	if err != nil {
		publisher.Close()
		log.Fatalf("failed to start run: %v", err)
	}
	return run, publisher
}

func initOnnxRuntime(dylib string) (func(), error) {
	if dylib == "" {
		return nil, fmt.Errorf("ONNX_RUNTIME_DYLIB must be set to load %s models", core.OnnxCausalLM)
	}
	ort.SetSharedLibraryPath(dylib)
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("could not init ONNX Runtime: %w", err)
	}
	return func() {
		if err := ort.DestroyEnvironment(); err != nil {
			slog.Error("error destroying onnx env", "error", err)
		}
	}, nil
}

// resolveOnnxModelDir returns modelDir if it exists locally, otherwise it
// treats modelDir as a hub repo id and downloads the exported model files.
func resolveOnnxModelDir(ctx context.Context, modelDir string, hubCfg config.HubConfig) (string, error) {
	if info, err := os.Stat(modelDir); err == nil && info.IsDir() {
		return modelDir, nil
	}

	cacheDir := hubCfg.CacheDir
	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "lm-pipeline-hub")
	}
	dest := filepath.Join(cacheDir, strings.ReplaceAll(modelDir, "/", "--"))

	slog.Info("fetching model from hub", "repo", modelDir, "revision", hubCfg.Revision, "dest", dest)

	client := hub.NewClient(hubCfg.Endpoint, hubCfg.Token)
	if err := client.Download(ctx, modelDir, hubCfg.Revision, hub.OnnxModelFiles, dest); err != nil {
		return "", fmt.Errorf("failed to fetch model %s: %w", modelDir, err)
	}
	return dest, nil
}

// LoadModel loads the trained model described by gen along with its tokenizer.
// The returned release func frees both and is safe to call more than once.
func LoadModel(ctx context.Context, common config.Common, gen config.GenerateConfig) (core.CausalLM, tokenize.Tokenizer, func(), error) {
	modelType, err := core.ParseModelType(gen.ModelType)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid model config: %w", err)
	}

	modelDir := gen.ModelDir
	destroyOrt := func() {}
	if modelType == core.OnnxCausalLM {
		if destroyOrt, err = initOnnxRuntime(common.OnnxRuntimeDylib); err != nil {
			return nil, nil, nil, err
		}
		if modelDir, err = resolveOnnxModelDir(ctx, modelDir, common.Hub); err != nil {
			destroyOrt()
			return nil, nil, nil, err
		}
	}

	tk, err := tokenize.LoadTokenizer(modelDir, tokenize.LoadOptions{
		CacheDir:  common.Hub.CacheDir,
		AuthToken: common.Hub.Token,
	})
	if err != nil {
		destroyOrt()
		return nil, nil, nil, err
	}

	loaders := core.NewModelLoaders(common.Plugin.PythonExecutable, common.Plugin.PluginScript)

	model, err := loaders[modelType](modelDir)
	if err != nil {
		tk.Close()
		destroyOrt()
		return nil, nil, nil, fmt.Errorf("could not load model from %s: %w", modelDir, err)
	}

	slog.Info("loaded model", "model_type", modelType, "model_dir", modelDir)

	var once sync.Once
	return model, tk, func() {
		once.Do(func() {
			if err := tk.Close(); err != nil {
				slog.Error("error closing tokenizer", "error", err)
			}
			model.Release()
			destroyOrt()
		})
	}, nil
}
