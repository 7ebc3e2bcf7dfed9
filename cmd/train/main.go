package main

import (
	"context"
	"log"

	"lm-pipeline/cmd"
	"lm-pipeline/internal/config"
	"lm-pipeline/internal/core"
	"lm-pipeline/internal/database"
	"lm-pipeline/internal/pipeline"
	"lm-pipeline/internal/records"
)

func main() {
	cfg := cmd.LoadConfig[config.TrainConfig]()
	cmd.ConfigureOutput(cfg.Quiet)

	ctx := context.Background()

	run, publisher := cmd.StartRun(ctx, cfg.Common, database.StageTrain, cfg)
	defer publisher.Close()

	fail := func(msg string, err error) {
		run.Finish(ctx, err, cfg.OutputBucket, cfg.OutputPrefix)
		publisher.Close()
		log.Fatalf("%s: %v", msg, err)
	}

	store, err := cmd.CreateObjectStore(ctx, cfg.S3)
	if err != nil {
		fail("failed to create object store", err)
	}

	recordStore, err := records.NewDirStore(cfg.PreprocessedDir)
	if err != nil {
		fail("failed to open record store", err)
	}

	loaders := core.NewModelLoaders(cfg.Plugin.PythonExecutable, cfg.Plugin.PluginScript)
	model, err := loaders[core.PythonCausalLM](cfg.BaseModel)
	if err != nil {
		fail("could not load base model", err)
	}
	defer model.Release()

	trainer := &pipeline.Trainer{
		Model:        model,
		Records:      recordStore,
		Store:        store,
		Run:          run,
		Args:         cfg.Training,
		EvalFraction: cfg.EvalFraction,
		SplitSeed:    cfg.SplitSeed,
	}

	_, err = trainer.Train(ctx, cfg.OutputDir, cfg.OutputBucket, cfg.OutputPrefix)
	if err != nil {
		model.Release()
		fail("training failed", err)
	}
	run.Finish(ctx, nil, cfg.OutputBucket, cfg.OutputPrefix)
}
