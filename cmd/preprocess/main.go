package main

import (
	"context"
	"log"

	"lm-pipeline/cmd"
	"lm-pipeline/internal/config"
	"lm-pipeline/internal/database"
	"lm-pipeline/internal/pipeline"
	"lm-pipeline/internal/records"
)

func main() {
	cfg := cmd.LoadConfig[config.PreprocessConfig]()
	cmd.ConfigureOutput(cfg.Quiet)

	ctx := context.Background()

	run, publisher := cmd.StartRun(ctx, cfg.Common, database.StagePreprocess, cfg)
	defer publisher.Close()

	fail := func(msg string, err error) {
		run.Finish(ctx, err, cfg.SourceBucket, cfg.SourcePrefix)
		publisher.Close()
		log.Fatalf("%s: %v", msg, err)
	}

	store, err := cmd.CreateObjectStore(ctx, cfg.S3)
	if err != nil {
		fail("failed to create object store", err)
	}

	tokenizer, err := cmd.LoadTokenizer(cfg.Tokenizer, cfg.Hub)
	if err != nil {
		fail("failed to load tokenizer", err)
	}
	defer tokenizer.Close()

	recordStore, err := records.NewDirStore(cfg.OutputDir)
	if err != nil {
		tokenizer.Close()
		fail("failed to open record store", err)
	}

	preprocessor := &pipeline.Preprocessor{
		Store:     store,
		Tokenizer: tokenizer,
		Records:   recordStore,
		Run:       run,
		MaxLength: cfg.MaxLength,
	}

	_, err = preprocessor.Preprocess(ctx, cfg.SourceBucket, cfg.SourcePrefix, cfg.DataDir)
	if err != nil {
		tokenizer.Close()
		fail("preprocessing failed", err)
	}
	run.Finish(ctx, nil, cfg.SourceBucket, cfg.SourcePrefix)
}
