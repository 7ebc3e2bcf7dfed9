package main

import (
	"context"
	"log"
	"os"

	"lm-pipeline/cmd"
	"lm-pipeline/internal/config"
	"lm-pipeline/internal/database"
	"lm-pipeline/internal/pipeline"
)

func main() {
	cfg := cmd.LoadConfig[config.EvaluateConfig]()
	cmd.ConfigureOutput(cfg.Quiet)

	ctx := context.Background()

	run, publisher := cmd.StartRun(ctx, cfg.Common, database.StageEvaluate, cfg)
	defer publisher.Close()

	model, tokenizer, release, err := cmd.LoadModel(ctx, cfg.Common, cfg.Generate)
	if err != nil {
		run.Finish(ctx, err, "", "")
		publisher.Close()
		log.Fatalf("failed to load model: %v", err)
	}
	defer release()

	err = pipeline.Evaluate(ctx, model, tokenizer, cfg.Prompt, cfg.Generate.MaxLength, os.Stdout)
	run.Finish(ctx, err, "", "")
	if err != nil {
		release()
		publisher.Close()
		log.Fatalf("evaluation failed: %v", err)
	}
}
