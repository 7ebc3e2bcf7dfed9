package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lm-pipeline/internal/core"
	"lm-pipeline/internal/database"
	"lm-pipeline/internal/messaging"
	"lm-pipeline/internal/pipeline"
	"lm-pipeline/internal/records"
	"lm-pipeline/internal/storage"
	"lm-pipeline/internal/tokenize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pythonExec   = os.Getenv("PYTHON_EXECUTABLE_PATH")
	pluginScript = os.Getenv("PYTHON_MODEL_PLUGIN_SCRIPT_PATH")
	hostModelDir = os.Getenv("HOST_MODEL_DIR")
)

func requirePythonPlugin(t *testing.T) {
	t.Helper()
	if pythonExec == "" || pluginScript == "" || hostModelDir == "" {
		t.Skip("PYTHON_EXECUTABLE_PATH, PYTHON_MODEL_PLUGIN_SCRIPT_PATH and HOST_MODEL_DIR must be set")
	}
}

func TestPythonPluginTrainAndEvaluate(t *testing.T) {
	requirePythonPlugin(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Minute)
	defer cancel()

	tk, err := tokenize.LoadTokenizer(hostModelDir, tokenize.LoadOptions{})
	require.NoError(t, err)
	defer tk.Close()

	recordStore := records.NewMemoryStore()
	texts := []string{
		"The quick brown fox jumps over the lazy dog.",
		"A journey of a thousand miles begins with a single step.",
		"All that glitters is not gold.",
		"Actions speak louder than words.",
		"Knowledge is power.",
		"Fortune favors the bold.",
		"Time heals all wounds.",
		"Practice makes perfect.",
		"",
		"Where there is a will there is a way.",
	}
	for i, text := range texts {
		rec, _ := tokenize.Tokenize(tk, text, 64)
		_, err := recordStore.Write(ctx, filepath.Join("docs", string(rune('a'+i))+".txt"), rec)
		require.NoError(t, err)
	}

	loaders := core.NewModelLoaders(pythonExec, pluginScript)
	model, err := loaders[core.PythonCausalLM](hostModelDir)
	require.NoError(t, err)
	defer model.Release()

	db, err := database.NewDatabase("sqlite://" + filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)

	queue := messaging.NewInMemoryQueue()
	defer queue.Close()

	run, err := pipeline.StartRun(ctx, db, queue, database.StageTrain, core.DefaultTrainingArgs())
	require.NoError(t, err)

	store := storage.NewMemoryProvider()
	outputDir := filepath.Join(t.TempDir(), "model_artifacts")

	trainer := &pipeline.Trainer{
		Model:   model,
		Records: recordStore,
		Store:   store,
		Run:     run,
		Args: core.TrainingArgs{
			Epochs:             1,
			BatchSize:          1,
			SaveSteps:          4,
			EvalSteps:          2,
			LoggingSteps:       1,
			OverwriteOutputDir: true,
		},
		EvalFraction: 0.2,
		SplitSeed:    42,
	}

	keys, err := trainer.Train(ctx, outputDir, outputBucket, "model_artifacts/")
	run.Finish(ctx, err, outputBucket, "model_artifacts/")
	require.NoError(t, err)

	assert.Contains(t, keys, "model_artifacts/config.json")
	assert.Contains(t, keys, "model_artifacts/tokenizer_config.json")

	ledger, err := database.GetRun(ctx, db, run.Id)
	require.NoError(t, err)
	assert.Equal(t, database.JobCompleted, ledger.Status)
	assert.NotEmpty(t, ledger.TrainingEvents)
	assert.Len(t, ledger.Artifacts, len(keys))

	kinds := map[string]bool{}
	for _, event := range ledger.TrainingEvents {
		kinds[event.Kind] = true
	}
	assert.True(t, kinds[core.EventLog], "expected loss log events")
	assert.True(t, kinds[core.EventCheckpoint], "expected checkpoint events")

	model.Release()

	trained, err := loaders[core.PythonCausalLM](outputDir)
	require.NoError(t, err)
	defer trained.Release()

	var out bytes.Buffer
	require.NoError(t, pipeline.Evaluate(ctx, trained, tk, "Once upon a time", 20, &out))

	output := bytes.TrimPrefix(out.Bytes(), []byte("Evaluation Output:\n"))
	var generated []struct {
		GeneratedText string `json:"generated_text"`
	}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(output), &generated))
	require.Len(t, generated, 1)
	assert.Contains(t, generated[0].GeneratedText, "Once upon a time")
}
