package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"lm-pipeline/internal/core"
	"lm-pipeline/internal/tokenize"
)

// Generate runs prompt through model and decodes the whole sequence, prompt
// included, without special tokens. maxLength bounds the total sequence length.
func Generate(ctx context.Context, model core.CausalLM, tk tokenize.Tokenizer, prompt string, maxLength int) (string, error) {
	enc := tk.Encode(prompt)
	if len(enc.IDs) == 0 {
		return "", fmt.Errorf("prompt encodes to no tokens")
	}

	ids, err := model.Generate(ctx, enc.IDs, maxLength)
	if err != nil {
		return "", fmt.Errorf("error generating text: %w", err)
	}

	return tk.Decode(ids, true), nil
}

type generatedText struct {
	GeneratedText string `json:"generated_text"`
}

// Evaluate prints the generation for prompt in the text-generation output
// format, a list with one generated_text object.
func Evaluate(ctx context.Context, model core.CausalLM, tk tokenize.Tokenizer, prompt string, maxLength int, w io.Writer) error {
	text, err := Generate(ctx, model, tk, prompt, maxLength)
	if err != nil {
		return err
	}

	output, err := json.Marshal([]generatedText{{GeneratedText: text}})
	if err != nil {
		return fmt.Errorf("error encoding evaluation output: %w", err)
	}

	if _, err := fmt.Fprintf(w, "Evaluation Output:\n%s\n", output); err != nil {
		return fmt.Errorf("error writing evaluation output: %w", err)
	}
	return nil
}

func SmokeTest(ctx context.Context, model core.CausalLM, tk tokenize.Tokenizer, prompt string, maxLength int, w io.Writer) error {
	text, err := Generate(ctx, model, tk, prompt, maxLength)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Deployed Model Response:\n%s\n", text); err != nil {
		return fmt.Errorf("error writing model response: %w", err)
	}
	return nil
}
