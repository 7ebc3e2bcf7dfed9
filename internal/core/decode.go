package core

import (
	"context"
	"fmt"
	"slices"
)

func argmax(logits []float32) int {
	best := 0
	for i, v := range logits {
		if v > logits[best] {
			best = i
		}
	}
	return best
}

// greedyDecode extends ids one token at a time with the highest scoring next
// token until an eos id is produced or the sequence is maxLength long. The
// returned slice includes the prompt.
func greedyDecode(
	ctx context.Context,
	ids []uint32,
	maxLength int,
	eos []uint32,
	nextTokenLogits func([]uint32) ([]float32, error),
) ([]uint32, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("cannot generate from an empty prompt")
	}

	seq := slices.Clone(ids)
	for len(seq) < maxLength {
		if err := ctx.Err(); err != nil {
			return seq, err
		}

		logits, err := nextTokenLogits(seq)
		if err != nil {
			return seq, fmt.Errorf("error computing logits at position %d: %w", len(seq), err)
		}
		if len(logits) == 0 {
			return seq, fmt.Errorf("model returned empty logits at position %d", len(seq))
		}

		next := uint32(argmax(logits))
		seq = append(seq, next)

		if slices.Contains(eos, next) {
			break
		}
	}

	return seq, nil
}
