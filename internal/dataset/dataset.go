package dataset

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"

	"lm-pipeline/internal/records"
)

var ErrEmptySplit = errors.New("split would leave a partition empty")

// Dataset is the tabular collection of input_ids gathered from token records.
type Dataset struct {
	Rows [][]uint32
}

func (d Dataset) Len() int {
	return len(d.Rows)
}

// Assemble reads every record in store, in the order the store lists them.
func Assemble(ctx context.Context, store records.Store) (Dataset, error) {
	names, err := store.List(ctx)
	if err != nil {
		return Dataset{}, fmt.Errorf("error listing token records: %w", err)
	}

	rows := make([][]uint32, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		rec, err := store.Read(ctx, name)
		if err != nil {
			return Dataset{}, fmt.Errorf("error loading token record: %w", err)
		}
		rows = append(rows, rec.InputIDs)
	}

	return Dataset{Rows: rows}, nil
}

// EvalSize is the number of rows assigned to evaluation for a dataset of n
// rows, rounding up.
func EvalSize(n int, testSize float64) int {
	return int(math.Ceil(testSize * float64(n)))
}

// Split shuffles the rows with a PRNG seeded by seed and splits off
// ceil(testSize*n) rows for evaluation. The same seed always yields the same
// partitions.
func (d Dataset) Split(testSize float64, seed uint64) (train Dataset, eval Dataset, err error) {
	if testSize <= 0 || testSize >= 1 {
		return Dataset{}, Dataset{}, fmt.Errorf("test size must be in (0, 1), got %v", testSize)
	}

	n := len(d.Rows)
	nEval := EvalSize(n, testSize)
	if nEval == 0 || n-nEval == 0 {
		return Dataset{}, Dataset{}, fmt.Errorf("%w: %d rows with test size %v", ErrEmptySplit, n, testSize)
	}

	perm := rand.New(rand.NewPCG(seed, seed)).Perm(n)

	eval.Rows = make([][]uint32, 0, nEval)
	train.Rows = make([][]uint32, 0, n-nEval)
	for i, idx := range perm {
		if i < nEval {
			eval.Rows = append(eval.Rows, d.Rows[idx])
		} else {
			train.Rows = append(train.Rows, d.Rows[idx])
		}
	}

	return train, eval, nil
}

type jsonlRow struct {
	InputIDs []uint32 `json:"input_ids"`
}

// WriteJSONL writes one {"input_ids": [...]} object per line.
func (d Dataset) WriteJSONL(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file %s: %w", path, err)
	}

	w := bufio.NewWriter(file)
	enc := json.NewEncoder(w)
	for i, row := range d.Rows {
		if row == nil {
			row = []uint32{}
		}
		if err := enc.Encode(jsonlRow{InputIDs: row}); err != nil {
			file.Close()
			return fmt.Errorf("failed to encode row %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write dataset file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close dataset file %s: %w", path, err)
	}
	return nil
}

// ReadJSONL loads a dataset written by WriteJSONL.
func ReadJSONL(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to open dataset file %s: %w", path, err)
	}
	defer file.Close()

	var d Dataset
	dec := json.NewDecoder(bufio.NewReader(file))
	for dec.More() {
		var row jsonlRow
		if err := dec.Decode(&row); err != nil {
			return Dataset{}, fmt.Errorf("failed to decode row %d of %s: %w", len(d.Rows), path, err)
		}
		d.Rows = append(d.Rows, row.InputIDs)
	}
	return d, nil
}
