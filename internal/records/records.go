package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// TokenRecord is the tokenizer output for a single source file.
type TokenRecord struct {
	InputIDs      []uint32 `json:"input_ids"`
	AttentionMask []uint32 `json:"attention_mask,omitempty"`
}

const Extension = ".json"

var ErrNotFound = errors.New("token record not found")

// RecordName returns the name a record for the given source file is stored under.
func RecordName(source string) string {
	return filepath.Base(source) + Extension
}

// Store persists token records between the preprocess and train stages.
type Store interface {
	// List returns the names of all stored records in lexical order.
	List(ctx context.Context) ([]string, error)

	Read(ctx context.Context, name string) (TokenRecord, error)

	// Write stores the record for source and returns the record name.
	Write(ctx context.Context, source string, rec TokenRecord) (string, error)
}

type DirStore struct {
	dir string
}

var _ Store = (*DirStore)(nil)

func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create record directory %s: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) Dir() string {
	return s.dir
}

func (s *DirStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list records in %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (s *DirStore) Read(ctx context.Context, name string) (TokenRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return TokenRecord{}, fmt.Errorf("record %s: %w", name, ErrNotFound)
		}
		return TokenRecord{}, fmt.Errorf("failed to read record %s: %w", name, err)
	}

	var rec TokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return TokenRecord{}, fmt.Errorf("malformed record %s: %w", name, err)
	}
	if rec.InputIDs == nil {
		return TokenRecord{}, fmt.Errorf("malformed record %s: missing input_ids", name)
	}
	return rec, nil
}

func (s *DirStore) Write(ctx context.Context, source string, rec TokenRecord) (string, error) {
	name := RecordName(source)

	if rec.InputIDs == nil {
		rec.InputIDs = make([]uint32, 0)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to encode record %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write record %s: %w", name, err)
	}
	return name, nil
}

// MemoryStore is an in-memory Store used in tests.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]TokenRecord
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]TokenRecord)}
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Read(ctx context.Context, name string) (TokenRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok {
		return TokenRecord{}, fmt.Errorf("record %s: %w", name, ErrNotFound)
	}
	return rec, nil
}

func (s *MemoryStore) Write(ctx context.Context, source string, rec TokenRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := RecordName(source)
	if rec.InputIDs == nil {
		rec.InputIDs = make([]uint32, 0)
	}
	s.records[name] = rec
	return name, nil
}
