package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// MemoryProvider keeps objects in a map. Intended for tests and dry runs.
type MemoryProvider struct {
	mu      sync.Mutex
	buckets map[string]map[string][]byte
}

var _ ObjectStore = &MemoryProvider{}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{buckets: make(map[string]map[string][]byte)}
}

func (p *MemoryProvider) CreateBucket(ctx context.Context, bucket string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.buckets[bucket]; !ok {
		p.buckets[bucket] = make(map[string][]byte)
	}
	return nil
}

func (p *MemoryProvider) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, ok := p.buckets[bucket][key]
	if !ok {
		return nil, fmt.Errorf("object %s/%s: %w", bucket, key, os.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

func (p *MemoryProvider) DownloadObject(ctx context.Context, bucket, key, filename string) error {
	data, err := p.GetObject(ctx, bucket, key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filename), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for download %s: %w", filepath.Dir(filename), err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

func (p *MemoryProvider) PutObject(ctx context.Context, bucket, key string, data io.Reader) error {
	content, err := io.ReadAll(data)
	if err != nil {
		return fmt.Errorf("failed to read data for %s/%s: %w", bucket, key, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.buckets[bucket]; !ok {
		p.buckets[bucket] = make(map[string][]byte)
	}
	p.buckets[bucket][key] = content
	return nil
}

func (p *MemoryProvider) ListObjects(ctx context.Context, bucket, prefix string) ([]Object, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var objects []Object
	for key, data := range p.buckets[bucket] {
		if strings.HasPrefix(key, prefix) {
			objects = append(objects, Object{Name: key, Size: int64(len(data))})
		}
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Name < objects[j].Name })

	return objects, nil
}
