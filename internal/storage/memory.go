package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStore keeps objects in memory. It records removals so callers can assert on them.
type MemoryStore struct {
	BaseURL string

	mu      sync.Mutex
	objects map[string][]byte
	removed []string
	FailPut error
	FailRm  error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{BaseURL: "https://files.test/bucket", objects: map[string][]byte{}}
}

func (m *MemoryStore) Put(_ context.Context, key, _ string, r io.Reader, _ int64) (string, error) {
	if m.FailPut != nil {
		return "", m.FailPut
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = buf.Bytes()
	return fmt.Sprintf("%s/%s", m.BaseURL, key), nil
}

func (m *MemoryStore) Remove(_ context.Context, publicURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, publicURL)
	if m.FailRm != nil {
		return m.FailRm
	}
	key, err := KeyFromURL(m.BaseURL, publicURL)
	if err != nil {
		return err
	}
	delete(m.objects, key)
	return nil
}

// Removed lists every URL passed to Remove, including failed attempts.
func (m *MemoryStore) Removed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.removed...)
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
