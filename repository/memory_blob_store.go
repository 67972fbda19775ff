package repository

import (
	"context"
	"fmt"
	"sync"
)

// MemoryBlobStore keeps blobs in a map. Used by tests and local runs.
type MemoryBlobStore struct {
	mu   sync.RWMutex
	Data map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{
		Data: make(map[string][]byte),
	}
}

func (m *MemoryBlobStore) Get(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.Data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, name)
	}
	return val, nil
}

func (m *MemoryBlobStore) Set(name string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[name] = value
}
