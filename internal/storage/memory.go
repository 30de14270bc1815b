package storage

import (
	"context"
	"sync"
)

// MemoryAdapter is a map-backed Adapter for tests and ephemeral runs.
type MemoryAdapter struct {
	values map[string]string
	// FailWrites makes every Set return this error, for failure-path tests.
	FailWrites error
	mu         sync.RWMutex
}

// NewMemoryAdapter creates an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *MemoryAdapter) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set writes value under key.
func (m *MemoryAdapter) Set(_ context.Context, key, value string) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Close is a no-op.
func (m *MemoryAdapter) Close() error {
	return nil
}
