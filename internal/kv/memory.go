// ABOUTME: In-memory Backend with injectable failures.
// ABOUTME: Used by tests and by throwaway sessions that need no disk.
package kv

import (
	"context"
	"sync"
)

// Memory is a map-backed Backend. GetErr and SetErr, when set, are returned
// instead of touching the map.
type Memory struct {
	mu     sync.Mutex
	data   map[string][]byte
	writes int

	GetErr error
	SetErr error
}

var _ Backend = (*Memory)(nil)

// NewMemory creates an empty Memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores a copy of value.
func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SetErr != nil {
		return m.SetErr
	}
	m.data[key] = append([]byte(nil), value...)
	m.writes++
	return nil
}

// Writes returns how many successful Set calls have happened.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// FailWrites makes every following Set return err (nil restores writes).
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetErr = err
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
