package storage

import (
	"bytes"
	"context"
	"sync"
)

// Memory is a Medium that keeps all data in memory. It is used in tests.
type Memory struct {
	mu   sync.RWMutex
	data map[Key][]byte
}

// NewMemory returns an empty in-memory medium.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[Key][]byte),
	}
}

func (m *Memory) Load(_ context.Context, key Key) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}

	return bytes.Clone(value), true, nil
}

func (m *Memory) Save(_ context.Context, entries ...Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range entries {
		m.data[e.Key] = bytes.Clone(e.Value)
	}

	return nil
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}

func (m *Memory) Close() error {
	return nil
}
