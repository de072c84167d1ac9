package storage

import (
	"strconv"
	"sync"
)

// Memory is an in-process KV used when no database is available.
// Values live for the lifetime of the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// SetIfGreater stores value under key unless the current value is a score
// of at least value. The check and the write share one lock.
func (m *Memory) SetIfGreater(key string, value int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur, ok := m.values[key]; ok && ParseScore(cur) >= value {
		return false, nil
	}
	m.values[key] = strconv.Itoa(value)
	return true, nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

var _ KV = (*Memory)(nil)
