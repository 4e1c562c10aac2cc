package export

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"jobtrack/internal/tracker"
)

// MemoryDestination keeps exports in memory. Safe for concurrent use.
type MemoryDestination struct {
	mu      sync.RWMutex
	exports map[string][]byte
}

func NewMemoryDestination() *MemoryDestination {
	return &MemoryDestination{exports: make(map[string][]byte)}
}

func (m *MemoryDestination) Put(_ context.Context, name string, r io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read export: %w", err)
	}
	if int64(len(data)) != size {
		return "", fmt.Errorf("size mismatch: expected %d bytes, got %d", size, len(data))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.exports[name]; ok {
		return "", fmt.Errorf("export already exists: %s", name)
	}
	m.exports[name] = data
	return "memory://" + name, nil
}

// Get returns the stored export, if any.
func (m *MemoryDestination) Get(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.exports[name]
	return data, ok
}

// Names returns the stored export names in sorted order.
func (m *MemoryDestination) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.exports))
	for name := range m.exports {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (m *MemoryDestination) ValidateSetup() error {
	return nil
}

var _ tracker.ExportDestination = (*MemoryDestination)(nil)
