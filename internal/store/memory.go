package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ProposalEngine/internal/model"
)

// MemoryStore keeps series in process memory. It is used when no database is
// configured.
type MemoryStore struct {
	mu     sync.RWMutex
	series map[string]model.ReturnSeries
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{series: make(map[string]model.ReturnSeries)}
}

func (m *MemoryStore) SaveSeries(_ context.Context, name string, series model.ReturnSeries) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.series[name] = series.Clone()
	return nil
}

func (m *MemoryStore) LoadSeries(_ context.Context, name string) (model.ReturnSeries, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.series[name]
	if !ok {
		return nil, fmt.Errorf("load %q: %w", name, ErrSeriesNotFound)
	}
	return s.Clone(), nil
}

func (m *MemoryStore) ListSeries(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.series))
	for name := range m.series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Close() error { return nil }
