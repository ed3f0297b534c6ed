package testkit

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"evident/domain/core"
	"evident/domain/stats"
	"evident/internal/errors"
	"evident/ports"
)

// InMemoryResultsRepository implements ports.ResultsRepository with in-memory storage
type InMemoryResultsRepository struct {
	power     map[core.ID]stats.PowerTable
	effect    map[core.ID]stats.EffectSizeTable
	repeated  map[core.ID]stats.RepeatedMeasuresTable
	summaries []ports.ResultSummary
	mu        sync.RWMutex
}

func NewInMemoryResultsRepository() *InMemoryResultsRepository {
	return &InMemoryResultsRepository{
		power:    make(map[core.ID]stats.PowerTable),
		effect:   make(map[core.ID]stats.EffectSizeTable),
		repeated: make(map[core.ID]stats.RepeatedMeasuresTable),
	}
}

func (s *InMemoryResultsRepository) SavePowerTable(ctx context.Context, kind ports.ResultKind, table *stats.PowerTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.power[table.ID] = *table
	s.record(table.ID, kind, len(table.Rows))
	return nil
}

func (s *InMemoryResultsRepository) SaveEffectSizeTable(ctx context.Context, table *stats.EffectSizeTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.effect[table.ID] = *table
	s.record(table.ID, ports.ResultKindEffectSize, len(table.Rows))
	return nil
}

func (s *InMemoryResultsRepository) SaveRepeatedMeasuresTable(ctx context.Context, table *stats.RepeatedMeasuresTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.repeated[table.ID] = *table
	s.record(table.ID, ports.ResultKindRepeatedMeasures, len(table.Rows))
	return nil
}

func (s *InMemoryResultsRepository) GetPowerTable(ctx context.Context, id core.ID) (*stats.PowerTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, exists := s.power[id]
	if !exists {
		return nil, errors.NotFound(fmt.Sprintf("power table %s", id))
	}
	return &table, nil
}

func (s *InMemoryResultsRepository) ListResults(ctx context.Context, limit int) ([]ports.ResultSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := append([]ports.ResultSummary(nil), s.summaries...)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *InMemoryResultsRepository) record(id core.ID, kind ports.ResultKind, rows int) {
	s.summaries = append(s.summaries, ports.ResultSummary{
		ID:        id,
		Kind:      kind,
		Rows:      rows,
		CreatedAt: time.Now(),
	})
}
