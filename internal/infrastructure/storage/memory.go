package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]RunRecord
	snapshots   map[string]map[int][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string]RunRecord)
	s.snapshots = make(map[string]map[int][]byte)
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, id string) (RunRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	return run, ok, nil
}

func (s *MemoryStore) SaveSnapshot(_ context.Context, runID string, tick int, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	byTick, ok := s.snapshots[runID]
	if !ok {
		byTick = make(map[int][]byte)
		s.snapshots[runID] = byTick
	}
	byTick[tick] = append([]byte(nil), payload...)
	return nil
}

func (s *MemoryStore) GetSnapshot(_ context.Context, runID string, tick int) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.snapshots[runID][tick]
	return payload, ok, nil
}

func (s *MemoryStore) LatestSnapshot(_ context.Context, runID string) (int, []byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byTick := s.snapshots[runID]
	if len(byTick) == 0 {
		return 0, nil, false, nil
	}
	latest := -1
	for tick := range byTick {
		if tick > latest {
			latest = tick
		}
	}
	return latest, byTick[latest], true, nil
}

func (s *MemoryStore) Ticks(_ context.Context, runID string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticks := make([]int, 0, len(s.snapshots[runID]))
	for tick := range s.snapshots[runID] {
		ticks = append(ticks, tick)
	}
	sort.Ints(ticks)
	return ticks, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
