package repository

import (
	"context"
	"sync"

	"placefinder-api/internal/models"
)

// MemoryMapStore keeps the most recent maps in memory, evicting the oldest
// once capacity is reached.
type MemoryMapStore struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	maps     map[string]models.RenderedMap
}

// NewMemoryMapStore creates a store holding at most capacity maps.
func NewMemoryMapStore(capacity int) *MemoryMapStore {
	if capacity < 1 {
		capacity = 1
	}
	return &MemoryMapStore{
		capacity: capacity,
		maps:     make(map[string]models.RenderedMap, capacity),
	}
}

func (s *MemoryMapStore) Save(_ context.Context, m models.RenderedMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.maps[m.ID]; exists {
		s.remove(m.ID)
	}
	for len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.maps, oldest)
	}

	m.Document = append([]byte(nil), m.Document...)
	s.maps[m.ID] = m
	s.order = append(s.order, m.ID)
	return nil
}

func (s *MemoryMapStore) Get(_ context.Context, id string) (*models.RenderedMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.maps[id]
	if !ok {
		return nil, ErrMapNotFound
	}
	return &m, nil
}

func (s *MemoryMapStore) Latest(_ context.Context) (*models.RenderedMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return nil, ErrMapNotFound
	}
	m := s.maps[s.order[len(s.order)-1]]
	return &m, nil
}

func (s *MemoryMapStore) remove(id string) {
	delete(s.maps, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
