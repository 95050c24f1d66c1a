package student

import (
	"context"
	"maps"
	"slices"
	"sync"

	"marlin/internal/classroom/models"
	"marlin/pkg/platform/sentinel"
)

// InMemory is a mutex-guarded student store for tests and database-less runs.
type InMemory struct {
	mu         sync.RWMutex
	nextID     int64
	byID       map[int64]*models.Student
	byRegistry map[string]int64
	byTaxID    map[string]int64
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:       make(map[int64]*models.Student),
		byRegistry: make(map[string]int64),
		byTaxID:    make(map[string]int64),
	}
}

// Create assigns an id and inserts the student if its registry and tax id are free.
func (s *InMemory) Create(_ context.Context, st *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byTaxID[st.TaxID]; taken {
		return models.ErrTaxIDTaken
	}
	if _, taken := s.byRegistry[st.Registry]; taken {
		return models.ErrStudentRegistryTaken
	}
	s.nextID++
	st.ID = s.nextID
	s.put(st)
	return nil
}

func (s *InMemory) Update(_ context.Context, st *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[st.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if owner, taken := s.byTaxID[st.TaxID]; taken && owner != st.ID {
		return models.ErrTaxIDTaken
	}
	delete(s.byTaxID, current.TaxID)
	s.put(st)
	return nil
}

func (s *InMemory) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byID, id)
	delete(s.byRegistry, current.Registry)
	delete(s.byTaxID, current.TaxID)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(id, true)
}

func (s *InMemory) FindByRegistry(_ context.Context, registry string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byRegistry[registry]
	return s.lookup(id, ok)
}

func (s *InMemory) FindByTaxID(_ context.Context, taxID string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byTaxID[taxID]
	return s.lookup(id, ok)
}

// ListAll returns every student ordered by id.
func (s *InMemory) ListAll(_ context.Context) ([]*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(s.byID))
	out := make([]*models.Student, 0, len(ids))
	for _, id := range ids {
		cp := *s.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

// Snapshot implements store.Snapshotter.
func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	nextID := s.nextID
	byID := make(map[int64]models.Student, len(s.byID))
	for id, st := range s.byID {
		byID[id] = *st
	}
	s.mu.RUnlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.nextID = nextID
		s.byID = make(map[int64]*models.Student, len(byID))
		s.byRegistry = make(map[string]int64, len(byID))
		s.byTaxID = make(map[string]int64, len(byID))
		for _, st := range byID {
			s.put(&st)
		}
	}
}

func (s *InMemory) put(st *models.Student) {
	cp := *st
	s.byID[cp.ID] = &cp
	s.byRegistry[cp.Registry] = cp.ID
	s.byTaxID[cp.TaxID] = cp.ID
}

func (s *InMemory) lookup(id int64, ok bool) (*models.Student, error) {
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	st, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *st
	return &cp, nil
}
