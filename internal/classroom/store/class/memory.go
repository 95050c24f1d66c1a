package class

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"marlin/internal/classroom/models"
	"marlin/pkg/platform/sentinel"
)

// StudentDirectory resolves member ids to their current registry and name.
type StudentDirectory interface {
	FindByID(ctx context.Context, id int64) (*models.Student, error)
}

type tripleKey struct {
	year   string
	number int
	level  models.Level
}

// InMemory is a mutex-guarded class store for tests and database-less runs.
// Membership is kept as student ids and resolved through the directory on read.
type InMemory struct {
	mu         sync.RWMutex
	students   StudentDirectory
	nextID     int64
	byID       map[int64]*models.Class
	byRegistry map[string]int64
	byTriple   map[tripleKey]int64
	members    map[int64][]int64
}

func NewInMemory(students StudentDirectory) *InMemory {
	return &InMemory{
		students:   students,
		byID:       make(map[int64]*models.Class),
		byRegistry: make(map[string]int64),
		byTriple:   make(map[tripleKey]int64),
		members:    make(map[int64][]int64),
	}
}

func keyOf(c *models.Class) tripleKey {
	return tripleKey{year: c.Year, number: c.Number, level: c.Level}
}

// Create inserts a class with an empty membership set.
func (s *InMemory) Create(_ context.Context, c *models.Class) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byTriple[keyOf(c)]; taken {
		return models.ErrClassTripleTaken
	}
	if _, taken := s.byRegistry[c.Registry]; taken {
		return models.ErrClassRegistryTaken
	}
	s.nextID++
	c.ID = s.nextID
	s.put(c)
	s.members[c.ID] = nil
	return nil
}

// Update overwrites scalar fields; membership is untouched.
func (s *InMemory) Update(_ context.Context, c *models.Class) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[c.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if owner, taken := s.byTriple[keyOf(c)]; taken && owner != c.ID {
		return models.ErrClassTripleTaken
	}
	delete(s.byTriple, keyOf(current))
	s.put(c)
	return nil
}

// UpdateMembers replaces the stored membership set with c.Students.
func (s *InMemory) UpdateMembers(_ context.Context, c *models.Class) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[c.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.members[c.ID] = c.StudentIDs()
	return nil
}

// Delete fails with sentinel.ErrConflict while the class still has members.
func (s *InMemory) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if len(s.members[id]) > 0 {
		return sentinel.ErrConflict
	}
	delete(s.byID, id)
	delete(s.byRegistry, current.Registry)
	delete(s.byTriple, keyOf(current))
	delete(s.members, id)
	return nil
}

func (s *InMemory) FindByRegistry(ctx context.Context, registry string, withStudents bool) (*models.Class, error) {
	s.mu.RLock()
	id, ok := s.byRegistry[registry]
	c, memberIDs, err := s.snapshotOf(id, ok)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	if withStudents {
		if c.Students, err = s.resolve(ctx, memberIDs); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// FindByRegistryForUpdate loads the class with members. Exclusivity comes from
// the InMemoryTx lock held by the caller.
func (s *InMemory) FindByRegistryForUpdate(ctx context.Context, registry string) (*models.Class, error) {
	return s.FindByRegistry(ctx, registry, true)
}

func (s *InMemory) FindByTriple(_ context.Context, year string, number int, level models.Level) (*models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byTriple[tripleKey{year: year, number: number, level: level}]
	c, _, err := s.snapshotOf(id, ok)
	return c, err
}

// ListAll returns every class ordered by id, without members.
func (s *InMemory) ListAll(_ context.Context) ([]*models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(s.byID))
	out := make([]*models.Class, 0, len(ids))
	for _, id := range ids {
		cp := *s.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

// FindClassesContainingStudent returns classes listing studentID, ordered by id.
func (s *InMemory) FindClassesContainingStudent(ctx context.Context, studentID int64, withStudents bool) ([]*models.Class, error) {
	type hit struct {
		class   *models.Class
		members []int64
	}
	s.mu.RLock()
	var hits []hit
	for _, id := range slices.Sorted(maps.Keys(s.members)) {
		if !slices.Contains(s.members[id], studentID) {
			continue
		}
		c, memberIDs, _ := s.snapshotOf(id, true)
		hits = append(hits, hit{class: c, members: memberIDs})
	}
	s.mu.RUnlock()

	out := make([]*models.Class, 0, len(hits))
	for _, h := range hits {
		if withStudents {
			refs, err := s.resolve(ctx, h.members)
			if err != nil {
				return nil, err
			}
			h.class.Students = refs
		}
		out = append(out, h.class)
	}
	return out, nil
}

// Snapshot implements store.Snapshotter.
func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	nextID := s.nextID
	classes := make(map[int64]models.Class, len(s.byID))
	for id, c := range s.byID {
		classes[id] = *c
	}
	members := make(map[int64][]int64, len(s.members))
	for id, ids := range s.members {
		members[id] = slices.Clone(ids)
	}
	s.mu.RUnlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.nextID = nextID
		s.byID = make(map[int64]*models.Class, len(classes))
		s.byRegistry = make(map[string]int64, len(classes))
		s.byTriple = make(map[tripleKey]int64, len(classes))
		for _, c := range classes {
			s.put(&c)
		}
		s.members = members
	}
}

func (s *InMemory) put(c *models.Class) {
	cp := *c
	cp.Students = nil
	s.byID[cp.ID] = &cp
	s.byRegistry[cp.Registry] = cp.ID
	s.byTriple[keyOf(&cp)] = cp.ID
}

// snapshotOf copies a class and its member ids; callers hold s.mu.
func (s *InMemory) snapshotOf(id int64, ok bool) (*models.Class, []int64, error) {
	if !ok {
		return nil, nil, sentinel.ErrNotFound
	}
	c, ok := s.byID[id]
	if !ok {
		return nil, nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, slices.Clone(s.members[id]), nil
}

// resolve maps member ids to refs ordered by name then id. Ids whose student
// no longer exists are skipped.
func (s *InMemory) resolve(ctx context.Context, ids []int64) ([]models.StudentRef, error) {
	refs := make([]models.StudentRef, 0, len(ids))
	for _, id := range ids {
		st, err := s.students.FindByID(ctx, id)
		if errors.Is(err, sentinel.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		refs = append(refs, st.Ref())
	}
	slices.SortFunc(refs, func(a, b models.StudentRef) int {
		return cmp.Or(cmp.Compare(a.FullName, b.FullName), cmp.Compare(a.ID, b.ID))
	})
	return refs, nil
}
