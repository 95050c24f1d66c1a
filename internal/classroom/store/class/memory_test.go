package class

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"marlin/internal/classroom/models"
	"marlin/internal/classroom/store/student"
	"marlin/pkg/platform/sentinel"
)

type ClassStoreSuite struct {
	suite.Suite
	students *student.InMemory
	store    *InMemory
	ctx      context.Context
}

func (s *ClassStoreSuite) SetupTest() {
	s.students = student.NewInMemory()
	s.store = NewInMemory(s.students)
	s.ctx = context.Background()
}

func TestClassStoreSuite(t *testing.T) {
	suite.Run(t, new(ClassStoreSuite))
}

func newClass(registry string, number int) *models.Class {
	return &models.Class{Registry: registry, Number: number, Year: "2023.1", Level: models.LevelExpert}
}

func (s *ClassStoreSuite) addStudent(registry, name, taxID string) *models.Student {
	st := &models.Student{Registry: registry, FullName: name, TaxID: taxID, Email: "x@example.com"}
	s.Require().NoError(s.students.Create(s.ctx, st))
	return st
}

// TestCreationAndLookups verifies the store creates and retrieves classes by each key.
func (s *ClassStoreSuite) TestCreationAndLookups() {
	c := newClass("CL0A1B2C3D", 1)
	s.Require().NoError(s.store.Create(s.ctx, c))
	s.NotZero(c.ID)

	s.Run("by registry", func() {
		found, err := s.store.FindByRegistry(s.ctx, "CL0A1B2C3D", false)
		s.Require().NoError(err)
		s.Equal(c.Number, found.Number)
		s.Nil(found.Students)
	})

	s.Run("by triple", func() {
		found, err := s.store.FindByTriple(s.ctx, "2023.1", 1, models.LevelExpert)
		s.Require().NoError(err)
		s.Equal("CL0A1B2C3D", found.Registry)
	})

	s.Run("unknown registry", func() {
		_, err := s.store.FindByRegistry(s.ctx, "CLFFFFFFFF", true)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestTripleUniqueness verifies (year, number, level) cannot repeat.
func (s *ClassStoreSuite) TestTripleUniqueness() {
	s.Require().NoError(s.store.Create(s.ctx, newClass("CL0A1B2C3D", 1)))

	s.Run("create with the same triple", func() {
		s.ErrorIs(s.store.Create(s.ctx, newClass("CL11111111", 1)), models.ErrClassTripleTaken)
	})

	s.Run("create with the same registry", func() {
		s.ErrorIs(s.store.Create(s.ctx, newClass("CL0A1B2C3D", 2)), models.ErrClassRegistryTaken)
	})

	s.Run("update onto an existing triple", func() {
		other := newClass("CL22222222", 2)
		s.Require().NoError(s.store.Create(s.ctx, other))
		other.Number = 1
		s.ErrorIs(s.store.Update(s.ctx, other), models.ErrClassTripleTaken)
	})

	s.Run("update frees the old triple", func() {
		c, err := s.store.FindByRegistry(s.ctx, "CL0A1B2C3D", false)
		s.Require().NoError(err)
		c.Number = 9
		s.Require().NoError(s.store.Update(s.ctx, c))

		s.NoError(s.store.Create(s.ctx, newClass("CL33333333", 1)))
	})
}

// TestMembership verifies membership is persisted only through UpdateMembers.
func (s *ClassStoreSuite) TestMembership() {
	c := newClass("CL0A1B2C3D", 1)
	s.Require().NoError(s.store.Create(s.ctx, c))
	bia := s.addStudent("BIA-2023-0001", "Bia", "11144477735")
	ana := s.addStudent("ANA-2023-0002", "Ana", "52998224725")

	loaded, err := s.store.FindByRegistryForUpdate(s.ctx, c.Registry)
	s.Require().NoError(err)
	s.Require().NoError(loaded.AddStudent(bia.Ref()))
	s.Require().NoError(loaded.AddStudent(ana.Ref()))

	s.Run("mutation without update is not persisted", func() {
		fresh, err := s.store.FindByRegistry(s.ctx, c.Registry, true)
		s.Require().NoError(err)
		s.Empty(fresh.Students)
	})

	s.Require().NoError(s.store.UpdateMembers(s.ctx, loaded))

	s.Run("members resolve sorted by name", func() {
		fresh, err := s.store.FindByRegistry(s.ctx, c.Registry, true)
		s.Require().NoError(err)
		s.Require().Len(fresh.Students, 2)
		s.Equal("Ana", fresh.Students[0].FullName)
		s.Equal("BIA-2023-0001", fresh.Students[1].Registry)
	})

	s.Run("classes containing a student", func() {
		other := newClass("CL44444444", 2)
		s.Require().NoError(s.store.Create(s.ctx, other))
		other.Students = []models.StudentRef{ana.Ref()}
		s.Require().NoError(s.store.UpdateMembers(s.ctx, other))

		classes, err := s.store.FindClassesContainingStudent(s.ctx, ana.ID, true)
		s.Require().NoError(err)
		s.Require().Len(classes, 2)
		s.Equal(c.Registry, classes[0].Registry)
		s.Len(classes[0].Students, 2)

		classes, err = s.store.FindClassesContainingStudent(s.ctx, bia.ID, false)
		s.Require().NoError(err)
		s.Require().Len(classes, 1)
		s.Nil(classes[0].Students)
	})

	s.Run("delete blocked while occupied", func() {
		s.ErrorIs(s.store.Delete(s.ctx, c.ID), sentinel.ErrConflict)

		loaded.ClearStudents()
		s.Require().NoError(s.store.UpdateMembers(s.ctx, loaded))
		s.NoError(s.store.Delete(s.ctx, c.ID))

		_, err := s.store.FindByRegistry(s.ctx, c.Registry, false)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *ClassStoreSuite) TestSnapshotRestore() {
	c := newClass("CL0A1B2C3D", 1)
	s.Require().NoError(s.store.Create(s.ctx, c))
	ana := s.addStudent("ANA-2023-0002", "Ana", "52998224725")

	restore := s.store.Snapshot()
	c.Students = []models.StudentRef{ana.Ref()}
	s.Require().NoError(s.store.UpdateMembers(s.ctx, c))
	s.Require().NoError(s.store.Create(s.ctx, newClass("CL55555555", 5)))
	restore()

	fresh, err := s.store.FindByRegistry(s.ctx, c.Registry, true)
	s.Require().NoError(err)
	s.Empty(fresh.Students)
	_, err = s.store.FindByRegistry(s.ctx, "CL55555555", false)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.FindByTriple(s.ctx, "2023.1", 5, models.LevelExpert)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
