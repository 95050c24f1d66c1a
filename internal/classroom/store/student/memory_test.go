package student

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"marlin/internal/classroom/models"
	"marlin/pkg/platform/sentinel"
)

type StudentStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *StudentStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestStudentStoreSuite(t *testing.T) {
	suite.Run(t, new(StudentStoreSuite))
}

func newStudent(registry, taxID string) *models.Student {
	now := time.Now()
	return &models.Student{
		Registry:  registry,
		FullName:  "Ana Souza",
		TaxID:     taxID,
		Email:     "ana@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TestCreationAndLookups verifies ids are assigned and every index finds the row.
func (s *StudentStoreSuite) TestCreationAndLookups() {
	st := newStudent("ANA-2023-1A2B", "11144477735")
	s.Require().NoError(s.store.Create(s.ctx, st))
	s.Equal(int64(1), st.ID)

	s.Run("by registry", func() {
		found, err := s.store.FindByRegistry(s.ctx, "ANA-2023-1A2B")
		s.Require().NoError(err)
		s.Equal(st.TaxID, found.TaxID)
	})

	s.Run("by tax id", func() {
		found, err := s.store.FindByTaxID(s.ctx, "11144477735")
		s.Require().NoError(err)
		s.Equal(st.Registry, found.Registry)
	})

	s.Run("by id", func() {
		found, err := s.store.FindByID(s.ctx, st.ID)
		s.Require().NoError(err)
		s.Equal(st.Email, found.Email)
	})

	s.Run("unknown registry", func() {
		_, err := s.store.FindByRegistry(s.ctx, "ZZZ-2023-0000")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returned values are copies", func() {
		found, err := s.store.FindByRegistry(s.ctx, "ANA-2023-1A2B")
		s.Require().NoError(err)
		found.FullName = "mutated"

		again, err := s.store.FindByRegistry(s.ctx, "ANA-2023-1A2B")
		s.Require().NoError(err)
		s.Equal("Ana Souza", again.FullName)
	})
}

// TestUniqueness verifies tax id and registry uniqueness on create and update.
func (s *StudentStoreSuite) TestUniqueness() {
	s.Require().NoError(s.store.Create(s.ctx, newStudent("ANA-2023-1A2B", "11144477735")))

	s.Run("duplicate tax id", func() {
		err := s.store.Create(s.ctx, newStudent("BOB-2023-3C4D", "11144477735"))
		s.ErrorIs(err, models.ErrTaxIDTaken)
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	})

	s.Run("duplicate registry", func() {
		err := s.store.Create(s.ctx, newStudent("ANA-2023-1A2B", "52998224725"))
		s.ErrorIs(err, models.ErrStudentRegistryTaken)
	})

	s.Run("update onto another student's tax id", func() {
		other := newStudent("BOB-2023-3C4D", "52998224725")
		s.Require().NoError(s.store.Create(s.ctx, other))

		other.TaxID = "11144477735"
		s.ErrorIs(s.store.Update(s.ctx, other), models.ErrTaxIDTaken)
	})

	s.Run("update keeping own tax id frees nothing", func() {
		st, err := s.store.FindByRegistry(s.ctx, "ANA-2023-1A2B")
		s.Require().NoError(err)
		st.FullName = "Ana Maria"
		s.Require().NoError(s.store.Update(s.ctx, st))

		found, err := s.store.FindByTaxID(s.ctx, "11144477735")
		s.Require().NoError(err)
		s.Equal("Ana Maria", found.FullName)
	})
}

func (s *StudentStoreSuite) TestDeleteAndList() {
	a := newStudent("ANA-2023-1A2B", "11144477735")
	b := newStudent("BOB-2023-3C4D", "52998224725")
	s.Require().NoError(s.store.Create(s.ctx, a))
	s.Require().NoError(s.store.Create(s.ctx, b))

	s.Require().NoError(s.store.Delete(s.ctx, a.ID))
	s.ErrorIs(s.store.Delete(s.ctx, a.ID), sentinel.ErrNotFound)

	all, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(b.Registry, all[0].Registry)

	// tax id is free again
	s.NoError(s.store.Create(s.ctx, newStudent("ANA-2024-5E6F", "11144477735")))
}

func (s *StudentStoreSuite) TestSnapshotRestore() {
	s.Require().NoError(s.store.Create(s.ctx, newStudent("ANA-2023-1A2B", "11144477735")))
	restore := s.store.Snapshot()

	s.Require().NoError(s.store.Create(s.ctx, newStudent("BOB-2023-3C4D", "52998224725")))
	restore()

	_, err := s.store.FindByTaxID(s.ctx, "52998224725")
	s.ErrorIs(err, sentinel.ErrNotFound)
	all, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)

	next := newStudent("CAR-2023-7A8B", "52998224725")
	s.Require().NoError(s.store.Create(s.ctx, next))
	s.Equal(int64(2), next.ID)
}
