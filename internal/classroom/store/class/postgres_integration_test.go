//go:build integration

package class_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"marlin/internal/classroom/models"
	"marlin/internal/classroom/store/class"
	"marlin/internal/classroom/store/student"
	"marlin/internal/platform/postgres"
	"marlin/pkg/platform/sentinel"
	"marlin/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *class.PostgresStore
	students *student.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = class.NewPostgres(s.postgres.DB)
	s.students = student.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "class_students", "students", "classes")
	s.Require().NoError(err)
}

func newTestClass(registry string, number int) *models.Class {
	now := time.Now()
	return &models.Class{
		Registry:  registry,
		Number:    number,
		Year:      "2023.1",
		Level:     models.LevelIntermediate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *PostgresStoreSuite) newStudent(ctx context.Context, registry, name, taxID string) *models.Student {
	now := time.Now()
	st := &models.Student{Registry: registry, FullName: name, TaxID: taxID, Email: "x@example.com", CreatedAt: now, UpdatedAt: now}
	s.Require().NoError(s.students.Create(ctx, st))
	return st
}

func (s *PostgresStoreSuite) TestUniqueConstraintsTranslate() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, newTestClass("CL0A1B2C3D", 1)))

	s.ErrorIs(s.store.Create(ctx, newTestClass("CL11111111", 1)), models.ErrClassTripleTaken)
	s.ErrorIs(s.store.Create(ctx, newTestClass("CL0A1B2C3D", 2)), models.ErrClassRegistryTaken)
}

func (s *PostgresStoreSuite) TestMembershipRoundTrip() {
	ctx := context.Background()
	c := newTestClass("CL0A1B2C3D", 1)
	s.Require().NoError(s.store.Create(ctx, c))
	ana := s.newStudent(ctx, "ANA-2023-0001", "Ana", "11144477735")
	bia := s.newStudent(ctx, "BIA-2023-0002", "Bia", "52998224725")

	c.Students = []models.StudentRef{bia.Ref(), ana.Ref()}
	s.Require().NoError(s.store.UpdateMembers(ctx, c))

	loaded, err := s.store.FindByRegistry(ctx, c.Registry, true)
	s.Require().NoError(err)
	s.Require().Len(loaded.Students, 2)
	s.Equal("Ana", loaded.Students[0].FullName)

	s.Run("student delete is restricted", func() {
		s.ErrorIs(s.students.Delete(ctx, ana.ID), sentinel.ErrConflict)
	})

	s.Run("class delete is restricted", func() {
		s.ErrorIs(s.store.Delete(ctx, c.ID), sentinel.ErrConflict)
	})

	s.Run("containing query", func() {
		classes, err := s.store.FindClassesContainingStudent(ctx, bia.ID, true)
		s.Require().NoError(err)
		s.Require().Len(classes, 1)
		s.Len(classes[0].Students, 2)
	})

	s.Run("pruning members", func() {
		loaded.Students = []models.StudentRef{ana.Ref()}
		s.Require().NoError(s.store.UpdateMembers(ctx, loaded))

		again, err := s.store.FindByRegistry(ctx, c.Registry, true)
		s.Require().NoError(err)
		s.Require().Len(again.Students, 1)
		s.Equal(ana.ID, again.Students[0].ID)

		loaded.Students = nil
		s.Require().NoError(s.store.UpdateMembers(ctx, loaded))
		s.NoError(s.store.Delete(ctx, c.ID))
	})
}

// TestForUpdateSerializesCapacityChecks verifies concurrent enrollments into a
// locked class never exceed capacity.
func (s *PostgresStoreSuite) TestForUpdateSerializesCapacityChecks() {
	ctx := context.Background()
	c := newTestClass("CL0A1B2C3D", 1)
	s.Require().NoError(s.store.Create(ctx, c))

	taxIDs := []string{"11144477735", "52998224725", "39053344705", "71428793860", "86288366757", "15350946056", "45317828791", "04702372036"}
	students := make([]*models.Student, 0, len(taxIDs))
	for i, taxID := range taxIDs {
		students = append(students, s.newStudent(ctx, "STU-2023-000"+string(rune('0'+i)), "Student", taxID))
	}

	runner := postgres.NewTxRunner(s.postgres.DB)
	var wg sync.WaitGroup
	var added, rejected atomic.Int32
	for _, st := range students {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := runner.RunInTx(ctx, func(txCtx context.Context) error {
				locked, err := s.store.FindByRegistryForUpdate(txCtx, c.Registry)
				if err != nil {
					return err
				}
				if err := locked.AddStudent(st.Ref()); err != nil {
					return err
				}
				return s.store.UpdateMembers(txCtx, locked)
			})
			if err == nil {
				added.Add(1)
			} else if !errors.Is(err, sentinel.ErrNotFound) {
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(models.MaxStudentsPerClass), added.Load())
	s.Equal(int32(len(students)-models.MaxStudentsPerClass), rejected.Load())

	loaded, err := s.store.FindByRegistry(ctx, c.Registry, true)
	s.Require().NoError(err)
	s.Len(loaded.Students, models.MaxStudentsPerClass)
}
