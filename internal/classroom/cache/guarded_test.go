package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"marlin/internal/classroom/models"
	"marlin/pkg/platform/circuit"
	"marlin/pkg/platform/sentinel"
)

type fakeBackend struct {
	err         error
	reads       int
	writes      int
	invalidated int
}

func (f *fakeBackend) GetClass(context.Context, string) (*models.Class, int64, error) {
	f.reads++
	if f.err != nil {
		return nil, 0, f.err
	}
	return nil, 1, sentinel.ErrNotFound
}

func (f *fakeBackend) SetClass(context.Context, int64, *models.Class) error {
	f.writes++
	return f.err
}

func (f *fakeBackend) GetList(context.Context) ([]*models.Class, int64, error) {
	f.reads++
	if f.err != nil {
		return nil, 0, f.err
	}
	return []*models.Class{}, 1, nil
}

func (f *fakeBackend) SetList(context.Context, int64, []*models.Class) error {
	f.writes++
	return f.err
}

func (f *fakeBackend) Invalidate(context.Context) error {
	f.invalidated++
	return f.err
}

type GuardedCacheSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	backend *fakeBackend
	breaker *circuit.Breaker
	cache   *Guarded
}

func TestGuardedCacheSuite(t *testing.T) {
	suite.Run(t, new(GuardedCacheSuite))
}

func (s *GuardedCacheSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.backend = &fakeBackend{}
	s.breaker = circuit.New("class-cache",
		circuit.WithFailureThreshold(2),
		circuit.WithSuccessThreshold(1),
		circuit.WithCooldown(time.Minute),
		circuit.WithClock(func() time.Time { return s.now }),
	)
	s.cache = NewGuarded(s.backend, s.breaker, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *GuardedCacheSuite) TestMissIsHealthy() {
	for range 5 {
		_, _, err := s.cache.GetClass(s.ctx, "CL00000001")
		s.ErrorIs(err, sentinel.ErrNotFound)
	}
	s.False(s.breaker.IsOpen())
}

func (s *GuardedCacheSuite) TestOpensAndShortCircuits() {
	s.backend.err = errors.New("dial tcp: connection refused")
	for range 2 {
		_, _, err := s.cache.GetList(s.ctx)
		s.Error(err)
	}
	s.True(s.breaker.IsOpen())

	reads := s.backend.reads
	_, _, err := s.cache.GetClass(s.ctx, "CL00000001")
	s.ErrorIs(err, sentinel.ErrUnavailable)
	s.Equal(reads, s.backend.reads, "open breaker must not reach the backend")

	s.Run("invalidation still reaches the backend", func() {
		_ = s.cache.Invalidate(s.ctx)
		s.Equal(1, s.backend.invalidated)
	})

	s.Run("probe after cooldown closes on success", func() {
		s.backend.err = nil
		s.now = s.now.Add(time.Minute)
		_, _, err := s.cache.GetList(s.ctx)
		s.Require().NoError(err)
		s.False(s.breaker.IsOpen())
	})
}

func (s *GuardedCacheSuite) TestOpenBreakerKeepsInvalidationFlowing() {
	s.backend.err = errors.New("i/o timeout")
	for range 2 {
		s.Error(s.cache.SetList(s.ctx, 1, nil))
	}
	s.Require().True(s.breaker.IsOpen())
	writes := s.backend.writes

	s.Run("fills are skipped", func() {
		s.ErrorIs(s.cache.SetClass(s.ctx, 1, &models.Class{Registry: "CL00000001"}), sentinel.ErrUnavailable)
		s.ErrorIs(s.cache.SetList(s.ctx, 1, nil), sentinel.ErrUnavailable)
		s.Equal(writes, s.backend.writes)
	})

	s.Run("failed invalidations are attempted every time", func() {
		for range 3 {
			s.Error(s.cache.Invalidate(s.ctx))
		}
		s.Equal(3, s.backend.invalidated)
		s.True(s.breaker.IsOpen())
	})

	s.Run("a successful invalidation closes the breaker", func() {
		s.backend.err = nil
		s.NoError(s.cache.Invalidate(s.ctx))
		s.False(s.breaker.IsOpen())
		s.NoError(s.cache.SetList(s.ctx, 1, nil))
		s.Equal(writes+1, s.backend.writes)
	})
}
