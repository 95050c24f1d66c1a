//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"marlin/internal/classroom/cache"
	"marlin/internal/classroom/models"
	"marlin/pkg/platform/sentinel"
	"marlin/pkg/testutil/containers"
)

type ClassCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *cache.ClassCache
}

func TestClassCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ClassCacheSuite))
}

func (s *ClassCacheSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.cache = cache.New(s.redis.Client, time.Minute)
}

func (s *ClassCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *ClassCacheSuite) TestReadThrough() {
	ctx := context.Background()
	class := &models.Class{
		ID: 1, Registry: "CL0A1B2C3D", Number: 1, Year: "2023.1", Level: models.LevelExpert,
		Students: []models.StudentRef{{ID: 7, Registry: "ANA-2023-1A2B", FullName: "Ana"}},
	}

	_, gen, err := s.cache.GetClass(ctx, class.Registry)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
	s.Require().NoError(s.cache.SetClass(ctx, gen, class))

	cached, _, err := s.cache.GetClass(ctx, class.Registry)
	s.Require().NoError(err)
	s.Equal(class.Students, cached.Students)
	s.Equal(models.LevelExpert, cached.Level)
}

func (s *ClassCacheSuite) TestInvalidateRetiresEntries() {
	ctx := context.Background()
	_, gen, err := s.cache.GetList(ctx)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
	s.Require().NoError(s.cache.SetList(ctx, gen, []*models.Class{{Registry: "CL0A1B2C3D"}}))

	s.Require().NoError(s.cache.Invalidate(ctx))

	_, _, err = s.cache.GetList(ctx)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ClassCacheSuite) TestStaleGenerationIsNotStored() {
	ctx := context.Background()
	_, gen, err := s.cache.GetList(ctx)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.cache.Invalidate(ctx))
	s.Require().NoError(s.cache.SetList(ctx, gen, []*models.Class{{Registry: "CLSTALE000"}}))

	_, _, err = s.cache.GetList(ctx)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
