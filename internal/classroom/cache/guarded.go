package cache

import (
	"context"
	"errors"
	"log/slog"

	"marlin/internal/classroom/models"
	"marlin/pkg/platform/circuit"
	"marlin/pkg/platform/sentinel"
)

// Backend is the cache surface guarded by Guarded.
type Backend interface {
	GetClass(ctx context.Context, registry string) (*models.Class, int64, error)
	SetClass(ctx context.Context, gen int64, class *models.Class) error
	GetList(ctx context.Context) ([]*models.Class, int64, error)
	SetList(ctx context.Context, gen int64, classes []*models.Class) error
	Invalidate(ctx context.Context) error
}

// Guarded stops reads and fills against a failing backend until the breaker
// closes again. Invalidate always reaches the backend so entries written
// before an outage cannot be served after it.
type Guarded struct {
	inner   Backend
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func NewGuarded(inner Backend, breaker *circuit.Breaker, logger *slog.Logger) *Guarded {
	return &Guarded{inner: inner, breaker: breaker, logger: logger}
}

func (g *Guarded) GetClass(ctx context.Context, registry string) (*models.Class, int64, error) {
	if !g.breaker.Allow() {
		return nil, 0, sentinel.ErrUnavailable
	}
	class, gen, err := g.inner.GetClass(ctx, registry)
	g.record(ctx, err)
	return class, gen, err
}

func (g *Guarded) SetClass(ctx context.Context, gen int64, class *models.Class) error {
	if !g.breaker.Allow() {
		return sentinel.ErrUnavailable
	}
	err := g.inner.SetClass(ctx, gen, class)
	g.record(ctx, err)
	return err
}

func (g *Guarded) GetList(ctx context.Context) ([]*models.Class, int64, error) {
	if !g.breaker.Allow() {
		return nil, 0, sentinel.ErrUnavailable
	}
	classes, gen, err := g.inner.GetList(ctx)
	g.record(ctx, err)
	return classes, gen, err
}

func (g *Guarded) SetList(ctx context.Context, gen int64, classes []*models.Class) error {
	if !g.breaker.Allow() {
		return sentinel.ErrUnavailable
	}
	err := g.inner.SetList(ctx, gen, classes)
	g.record(ctx, err)
	return err
}

func (g *Guarded) Invalidate(ctx context.Context) error {
	err := g.inner.Invalidate(ctx)
	g.record(ctx, err)
	return err
}

// record treats a miss as a healthy round trip.
func (g *Guarded) record(ctx context.Context, err error) {
	if err == nil || errors.Is(err, sentinel.ErrNotFound) {
		if _, change := g.breaker.RecordSuccess(); change.Closed {
			g.logger.InfoContext(ctx, "class cache recovered", "breaker", g.breaker.Name())
		}
		return
	}
	if _, change := g.breaker.RecordFailure(); change.Opened {
		g.logger.WarnContext(ctx, "class cache disabled after repeated failures",
			"breaker", g.breaker.Name(),
			"error", err,
		)
	}
}
