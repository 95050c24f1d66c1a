// Package store holds the in-memory unit of work shared by the class and
// student in-memory stores. Postgres deployments use postgres.TxRunner instead.
package store

import (
	"context"
	"sync"

	dErrors "marlin/pkg/domain-errors"
)

// Snapshotter captures its state and returns a func that restores it.
type Snapshotter interface {
	Snapshot() (restore func())
}

type txKey struct{}

// InMemoryTx serializes units of work and restores every participant's
// snapshot when the unit fails, so a failed multi-entity write leaves no trace.
// All writers must go through RunInTx; reads may run outside it.
type InMemoryTx struct {
	mu           sync.Mutex
	participants []Snapshotter
}

func NewInMemoryTx(participants ...Snapshotter) *InMemoryTx {
	return &InMemoryTx{participants: participants}
}

func (t *InMemoryTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	restores := make([]func(), 0, len(t.participants))
	for _, p := range t.participants {
		restores = append(restores, p.Snapshot())
	}
	rollback := func() {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
	}

	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		rollback()
		return err
	}
	if err := ctx.Err(); err != nil {
		rollback()
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	return nil
}
