package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped)
// so services can translate them into coded domain errors:
// - ErrNotFound: no row matches the lookup
// - ErrAlreadyUsed: a unique key (registry, tax id, class triple) is taken
// - ErrConflict: a write would orphan a relationship (foreign key restrict)
// - ErrUnavailable: a backing service (cache, broker) cannot be reached
//
// Validation failures never come from stores; use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrAlreadyUsed = errors.New("already used")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
