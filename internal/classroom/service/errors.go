package service

import (
	"context"
	"errors"

	dErrors "marlin/pkg/domain-errors"
	pstrings "marlin/pkg/platform/strings"
	"marlin/pkg/platform/sentinel"
)

// storeErr converts a store failure into a coded error. Errors that are
// already coded pass through untouched.
func storeErr(err error, notFoundMsg, op string) error {
	if err == nil {
		return nil
	}
	if _, ok := dErrors.As(err); ok {
		return err
	}
	if notFoundMsg != "" && errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, notFoundMsg)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "request timed out while trying to "+op)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+op)
}

// requireRegistry normalizes a registry path parameter.
func requireRegistry(raw, what string) (string, error) {
	reg := pstrings.NormalizeKey(raw)
	if reg == "" {
		return "", dErrors.New(dErrors.CodeValidation, what+" registry is required")
	}
	return reg, nil
}

// withRegistryRetry reruns fn while it fails because a freshly generated
// registry was already taken.
func withRegistryRetry(taken error, fn func() error) error {
	var err error
	for range maxRegistryAttempts {
		err = fn()
		if !errors.Is(err, taken) {
			return err
		}
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "could not allocate a unique registry")
}
