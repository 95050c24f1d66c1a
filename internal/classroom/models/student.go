package models

import (
	"fmt"
	"time"

	"marlin/pkg/platform/sentinel"
)

var (
	ErrStudentRegistryTaken = fmt.Errorf("student registry: %w", sentinel.ErrAlreadyUsed)
	ErrTaxIDTaken           = fmt.Errorf("student tax id: %w", sentinel.ErrAlreadyUsed)
)

// Student holds the normalized 11-digit tax id; formatting is a view concern.
type Student struct {
	ID        int64
	Registry  string
	FullName  string
	TaxID     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Student) Ref() StudentRef {
	return StudentRef{ID: s.ID, Registry: s.Registry, FullName: s.FullName}
}
