package models

import (
	"fmt"
	"slices"
	"time"

	dErrors "marlin/pkg/domain-errors"
	"marlin/pkg/platform/sentinel"
)

// MaxStudentsPerClass caps class membership.
const MaxStudentsPerClass = 5

// Errors stores wrap so services can tell which unique key was taken.
var (
	ErrClassRegistryTaken = fmt.Errorf("class registry: %w", sentinel.ErrAlreadyUsed)
	ErrClassTripleTaken   = fmt.Errorf("class year/number/level: %w", sentinel.ErrAlreadyUsed)
)

// Class is a section identified by (Year, Number, Level). It owns its
// membership set; Students is only populated when loaded with members.
type Class struct {
	ID        int64
	Registry  string
	Number    int
	Year      string
	Level     Level
	Students  []StudentRef
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StudentRef is the projection of a student held in a class membership set.
type StudentRef struct {
	ID       int64
	Registry string
	FullName string
}

func (c *Class) HasStudent(studentID int64) bool {
	return slices.ContainsFunc(c.Students, func(ref StudentRef) bool { return ref.ID == studentID })
}

// MemberByRegistry finds a member by student registry.
func (c *Class) MemberByRegistry(registry string) (StudentRef, bool) {
	i := slices.IndexFunc(c.Students, func(ref StudentRef) bool { return ref.Registry == registry })
	if i < 0 {
		return StudentRef{}, false
	}
	return c.Students[i], true
}

func (c *Class) IsFull() bool {
	return len(c.Students) >= MaxStudentsPerClass
}

func (c *Class) IsEmpty() bool {
	return len(c.Students) == 0
}

// AddStudent enforces uniqueness and capacity before appending.
func (c *Class) AddStudent(ref StudentRef) error {
	if c.HasStudent(ref.ID) {
		return dErrors.New(dErrors.CodeInvariantViolation, "student is already enrolled in this class")
	}
	if c.IsFull() {
		return dErrors.New(dErrors.CodeInvariantViolation,
			fmt.Sprintf("class %s is full (capacity %d)", c.Registry, MaxStudentsPerClass))
	}
	c.Students = append(c.Students, ref)
	return nil
}

// RemoveStudent drops a member.
func (c *Class) RemoveStudent(studentID int64) error {
	i := slices.IndexFunc(c.Students, func(ref StudentRef) bool { return ref.ID == studentID })
	if i < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "student is not enrolled in this class")
	}
	c.Students = slices.Delete(c.Students, i, i+1)
	return nil
}

// ClearStudents empties the membership set and returns how many were removed.
func (c *Class) ClearStudents() int {
	n := len(c.Students)
	c.Students = nil
	return n
}

// StudentIDs returns the member ids in membership order.
func (c *Class) StudentIDs() []int64 {
	ids := make([]int64, 0, len(c.Students))
	for _, ref := range c.Students {
		ids = append(ids, ref.ID)
	}
	return ids
}
