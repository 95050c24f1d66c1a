package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "marlin/pkg/domain-errors"
)

func TestClassMembership(t *testing.T) {
	t.Run("add enforces capacity", func(t *testing.T) {
		c := &Class{Registry: "CL0A1B2C3D"}
		for i := int64(1); i <= MaxStudentsPerClass; i++ {
			require.NoError(t, c.AddStudent(StudentRef{ID: i}))
		}
		assert.True(t, c.IsFull())

		err := c.AddStudent(StudentRef{ID: 99})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		assert.Len(t, c.Students, MaxStudentsPerClass)
	})

	t.Run("add rejects duplicates", func(t *testing.T) {
		c := &Class{}
		require.NoError(t, c.AddStudent(StudentRef{ID: 1, Registry: "ANA-2023-1A2B"}))

		err := c.AddStudent(StudentRef{ID: 1})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		assert.Len(t, c.Students, 1)
	})

	t.Run("remove and lookup by registry", func(t *testing.T) {
		c := &Class{Students: []StudentRef{{ID: 1, Registry: "ANA-2023-1A2B"}, {ID: 2, Registry: "BOB-2023-3C4D"}}}

		ref, ok := c.MemberByRegistry("BOB-2023-3C4D")
		require.True(t, ok)
		require.NoError(t, c.RemoveStudent(ref.ID))
		assert.False(t, c.HasStudent(2))
		assert.Equal(t, []int64{1}, c.StudentIDs())

		assert.Error(t, c.RemoveStudent(2))
	})

	t.Run("clear reports removed count", func(t *testing.T) {
		c := &Class{Students: []StudentRef{{ID: 1}, {ID: 2}}}
		assert.Equal(t, 2, c.ClearStudents())
		assert.True(t, c.IsEmpty())
		assert.Equal(t, 0, c.ClearStudents())
	})
}

func TestLevelLabels(t *testing.T) {
	assert.Equal(t, "Beginner", LevelBeginner.String())
	assert.Equal(t, "Intermediate", LevelIntermediate.String())
	assert.Equal(t, "Expert", LevelExpert.String())
	assert.False(t, Level(0).Valid())
	assert.False(t, Level(4).Valid())
}
