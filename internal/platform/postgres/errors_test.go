package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConstraintViolations(t *testing.T) {
	t.Run("pgx unique violation", func(t *testing.T) {
		err := fmt.Errorf("insert class: %w", &pgconn.PgError{Code: "23505", ConstraintName: ConstraintClassTriple})

		assert.True(t, IsUniqueViolation(err))
		assert.False(t, IsForeignKeyViolation(err))
		assert.Equal(t, ConstraintClassTriple, ViolatedConstraint(err))
	})

	t.Run("lib/pq foreign key violation", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Constraint: "class_students_student_id_fkey"}

		assert.True(t, IsForeignKeyViolation(err))
		assert.False(t, IsUniqueViolation(err))
		assert.Equal(t, "class_students_student_id_fkey", ViolatedConstraint(err))
	})

	t.Run("plain errors are not violations", func(t *testing.T) {
		err := errors.New("connection refused")

		assert.False(t, IsUniqueViolation(err))
		assert.Empty(t, ViolatedConstraint(err))
	})
}

func TestMigrationsAreOrdered(t *testing.T) {
	migs := Migrations()
	for i := 1; i < len(migs); i++ {
		assert.Greater(t, migs[i].Version, migs[i-1].Version)
	}
	assert.Contains(t, migs[0].UpSQL, ConstraintClassTriple)
	assert.Contains(t, migs[0].UpSQL, ConstraintStudentTaxID)
}
