package student

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"marlin/internal/classroom/models"
	"marlin/internal/platform/postgres"
	"marlin/pkg/platform/sentinel"
	"marlin/pkg/platform/tx"
)

// PostgresStore persists students. Calls join the transaction bound to ctx.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const studentColumns = `id, registry, full_name, tax_id, email, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, st *models.Student) error {
	err := tx.Executor(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO students (registry, full_name, tax_id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		st.Registry, st.FullName, st.TaxID, st.Email, st.CreatedAt, st.UpdatedAt,
	).Scan(&st.ID)
	if err != nil {
		return translateWriteErr(err, "insert student")
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, st *models.Student) error {
	res, err := tx.Executor(ctx, s.db).ExecContext(ctx, `
		UPDATE students SET full_name = $2, tax_id = $3, email = $4, updated_at = $5
		WHERE id = $1`,
		st.ID, st.FullName, st.TaxID, st.Email, st.UpdatedAt,
	)
	if err != nil {
		return translateWriteErr(err, "update student")
	}
	return requireRow(res, "update student")
}

// Delete fails with sentinel.ErrConflict while any class still references the student.
func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	res, err := tx.Executor(ctx, s.db).ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return translateWriteErr(err, "delete student")
	}
	return requireRow(res, "delete student")
}

func (s *PostgresStore) FindByRegistry(ctx context.Context, registry string) (*models.Student, error) {
	return s.findOne(ctx, `SELECT `+studentColumns+` FROM students WHERE registry = $1`, registry)
}

func (s *PostgresStore) FindByTaxID(ctx context.Context, taxID string) (*models.Student, error) {
	return s.findOne(ctx, `SELECT `+studentColumns+` FROM students WHERE tax_id = $1`, taxID)
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := tx.Executor(ctx, s.db).QueryContext(ctx, `SELECT `+studentColumns+` FROM students ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var out []*models.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) findOne(ctx context.Context, query string, arg any) (*models.Student, error) {
	st, err := scanStudent(tx.Executor(ctx, s.db).QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find student: %w", err)
	}
	return st, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner) (*models.Student, error) {
	var st models.Student
	if err := row.Scan(&st.ID, &st.Registry, &st.FullName, &st.TaxID, &st.Email, &st.CreatedAt, &st.UpdatedAt); err != nil {
		return nil, err
	}
	return &st, nil
}

func translateWriteErr(err error, op string) error {
	switch {
	case postgres.IsUniqueViolation(err):
		switch postgres.ViolatedConstraint(err) {
		case postgres.ConstraintStudentTaxID:
			return models.ErrTaxIDTaken
		case postgres.ConstraintStudentReg:
			return models.ErrStudentRegistryTaken
		}
		return fmt.Errorf("%s: %w", op, sentinel.ErrAlreadyUsed)
	case postgres.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, sentinel.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
