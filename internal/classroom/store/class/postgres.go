package class

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"marlin/internal/classroom/models"
	"marlin/internal/platform/postgres"
	"marlin/pkg/platform/sentinel"
	"marlin/pkg/platform/tx"
)

// PostgresStore persists classes and the class_students membership table.
// Calls join the transaction bound to ctx; FindByRegistryForUpdate only holds
// its row lock when such a transaction exists.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const classColumns = `c.id, c.registry, c.number, c.year, c.level, c.created_at, c.updated_at`

func (s *PostgresStore) Create(ctx context.Context, c *models.Class) error {
	err := tx.Executor(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO classes (registry, number, year, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		c.Registry, c.Number, c.Year, int(c.Level), c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return translateWriteErr(err, "insert class")
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, c *models.Class) error {
	res, err := tx.Executor(ctx, s.db).ExecContext(ctx, `
		UPDATE classes SET number = $2, year = $3, level = $4, updated_at = $5
		WHERE id = $1`,
		c.ID, c.Number, c.Year, int(c.Level), c.UpdatedAt,
	)
	if err != nil {
		return translateWriteErr(err, "update class")
	}
	return requireRow(res, "update class")
}

// UpdateMembers makes class_students match c.Students: members no longer
// listed are removed and new ones inserted.
func (s *PostgresStore) UpdateMembers(ctx context.Context, c *models.Class) error {
	if _, ok := tx.From(ctx); !ok {
		return postgres.NewTxRunner(s.db).RunInTx(ctx, func(txCtx context.Context) error {
			return s.UpdateMembers(txCtx, c)
		})
	}

	q := tx.Executor(ctx, s.db)
	ids := pq.Array(c.StudentIDs())
	if _, err := q.ExecContext(ctx, `
		DELETE FROM class_students
		WHERE class_id = $1 AND NOT (student_id = ANY($2::bigint[]))`,
		c.ID, ids,
	); err != nil {
		return fmt.Errorf("prune class members: %w", err)
	}
	if _, err := q.ExecContext(ctx, `
		INSERT INTO class_students (class_id, student_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT (class_id, student_id) DO NOTHING`,
		c.ID, ids,
	); err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return fmt.Errorf("add class members: %w", sentinel.ErrNotFound)
		}
		return fmt.Errorf("add class members: %w", err)
	}
	return nil
}

// Delete fails with sentinel.ErrConflict while the class still has members.
func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	res, err := tx.Executor(ctx, s.db).ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return translateWriteErr(err, "delete class")
	}
	return requireRow(res, "delete class")
}

func (s *PostgresStore) FindByRegistry(ctx context.Context, registry string, withStudents bool) (*models.Class, error) {
	c, err := s.findOne(ctx, `SELECT `+classColumns+` FROM classes c WHERE c.registry = $1`, registry)
	if err != nil || !withStudents {
		return c, err
	}
	return c, s.attachMembers(ctx, []*models.Class{c})
}

// FindByRegistryForUpdate locks the class row before loading members so
// capacity checks see every concurrent enrollment.
func (s *PostgresStore) FindByRegistryForUpdate(ctx context.Context, registry string) (*models.Class, error) {
	c, err := s.findOne(ctx, `SELECT `+classColumns+` FROM classes c WHERE c.registry = $1 FOR UPDATE`, registry)
	if err != nil {
		return nil, err
	}
	return c, s.attachMembers(ctx, []*models.Class{c})
}

func (s *PostgresStore) FindByTriple(ctx context.Context, year string, number int, level models.Level) (*models.Class, error) {
	return s.findOne(ctx, `
		SELECT `+classColumns+` FROM classes c
		WHERE c.year = $1 AND c.number = $2 AND c.level = $3`,
		year, number, int(level))
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]*models.Class, error) {
	return s.findMany(ctx, `SELECT `+classColumns+` FROM classes c ORDER BY c.id`)
}

func (s *PostgresStore) FindClassesContainingStudent(ctx context.Context, studentID int64, withStudents bool) ([]*models.Class, error) {
	classes, err := s.findMany(ctx, `
		SELECT `+classColumns+` FROM classes c
		JOIN class_students cs ON cs.class_id = c.id
		WHERE cs.student_id = $1
		ORDER BY c.id`, studentID)
	if err != nil || !withStudents {
		return classes, err
	}
	return classes, s.attachMembers(ctx, classes)
}

// attachMembers loads memberships for all classes in one query.
func (s *PostgresStore) attachMembers(ctx context.Context, classes []*models.Class) error {
	if len(classes) == 0 {
		return nil
	}
	byID := make(map[int64]*models.Class, len(classes))
	ids := make([]int64, 0, len(classes))
	for _, c := range classes {
		c.Students = []models.StudentRef{}
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}

	rows, err := tx.Executor(ctx, s.db).QueryContext(ctx, `
		SELECT cs.class_id, s.id, s.registry, s.full_name
		FROM class_students cs
		JOIN students s ON s.id = cs.student_id
		WHERE cs.class_id = ANY($1::bigint[])
		ORDER BY s.full_name, s.id`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load class members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var classID int64
		var ref models.StudentRef
		if err := rows.Scan(&classID, &ref.ID, &ref.Registry, &ref.FullName); err != nil {
			return fmt.Errorf("scan class member: %w", err)
		}
		if c, ok := byID[classID]; ok {
			c.Students = append(c.Students, ref)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate class members: %w", err)
	}
	return nil
}

func (s *PostgresStore) findOne(ctx context.Context, query string, args ...any) (*models.Class, error) {
	c, err := scanClass(tx.Executor(ctx, s.db).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find class: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) findMany(ctx context.Context, query string, args ...any) ([]*models.Class, error) {
	rows, err := tx.Executor(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query classes: %w", err)
	}
	defer rows.Close()

	var out []*models.Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate classes: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClass(row scanner) (*models.Class, error) {
	var c models.Class
	var level int
	if err := row.Scan(&c.ID, &c.Registry, &c.Number, &c.Year, &level, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Level = models.Level(level)
	return &c, nil
}

func translateWriteErr(err error, op string) error {
	switch {
	case postgres.IsUniqueViolation(err):
		switch postgres.ViolatedConstraint(err) {
		case postgres.ConstraintClassTriple:
			return models.ErrClassTripleTaken
		case postgres.ConstraintClassRegistry:
			return models.ErrClassRegistryTaken
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
