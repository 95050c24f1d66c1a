package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Migration is one forward-only schema step.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
}

const migration001Up = `
CREATE TABLE IF NOT EXISTS classes (
    id BIGSERIAL PRIMARY KEY,
    registry VARCHAR(10) NOT NULL,
    number INTEGER NOT NULL,
    year VARCHAR(6) NOT NULL,
    level SMALLINT NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT classes_registry_key UNIQUE (registry),
    CONSTRAINT classes_year_number_level_key UNIQUE (year, number, level),
    CONSTRAINT classes_number_positive CHECK (number > 0),
    CONSTRAINT classes_level_range CHECK (level BETWEEN 1 AND 3)
);

CREATE TABLE IF NOT EXISTS students (
    id BIGSERIAL PRIMARY KEY,
    registry VARCHAR(32) NOT NULL,
    full_name VARCHAR(255) NOT NULL,
    tax_id CHAR(11) NOT NULL,
    email VARCHAR(255) NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT students_registry_key UNIQUE (registry),
    CONSTRAINT students_tax_id_key UNIQUE (tax_id)
);
`

const migration002Up = `
CREATE TABLE IF NOT EXISTS class_students (
    class_id BIGINT NOT NULL REFERENCES classes(id) ON DELETE RESTRICT,
    student_id BIGINT NOT NULL REFERENCES students(id) ON DELETE RESTRICT,
    enrolled_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    PRIMARY KEY (class_id, student_id)
);

CREATE INDEX IF NOT EXISTS idx_class_students_student_id ON class_students(student_id);
`

// Migrations returns the embedded schema steps in apply order.
func Migrations() []Migration {
	return []Migration{
		{Version: 1, Name: "create_classes_and_students", UpSQL: migration001Up},
		{Version: 2, Name: "create_class_students", UpSQL: migration002Up},
	}
}

// Migrate applies every pending migration, each in its own transaction, and
// records it in schema_migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, mig := range Migrations() {
		if applied[mig.Version] {
			continue
		}
		if err := applyMigration(ctx, db, mig); err != nil {
			return fmt.Errorf("migration %d (%s): %w", mig.Version, mig.Name, err)
		}
	}
	return nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("scan migration row: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func applyMigration(ctx context.Context, db *sql.DB, mig Migration) error {
	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = sqlTx.Rollback()
	}()

	if _, err := sqlTx.ExecContext(ctx, mig.UpSQL); err != nil {
		return err
	}
	if _, err := sqlTx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, mig.Version, mig.Name); err != nil {
		return err
	}
	return sqlTx.Commit()
}
