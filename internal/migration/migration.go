package migration

import (
	"context"
	"database/sql"

	"evident/internal/errors"
)

// Execer is the subset of *sqlx.DB the migrations need
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db Execer) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db Execer) error {
	if err := r.createAnalysisResultsTable(ctx, db); err != nil {
		return errors.DatabaseError("failed to create analysis_results table", err)
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.DatabaseError("failed to create indexes", err)
	}

	return nil
}

func (r *MigrationRunner) createAnalysisResultsTable(ctx context.Context, db Execer) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS analysis_results (
			id UUID PRIMARY KEY,
			kind VARCHAR(32) NOT NULL,
			row_count INTEGER NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db Execer) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_results_kind ON analysis_results(kind)",
		"CREATE INDEX IF NOT EXISTS idx_results_created_at ON analysis_results(created_at DESC)",
	}

	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			return err
		}
	}
	return nil
}
