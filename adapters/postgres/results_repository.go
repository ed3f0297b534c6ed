package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"evident/domain/core"
	"evident/domain/stats"
	"evident/internal/errors"
	"evident/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ResultsRepositoryImpl implements ports.ResultsRepository for PostgreSQL.
// Each result table is one row with its rows serialized as JSONB.
type ResultsRepositoryImpl struct {
	db *sqlx.DB
}

// Open connects to PostgreSQL and pings it
func Open(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to database", err)
	}
	return db, nil
}

// NewResultsRepository creates a new PostgreSQL results repository
func NewResultsRepository(db *sqlx.DB) ports.ResultsRepository {
	return &ResultsRepositoryImpl{db: db}
}

// SavePowerTable stores an alpha or beta power table
func (r *ResultsRepositoryImpl) SavePowerTable(ctx context.Context, kind ports.ResultKind, table *stats.PowerTable) error {
	if kind != ports.ResultKindAlphaPower && kind != ports.ResultKindBetaPower {
		return fmt.Errorf("%w: %q is not a power result kind", core.ErrInvalidArgument, kind)
	}
	return r.save(ctx, table.ID, kind, len(table.Rows), table)
}

// SaveEffectSizeTable stores a batch effect-size table
func (r *ResultsRepositoryImpl) SaveEffectSizeTable(ctx context.Context, table *stats.EffectSizeTable) error {
	return r.save(ctx, table.ID, ports.ResultKindEffectSize, len(table.Rows), table)
}

// SaveRepeatedMeasuresTable stores a repeated-measures power table
func (r *ResultsRepositoryImpl) SaveRepeatedMeasuresTable(ctx context.Context, table *stats.RepeatedMeasuresTable) error {
	return r.save(ctx, table.ID, ports.ResultKindRepeatedMeasures, len(table.Rows), table)
}

func (r *ResultsRepositoryImpl) save(ctx context.Context, id core.ID, kind ports.ResultKind, rows int, payload interface{}) error {
	if id.IsEmpty() {
		return fmt.Errorf("%w: result table has no ID", core.ErrInvalidArgument)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s results: %w", kind, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO analysis_results (id, kind, row_count, payload, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			kind = EXCLUDED.kind,
			row_count = EXCLUDED.row_count,
			payload = EXCLUDED.payload`,
		id.String(), string(kind), rows, payloadJSON,
	)
	if err != nil {
		return errors.DatabaseError(fmt.Sprintf("failed to save %s results", kind), err)
	}
	return nil
}

// GetPowerTable retrieves a stored alpha or beta power table by ID
func (r *ResultsRepositoryImpl) GetPowerTable(ctx context.Context, id core.ID) (*stats.PowerTable, error) {
	var record struct {
		Kind    ports.ResultKind `db:"kind"`
		Payload []byte           `db:"payload"`
	}

	err := r.db.GetContext(ctx, &record, `
		SELECT kind, payload FROM analysis_results
		WHERE id = $1 AND kind IN ($2, $3)`,
		id.String(), string(ports.ResultKindAlphaPower), string(ports.ResultKindBetaPower),
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound(fmt.Sprintf("power table %s", id))
		}
		return nil, errors.DatabaseError("failed to get power table", err)
	}

	var table stats.PowerTable
	if err := json.Unmarshal(record.Payload, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal power table: %w", err)
	}
	return &table, nil
}

// ListResults returns the most recent result sets, newest first
func (r *ResultsRepositoryImpl) ListResults(ctx context.Context, limit int) ([]ports.ResultSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	var summaries []ports.ResultSummary
	err := r.db.SelectContext(ctx, &summaries, `
		SELECT id, kind, row_count, created_at
		FROM analysis_results
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, errors.DatabaseError("failed to list results", err)
	}
	return summaries, nil
}
