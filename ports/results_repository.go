package ports

import (
	"context"
	"time"

	"evident/domain/core"
	"evident/domain/stats"
)

// ResultKind identifies which analysis produced a stored result set
type ResultKind string

const (
	ResultKindAlphaPower       ResultKind = "alpha_power"
	ResultKindBetaPower        ResultKind = "beta_power"
	ResultKindEffectSize       ResultKind = "effect_size"
	ResultKindRepeatedMeasures ResultKind = "repeated_measures"
)

// ResultSummary describes a stored result set without its rows
type ResultSummary struct {
	ID        core.ID    `json:"id" db:"id"`
	Kind      ResultKind `json:"kind" db:"kind"`
	Rows      int        `json:"rows" db:"row_count"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// ResultsRepository persists analysis result tables
type ResultsRepository interface {
	// SavePowerTable stores a power table under kind (alpha or beta power)
	SavePowerTable(ctx context.Context, kind ResultKind, table *stats.PowerTable) error

	// SaveEffectSizeTable stores a batch effect-size table
	SaveEffectSizeTable(ctx context.Context, table *stats.EffectSizeTable) error

	// SaveRepeatedMeasuresTable stores a repeated-measures power table
	SaveRepeatedMeasuresTable(ctx context.Context, table *stats.RepeatedMeasuresTable) error

	// GetPowerTable retrieves a stored power table by ID
	GetPowerTable(ctx context.Context, id core.ID) (*stats.PowerTable, error)

	// ListResults returns the most recent result sets, newest first
	ListResults(ctx context.Context, limit int) ([]ResultSummary, error)
}
