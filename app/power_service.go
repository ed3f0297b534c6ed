package app

import (
	"context"
	"fmt"
	"time"

	"evident/domain/core"
	"evident/domain/diversity"
	"evident/domain/metadata"
	"evident/domain/stats"
	"evident/internal"
	"evident/internal/config"
	divhandler "evident/internal/diversity"
	"evident/internal/errors"
	"evident/internal/metrics"
	"evident/ports"
)

// Source selects the diversity data an analysis runs on
type Source string

const (
	SourceAlpha Source = "alpha"
	SourceBeta  Source = "beta"
)

// Dataset is the loaded input of a service. Alpha or Beta may be nil
// when the corresponding file was not supplied.
type Dataset struct {
	Metadata *metadata.Table
	Alpha    *diversity.Vector
	Beta     *diversity.DistanceMatrix
}

// EffectSizeRequest asks for effect sizes of several columns at once
type EffectSizeRequest struct {
	Source   Source   `json:"source"`
	Columns  []string `json:"columns"`
	Pairwise bool     `json:"pairwise"`
	NJobs    int      `json:"n_jobs,omitempty"` // 0 uses the configured default
}

// RepeatedMeasuresRequest asks for repeated-measures power over a grid
type RepeatedMeasuresRequest struct {
	IndividualColumn string                     `json:"individual_id_column"`
	StateColumn      string                     `json:"state_column"`
	Grid             stats.RepeatedMeasuresGrid `json:"grid"`
}

// PowerService runs power and effect-size analyses over one dataset,
// records metrics and persists results when a repository is set.
type PowerService struct {
	data     Dataset
	analysis config.AnalysisConfig
	repo     ports.ResultsRepository
	metrics  *metrics.Collector
	logger   *internal.Logger
}

// ServiceOption configures a PowerService
type ServiceOption func(*PowerService)

// WithRepository persists every result table through repo
func WithRepository(repo ports.ResultsRepository) ServiceOption {
	return func(s *PowerService) { s.repo = repo }
}

// WithMetrics records analysis metrics on c
func WithMetrics(c *metrics.Collector) ServiceOption {
	return func(s *PowerService) { s.metrics = c }
}

// WithLogger replaces the default logger
func WithLogger(l *internal.Logger) ServiceOption {
	return func(s *PowerService) { s.logger = l }
}

// NewPowerService creates a power service
func NewPowerService(data Dataset, analysis config.AnalysisConfig, opts ...ServiceOption) (*PowerService, error) {
	if data.Metadata == nil {
		return nil, errors.InvalidInput("metadata is required", nil)
	}
	if data.Alpha == nil && data.Beta == nil {
		return nil, errors.InvalidInput("alpha or beta diversity data is required", nil)
	}

	s := &PowerService{data: data, analysis: analysis, logger: internal.DefaultLogger}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("PowerService")
	return s, nil
}

func (s *PowerService) handlerOptions() []divhandler.Option {
	opts := []divhandler.Option{
		divhandler.WithDropRareLevels(s.analysis.DropRareLevels),
		divhandler.WithLogger(s.logger),
	}
	// zero keeps the handler defaults
	if s.analysis.MaxLevelsPerCategory != 0 {
		opts = append(opts, divhandler.WithMaxLevelsPerCategory(s.analysis.MaxLevelsPerCategory))
	}
	if s.analysis.MinCountPerLevel != 0 {
		opts = append(opts, divhandler.WithMinCountPerLevel(s.analysis.MinCountPerLevel))
	}
	return opts
}

func (s *PowerService) handler(source Source) (*divhandler.Handler, error) {
	switch source {
	case SourceAlpha, "":
		if s.data.Alpha == nil {
			return nil, errors.InvalidInput("no alpha diversity data loaded", nil)
		}
		h, err := divhandler.NewAlphaHandler(s.data.Alpha, s.data.Metadata, s.handlerOptions()...)
		if err != nil {
			return nil, err
		}
		return h.Handler, nil
	case SourceBeta:
		if s.data.Beta == nil {
			return nil, errors.InvalidInput("no beta diversity data loaded", nil)
		}
		h, err := divhandler.NewBetaHandler(s.data.Beta, s.data.Metadata, s.handlerOptions()...)
		if err != nil {
			return nil, err
		}
		return h.Handler, nil
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unknown source %q", source), nil)
	}
}

// AlphaPower solves a power grid for column over alpha diversity
func (s *PowerService) AlphaPower(ctx context.Context, column string, grid stats.PowerGrid) (*stats.PowerTable, error) {
	return s.power(ctx, SourceAlpha, ports.ResultKindAlphaPower, column, grid)
}

// BetaPower solves a power grid for column over beta diversity
func (s *PowerService) BetaPower(ctx context.Context, column string, grid stats.PowerGrid) (*stats.PowerTable, error) {
	return s.power(ctx, SourceBeta, ports.ResultKindBetaPower, column, grid)
}

// Power dispatches to AlphaPower or BetaPower
func (s *PowerService) Power(ctx context.Context, source Source, column string, grid stats.PowerGrid) (*stats.PowerTable, error) {
	if source == SourceBeta {
		return s.BetaPower(ctx, column, grid)
	}
	return s.AlphaPower(ctx, column, grid)
}

func (s *PowerService) power(ctx context.Context, source Source, kind ports.ResultKind, column string, grid stats.PowerGrid) (*stats.PowerTable, error) {
	start := time.Now()
	h, err := s.handler(source)
	if err != nil {
		return nil, s.fail(kind, start, err)
	}
	table, err := h.PowerAnalysisTable(column, grid)
	if err != nil {
		return nil, s.fail(kind, start, err)
	}

	if s.repo != nil {
		if err := s.repo.SavePowerTable(ctx, kind, table); err != nil {
			return nil, s.persistFailed(kind, start, table.ID, err)
		}
	}
	s.succeed(kind, start, table.ID, len(table.Rows))
	return table, nil
}

// EffectSizes computes effect sizes of several columns in parallel
func (s *PowerService) EffectSizes(ctx context.Context, req EffectSizeRequest) (*stats.EffectSizeTable, error) {
	kind := ports.ResultKindEffectSize
	start := time.Now()

	h, err := s.handler(req.Source)
	if err != nil {
		return nil, s.fail(kind, start, err)
	}
	nJobs := req.NJobs
	if nJobs == 0 {
		nJobs = s.analysis.NJobs
	}
	if nJobs == 0 {
		nJobs = 1
	}
	table, err := h.EffectSizeByCategory(ctx, req.Columns, req.Pairwise, nJobs)
	if err != nil {
		return nil, s.fail(kind, start, err)
	}

	if s.repo != nil {
		if err := s.repo.SaveEffectSizeTable(ctx, table); err != nil {
			return nil, s.persistFailed(kind, start, table.ID, err)
		}
	}
	s.succeed(kind, start, table.ID, len(table.Rows))
	return table, nil
}

// RepeatedMeasures computes repeated-measures power of a state column
// over alpha diversity
func (s *PowerService) RepeatedMeasures(ctx context.Context, req RepeatedMeasuresRequest) (*stats.RepeatedMeasuresTable, error) {
	kind := ports.ResultKindRepeatedMeasures
	start := time.Now()

	if s.data.Alpha == nil {
		return nil, s.fail(kind, start, errors.InvalidInput("no alpha diversity data loaded", nil))
	}
	h, err := divhandler.NewRepeatedMeasuresHandler(s.data.Alpha, s.data.Metadata, req.IndividualColumn, s.handlerOptions()...)
	if err != nil {
		return nil, s.fail(kind, start, err)
	}
	table, err := h.PowerAnalysisTable(req.StateColumn, req.Grid)
	if err != nil {
		return nil, s.fail(kind, start, err)
	}

	if s.repo != nil {
		if err := s.repo.SaveRepeatedMeasuresTable(ctx, table); err != nil {
			return nil, s.persistFailed(kind, start, table.ID, err)
		}
	}
	s.succeed(kind, start, table.ID, len(table.Rows))
	return table, nil
}

// GetPowerTable loads a stored power table
func (s *PowerService) GetPowerTable(ctx context.Context, id core.ID) (*stats.PowerTable, error) {
	if s.repo == nil {
		return nil, errors.NotFound(fmt.Sprintf("power table %s", id))
	}
	return s.repo.GetPowerTable(ctx, id)
}

// ListResults lists stored result sets, newest first
func (s *PowerService) ListResults(ctx context.Context, limit int) ([]ports.ResultSummary, error) {
	if s.repo == nil {
		return []ports.ResultSummary{}, nil
	}
	return s.repo.ListResults(ctx, limit)
}

func (s *PowerService) succeed(kind ports.ResultKind, start time.Time, id core.ID, rows int) {
	elapsed := time.Since(start)
	s.metrics.Observe(string(kind), metrics.OutcomeSuccess, elapsed, rows)
	s.logger.Info("%s %s: %d rows in %s", kind, id, rows, elapsed)
}

func (s *PowerService) fail(kind ports.ResultKind, start time.Time, err error) error {
	outcome := metrics.OutcomeError
	if core.IsValidationError(err) || errors.GetCode(err) == errors.CodeInvalidInput {
		outcome = metrics.OutcomeInvalid
	}
	s.metrics.Observe(string(kind), outcome, time.Since(start), 0)
	s.logger.Debug("%s failed: %v", kind, err)

	if errors.IsAppError(err) {
		return err
	}
	return errors.FromAnalysis(err, fmt.Sprintf("%s analysis failed", kind))
}

func (s *PowerService) persistFailed(kind ports.ResultKind, start time.Time, id core.ID, err error) error {
	s.metrics.Observe(string(kind), metrics.OutcomeError, time.Since(start), 0)
	s.logger.Error("failed to persist %s %s: %v", kind, id, err)
	return errors.DatabaseError(fmt.Sprintf("failed to persist %s results", kind), err)
}
