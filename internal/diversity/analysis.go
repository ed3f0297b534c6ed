package diversity

import (
	"context"
	"fmt"
	"runtime"

	"evident/domain/core"
	"evident/domain/stats"
	"evident/internal/effectsize"
	"evident/internal/power"
	"evident/internal/validation"

	"golang.org/x/sync/errgroup"
)

// Partition validates column and partitions the common samples by level
func (h *Handler) Partition(column string) (*validation.Partition, error) {
	return validation.Validate(column, h.metadata, h.maxLevels, h.minCount)
}

func (h *Handler) groups(p *validation.Partition) ([]effectsize.Group, error) {
	groups := make([]effectsize.Group, len(p.Levels))
	for i, level := range p.Levels {
		values, err := h.data.groupValues(p.Groups[level])
		if err != nil {
			return nil, fmt.Errorf("column %s level %q: %w", p.Column, level, err)
		}
		groups[i] = effectsize.Group{Label: level, Values: values}
	}
	return groups, nil
}

// EffectSize computes Cohen's d (two levels) or Cohen's f (more) for column.
// Two-level results carry the levels; d = mean(Group1) - mean(Group2).
func (h *Handler) EffectSize(column string) (stats.EffectSizeResult, error) {
	p, err := h.Partition(column)
	if err != nil {
		return stats.EffectSizeResult{}, err
	}
	groups, err := h.groups(p)
	if err != nil {
		return stats.EffectSizeResult{}, err
	}
	metric, value, err := h.effectSize(groups)
	if err != nil {
		return stats.EffectSizeResult{}, fmt.Errorf("effect size of %s: %w", column, err)
	}

	result := stats.EffectSizeResult{Column: column, Metric: metric, EffectSize: value}
	if len(p.Levels) == 2 {
		result.Group1, result.Group2 = p.Levels[0], p.Levels[1]
	}
	return result, nil
}

// PairwiseEffectSizes computes Cohen's d for every pair of levels of column
func (h *Handler) PairwiseEffectSizes(column string) ([]stats.EffectSizeResult, error) {
	p, err := h.Partition(column)
	if err != nil {
		return nil, err
	}
	groups, err := h.groups(p)
	if err != nil {
		return nil, err
	}
	pairs, err := effectsize.Pairwise(groups)
	if err != nil {
		return nil, fmt.Errorf("pairwise effect sizes of %s: %w", column, err)
	}

	results := make([]stats.EffectSizeResult, len(pairs))
	for i, pair := range pairs {
		results[i] = stats.EffectSizeResult{
			Column:     column,
			Metric:     stats.MetricCohensD,
			EffectSize: pair.D,
			Group1:     pair.First,
			Group2:     pair.Second,
		}
	}
	return results, nil
}

// EffectSizeByCategory computes the effect size of every column, or all
// pairwise effect sizes when pairwise is set. Up to nJobs columns run at
// once; -1 uses every CPU. Rows follow the order of columns.
func (h *Handler) EffectSizeByCategory(ctx context.Context, columns []string, pairwise bool, nJobs int) (*stats.EffectSizeTable, error) {
	if len(columns) == 0 {
		return nil, core.NewInvalidArgumentError("columns", "must not be empty")
	}
	workers, err := workerCount(nJobs)
	if err != nil {
		return nil, err
	}

	perColumn := make([][]stats.EffectSizeResult, len(columns))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, column := range columns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if pairwise {
				rows, err := h.PairwiseEffectSizes(column)
				if err != nil {
					return err
				}
				perColumn[i] = rows
				return nil
			}
			row, err := h.EffectSize(column)
			if err != nil {
				return err
			}
			perColumn[i] = []stats.EffectSizeResult{row}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := &stats.EffectSizeTable{ID: core.NewID(), Pairwise: pairwise}
	for _, rows := range perColumn {
		table.Rows = append(table.Rows, rows...)
	}
	h.logger.Debug("effect sizes: %d columns, %d rows, %d workers", len(columns), len(table.Rows), workers)
	return table, nil
}

func workerCount(nJobs int) (int, error) {
	switch {
	case nJobs == -1:
		return runtime.NumCPU(), nil
	case nJobs >= 1:
		return nJobs, nil
	default:
		return 0, core.NewInvalidArgumentError("n_jobs", fmt.Sprintf("must be positive or -1, got %d", nJobs))
	}
}

// PowerAnalysis solves req for column and returns the solved value:
// alpha, power, or the combined total_observations.
func (h *Handler) PowerAnalysis(column string, req stats.PowerRequest) (float64, error) {
	result, err := h.PowerAnalysisResult(column, req)
	if err != nil {
		return 0, err
	}
	return result.Solved(), nil
}

// PowerAnalysisResult solves req for column and returns the full row
func (h *Handler) PowerAnalysisResult(column string, req stats.PowerRequest) (stats.PowerResult, error) {
	if err := req.Validate(); err != nil {
		return stats.PowerResult{}, err
	}
	p, err := h.Partition(column)
	if err != nil {
		return stats.PowerResult{}, err
	}
	groups, err := h.groups(p)
	if err != nil {
		return stats.PowerResult{}, err
	}
	observed, err := h.observedEffect(column, groups, req)
	if err != nil {
		return stats.PowerResult{}, err
	}
	return h.solve(column, groups, observed, req)
}

// PowerAnalysisTable solves every request of the grid for column. The whole
// grid is validated before anything is computed.
func (h *Handler) PowerAnalysisTable(column string, grid stats.PowerGrid) (*stats.PowerTable, error) {
	requests, err := grid.Requests()
	if err != nil {
		return nil, err
	}
	p, err := h.Partition(column)
	if err != nil {
		return nil, err
	}
	groups, err := h.groups(p)
	if err != nil {
		return nil, err
	}

	var observed float64
	computed := false
	table := &stats.PowerTable{ID: core.NewID(), Rows: make([]stats.PowerResult, 0, len(requests))}
	for _, req := range requests {
		if req.Difference == nil && !computed {
			if observed, err = h.observedEffect(column, groups, req); err != nil {
				return nil, err
			}
			computed = true
		}
		row, err := h.solve(column, groups, observed, req)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func (h *Handler) observedEffect(column string, groups []effectsize.Group, req stats.PowerRequest) (float64, error) {
	if req.Difference != nil {
		return 0, nil
	}
	_, value, err := h.effectSize(groups)
	if err != nil {
		return 0, fmt.Errorf("effect size of %s: %w", column, err)
	}
	return value, nil
}

// solve runs the power equation for groups. A request difference replaces
// the observed effect size.
func (h *Handler) solve(column string, groups []effectsize.Group, observed float64, req stats.PowerRequest) (stats.PowerResult, error) {
	eq, err := power.NewEquation(len(groups))
	if err != nil {
		return stats.PowerResult{}, err
	}

	effect := observed
	if req.Difference != nil {
		if _, effect, err = effectsize.FromDifference(*req.Difference, groups); err != nil {
			return stats.PowerResult{}, fmt.Errorf("effect size of %s: %w", column, err)
		}
	}

	sol, err := eq.Solve(effect, req)
	if err != nil {
		return stats.PowerResult{}, fmt.Errorf("power analysis of %s: %w", column, err)
	}
	return stats.PowerResult{
		Column:            column,
		Metric:            eq.Metric(),
		EffectSize:        effect,
		Difference:        req.Difference,
		Alpha:             sol.Alpha,
		Power:             sol.Power,
		TotalObservations: sol.TotalObservations,
		SolvedFor:         sol.SolvedFor,
	}, nil
}
