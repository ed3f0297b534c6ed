package diversity

import (
	"fmt"
	"sort"

	"evident/domain/core"
	"evident/domain/diversity"
	"evident/domain/metadata"
	"evident/domain/stats"
	"evident/internal/effectsize"
	"evident/internal/power"
)

// RepeatedMeasuresHandler analyzes alpha diversity measured repeatedly on
// the same individuals, one measurement per individual and state.
type RepeatedMeasuresHandler struct {
	*AlphaHandler
	individualColumn string
}

// NewRepeatedMeasuresHandler builds an alpha handler whose individuals are
// identified by individualColumn.
func NewRepeatedMeasuresHandler(v *diversity.Vector, md *metadata.Table, individualColumn string, opts ...Option) (*RepeatedMeasuresHandler, error) {
	if _, err := md.Column(individualColumn); err != nil {
		return nil, err
	}
	alpha, err := NewAlphaHandler(v, md, opts...)
	if err != nil {
		return nil, err
	}
	return &RepeatedMeasuresHandler{AlphaHandler: alpha, individualColumn: individualColumn}, nil
}

// IndividualColumn returns the metadata column naming each individual
func (h *RepeatedMeasuresHandler) IndividualColumn() string {
	return h.individualColumn
}

// SubjectMatrix arranges values as individuals x states. Individuals
// without a value for every state are dropped; two samples of one
// individual in the same state fail with ErrUnbalancedDesign. Rows are
// sorted by individual and columns follow the sorted states.
func (h *RepeatedMeasuresHandler) SubjectMatrix(stateColumn string) ([]string, []string, [][]float64, error) {
	p, err := h.Partition(stateColumn)
	if err != nil {
		return nil, nil, nil, err
	}
	stateIndex := make(map[string]int, len(p.Levels))
	for i, level := range p.Levels {
		stateIndex[level] = i
	}

	cells := make(map[string]map[int]float64)
	for _, level := range p.Levels {
		for _, id := range p.Groups[level] {
			subject, err := h.metadata.Value(h.individualColumn, id)
			if err != nil {
				return nil, nil, nil, err
			}
			if subject == "" {
				continue
			}
			value, ok := h.values.vector.Value(id)
			if !ok {
				continue
			}
			row, exists := cells[subject]
			if !exists {
				row = make(map[int]float64, len(p.Levels))
				cells[subject] = row
			}
			if _, dup := row[stateIndex[level]]; dup {
				return nil, nil, nil, fmt.Errorf("%w: %s %q has more than one sample in state %q",
					core.ErrUnbalancedDesign, h.individualColumn, subject, level)
			}
			row[stateIndex[level]] = value
		}
	}

	subjects := make([]string, 0, len(cells))
	for subject, row := range cells {
		if len(row) == len(p.Levels) {
			subjects = append(subjects, subject)
		}
	}
	sort.Strings(subjects)

	matrix := make([][]float64, len(subjects))
	for i, subject := range subjects {
		matrix[i] = make([]float64, len(p.Levels))
		for j := range p.Levels {
			matrix[i][j] = cells[subject][j]
		}
	}
	if dropped := len(cells) - len(subjects); dropped > 0 {
		h.logger.Debug("repeated measures: dropped %d incomplete individuals of %d", dropped, len(cells))
	}
	return subjects, p.Levels, matrix, nil
}

// EffectSize returns the partial eta squared of stateColumn and the
// corresponding Cohen's f
func (h *RepeatedMeasuresHandler) EffectSize(stateColumn string) (eta2, f float64, err error) {
	_, _, matrix, err := h.SubjectMatrix(stateColumn)
	if err != nil {
		return 0, 0, err
	}
	if eta2, err = effectsize.PartialEtaSquared(matrix); err != nil {
		return 0, 0, fmt.Errorf("effect size of %s: %w", stateColumn, err)
	}
	if f, err = effectsize.FromEtaSquared(eta2); err != nil {
		return 0, 0, fmt.Errorf("effect size of %s: %w", stateColumn, err)
	}
	return eta2, f, nil
}

// PowerAnalysis computes power for the observed effect of stateColumn
func (h *RepeatedMeasuresHandler) PowerAnalysis(stateColumn string, req stats.RepeatedMeasuresRequest) (stats.RepeatedMeasuresResult, error) {
	if err := req.Validate(); err != nil {
		return stats.RepeatedMeasuresResult{}, err
	}
	eta2, f, err := h.EffectSize(stateColumn)
	if err != nil {
		return stats.RepeatedMeasuresResult{}, err
	}
	return repeatedResult(stateColumn, eta2, f, req)
}

// PowerAnalysisTable computes power over every combination of the grid
func (h *RepeatedMeasuresHandler) PowerAnalysisTable(stateColumn string, grid stats.RepeatedMeasuresGrid) (*stats.RepeatedMeasuresTable, error) {
	requests, err := grid.Requests()
	if err != nil {
		return nil, err
	}
	eta2, f, err := h.EffectSize(stateColumn)
	if err != nil {
		return nil, err
	}

	table := &stats.RepeatedMeasuresTable{ID: core.NewID(), Rows: make([]stats.RepeatedMeasuresResult, 0, len(requests))}
	for _, req := range requests {
		row, err := repeatedResult(stateColumn, eta2, f, req)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func repeatedResult(stateColumn string, eta2, f float64, req stats.RepeatedMeasuresRequest) (stats.RepeatedMeasuresResult, error) {
	pw, err := power.RepeatedMeasuresPower(f, req)
	if err != nil {
		return stats.RepeatedMeasuresResult{}, fmt.Errorf("power analysis of %s: %w", stateColumn, err)
	}
	return stats.RepeatedMeasuresResult{
		StateColumn:  stateColumn,
		EffectSize:   f,
		PartialEtaSq: eta2,
		Subjects:     req.Subjects,
		Measurements: req.Measurements,
		Alpha:        req.Alpha,
		Correlation:  req.Correlation,
		Epsilon:      req.Epsilon,
		Power:        pw,
	}, nil
}
