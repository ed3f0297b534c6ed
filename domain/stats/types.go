// Package stats defines the request and result shapes of power and
// effect-size analyses.
package stats

import (
	"evident/domain/core"
)

// Metric names the effect-size statistic
type Metric string

const (
	MetricCohensD Metric = "cohens_d" // standardized mean difference, two groups
	MetricCohensF Metric = "cohens_f" // omnibus, three or more groups
)

// Parameter names one of the three interchangeable power-analysis quantities
type Parameter string

const (
	ParamAlpha             Parameter = "alpha"
	ParamPower             Parameter = "power"
	ParamTotalObservations Parameter = "total_observations"
)

// PowerRequest fixes two of alpha, power and total_observations; the
// third is nil and gets solved. Difference optionally replaces the
// observed difference in group means.
type PowerRequest struct {
	Alpha             *float64 `json:"alpha,omitempty"`
	Power             *float64 `json:"power,omitempty"`
	TotalObservations *int     `json:"total_observations,omitempty"`
	Difference        *float64 `json:"difference,omitempty"`
}

// Missing returns the parameter left to solve, or WrongPowerArgumentsError
// unless exactly one of alpha, power and total_observations is nil.
func (r PowerRequest) Missing() (Parameter, error) {
	var missing []Parameter
	if r.Alpha == nil {
		missing = append(missing, ParamAlpha)
	}
	if r.Power == nil {
		missing = append(missing, ParamPower)
	}
	if r.TotalObservations == nil {
		missing = append(missing, ParamTotalObservations)
	}
	if len(missing) != 1 {
		return "", &core.WrongPowerArgumentsError{
			Alpha:             r.Alpha,
			Power:             r.Power,
			TotalObservations: r.TotalObservations,
		}
	}
	return missing[0], nil
}

// Validate checks Missing and the ranges of the supplied values
func (r PowerRequest) Validate() error {
	if _, err := r.Missing(); err != nil {
		return err
	}
	if r.Alpha != nil && (*r.Alpha <= 0 || *r.Alpha >= 1) {
		return core.NewInvalidArgumentError("alpha", "must be in (0, 1)")
	}
	if r.Power != nil && (*r.Power <= 0 || *r.Power >= 1) {
		return core.NewInvalidArgumentError("power", "must be in (0, 1)")
	}
	if r.TotalObservations != nil && *r.TotalObservations <= 0 {
		return core.NewInvalidArgumentError("total_observations", "must be positive")
	}
	if r.Difference != nil && *r.Difference <= 0 {
		return core.NewInvalidArgumentError("difference", "must be positive")
	}
	return nil
}

// PowerGrid is the list-valued form of PowerRequest. Exactly one of
// Alpha, Power and TotalObservations is empty; an empty Difference means
// the observed effect size.
type PowerGrid struct {
	Alpha             []float64 `json:"alpha,omitempty"`
	Power             []float64 `json:"power,omitempty"`
	TotalObservations []int     `json:"total_observations,omitempty"`
	Difference        []float64 `json:"difference,omitempty"`
}

// Requests expands the grid alpha-major, then power, total_observations
// and difference.
func (g PowerGrid) Requests() ([]PowerRequest, error) {
	alphas := floatOptions(g.Alpha)
	powers := floatOptions(g.Power)
	nobs := intOptions(g.TotalObservations)
	diffs := floatOptions(g.Difference)

	var out []PowerRequest
	for _, a := range alphas {
		for _, p := range powers {
			for _, n := range nobs {
				for _, d := range diffs {
					req := PowerRequest{Alpha: a, Power: p, TotalObservations: n, Difference: d}
					if err := req.Validate(); err != nil {
						return nil, err
					}
					out = append(out, req)
				}
			}
		}
	}
	return out, nil
}

// PowerResult is one row of a power-analysis table
type PowerResult struct {
	Column            string    `json:"column"`
	Metric            Metric    `json:"metric"`
	EffectSize        float64   `json:"effect_size"`
	Difference        *float64  `json:"difference,omitempty"`
	Alpha             float64   `json:"alpha"`
	Power             float64   `json:"power"`
	TotalObservations int       `json:"total_observations"`
	SolvedFor         Parameter `json:"solved_for"`
}

// Solved returns the value of the parameter that was solved for
func (r PowerResult) Solved() float64 {
	switch r.SolvedFor {
	case ParamAlpha:
		return r.Alpha
	case ParamPower:
		return r.Power
	default:
		return float64(r.TotalObservations)
	}
}

// PowerTable is an identified set of power results
type PowerTable struct {
	ID   core.ID       `json:"id"`
	Rows []PowerResult `json:"rows"`
}

// EffectSizeResult is the effect size of one column, or one pair of its
// levels when pairwise. For Cohen's d, EffectSize = mean(Group1) - mean(Group2).
type EffectSizeResult struct {
	Column     string  `json:"column"`
	Metric     Metric  `json:"metric"`
	EffectSize float64 `json:"effect_size"`
	Group1     string  `json:"group_1,omitempty"`
	Group2     string  `json:"group_2,omitempty"`
}

// EffectSizeTable collects effect sizes over columns
type EffectSizeTable struct {
	ID       core.ID            `json:"id"`
	Pairwise bool               `json:"pairwise"`
	Rows     []EffectSizeResult `json:"rows"`
}

// RepeatedMeasuresRequest parameterizes a within-subjects ANOVA power calculation
type RepeatedMeasuresRequest struct {
	Subjects     int     `json:"subjects"`
	Measurements int     `json:"measurements"`
	Alpha        float64 `json:"alpha"`
	Correlation  float64 `json:"correlation"` // between repeated measurements
	Epsilon      float64 `json:"epsilon"`     // sphericity correction
}

// Validate checks parameter ranges
func (r RepeatedMeasuresRequest) Validate() error {
	if r.Subjects < 2 {
		return core.NewInvalidArgumentError("subjects", "must be at least 2")
	}
	if r.Measurements < 2 {
		return core.NewInvalidArgumentError("measurements", "must be at least 2")
	}
	if r.Alpha <= 0 || r.Alpha >= 1 {
		return core.NewInvalidArgumentError("alpha", "must be in (0, 1)")
	}
	if r.Correlation <= -1 || r.Correlation >= 1 {
		return core.NewInvalidArgumentError("correlation", "must be in (-1, 1)")
	}
	lower := 1 / float64(r.Measurements-1)
	if r.Epsilon < lower || r.Epsilon > 1 {
		return core.NewInvalidArgumentError("epsilon", "must be in [1/(measurements-1), 1]")
	}
	return nil
}

// RepeatedMeasuresGrid is the list-valued form of RepeatedMeasuresRequest
type RepeatedMeasuresGrid struct {
	Subjects     []int     `json:"subjects"`
	Measurements []int     `json:"measurements"`
	Alpha        []float64 `json:"alpha"`
	Correlation  []float64 `json:"correlation"`
	Epsilon      []float64 `json:"epsilon"`
}

// Requests expands the grid in field order. Every list must be non-empty.
func (g RepeatedMeasuresGrid) Requests() ([]RepeatedMeasuresRequest, error) {
	switch {
	case len(g.Subjects) == 0:
		return nil, core.NewInvalidArgumentError("subjects", "must not be empty")
	case len(g.Measurements) == 0:
		return nil, core.NewInvalidArgumentError("measurements", "must not be empty")
	case len(g.Alpha) == 0:
		return nil, core.NewInvalidArgumentError("alpha", "must not be empty")
	case len(g.Correlation) == 0:
		return nil, core.NewInvalidArgumentError("correlation", "must not be empty")
	case len(g.Epsilon) == 0:
		return nil, core.NewInvalidArgumentError("epsilon", "must not be empty")
	}

	var out []RepeatedMeasuresRequest
	for _, s := range g.Subjects {
		for _, m := range g.Measurements {
			for _, a := range g.Alpha {
				for _, c := range g.Correlation {
					for _, e := range g.Epsilon {
						req := RepeatedMeasuresRequest{Subjects: s, Measurements: m, Alpha: a, Correlation: c, Epsilon: e}
						if err := req.Validate(); err != nil {
							return nil, err
						}
						out = append(out, req)
					}
				}
			}
		}
	}
	return out, nil
}

// RepeatedMeasuresResult is one row of a repeated-measures power table
type RepeatedMeasuresResult struct {
	StateColumn  string  `json:"state_column"`
	EffectSize   float64 `json:"effect_size"`
	PartialEtaSq float64 `json:"partial_eta_squared"`
	Subjects     int     `json:"subjects"`
	Measurements int     `json:"measurements"`
	Alpha        float64 `json:"alpha"`
	Correlation  float64 `json:"correlation"`
	Epsilon      float64 `json:"epsilon"`
	Power        float64 `json:"power"`
}

// RepeatedMeasuresTable is an identified set of repeated-measures results
type RepeatedMeasuresTable struct {
	ID   core.ID                  `json:"id"`
	Rows []RepeatedMeasuresResult `json:"rows"`
}

// Float returns a pointer to v, for building requests
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for building requests
func Int(v int) *int { return &v }

func floatOptions(values []float64) []*float64 {
	if len(values) == 0 {
		return []*float64{nil}
	}
	out := make([]*float64, len(values))
	for i := range values {
		out[i] = Float(values[i])
	}
	return out
}

func intOptions(values []int) []*int {
	if len(values) == 0 {
		return []*int{nil}
	}
	out := make([]*int, len(values))
	for i := range values {
		out[i] = Int(values[i])
	}
	return out
}
