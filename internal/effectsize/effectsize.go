// Package effectsize computes standardized group differences: Cohen's d
// for two groups and Cohen's f for three or more.
package effectsize

import (
	"fmt"
	"math"

	"evident/domain/core"
	"evident/domain/stats"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
)

// Group is a labeled set of observations
type Group struct {
	Label  string
	Values []float64
}

// Pair is Cohen's d between two groups, d = mean(First) - mean(Second)
type Pair struct {
	First  string
	Second string
	D      float64
}

// Compute returns Cohen's d for two groups and Cohen's f for more.
// For two groups d = mean(groups[0]) - mean(groups[1]) over the pooled SD.
func Compute(groups []Group) (stats.Metric, float64, error) {
	switch {
	case len(groups) < 2:
		return "", 0, core.NewInvalidArgumentError("groups", fmt.Sprintf("need at least 2, got %d", len(groups)))
	case len(groups) == 2:
		d, err := CohensD(groups[0], groups[1])
		return stats.MetricCohensD, d, err
	default:
		f, err := CohensF(groups)
		return stats.MetricCohensF, f, err
	}
}

// CohensD is the standardized mean difference of a and b using the pooled
// standard deviation (ddof = 1).
func CohensD(a, b Group) (float64, error) {
	sd, err := PooledSD([]Group{a, b})
	if err != nil {
		return 0, err
	}
	ma, err := mstats.Mean(a.Values)
	if err != nil {
		return 0, fmt.Errorf("mean of %q: %w", a.Label, err)
	}
	mb, err := mstats.Mean(b.Values)
	if err != nil {
		return 0, fmt.Errorf("mean of %q: %w", b.Label, err)
	}
	return (ma - mb) / sd, nil
}

// CohensF is sqrt(eta^2 / (1 - eta^2)) with eta^2 = SS_between / SS_total
func CohensF(groups []Group) (float64, error) {
	if err := checkSizes(groups); err != nil {
		return 0, err
	}

	var all []float64
	for _, g := range groups {
		all = append(all, g.Values...)
	}
	grand := gstat.Mean(all, nil)

	ssTotal := 0.0
	for _, v := range all {
		ssTotal += (v - grand) * (v - grand)
	}
	ssBetween := 0.0
	for _, g := range groups {
		m := gstat.Mean(g.Values, nil)
		ssBetween += float64(len(g.Values)) * (m - grand) * (m - grand)
	}
	if ssTotal == 0 {
		return 0, fmt.Errorf("%w: all values are identical", core.ErrInvalidData)
	}
	return FromEtaSquared(ssBetween / ssTotal)
}

// FromEtaSquared converts a (partial) eta squared into Cohen's f
func FromEtaSquared(eta2 float64) (float64, error) {
	if eta2 < 0 || eta2 >= 1 || math.IsNaN(eta2) {
		return 0, fmt.Errorf("%w: eta squared %g outside [0, 1)", core.ErrInvalidData, eta2)
	}
	return math.Sqrt(eta2 / (1 - eta2)), nil
}

// Pairwise returns Cohen's d for every pair of groups, in input order
func Pairwise(groups []Group) ([]Pair, error) {
	if len(groups) < 2 {
		return nil, core.NewInvalidArgumentError("groups", fmt.Sprintf("need at least 2, got %d", len(groups)))
	}
	pairs := make([]Pair, 0, len(groups)*(len(groups)-1)/2)
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			d, err := CohensD(groups[i], groups[j])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{First: groups[i].Label, Second: groups[j].Label, D: d})
		}
	}
	return pairs, nil
}

// PooledSD is sqrt(sum((n_i - 1) * s_i^2) / (N - k))
func PooledSD(groups []Group) (float64, error) {
	if err := checkSizes(groups); err != nil {
		return 0, err
	}

	n := 0
	ss := 0.0
	for _, g := range groups {
		n += len(g.Values)
		if len(g.Values) < 2 {
			continue
		}
		v, err := mstats.SampleVariance(g.Values)
		if err != nil {
			return 0, fmt.Errorf("variance of %q: %w", g.Label, err)
		}
		ss += float64(len(g.Values)-1) * v
	}
	df := n - len(groups)
	if df <= 0 {
		return 0, &core.InsufficientSamplesError{Level: groups[0].Label, Count: len(groups[0].Values), Required: 2}
	}
	sd := math.Sqrt(ss / float64(df))
	if sd == 0 {
		return 0, fmt.Errorf("%w: pooled standard deviation is zero", core.ErrInvalidData)
	}
	return sd, nil
}

// FromDifference standardizes an absolute difference in means by the pooled
// SD of groups. Two groups give Cohen's d; k groups give Cohen's f under
// the minimum-variability pattern, f = d * sqrt(1 / (2k)).
func FromDifference(difference float64, groups []Group) (stats.Metric, float64, error) {
	sd, err := PooledSD(groups)
	if err != nil {
		return "", 0, err
	}
	d := difference / sd
	if len(groups) == 2 {
		return stats.MetricCohensD, d, nil
	}
	return stats.MetricCohensF, d * math.Sqrt(1/(2*float64(len(groups)))), nil
}

// PartialEtaSquared computes SS_effect / (SS_effect + SS_error) for a
// complete subjects x conditions matrix, with SS_error the residual after
// removing condition and subject sums of squares.
func PartialEtaSquared(matrix [][]float64) (float64, error) {
	subjects := len(matrix)
	if subjects < 2 {
		return 0, &core.InsufficientSamplesError{Level: "subjects", Count: subjects, Required: 2}
	}
	conditions := len(matrix[0])
	if conditions < 2 {
		return 0, &core.InsufficientSamplesError{Level: "conditions", Count: conditions, Required: 2}
	}

	all := make([]float64, 0, subjects*conditions)
	subjectMeans := make([]float64, subjects)
	for i, row := range matrix {
		if len(row) != conditions {
			return 0, fmt.Errorf("%w: subject %d has %d measurements, expected %d",
				core.ErrUnbalancedDesign, i, len(row), conditions)
		}
		all = append(all, row...)
		subjectMeans[i] = gstat.Mean(row, nil)
	}
	grand := gstat.Mean(all, nil)

	conditionMeans := make([]float64, conditions)
	column := make([]float64, subjects)
	for j := 0; j < conditions; j++ {
		for i := range matrix {
			column[i] = matrix[i][j]
		}
		conditionMeans[j] = gstat.Mean(column, nil)
	}

	ssTotal := sumSquaredDeviations(all, grand, 1)
	ssEffect := sumSquaredDeviations(conditionMeans, grand, float64(subjects))
	ssSubject := sumSquaredDeviations(subjectMeans, grand, float64(conditions))
	ssError := ssTotal - ssEffect - ssSubject

	denom := ssEffect + ssError
	if denom <= 0 {
		return 0, fmt.Errorf("%w: no within-subject variation", core.ErrInvalidData)
	}
	return ssEffect / denom, nil
}

func sumSquaredDeviations(values []float64, center, weight float64) float64 {
	dev := append([]float64(nil), values...)
	floats.AddConst(-center, dev)
	return weight * floats.Dot(dev, dev)
}

func checkSizes(groups []Group) error {
	if len(groups) < 2 {
		return core.NewInvalidArgumentError("groups", fmt.Sprintf("need at least 2, got %d", len(groups)))
	}
	for _, g := range groups {
		if len(g.Values) == 0 {
			return &core.InsufficientSamplesError{Level: g.Label, Count: 0, Required: 1}
		}
	}
	return nil
}
