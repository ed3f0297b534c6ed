// Package power implements the closed-form power equations of the
// two-sample t-test, the one-way ANOVA F-test and the repeated-measures
// ANOVA, each solvable for alpha, power or sample size.
package power

import (
	"fmt"
	"math"

	"evident/domain/core"
	"evident/domain/stats"
)

// Family selects the power equation by number of groups
type Family int

const (
	// TwoSample is the independent two-sample t-test with equal group sizes
	TwoSample Family = iota
	// KGroup is the one-way ANOVA F-test over k groups
	KGroup
)

func (f Family) String() string {
	switch f {
	case TwoSample:
		return "two-sample t"
	case KGroup:
		return "k-group F"
	default:
		return "unknown"
	}
}

const (
	alphaLower = 1e-10
	alphaUpper = 1 - 1e-10

	// nobsCeilSlack absorbs root-finder overshoot before rounding a solved
	// sample size up to a whole count
	nobsCeilSlack = 1e-6
	nobsMax       = 1e9
)

// Equation is a power equation with its family-specific fixed parameters
// bound. For TwoSample the solved sample size is per group (ratio 1); for
// KGroup it is the total across all Groups.
type Equation struct {
	Family Family
	Groups int
}

// NewEquation picks the equation family for the number of groups
func NewEquation(groups int) (Equation, error) {
	switch {
	case groups == 2:
		return Equation{Family: TwoSample, Groups: 2}, nil
	case groups > 2:
		return Equation{Family: KGroup, Groups: groups}, nil
	default:
		return Equation{}, core.NewInvalidArgumentError("groups", fmt.Sprintf("must be at least 2, got %d", groups))
	}
}

// Metric returns the effect-size statistic this equation consumes
func (e Equation) Metric() stats.Metric {
	if e.Family == TwoSample {
		return stats.MetricCohensD
	}
	return stats.MetricCohensF
}

// nobsArg converts a combined sample size into this equation's sample-size
// argument: halved for two groups, unchanged otherwise.
func (e Equation) nobsArg(total float64) float64 {
	if e.Family == TwoSample {
		return total / 2
	}
	return total
}

// totalCount reports a solved sample-size argument as a combined count
func (e Equation) totalCount(nobs float64) int {
	if e.Family == TwoSample {
		return 2 * int(math.Ceil(nobs-nobsCeilSlack))
	}
	return int(math.Ceil(nobs - nobsCeilSlack))
}

func (e Equation) minNobs() float64 {
	if e.Family == TwoSample {
		return 2
	}
	return float64(e.Groups) + 1
}

// Power evaluates the equation. nobs is the per-group size for TwoSample
// and the total size for KGroup.
func (e Equation) Power(effect, nobs, alpha float64) float64 {
	switch e.Family {
	case TwoSample:
		return twoSamplePower(effect, nobs, alpha)
	default:
		return kGroupPower(effect, nobs, alpha, e.Groups)
	}
}

// twoSamplePower is the two-sided power of the independent t-test
// with nobs per group.
func twoSamplePower(d, nobs, alpha float64) float64 {
	df := 2*nobs - 2
	nc := d * math.Sqrt(nobs/2)
	crit := tQuantile(1-alpha/2, df)
	upper := 1 - NoncentralTCDF(crit, df, nc)
	lower := NoncentralTCDF(-crit, df, nc)
	return clampProbability(upper + lower)
}

func kGroupPower(f, nobs, alpha float64, k int) float64 {
	df1 := float64(k - 1)
	df2 := nobs - float64(k)
	crit := fQuantile(1-alpha, df1, df2)
	return NoncentralFSurvival(crit, df1, df2, f*f*nobs)
}

// Solution is a fully determined power request
type Solution struct {
	Alpha             float64
	Power             float64
	TotalObservations int
	SolvedFor         stats.Parameter
	// Nobs is the equation's own sample-size argument, unrounded when solved
	Nobs float64
}

// Value returns the solved quantity; sample sizes are reported as counts
func (s Solution) Value() float64 {
	switch s.SolvedFor {
	case stats.ParamAlpha:
		return s.Alpha
	case stats.ParamPower:
		return s.Power
	default:
		return float64(s.TotalObservations)
	}
}

// Solve fills in whichever of alpha, power and total_observations is nil
func (e Equation) Solve(effect float64, req stats.PowerRequest) (Solution, error) {
	if err := req.Validate(); err != nil {
		return Solution{}, err
	}
	if math.IsNaN(effect) || math.IsInf(effect, 0) {
		return Solution{}, core.NewInvalidArgumentError("effect size", "must be finite")
	}
	missing, _ := req.Missing()

	switch missing {
	case stats.ParamPower:
		nobs := e.nobsArg(float64(*req.TotalObservations))
		if nobs < e.minNobs() {
			return Solution{}, e.tooFewObservations(*req.TotalObservations)
		}
		return Solution{
			Alpha:             *req.Alpha,
			Power:             e.Power(effect, nobs, *req.Alpha),
			TotalObservations: *req.TotalObservations,
			SolvedFor:         missing,
			Nobs:              nobs,
		}, nil

	case stats.ParamAlpha:
		nobs := e.nobsArg(float64(*req.TotalObservations))
		if nobs < e.minNobs() {
			return Solution{}, e.tooFewObservations(*req.TotalObservations)
		}
		target := *req.Power
		alpha, err := brentRoot(func(a float64) float64 {
			return e.Power(effect, nobs, a) - target
		}, alphaLower, alphaUpper)
		if err != nil {
			return Solution{}, fmt.Errorf("solve alpha for power %g: %w", target, err)
		}
		return Solution{
			Alpha:             alpha,
			Power:             target,
			TotalObservations: *req.TotalObservations,
			SolvedFor:         missing,
			Nobs:              nobs,
		}, nil

	default:
		alpha, target := *req.Alpha, *req.Power
		nobs, err := e.solveNobs(effect, alpha, target)
		if err != nil {
			return Solution{}, err
		}
		return Solution{
			Alpha:             alpha,
			Power:             target,
			TotalObservations: e.totalCount(nobs),
			SolvedFor:         missing,
			Nobs:              nobs,
		}, nil
	}
}

// solveNobs brackets the sample size by doubling from the smallest valid
// size, then refines with Brent's method.
func (e Equation) solveNobs(effect, alpha, target float64) (float64, error) {
	fn := func(n float64) float64 {
		return e.Power(effect, n, alpha) - target
	}

	lower := e.minNobs()
	if fn(lower) >= 0 {
		return lower, nil
	}
	upper := 2 * lower
	for fn(upper) < 0 {
		lower = upper
		upper *= 2
		if upper > nobsMax {
			return 0, fmt.Errorf("%w: power %g is not reached at alpha %g with effect size %g",
				core.ErrNoSolution, target, alpha, effect)
		}
	}
	nobs, err := brentRoot(fn, lower, upper)
	if err != nil {
		return 0, fmt.Errorf("solve total_observations for power %g: %w", target, err)
	}
	return nobs, nil
}

func (e Equation) tooFewObservations(total int) error {
	return core.NewInvalidArgumentError("total_observations",
		fmt.Sprintf("%d is too small for a %d-group %s test", total, e.Groups, e.Family))
}

// Analyze dispatches on the number of groups and solves the request for
// the given effect size.
func Analyze(groups int, effect float64, req stats.PowerRequest) (Solution, error) {
	eq, err := NewEquation(groups)
	if err != nil {
		return Solution{}, err
	}
	return eq.Solve(effect, req)
}
