package power

import (
	"math"

	"evident/domain/core"
	"evident/domain/stats"
)

// RepeatedMeasuresPower returns the power of the within-subjects ANOVA
// for effect size f. Degrees of freedom are scaled by the sphericity
// correction epsilon and the noncentrality is inflated by 1/(1 - rho).
func RepeatedMeasuresPower(f float64, req stats.RepeatedMeasuresRequest) (float64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, core.NewInvalidArgumentError("effect size", "must be finite and non-negative")
	}

	n := float64(req.Subjects)
	m := float64(req.Measurements)
	eps := req.Epsilon

	df1 := (m - 1) * eps
	df2 := (n - 1) * (m - 1) * eps
	lambda := f * f * n * m * eps / (1 - req.Correlation)

	crit := fQuantile(1-req.Alpha, df1, df2)
	return NoncentralFSurvival(crit, df1, df2, lambda), nil
}
