package power

import (
	"errors"
	"testing"

	"evident/domain/core"
	"evident/domain/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classificationD is the Cohen's d of the two-level testkit column
const classificationD = 1.0311026931710214

func TestNoncentralTCDF(t *testing.T) {
	tests := []struct {
		name     string
		t, df    float64
		delta    float64
		expected float64
	}{
		{"upper tail", 2.0, 38, 3.0, 0.16166685250540794},
		{"negative t", -2.0, 38, 3.0, 5.685293233970157e-07},
		{"small df", 1.5, 10, 0.5, 0.8196538798602222},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NoncentralTCDF(tt.t, tt.df, tt.delta), 1e-10)
		})
	}
}

func TestNoncentralTCDF_CentralLimit(t *testing.T) {
	// delta = 0 reduces to Student's t
	assert.InDelta(t, 0.975, NoncentralTCDF(2.024394163911971, 38, 0), 1e-9)
	assert.InDelta(t, 0.5, NoncentralTCDF(0, 12, 0), 1e-12)
}

func TestQuantiles(t *testing.T) {
	assert.InDelta(t, 2.024394163911971, tQuantile(0.975, 38), 1e-9)
	assert.InDelta(t, 3.1588427192606385, fQuantile(0.95, 2, 57), 1e-8)
}

func TestNoncentralFSurvival(t *testing.T) {
	crit := fQuantile(0.95, 2, 57)
	assert.InDelta(t, 0.7757328278298754, NoncentralFSurvival(crit, 2, 57, 9.6), 1e-7)

	// no noncentrality: the survival at the critical value is alpha
	assert.InDelta(t, 0.05, NoncentralFSurvival(crit, 2, 57, 0), 1e-9)

	assert.Equal(t, 1.0, NoncentralFSurvival(0, 2, 57, 9.6))
}

func TestNewEquation(t *testing.T) {
	eq, err := NewEquation(2)
	require.NoError(t, err)
	assert.Equal(t, TwoSample, eq.Family)
	assert.Equal(t, stats.MetricCohensD, eq.Metric())

	eq, err = NewEquation(4)
	require.NoError(t, err)
	assert.Equal(t, KGroup, eq.Family)
	assert.Equal(t, 4, eq.Groups)
	assert.Equal(t, stats.MetricCohensF, eq.Metric())

	_, err = NewEquation(1)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestSolve_TwoSamplePower(t *testing.T) {
	sol, err := Analyze(2, classificationD, stats.PowerRequest{
		Alpha:             stats.Float(0.05),
		TotalObservations: stats.Int(40),
	})
	require.NoError(t, err)

	assert.Equal(t, stats.ParamPower, sol.SolvedFor)
	assert.InDelta(t, 0.888241, sol.Value(), 1e-6)
	// combined count is halved for the per-group equation
	assert.Equal(t, 20.0, sol.Nobs)
	assert.Equal(t, 40, sol.TotalObservations)
}

func TestSolve_TwoSampleSignInvariant(t *testing.T) {
	req := stats.PowerRequest{Alpha: stats.Float(0.05), TotalObservations: stats.Int(40)}
	pos, err := Analyze(2, classificationD, req)
	require.NoError(t, err)
	neg, err := Analyze(2, -classificationD, req)
	require.NoError(t, err)
	assert.InDelta(t, pos.Power, neg.Power, 1e-12)
}

func TestSolve_TwoSampleTotalObservations(t *testing.T) {
	sol, err := Analyze(2, classificationD, stats.PowerRequest{
		Alpha: stats.Float(0.05),
		Power: stats.Float(0.888241),
	})
	require.NoError(t, err)

	assert.Equal(t, stats.ParamTotalObservations, sol.SolvedFor)
	assert.InDelta(t, 19.99998431717031, sol.Nobs, 1e-6)
	assert.Equal(t, 40, sol.TotalObservations)
	assert.Equal(t, 40.0, sol.Value())
}

func TestSolve_TwoSampleAlpha(t *testing.T) {
	sol, err := Analyze(2, classificationD, stats.PowerRequest{
		Power:             stats.Float(0.888241),
		TotalObservations: stats.Int(40),
	})
	require.NoError(t, err)

	assert.Equal(t, stats.ParamAlpha, sol.SolvedFor)
	assert.InDelta(t, 0.05, sol.Alpha, 1e-6)
}

func TestSolve_RoundTrip(t *testing.T) {
	for _, total := range []int{12, 30, 64, 128} {
		forward, err := Analyze(2, 0.5, stats.PowerRequest{Alpha: stats.Float(0.05), TotalObservations: stats.Int(total)})
		require.NoError(t, err)

		back, err := Analyze(2, 0.5, stats.PowerRequest{Alpha: stats.Float(0.05), Power: stats.Float(forward.Power)})
		require.NoError(t, err)
		assert.InDelta(t, float64(total)/2, back.Nobs, 1e-6, "total %d", total)
		assert.Equal(t, total, back.TotalObservations)
	}
}

func TestSolve_CohenConventionalSize(t *testing.T) {
	sol, err := Analyze(2, 0.5, stats.PowerRequest{Alpha: stats.Float(0.05), TotalObservations: stats.Int(128)})
	require.NoError(t, err)
	assert.InDelta(t, 0.8014595579222692, sol.Power, 1e-8)

	sol, err = Analyze(2, 0.5, stats.PowerRequest{Alpha: stats.Float(0.05), Power: stats.Float(0.8)})
	require.NoError(t, err)
	assert.Equal(t, 128, sol.TotalObservations)
}

func TestSolve_KGroupPower(t *testing.T) {
	sol, err := Analyze(3, 0.4, stats.PowerRequest{
		Alpha:             stats.Float(0.05),
		TotalObservations: stats.Int(60),
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.775732, sol.Power, 1.5e-6)
	// not halved for k groups
	assert.Equal(t, 60.0, sol.Nobs)
}

func TestSolve_KGroupTotalObservations(t *testing.T) {
	sol, err := Analyze(3, 0.4, stats.PowerRequest{
		Alpha: stats.Float(0.05),
		Power: stats.Float(0.7757),
	})
	require.NoError(t, err)
	assert.InDelta(t, 59.9957247565394, sol.Nobs, 1e-3)
	assert.Equal(t, 60, sol.TotalObservations)
}

func TestSolve_WrongArguments(t *testing.T) {
	tests := []struct {
		name string
		req  stats.PowerRequest
		msg  string
	}{
		{
			name: "all provided",
			req:  stats.PowerRequest{Alpha: stats.Float(0.05), Power: stats.Float(0.8), TotalObservations: stats.Int(40)},
			msg: "All arguments were provided. Exactly one of alpha, power, or total_observations must be None. " +
				"Arguments: alpha = 0.05, power = 0.8, total_observations = 40.",
		},
		{
			name: "two missing",
			req:  stats.PowerRequest{Power: stats.Float(0.8)},
			msg: "More than 1 argument was provided. Exactly one of alpha, power, or total_observations must be None. " +
				"Arguments: alpha = None, power = 0.8, total_observations = None.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(2, 0.5, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrWrongPowerArguments)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestSolve_NoSolution(t *testing.T) {
	_, err := Analyze(2, 0, stats.PowerRequest{Alpha: stats.Float(0.05), Power: stats.Float(0.8)})
	assert.True(t, errors.Is(err, core.ErrNoSolution))
}

func TestSolve_TooFewObservations(t *testing.T) {
	_, err := Analyze(3, 0.4, stats.PowerRequest{Alpha: stats.Float(0.05), TotalObservations: stats.Int(3)})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestRepeatedMeasuresPower(t *testing.T) {
	tests := []struct {
		name     string
		f        float64
		req      stats.RepeatedMeasuresRequest
		expected float64
	}{
		{
			name:     "spherical",
			f:        0.25,
			req:      stats.RepeatedMeasuresRequest{Subjects: 20, Measurements: 3, Alpha: 0.05, Correlation: 0.5, Epsilon: 1},
			expected: 0.6505151402156861,
		},
		{
			name:     "corrected",
			f:        0.25,
			req:      stats.RepeatedMeasuresRequest{Subjects: 20, Measurements: 4, Alpha: 0.05, Correlation: 0.3, Epsilon: 0.8},
			expected: 0.5004062206851194,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RepeatedMeasuresPower(tt.f, tt.req)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-6)
		})
	}
}

func TestRepeatedMeasuresPower_Invalid(t *testing.T) {
	base := stats.RepeatedMeasuresRequest{Subjects: 20, Measurements: 3, Alpha: 0.05, Correlation: 0.5, Epsilon: 1}

	low := base
	low.Epsilon = 0.4 // below 1/(m-1)
	_, err := RepeatedMeasuresPower(0.25, low)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	rho := base
	rho.Correlation = 1
	_, err = RepeatedMeasuresPower(0.25, rho)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = RepeatedMeasuresPower(-1, base)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestBrentRoot(t *testing.T) {
	root, err := brentRoot(func(x float64) float64 { return x*x - 2 }, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.4142135623730951, root, 1e-11)

	_, err = brentRoot(func(x float64) float64 { return x*x + 1 }, -1, 1)
	assert.ErrorIs(t, err, core.ErrNoSolution)
}
