package diversity

import (
	"context"
	"testing"

	"evident/domain/core"
	"evident/domain/diversity"
	"evident/domain/metadata"
	"evident/domain/stats"
	"evident/internal/effectsize"
	"evident/internal/power"
	"evident/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAlpha(t *testing.T, opts ...Option) *AlphaHandler {
	t.Helper()
	h, err := NewAlphaHandler(testkit.AlphaDiversity(), testkit.Metadata(), opts...)
	require.NoError(t, err)
	return h
}

func newBeta(t *testing.T, opts ...Option) *BetaHandler {
	t.Helper()
	h, err := NewBetaHandler(testkit.BetaDiversity(), testkit.Metadata(), opts...)
	require.NoError(t, err)
	return h
}

// fixedEffect replaces the observed effect size
func fixedEffect(value float64) EffectSizeFunc {
	return func(groups []effectsize.Group) (stats.Metric, float64, error) {
		if len(groups) == 2 {
			return stats.MetricCohensD, value, nil
		}
		return stats.MetricCohensF, value, nil
	}
}

func TestNewAlphaHandler_Intersection(t *testing.T) {
	h := newAlpha(t)

	assert.Equal(t, testkit.SharedSamples(), h.Samples())
	assert.Equal(t, 30, h.Metadata().Len())
	assert.Equal(t, 30, h.Data().Len())
	assert.False(t, h.Metadata().Has("S31"))
	_, ok := h.Data().Value("S99")
	assert.False(t, ok)
}

func TestNewHandler_NoCommonSamples(t *testing.T) {
	md := testkit.Metadata().Subset([]core.SampleID{"S31"})

	_, err := NewAlphaHandler(testkit.AlphaDiversity(), md)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNoSamples)
	assert.EqualError(t, err, "No samples in common between data and metadata.")

	_, err = NewBetaHandler(testkit.BetaDiversity(), md)
	assert.ErrorIs(t, err, core.ErrNoSamples)
}

func TestNewHandler_InvalidOptions(t *testing.T) {
	_, err := NewAlphaHandler(testkit.AlphaDiversity(), testkit.Metadata(), WithMaxLevelsPerCategory(1))
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestAlphaHandler_SubsetValues(t *testing.T) {
	h := newAlpha(t)

	sub, err := h.SubsetValues([]core.SampleID{"S03", "S01"})
	require.NoError(t, err)
	assert.Equal(t, []core.SampleID{"S03", "S01"}, sub.Samples())

	_, err = h.SubsetValues([]core.SampleID{"S99", "S31", "nope"})
	assert.ErrorIs(t, err, core.ErrNoSamples)
}

func TestBetaHandler_SubsetValues(t *testing.T) {
	h := newBeta(t)
	ids := []core.SampleID{"S10", "S02", "S25"}

	sub, err := h.SubsetValues(ids)
	require.NoError(t, err)
	assert.Equal(t, ids, sub.Samples())

	sym := sub.Symmetric()
	r, c := sym.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	for i := range ids {
		assert.Equal(t, 0.0, sym.At(i, i))
		for j := range ids {
			assert.Equal(t, sym.At(i, j), sym.At(j, i))
			want, ok := h.Data().Distance(ids[i], ids[j])
			require.True(t, ok)
			assert.Equal(t, want, sym.At(i, j))
		}
	}

	_, err = h.SubsetValues([]core.SampleID{"S99"})
	assert.ErrorIs(t, err, core.ErrNoSamples)
}

func TestEffectSize_Alpha(t *testing.T) {
	h := newAlpha(t)

	d, err := h.EffectSize(testkit.ColumnClassification)
	require.NoError(t, err)
	assert.Equal(t, stats.MetricCohensD, d.Metric)
	assert.Equal(t, "B1", d.Group1)
	assert.Equal(t, "B2", d.Group2)
	assert.InDelta(t, testkit.AlphaClassificationD, d.EffectSize, 1e-9)

	f, err := h.EffectSize(testkit.ColumnCDBehavior)
	require.NoError(t, err)
	assert.Equal(t, stats.MetricCohensF, f.Metric)
	assert.Empty(t, f.Group1)
	assert.InDelta(t, testkit.AlphaCDBehaviorF, f.EffectSize, 1e-9)
}

func TestEffectSize_Beta(t *testing.T) {
	h := newBeta(t)

	d, err := h.EffectSize(testkit.ColumnClassification)
	require.NoError(t, err)
	assert.InDelta(t, testkit.BetaClassificationD, d.EffectSize, 1e-9)

	f, err := h.EffectSize(testkit.ColumnCDBehavior)
	require.NoError(t, err)
	assert.InDelta(t, testkit.BetaCDBehaviorF, f.EffectSize, 1e-9)
}

func TestPairwiseEffectSizes(t *testing.T) {
	h := newAlpha(t)

	rows, err := h.PairwiseEffectSizes(testkit.ColumnCDBehavior)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "inflammatory", rows[0].Group1)
	assert.Equal(t, "penetrating", rows[0].Group2)
	assert.Equal(t, "penetrating", rows[2].Group1)
	assert.Equal(t, "stricturing", rows[2].Group2)
	for _, row := range rows {
		assert.Equal(t, stats.MetricCohensD, row.Metric)
		want := testkit.AlphaCDBehaviorPairwise[[2]string{row.Group1, row.Group2}]
		assert.InDelta(t, want, row.EffectSize, 1e-9, "%s vs %s", row.Group1, row.Group2)
	}
}

func TestEffectSize_ValidationErrors(t *testing.T) {
	h := newAlpha(t)

	_, err := h.EffectSize(testkit.ColumnEnvBiome)
	assert.EqualError(t, err, "Column env_biome has only one value: 'urban biome'.")

	_, err = h.EffectSize(testkit.ColumnYearDiagnosed)
	assert.EqualError(t, err, "Column must be categorical (dtype object). 'year_diagnosed' is of type int64.")

	_, err = h.EffectSize(testkit.ColumnSite)
	assert.ErrorIs(t, err, core.ErrTooManyCategories)
}

func TestDropRareLevels(t *testing.T) {
	strict := newAlpha(t)
	_, err := strict.EffectSize(testkit.ColumnRareGroup)
	assert.ErrorIs(t, err, core.ErrInsufficientSamples)

	lenient := newAlpha(t, WithDropRareLevels(true))
	p, err := lenient.Partition(testkit.ColumnRareGroup)
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "z"}, p.Levels)
	assert.Len(t, p.Samples(), 28)
}

func TestPowerAnalysis_TwoGroups(t *testing.T) {
	h := newAlpha(t)

	pw, err := h.PowerAnalysis(testkit.ColumnClassification, stats.PowerRequest{
		Alpha:             stats.Float(0.05),
		TotalObservations: stats.Int(40),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.888241, pw, 1e-6)

	nobs, err := h.PowerAnalysis(testkit.ColumnClassification, stats.PowerRequest{
		Alpha: stats.Float(0.05),
		Power: stats.Float(0.888241),
	})
	require.NoError(t, err)
	assert.Equal(t, 40.0, nobs)

	alpha, err := h.PowerAnalysis(testkit.ColumnClassification, stats.PowerRequest{
		Power:             stats.Float(0.888241),
		TotalObservations: stats.Int(40),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.05, alpha, 1e-6)
}

func TestPowerAnalysis_TwoGroupsHalvesTotal(t *testing.T) {
	h := newAlpha(t, WithEffectSizeFunc(fixedEffect(0.5)))

	got, err := h.PowerAnalysis(testkit.ColumnClassification, stats.PowerRequest{
		Alpha:             stats.Float(0.05),
		TotalObservations: stats.Int(128),
	})
	require.NoError(t, err)

	eq := power.Equation{Family: power.TwoSample, Groups: 2}
	assert.InDelta(t, eq.Power(0.5, 64, 0.05), got, 1e-12)
}

func TestPowerAnalysis_MockedCohensF(t *testing.T) {
	h := newAlpha(t, WithEffectSizeFunc(fixedEffect(0.4)))

	row, err := h.PowerAnalysisResult(testkit.ColumnCDBehavior, stats.PowerRequest{
		Alpha:             stats.Float(0.05),
		TotalObservations: stats.Int(60),
	})
	require.NoError(t, err)

	assert.Equal(t, stats.MetricCohensF, row.Metric)
	assert.Equal(t, 0.4, row.EffectSize)
	assert.InDelta(t, 0.775732, row.Power, 1.5e-6)

	// total is passed through unhalved with k = 3
	eq := power.Equation{Family: power.KGroup, Groups: 3}
	assert.InDelta(t, eq.Power(0.4, 60, 0.05), row.Power, 1e-12)
}

func TestPowerAnalysis_WrongArgumentsBeforeColumn(t *testing.T) {
	h := newAlpha(t)

	_, err := h.PowerAnalysis("not_a_column", stats.PowerRequest{
		Alpha:             stats.Float(0.05),
		Power:             stats.Float(0.8),
		TotalObservations: stats.Int(40),
	})
	assert.EqualError(t, err, "All arguments were provided. Exactly one of alpha, power, or total_observations "+
		"must be None. Arguments: alpha = 0.05, power = 0.8, total_observations = 40.")

	_, err = h.PowerAnalysis(testkit.ColumnClassification, stats.PowerRequest{Alpha: stats.Float(0.05)})
	assert.EqualError(t, err, "More than 1 argument was provided. Exactly one of alpha, power, or total_observations "+
		"must be None. Arguments: alpha = 0.05, power = None, total_observations = None.")
}

func TestPowerAnalysis_Difference(t *testing.T) {
	h := newAlpha(t)

	p, err := h.Partition(testkit.ColumnClassification)
	require.NoError(t, err)
	groups, err := h.groups(p)
	require.NoError(t, err)
	sd, err := effectsize.PooledSD(groups)
	require.NoError(t, err)

	row, err := h.PowerAnalysisResult(testkit.ColumnClassification, stats.PowerRequest{
		Alpha:             stats.Float(0.05),
		TotalObservations: stats.Int(40),
		Difference:        stats.Float(1.5),
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.5/sd, row.EffectSize, 1e-12)
	require.NotNil(t, row.Difference)
	assert.Equal(t, 1.5, *row.Difference)
}

func TestPowerAnalysisTable(t *testing.T) {
	h := newAlpha(t)

	table, err := h.PowerAnalysisTable(testkit.ColumnClassification, stats.PowerGrid{
		Alpha:             []float64{0.01, 0.05},
		TotalObservations: []int{20, 40},
	})
	require.NoError(t, err)
	require.Len(t, table.Rows, 4)
	assert.False(t, table.ID.IsEmpty())

	assert.Equal(t, 0.01, table.Rows[0].Alpha)
	assert.Equal(t, 20, table.Rows[0].TotalObservations)
	assert.Equal(t, 0.01, table.Rows[1].Alpha)
	assert.Equal(t, 40, table.Rows[1].TotalObservations)
	assert.Equal(t, 0.05, table.Rows[3].Alpha)
	assert.InDelta(t, 0.888241, table.Rows[3].Power, 1e-6)

	for _, row := range table.Rows {
		assert.Equal(t, stats.ParamPower, row.SolvedFor)
		assert.Equal(t, stats.MetricCohensD, row.Metric)
	}
	// power grows with alpha and with sample size
	assert.Less(t, table.Rows[0].Power, table.Rows[1].Power)
	assert.Less(t, table.Rows[1].Power, table.Rows[3].Power)
}

func TestPowerAnalysisTable_InvalidGrid(t *testing.T) {
	h := newAlpha(t)

	_, err := h.PowerAnalysisTable(testkit.ColumnClassification, stats.PowerGrid{Alpha: []float64{0.05}})
	assert.ErrorIs(t, err, core.ErrWrongPowerArguments)
}

func TestEffectSizeByCategory_MatchesSingleColumn(t *testing.T) {
	h := newBeta(t)
	columns := []string{testkit.ColumnCDBehavior, testkit.ColumnClassification, testkit.ColumnSmoker}

	for _, jobs := range []int{1, 3, -1} {
		table, err := h.EffectSizeByCategory(context.Background(), columns, false, jobs)
		require.NoError(t, err)
		require.Len(t, table.Rows, 3)
		assert.False(t, table.Pairwise)

		for i, column := range columns {
			single, err := h.EffectSize(column)
			require.NoError(t, err)
			assert.Equal(t, single, table.Rows[i], "n_jobs %d", jobs)
		}
	}
}

func TestEffectSizeByCategory_Pairwise(t *testing.T) {
	h := newAlpha(t)

	table, err := h.EffectSizeByCategory(context.Background(),
		[]string{testkit.ColumnClassification, testkit.ColumnCDBehavior}, true, 2)
	require.NoError(t, err)
	assert.True(t, table.Pairwise)
	require.Len(t, table.Rows, 4)

	assert.Equal(t, testkit.ColumnClassification, table.Rows[0].Column)
	for _, row := range table.Rows[1:] {
		assert.Equal(t, testkit.ColumnCDBehavior, row.Column)
	}
	assert.Equal(t, "inflammatory", table.Rows[1].Group1)
	assert.Equal(t, "penetrating", table.Rows[1].Group2)
}

func TestEffectSizeByCategory_Errors(t *testing.T) {
	h := newAlpha(t)

	_, err := h.EffectSizeByCategory(context.Background(),
		[]string{testkit.ColumnClassification, testkit.ColumnEnvBiome}, false, 2)
	assert.ErrorIs(t, err, core.ErrOnlyOneCategory)

	_, err = h.EffectSizeByCategory(context.Background(), []string{testkit.ColumnClassification}, false, 0)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = h.EffectSizeByCategory(context.Background(), nil, false, 1)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func newRepeated(t *testing.T, v func() []core.SampleID) *RepeatedMeasuresHandler {
	t.Helper()
	alpha := testkit.AlphaDiversity()
	if v != nil {
		var err error
		alpha, err = alpha.Filter(v())
		require.NoError(t, err)
	}
	h, err := NewRepeatedMeasuresHandler(alpha, testkit.Metadata(), testkit.ColumnSubject)
	require.NoError(t, err)
	return h
}

func TestRepeatedMeasures_EffectSize(t *testing.T) {
	h := newRepeated(t, nil)

	subjects, states, matrix, err := h.SubjectMatrix(testkit.ColumnTimepoint)
	require.NoError(t, err)
	assert.Len(t, subjects, 10)
	assert.Equal(t, []string{"t1", "t2", "t3"}, states)
	assert.Len(t, matrix, 10)

	eta, f, err := h.EffectSize(testkit.ColumnTimepoint)
	require.NoError(t, err)
	assert.InDelta(t, testkit.TimepointPartialEta, eta, 1e-9)
	assert.InDelta(t, testkit.TimepointF, f, 1e-9)
}

func TestRepeatedMeasures_DropsIncompleteSubjects(t *testing.T) {
	h := newRepeated(t, func() []core.SampleID {
		var ids []core.SampleID
		for _, id := range testkit.SharedSamples() {
			if id != "S03" {
				ids = append(ids, id)
			}
		}
		return ids
	})

	subjects, _, _, err := h.SubjectMatrix(testkit.ColumnTimepoint)
	require.NoError(t, err)
	assert.Len(t, subjects, 9)
	assert.NotContains(t, subjects, "subject_01")

	eta, _, err := h.EffectSize(testkit.ColumnTimepoint)
	require.NoError(t, err)
	assert.InDelta(t, 0.6180158594601801, eta, 1e-9)
}

func TestRepeatedMeasures_Unbalanced(t *testing.T) {
	md, err := metadata.NewTable([]core.SampleID{"a1", "a2", "b1", "b2", "c1", "c2"})
	require.NoError(t, err)
	require.NoError(t, md.AddColumn("subject", metadata.KindCategorical, []string{"a", "a", "b", "b", "c", "c"}))
	require.NoError(t, md.AddColumn("state", metadata.KindCategorical, []string{"pre", "pre", "pre", "post", "post", "pre"}))

	vec, err := diversity.NewVector([]core.SampleID{"a1", "a2", "b1", "b2", "c1", "c2"}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	h, err := NewRepeatedMeasuresHandler(vec, md, "subject", WithMinCountPerLevel(2))
	require.NoError(t, err)

	_, _, err = h.EffectSize("state")
	assert.ErrorIs(t, err, core.ErrUnbalancedDesign)
}

func TestRepeatedMeasures_UnknownIndividualColumn(t *testing.T) {
	_, err := NewRepeatedMeasuresHandler(testkit.AlphaDiversity(), testkit.Metadata(), "patient")
	assert.ErrorIs(t, err, core.ErrColumnNotFound)
}

func TestRepeatedMeasures_PowerAnalysis(t *testing.T) {
	h := newRepeated(t, nil)

	row, err := h.PowerAnalysis(testkit.ColumnTimepoint, stats.RepeatedMeasuresRequest{
		Subjects: 3, Measurements: 3, Alpha: 0.05, Correlation: 0.5, Epsilon: 1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.9173500847165411, row.Power, 1e-6)
	assert.InDelta(t, testkit.TimepointF, row.EffectSize, 1e-9)
	assert.Equal(t, testkit.ColumnTimepoint, row.StateColumn)

	table, err := h.PowerAnalysisTable(testkit.ColumnTimepoint, stats.RepeatedMeasuresGrid{
		Subjects:     []int{3, 4},
		Measurements: []int{3},
		Alpha:        []float64{0.05},
		Correlation:  []float64{0.5},
		Epsilon:      []float64{1, 0.5},
	})
	require.NoError(t, err)
	require.Len(t, table.Rows, 4)
	assert.InDelta(t, 0.9173500847165411, table.Rows[0].Power, 1e-6)
	assert.InDelta(t, 0.570242708418595, table.Rows[1].Power, 1e-6)
	assert.InDelta(t, 0.9950873837164428, table.Rows[2].Power, 1e-6)
	assert.InDelta(t, 0.8591192192955942, table.Rows[3].Power, 1e-6)
}

func TestRepeatedMeasures_InvalidRequest(t *testing.T) {
	h := newRepeated(t, nil)

	_, err := h.PowerAnalysis(testkit.ColumnTimepoint, stats.RepeatedMeasuresRequest{
		Subjects: 1, Measurements: 3, Alpha: 0.05, Correlation: 0.5, Epsilon: 1,
	})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
