package diversity

import (
	"errors"
	"testing"

	"evident/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatrix(t *testing.T) *DistanceMatrix {
	t.Helper()
	dm, err := NewDistanceMatrix(
		[]string{"a", "b", "c", "d"},
		[][]float64{
			{0, 1, 2, 3},
			{1, 0, 4, 5},
			{2, 4, 0, 6},
			{3, 5, 6, 0},
		},
	)
	require.NoError(t, err)
	return dm
}

func TestVectorFilter(t *testing.T) {
	v, err := NewVector([]string{"a", "b", "c"}, []float64{1, 2, 3})
	require.NoError(t, err)

	sub, err := v.Filter([]string{"c", "a", "zzz", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sub.Samples())
	assert.Equal(t, []float64{3, 1}, sub.Values())

	_, err = v.Filter([]string{"x", "y"})
	var noSamples *core.NoSamplesError
	assert.True(t, errors.As(err, &noSamples))
}

func TestNewVectorValidation(t *testing.T) {
	_, err := NewVector([]string{"a"}, []float64{1, 2})
	assert.True(t, errors.Is(err, core.ErrInvalidData))

	_, err = NewVector([]string{"a", "a"}, []float64{1, 2})
	assert.True(t, errors.Is(err, core.ErrInvalidData))
}

func TestDistanceMatrixValidation(t *testing.T) {
	_, err := NewDistanceMatrix([]string{"a", "b"}, [][]float64{{0, 1}, {2, 0}})
	assert.True(t, errors.Is(err, core.ErrInvalidData), "asymmetric input must be rejected")

	_, err = NewDistanceMatrix([]string{"a", "b"}, [][]float64{{1, 1}, {1, 0}})
	assert.True(t, errors.Is(err, core.ErrInvalidData), "non-hollow input must be rejected")

	_, err = NewDistanceMatrix(nil, nil)
	assert.True(t, errors.Is(err, core.ErrNoSamples))
}

func TestDistanceMatrixFilterPreservesSymmetry(t *testing.T) {
	dm := testMatrix(t)

	sub, err := dm.Filter([]string{"d", "b", "missing"})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b"}, sub.Samples())

	r, c := sub.Symmetric().Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	for _, a := range sub.Samples() {
		for _, b := range sub.Samples() {
			ab, ok := sub.Distance(a, b)
			require.True(t, ok)
			ba, _ := sub.Distance(b, a)
			assert.Equal(t, ab, ba)
			orig, _ := dm.Distance(a, b)
			assert.Equal(t, orig, ab)
		}
	}

	_, err = dm.Filter([]string{"x"})
	assert.True(t, errors.Is(err, core.ErrNoSamples))
}

func TestDistanceMatrixCondensed(t *testing.T) {
	dm := testMatrix(t)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, dm.Condensed())

	sub, err := dm.Filter([]string{"a", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 6}, sub.Condensed())
}
