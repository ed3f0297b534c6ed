package diversity

import (
	"fmt"
	"math"

	"evident/domain/core"

	"gonum.org/v1/gonum/mat"
)

// symmetryTolerance bounds |d(i,j) - d(j,i)| accepted on construction
const symmetryTolerance = 1e-9

// DistanceMatrix is a symmetric, hollow matrix of pairwise sample distances
type DistanceMatrix struct {
	ids   []core.SampleID
	index map[core.SampleID]int
	data  *mat.SymDense
}

// NewDistanceMatrix validates rows (square, symmetric, zero diagonal,
// non-negative) and builds the matrix.
func NewDistanceMatrix(ids []core.SampleID, rows [][]float64) (*DistanceMatrix, error) {
	n := len(ids)
	if n == 0 {
		return nil, &core.NoSamplesError{Reason: "Distance matrix has no samples."}
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d sample IDs for %d rows", core.ErrInvalidData, n, len(rows))
	}
	index := make(map[core.SampleID]int, n)
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: duplicate sample ID %q", core.ErrInvalidData, id)
		}
		index[id] = i
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%w: row %q has %d entries, expected %d", core.ErrInvalidData, id, len(rows[i]), n)
		}
	}

	data := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if rows[i][i] != 0 {
			return nil, fmt.Errorf("%w: non-zero self distance for %q", core.ErrInvalidData, ids[i])
		}
		for j := i + 1; j < n; j++ {
			d := rows[i][j]
			if math.IsNaN(d) || d < 0 {
				return nil, fmt.Errorf("%w: invalid distance between %q and %q", core.ErrInvalidData, ids[i], ids[j])
			}
			if math.Abs(d-rows[j][i]) > symmetryTolerance {
				return nil, fmt.Errorf("%w: matrix is not symmetric at (%q, %q)", core.ErrInvalidData, ids[i], ids[j])
			}
			data.SetSym(i, j, d)
		}
	}

	return &DistanceMatrix{
		ids:   append([]core.SampleID(nil), ids...),
		index: index,
		data:  data,
	}, nil
}

// Samples returns the sample IDs in matrix order
func (m *DistanceMatrix) Samples() []core.SampleID {
	return append([]core.SampleID(nil), m.ids...)
}

// Len returns the number of samples
func (m *DistanceMatrix) Len() int { return len(m.ids) }

// Distance returns the distance between two samples
func (m *DistanceMatrix) Distance(a, b core.SampleID) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}
	return m.data.At(i, j), true
}

// Filter restricts rows and columns to the same ids, in the requested order.
// Unknown and repeated IDs are skipped.
func (m *DistanceMatrix) Filter(ids []core.SampleID) (*DistanceMatrix, error) {
	rows := make([]int, 0, len(ids))
	kept := make([]core.SampleID, 0, len(ids))
	index := make(map[core.SampleID]int, len(ids))
	for _, id := range ids {
		i, ok := m.index[id]
		if !ok {
			continue
		}
		if _, dup := index[id]; dup {
			continue
		}
		index[id] = len(kept)
		kept = append(kept, id)
		rows = append(rows, i)
	}
	if len(kept) == 0 {
		return nil, &core.NoSamplesError{}
	}

	data := mat.NewSymDense(len(kept), nil)
	for a, i := range rows {
		for b := a + 1; b < len(rows); b++ {
			data.SetSym(a, b, m.data.At(i, rows[b]))
		}
	}
	return &DistanceMatrix{ids: kept, index: index, data: data}, nil
}

// Condensed returns the strict upper triangle in row-major order
func (m *DistanceMatrix) Condensed() []float64 {
	n := len(m.ids)
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, m.data.At(i, j))
		}
	}
	return out
}

// Symmetric exposes the underlying storage
func (m *DistanceMatrix) Symmetric() mat.Symmetric {
	return m.data
}
