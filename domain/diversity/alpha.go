// Package diversity holds pre-computed alpha and beta diversity values.
package diversity

import (
	"fmt"
	"math"

	"evident/domain/core"
)

// Vector maps each sample to a scalar alpha diversity value
type Vector struct {
	ids    []core.SampleID
	values []float64
	index  map[core.SampleID]int
}

// NewVector builds an alpha diversity vector. ids and values are aligned.
func NewVector(ids []core.SampleID, values []float64) (*Vector, error) {
	if len(ids) != len(values) {
		return nil, fmt.Errorf("%w: %d sample IDs for %d values", core.ErrInvalidData, len(ids), len(values))
	}
	index := make(map[core.SampleID]int, len(ids))
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: duplicate sample ID %q", core.ErrInvalidData, id)
		}
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return nil, fmt.Errorf("%w: sample %q has non-finite value", core.ErrInvalidData, id)
		}
		index[id] = i
	}
	return &Vector{
		ids:    append([]core.SampleID(nil), ids...),
		values: append([]float64(nil), values...),
		index:  index,
	}, nil
}

// Samples returns the sample IDs in vector order
func (v *Vector) Samples() []core.SampleID {
	return append([]core.SampleID(nil), v.ids...)
}

// Len returns the number of samples
func (v *Vector) Len() int { return len(v.ids) }

// Value returns the diversity value of a sample
func (v *Vector) Value(id core.SampleID) (float64, bool) {
	i, ok := v.index[id]
	if !ok {
		return 0, false
	}
	return v.values[i], true
}

// Filter returns a vector restricted to ids in the requested order.
// Unknown and repeated IDs are skipped.
func (v *Vector) Filter(ids []core.SampleID) (*Vector, error) {
	out := &Vector{index: make(map[core.SampleID]int, len(ids))}
	for _, id := range ids {
		i, ok := v.index[id]
		if !ok {
			continue
		}
		if _, dup := out.index[id]; dup {
			continue
		}
		out.index[id] = len(out.ids)
		out.ids = append(out.ids, id)
		out.values = append(out.values, v.values[i])
	}
	if len(out.ids) == 0 {
		return nil, &core.NoSamplesError{}
	}
	return out, nil
}

// Values returns the diversity values in vector order
func (v *Vector) Values() []float64 {
	return append([]float64(nil), v.values...)
}
