package diversity

import (
	"evident/domain/core"
	"evident/domain/diversity"
	"evident/domain/metadata"
)

// AlphaHandler analyzes one scalar diversity value per sample
type AlphaHandler struct {
	*Handler
	values *alphaShape
}

// NewAlphaHandler intersects an alpha diversity vector with metadata
func NewAlphaHandler(v *diversity.Vector, md *metadata.Table, opts ...Option) (*AlphaHandler, error) {
	h, err := newHandler(&alphaShape{v}, md, opts)
	if err != nil {
		return nil, err
	}
	return &AlphaHandler{Handler: h, values: h.data.(*alphaShape)}, nil
}

// Data returns the alpha diversity of the common samples
func (h *AlphaHandler) Data() *diversity.Vector {
	return h.values.vector
}

// SubsetValues returns the diversity values of ids, in the requested order
func (h *AlphaHandler) SubsetValues(ids []core.SampleID) (*diversity.Vector, error) {
	return h.values.vector.Filter(ids)
}

// BetaHandler analyzes pairwise sample distances. A group contributes the
// distances between its own members.
type BetaHandler struct {
	*Handler
	values *betaShape
}

// NewBetaHandler intersects a distance matrix with metadata
func NewBetaHandler(m *diversity.DistanceMatrix, md *metadata.Table, opts ...Option) (*BetaHandler, error) {
	h, err := newHandler(&betaShape{m}, md, opts)
	if err != nil {
		return nil, err
	}
	return &BetaHandler{Handler: h, values: h.data.(*betaShape)}, nil
}

// Data returns the distance matrix of the common samples
func (h *BetaHandler) Data() *diversity.DistanceMatrix {
	return h.values.matrix
}

// SubsetValues returns the symmetric sub-matrix over ids
func (h *BetaHandler) SubsetValues(ids []core.SampleID) (*diversity.DistanceMatrix, error) {
	return h.values.matrix.Filter(ids)
}

type alphaShape struct {
	vector *diversity.Vector
}

func (s *alphaShape) Samples() []core.SampleID { return s.vector.Samples() }

func (s *alphaShape) restrict(ids []core.SampleID) (shape, error) {
	v, err := s.vector.Filter(ids)
	if err != nil {
		return nil, err
	}
	return &alphaShape{v}, nil
}

func (s *alphaShape) groupValues(ids []core.SampleID) ([]float64, error) {
	v, err := s.vector.Filter(ids)
	if err != nil {
		return nil, err
	}
	return v.Values(), nil
}

type betaShape struct {
	matrix *diversity.DistanceMatrix
}

func (s *betaShape) Samples() []core.SampleID { return s.matrix.Samples() }

func (s *betaShape) restrict(ids []core.SampleID) (shape, error) {
	m, err := s.matrix.Filter(ids)
	if err != nil {
		return nil, err
	}
	return &betaShape{m}, nil
}

func (s *betaShape) groupValues(ids []core.SampleID) ([]float64, error) {
	m, err := s.matrix.Filter(ids)
	if err != nil {
		return nil, err
	}
	return m.Condensed(), nil
}
