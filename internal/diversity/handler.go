// Package diversity runs power and effect-size analyses of alpha or beta
// diversity grouped by sample metadata.
package diversity

import (
	"evident/domain/core"
	"evident/domain/metadata"
	"evident/domain/stats"
	"evident/internal"
	"evident/internal/effectsize"
)

const (
	DefaultMaxLevelsPerCategory = 5
	DefaultMinCountPerLevel     = 3
)

// EffectSizeFunc turns grouped values into an effect size. Groups arrive
// in sorted level order.
type EffectSizeFunc func(groups []effectsize.Group) (stats.Metric, float64, error)

// shape is what the pipeline needs from a diversity data type
type shape interface {
	Samples() []core.SampleID
	// restrict narrows the data to ids
	restrict(ids []core.SampleID) (shape, error)
	// groupValues returns the observations a group contributes to an effect size
	groupValues(ids []core.SampleID) ([]float64, error)
}

// Handler holds diversity data and metadata over their common samples
type Handler struct {
	data       shape
	metadata   *metadata.Table
	maxLevels  int
	minCount   int
	dropRare   bool
	effectSize EffectSizeFunc
	logger     *internal.Logger
}

// Option configures a Handler
type Option func(*Handler)

// WithMaxLevelsPerCategory caps the number of levels of a grouping column
func WithMaxLevelsPerCategory(n int) Option {
	return func(h *Handler) { h.maxLevels = n }
}

// WithMinCountPerLevel sets the minimum number of samples in every level
func WithMinCountPerLevel(n int) Option {
	return func(h *Handler) { h.minCount = n }
}

// WithDropRareLevels sets levels below the minimum count to missing before
// any column is validated
func WithDropRareLevels(drop bool) Option {
	return func(h *Handler) { h.dropRare = drop }
}

// WithEffectSizeFunc replaces the observed effect-size computation
func WithEffectSizeFunc(fn EffectSizeFunc) Option {
	return func(h *Handler) { h.effectSize = fn }
}

// WithLogger sets the handler logger
func WithLogger(l *internal.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

func newHandler(data shape, md *metadata.Table, opts []Option) (*Handler, error) {
	h := &Handler{
		maxLevels:  DefaultMaxLevelsPerCategory,
		minCount:   DefaultMinCountPerLevel,
		effectSize: effectsize.Compute,
		logger:     internal.DefaultLogger,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.maxLevels < 2 {
		return nil, core.NewInvalidArgumentError("max_levels_per_category", "must be at least 2")
	}
	if h.minCount < 1 {
		return nil, core.NewInvalidArgumentError("min_count_per_level", "must be at least 1")
	}

	common := intersect(md, data.Samples())
	if len(common) == 0 {
		return nil, core.NewNoCommonSamplesError()
	}

	restricted, err := data.restrict(common)
	if err != nil {
		return nil, err
	}
	h.data = restricted
	h.metadata = md.Subset(common)
	if h.dropRare {
		h.metadata = h.metadata.DropRareLevels(h.minCount)
	}

	h.logger.Debug("diversity handler: %d common samples (%d dropped from data, %d from metadata)",
		len(common), len(data.Samples())-len(common), md.Len()-len(common))
	return h, nil
}

// intersect returns the metadata samples also present in data, in metadata order
func intersect(md *metadata.Table, ids []core.SampleID) []core.SampleID {
	present := make(map[core.SampleID]bool, len(ids))
	for _, id := range ids {
		present[id] = true
	}
	var common []core.SampleID
	for _, id := range md.Samples() {
		if present[id] {
			common = append(common, id)
		}
	}
	return common
}

// Samples returns the common samples in metadata order
func (h *Handler) Samples() []core.SampleID {
	return h.metadata.Samples()
}

// Metadata returns the metadata restricted to the common samples
func (h *Handler) Metadata() *metadata.Table {
	return h.metadata
}
