// Package validation checks that a metadata column can group samples for
// an effect-size comparison.
package validation

import (
	"fmt"

	"evident/domain/core"
	"evident/domain/metadata"
)

// Partition maps each level of a validated column to its samples
type Partition struct {
	Column string
	// Levels are sorted; effect sizes and pairs follow this order
	Levels []string
	Groups map[string][]core.SampleID
}

// NumGroups returns the number of levels
func (p *Partition) NumGroups() int { return len(p.Levels) }

// Samples returns every grouped sample, level by level
func (p *Partition) Samples() []core.SampleID {
	var out []core.SampleID
	for _, level := range p.Levels {
		out = append(out, p.Groups[level]...)
	}
	return out
}

// Restrict returns the partition restricted to two of its levels
func (p *Partition) Restrict(a, b string) *Partition {
	return &Partition{
		Column: p.Column,
		Levels: []string{a, b},
		Groups: map[string][]core.SampleID{a: p.Groups[a], b: p.Groups[b]},
	}
}

// Validate checks column in table and partitions its non-missing samples.
// The column must be categorical with between 2 and maxLevels levels, each
// holding at least minCount samples.
func Validate(column string, table *metadata.Table, maxLevels, minCount int) (*Partition, error) {
	col, err := table.Column(column)
	if err != nil {
		return nil, err
	}
	if col.Kind() != metadata.KindCategorical {
		return nil, &core.NonCategoricalColumnError{Column: column, Type: col.Kind().String()}
	}

	levels := col.Levels()
	switch {
	case len(levels) == 0:
		return nil, fmt.Errorf("%w: column %s has no non-missing values", core.ErrInvalidData, column)
	case len(levels) == 1:
		return nil, &core.OnlyOneCategoryError{Column: column, Value: levels[0]}
	case len(levels) > maxLevels:
		return nil, &core.TooManyCategoriesError{Column: column, Levels: len(levels), Max: maxLevels}
	}

	groups, err := table.Groups(column)
	if err != nil {
		return nil, err
	}
	for _, level := range levels {
		if n := len(groups[level]); n < minCount {
			return nil, &core.InsufficientSamplesError{Column: column, Level: level, Count: n, Required: minCount}
		}
	}

	return &Partition{Column: column, Levels: levels, Groups: groups}, nil
}
