// Package metadata holds per-sample covariates keyed by sample ID.
package metadata

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"evident/domain/core"
)

// Kind is the declared or inferred type of a metadata column
type Kind int

const (
	KindCategorical Kind = iota
	KindInteger
	KindFloat
)

// String returns the dtype name reported in validation errors
func (k Kind) String() string {
	switch k {
	case KindCategorical:
		return "object"
	case KindInteger:
		return "int64"
	case KindFloat:
		return "float64"
	default:
		return "unknown"
	}
}

// Column is one metadata covariate aligned with its table's sample order.
// Missing values are stored as the empty string.
type Column struct {
	name   string
	kind   Kind
	values []string
}

// Name returns the column name
func (c *Column) Name() string { return c.name }

// Kind returns the column type
func (c *Column) Kind() Kind { return c.kind }

// Levels returns the distinct non-missing values in sorted order
func (c *Column) Levels() []string {
	seen := make(map[string]bool)
	for _, v := range c.values {
		if v != "" {
			seen[v] = true
		}
	}
	levels := make([]string, 0, len(seen))
	for v := range seen {
		levels = append(levels, v)
	}
	sort.Strings(levels)
	return levels
}

// Table is an in-memory metadata table indexed by sample ID
type Table struct {
	ids     []core.SampleID
	index   map[core.SampleID]int
	order   []string
	columns map[string]*Column
}

// NewTable creates an empty table over the given sample IDs
func NewTable(ids []core.SampleID) (*Table, error) {
	index := make(map[core.SampleID]int, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("%w: empty sample ID at row %d", core.ErrInvalidData, i)
		}
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: duplicate sample ID %q", core.ErrInvalidData, id)
		}
		index[id] = i
	}
	return &Table{
		ids:     append([]core.SampleID(nil), ids...),
		index:   index,
		columns: make(map[string]*Column),
	}, nil
}

// AddColumn appends a column. values must be aligned with Samples();
// numeric kinds must parse.
func (t *Table) AddColumn(name string, kind Kind, values []string) error {
	if name == "" {
		return fmt.Errorf("%w: empty column name", core.ErrInvalidData)
	}
	if _, exists := t.columns[name]; exists {
		return fmt.Errorf("%w: duplicate column %q", core.ErrInvalidData, name)
	}
	if len(values) != len(t.ids) {
		return fmt.Errorf("%w: column %q has %d values for %d samples",
			core.ErrInvalidData, name, len(values), len(t.ids))
	}

	normalized := make([]string, len(values))
	for i, v := range values {
		v = normalizeValue(v)
		if v != "" && kind != KindCategorical {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return fmt.Errorf("%w: column %q value %q is not numeric", core.ErrInvalidData, name, v)
			}
		}
		normalized[i] = v
	}

	t.columns[name] = &Column{name: name, kind: kind, values: normalized}
	t.order = append(t.order, name)
	return nil
}

// AddInferredColumn appends a column whose kind is inferred from its values
func (t *Table) AddInferredColumn(name string, values []string) error {
	return t.AddColumn(name, InferKind(values), values)
}

// Samples returns the sample IDs in table order
func (t *Table) Samples() []core.SampleID {
	return append([]core.SampleID(nil), t.ids...)
}

// Len returns the number of samples
func (t *Table) Len() int { return len(t.ids) }

// Has reports whether the sample is present
func (t *Table) Has(id core.SampleID) bool {
	_, ok := t.index[id]
	return ok
}

// Columns returns column names in insertion order
func (t *Table) Columns() []string {
	return append([]string(nil), t.order...)
}

// Column looks up a column by name
func (t *Table) Column(name string) (*Column, error) {
	c, ok := t.columns[name]
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	return c, nil
}

// Value returns the raw value of column for a sample ("" when missing)
func (t *Table) Value(column string, id core.SampleID) (string, error) {
	c, err := t.Column(column)
	if err != nil {
		return "", err
	}
	i, ok := t.index[id]
	if !ok {
		return "", fmt.Errorf("%w: sample %q", core.ErrNoSamples, id)
	}
	return c.values[i], nil
}

// Groups maps each non-missing level of column to its sample IDs in table order
func (t *Table) Groups(column string) (map[string][]core.SampleID, error) {
	c, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]core.SampleID)
	for i, v := range c.values {
		if v == "" {
			continue
		}
		groups[v] = append(groups[v], t.ids[i])
	}
	return groups, nil
}

// Subset returns a new table restricted to ids, keeping this table's order.
// IDs not present are ignored.
func (t *Table) Subset(ids []core.SampleID) *Table {
	keep := make(map[core.SampleID]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	rows := make([]int, 0, len(ids))
	for i, id := range t.ids {
		if keep[id] {
			rows = append(rows, i)
		}
	}

	out := &Table{
		ids:     make([]core.SampleID, len(rows)),
		index:   make(map[core.SampleID]int, len(rows)),
		order:   append([]string(nil), t.order...),
		columns: make(map[string]*Column, len(t.columns)),
	}
	for j, i := range rows {
		out.ids[j] = t.ids[i]
		out.index[t.ids[i]] = j
	}
	for name, c := range t.columns {
		values := make([]string, len(rows))
		for j, i := range rows {
			values[j] = c.values[i]
		}
		out.columns[name] = &Column{name: c.name, kind: c.kind, values: values}
	}
	return out
}

// DropRareLevels returns a copy of the table in which every categorical
// level with fewer than minCount samples is set to missing.
func (t *Table) DropRareLevels(minCount int) *Table {
	out := t.Subset(t.ids)
	for _, c := range out.columns {
		if c.kind != KindCategorical {
			continue
		}
		counts := make(map[string]int)
		for _, v := range c.values {
			if v != "" {
				counts[v]++
			}
		}
		for i, v := range c.values {
			if v != "" && counts[v] < minCount {
				c.values[i] = ""
			}
		}
	}
	return out
}

// InferKind classifies raw values: all integers, all numbers, or categorical.
// Missing values are ignored; an all-missing column is categorical.
func InferKind(values []string) Kind {
	kind := KindInteger
	seen := false
	for _, raw := range values {
		v := normalizeValue(raw)
		if v == "" {
			continue
		}
		seen = true
		if _, err := strconv.ParseInt(v, 10, 64); err == nil {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			kind = KindFloat
			continue
		}
		return KindCategorical
	}
	if !seen {
		return KindCategorical
	}
	return kind
}

// IsMissing reports whether a raw cell denotes a missing value
func IsMissing(raw string) bool {
	return normalizeValue(raw) == ""
}

func normalizeValue(raw string) string {
	v := strings.TrimSpace(raw)
	switch v {
	case "NA", "NaN", "nan", "N/A", "null":
		return ""
	}
	return v
}
