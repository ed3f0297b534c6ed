// Package report renders analysis result tables as records, markdown and HTML.
package report

import (
	"strconv"

	"evident/domain/stats"
)

// Table is a rendered result table
type Table struct {
	Title   string
	Header  []string
	Records [][]string
}

// PowerRecords flattens a power table. The difference column is empty
// for rows that used the observed effect.
func PowerRecords(title string, table *stats.PowerTable) Table {
	out := Table{
		Title:  title,
		Header: []string{"column", "metric", "effect_size", "difference", "alpha", "power", "total_observations", "solved_for"},
	}
	for _, row := range table.Rows {
		difference := ""
		if row.Difference != nil {
			difference = formatFloat(*row.Difference)
		}
		out.Records = append(out.Records, []string{
			row.Column,
			string(row.Metric),
			formatFloat(row.EffectSize),
			difference,
			formatFloat(row.Alpha),
			formatFloat(row.Power),
			strconv.Itoa(row.TotalObservations),
			string(row.SolvedFor),
		})
	}
	return out
}

// EffectSizeRecords flattens an effect-size table
func EffectSizeRecords(title string, table *stats.EffectSizeTable) Table {
	out := Table{
		Title:  title,
		Header: []string{"column", "metric", "effect_size", "group_1", "group_2"},
	}
	for _, row := range table.Rows {
		out.Records = append(out.Records, []string{
			row.Column,
			string(row.Metric),
			formatFloat(row.EffectSize),
			row.Group1,
			row.Group2,
		})
	}
	return out
}

// RepeatedMeasuresRecords flattens a repeated-measures table
func RepeatedMeasuresRecords(title string, table *stats.RepeatedMeasuresTable) Table {
	out := Table{
		Title: title,
		Header: []string{"state_column", "effect_size", "partial_eta_squared", "subjects",
			"measurements", "alpha", "correlation", "epsilon", "power"},
	}
	for _, row := range table.Rows {
		out.Records = append(out.Records, []string{
			row.StateColumn,
			formatFloat(row.EffectSize),
			formatFloat(row.PartialEtaSq),
			strconv.Itoa(row.Subjects),
			strconv.Itoa(row.Measurements),
			formatFloat(row.Alpha),
			formatFloat(row.Correlation),
			formatFloat(row.Epsilon),
			formatFloat(row.Power),
		})
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
