package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"evident/adapters/excel"
	"evident/adapters/report"
	"evident/app"
	"evident/domain/stats"
	"evident/internal/config"

	"github.com/spf13/cobra"
)

// inputOptions are the flags shared by every analysis command
type inputOptions struct {
	data     config.DataConfig
	analysis config.AnalysisConfig
	output   string
}

func (o *inputOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.data.MetadataFile, "metadata", o.data.MetadataFile, "Sample metadata file (tsv, csv or xlsx)")
	flags.StringVar(&o.data.AlphaDiversityFile, "alpha-diversity", o.data.AlphaDiversityFile, "Alpha diversity file (sample id, value)")
	flags.StringVar(&o.data.BetaDiversityFile, "beta-diversity", o.data.BetaDiversityFile, "Beta diversity distance matrix (lsmat, optionally gzipped)")
	flags.IntVar(&o.analysis.MaxLevelsPerCategory, "max-levels-per-category", o.analysis.MaxLevelsPerCategory, "Maximum number of levels in a grouping column")
	flags.IntVar(&o.analysis.MinCountPerLevel, "min-count-per-level", o.analysis.MinCountPerLevel, "Minimum number of samples per level")
	flags.BoolVar(&o.analysis.DropRareLevels, "drop-rare-levels", o.analysis.DropRareLevels, "Treat levels below min-count-per-level as missing")
	flags.StringVarP(&o.output, "output", "o", "", "Output file (.tsv, .csv, .xlsx, .md or .html); stdout TSV when empty")
}

func (o *inputOptions) service() (*app.PowerService, error) {
	data, err := app.LoadDataset(o.data)
	if err != nil {
		return nil, err
	}
	return app.NewPowerService(data, o.analysis)
}

// powerFlags are the list-valued power parameters; exactly one of alpha,
// power and total observations is left out
type powerFlags struct {
	column     string
	alpha      []float64
	power      []float64
	totalObs   []int
	difference []float64
}

func (p *powerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.column, "column", "", "Categorical metadata column to group by")
	cmd.Flags().Float64SliceVar(&p.alpha, "alpha", nil, "Significance levels")
	cmd.Flags().Float64SliceVar(&p.power, "power", nil, "Target power values")
	cmd.Flags().IntSliceVar(&p.totalObs, "total-observations", nil, "Total sample counts")
	cmd.Flags().Float64SliceVar(&p.difference, "difference", nil, "Differences in group means replacing the observed effect")
	_ = cmd.MarkFlagRequired("column")
}

func (p *powerFlags) grid() stats.PowerGrid {
	return stats.PowerGrid{
		Alpha:             p.alpha,
		Power:             p.power,
		TotalObservations: p.totalObs,
		Difference:        p.difference,
	}
}

func newAlphaPowerCmd(opts *inputOptions) *cobra.Command {
	return newPowerCmd(opts, app.SourceAlpha, "alpha-power", "Power analysis of alpha diversity across a metadata column")
}

func newBetaPowerCmd(opts *inputOptions) *cobra.Command {
	return newPowerCmd(opts, app.SourceBeta, "beta-power", "Power analysis of beta diversity across a metadata column")
}

func newPowerCmd(opts *inputOptions, source app.Source, use, short string) *cobra.Command {
	var p powerFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

Exactly one of --alpha, --power and --total-observations is omitted and
solved for every combination of the others.

Example: evident ` + use + ` --metadata md.tsv --alpha-diversity faith_pd.tsv --column classification --alpha 0.01,0.05 --total-observations 20,40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			table, err := svc.Power(cmd.Context(), source, p.column, p.grid())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, report.PowerRecords(use, table))
		},
	}
	p.register(cmd)
	return cmd
}

func newEffectSizeCmd(opts *inputOptions) *cobra.Command {
	var req app.EffectSizeRequest
	var source string

	cmd := &cobra.Command{
		Use:   "effect-size",
		Short: "Effect sizes of several metadata columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			req.Source = app.Source(source)
			if req.NJobs == 0 {
				req.NJobs = opts.analysis.NJobs
			}
			table, err := svc.EffectSizes(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, report.EffectSizeRecords("effect-size", table))
		},
	}

	cmd.Flags().StringVar(&source, "source", string(app.SourceAlpha), "Diversity data to use (alpha or beta)")
	cmd.Flags().StringSliceVar(&req.Columns, "columns", nil, "Categorical metadata columns")
	cmd.Flags().BoolVar(&req.Pairwise, "pairwise", false, "Cohen's d for every pair of levels")
	cmd.Flags().IntVar(&req.NJobs, "n-jobs", opts.analysis.NJobs, "Columns processed in parallel (-1 for all CPUs)")
	_ = cmd.MarkFlagRequired("columns")
	return cmd
}

func newRepeatedMeasuresCmd(opts *inputOptions) *cobra.Command {
	var req app.RepeatedMeasuresRequest

	cmd := &cobra.Command{
		Use:   "repeated-measures",
		Short: "Repeated-measures power analysis of alpha diversity",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			table, err := svc.RepeatedMeasures(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, report.RepeatedMeasuresRecords("repeated-measures", table))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.IndividualColumn, "individual-id-column", opts.data.IndividualIDColumn, "Metadata column identifying subjects")
	flags.StringVar(&req.StateColumn, "state-column", "", "Metadata column of the repeated state")
	flags.IntSliceVar(&req.Grid.Subjects, "subjects", nil, "Numbers of subjects")
	flags.IntSliceVar(&req.Grid.Measurements, "measurements", nil, "Numbers of measurements per subject")
	flags.Float64SliceVar(&req.Grid.Alpha, "alpha", []float64{0.05}, "Significance levels")
	flags.Float64SliceVar(&req.Grid.Correlation, "correlation", []float64{0}, "Correlations between repeated measurements")
	flags.Float64SliceVar(&req.Grid.Epsilon, "epsilon", []float64{1}, "Sphericity corrections")
	_ = cmd.MarkFlagRequired("state-column")
	_ = cmd.MarkFlagRequired("subjects")
	_ = cmd.MarkFlagRequired("measurements")
	return cmd
}

// writeOutput picks the format from the output extension
func writeOutput(stdout io.Writer, path string, table report.Table) error {
	if path == "" {
		return excel.WriteDelimited(stdout, excel.FileTypeTSV, table.Header, table.Records)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md":
		return os.WriteFile(path, table.Markdown(), 0o644)
	case ".html":
		return os.WriteFile(path, table.HTML(), 0o644)
	default:
		if err := excel.WriteTable(path, table.Header, table.Records); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}
}
