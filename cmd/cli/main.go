package main

import (
	"fmt"
	"os"

	"evident/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "evident",
		Short:         "Power analysis of microbiome diversity across sample metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts := &inputOptions{
		data:     cfg.Data,
		analysis: cfg.Analysis,
	}
	opts.register(rootCmd)

	rootCmd.AddCommand(
		newAlphaPowerCmd(opts),
		newBetaPowerCmd(opts),
		newEffectSizeCmd(opts),
		newRepeatedMeasuresCmd(opts),
	)
	return rootCmd
}
