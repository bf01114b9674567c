package main

import (
	"github.com/spf13/cobra"

	"github.com/joeycumines/desim/examples/onecpu"
)

// NewOneCPUCommand runs the single-CPU fixed/random job contention
// example. p2 never completes, so the run is always bounded by
// cfg.EndTime rather than draining the queue.
func NewOneCPUCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := onecpu.Default

	cmd := &cobra.Command{
		Use:          "one-cpu",
		Short:        "run the single-CPU fixed/random job example",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := onecpu.Run(cfg, rootOpts.Seed)
			return printTrace(cmd.OutOrStdout(), rootOpts.Format, sim.ProcessedEvents())
		},
	}

	cmd.Flags().IntVar(&cfg.FixedJobIterations, "fixed-iterations", cfg.FixedJobIterations, "iterations of the fixed job")
	cmd.Flags().Float64Var(&cfg.FixedJobTime, "fixed-job-time", cfg.FixedJobTime, "fixed job duration")
	cmd.Flags().IntVar(&cfg.RandomJobMax, "random-job-max", cfg.RandomJobMax, "exclusive upper bound on random job duration")
	cmd.Flags().Float64Var(&cfg.RandomJobStart, "random-job-start", cfg.RandomJobStart, "time the random job process starts")
	cmd.Flags().Float64Var(&cfg.EndTime, "end-time", cfg.EndTime, "simulation end time")

	return cmd
}
