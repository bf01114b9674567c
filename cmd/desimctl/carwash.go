package main

import (
	"github.com/spf13/cobra"

	"github.com/joeycumines/desim/examples/carwash"
)

// NewCarwashCommand runs the carwash example workload.
func NewCarwashCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := carwash.Default

	cmd := &cobra.Command{
		Use:          "carwash",
		Short:        "run the carwash semaphore-contention example",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := carwash.Run(cfg, rootOpts.Seed)
			return printTrace(cmd.OutOrStdout(), rootOpts.Format, sim.ProcessedEvents())
		},
	}

	cmd.Flags().IntVar(&cfg.Machines, "machines", cfg.Machines, "number of wash machines")
	cmd.Flags().IntVar(&cfg.Cars, "cars", cfg.Cars, "number of cars")
	cmd.Flags().Float64Var(&cfg.ArrivalSpan, "arrival-span", cfg.ArrivalSpan, "interarrival window")
	cmd.Flags().Float64Var(&cfg.DriveMean, "drive-mean", cfg.DriveMean, "mean drive time")
	cmd.Flags().Float64Var(&cfg.WashMean, "wash-mean", cfg.WashMean, "mean wash time")

	return cmd
}
