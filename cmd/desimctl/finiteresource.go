package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joeycumines/desim/examples/finiteresource"
)

// NewFiniteResourceCommand runs the finite-resource (bounded wait queue
// with loss) example workload.
func NewFiniteResourceCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := finiteresource.Default

	cmd := &cobra.Command{
		Use:          "finite-resource",
		Short:        "run the bounded wait-queue example, reporting turned-away clients",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := finiteresource.Run(cfg, rootOpts.Seed)
			entries := sim.ProcessedEvents()

			turnedAway := 0
			for _, e := range entries {
				if e.Yielded.QueueFull {
					turnedAway++
				}
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "clients turned away: %d/%d\n", turnedAway, cfg.Clients)

			return printTrace(cmd.OutOrStdout(), rootOpts.Format, entries)
		},
	}

	cmd.Flags().IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "resource capacity")
	cmd.Flags().IntVar(&cfg.WaitCap, "wait-cap", cfg.WaitCap, "bound on the wait queue")
	cmd.Flags().IntVar(&cfg.Clients, "clients", cfg.Clients, "number of clients")
	cmd.Flags().Float64Var(&cfg.ArrivalSpan, "arrival-span", cfg.ArrivalSpan, "interarrival window")

	return cmd
}
