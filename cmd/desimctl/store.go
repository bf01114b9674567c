package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joeycumines/desim/examples/store"
)

// NewStoreCommand runs the bounded store producer/consumer example.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := store.Default

	cmd := &cobra.Command{
		Use:          "store",
		Short:        "run the bounded store producer/consumer example",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := store.Run(cfg)
			entries := sim.ProcessedEvents()

			fmt.Fprintf(cmd.ErrOrStderr(), "popped values: %v\n", store.Values(entries))

			return printTrace(cmd.OutOrStdout(), rootOpts.Format, entries)
		},
	}

	cmd.Flags().IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "store capacity")
	cmd.Flags().IntVar(&cfg.Count, "count", cfg.Count, "values produced/consumed")
	cmd.Flags().Float64Var(&cfg.ProducerDelay, "producer-delay", cfg.ProducerDelay, "delay between pushes")
	cmd.Flags().Float64Var(&cfg.ConsumerStart, "consumer-start", cfg.ConsumerStart, "consumer start time")

	return cmd
}
