// Command desimctl runs the example workloads under examples/ end to end
// and prints their trace, grounded on the root-command/subcommand-factory
// pattern used across the example pack's cobra-based CLIs.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by every subcommand.
type RootOptions struct {
	Seed   uint64
	Format string // "text" | "json"
}

var validFormats = []string{"text", "json"}

// NewRootCommand creates the root desimctl command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "desimctl",
		Short: "desimctl runs desim example workloads",
		Long:  "desimctl drives the carwash, finite-resource, store and one-cpu example simulations and prints their trace.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().Uint64Var(&opts.Seed, "seed", 1, "PRNG seed for randomized workloads")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewCarwashCommand(opts))
	cmd.AddCommand(NewFiniteResourceCommand(opts))
	cmd.AddCommand(NewStoreCommand(opts))
	cmd.AddCommand(NewOneCPUCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
