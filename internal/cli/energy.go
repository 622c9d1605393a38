package cli

import (
	"github.com/spf13/cobra"
)

func newEnergyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Energy commands",
	}

	cmd.AddCommand(newEnergyStatusCmd())

	return cmd
}

func newEnergyStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current and maximum energy",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result EnergyStatus

			if err := client.Get("/api/v1/energy/status", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
