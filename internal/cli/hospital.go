package cli

import (
	"github.com/spf13/cobra"
)

func newHospitalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hospital",
		Short: "Hospital commands",
	}

	cmd.AddCommand(newHospitalAdmitCmd())
	cmd.AddCommand(newHospitalStatusCmd())
	cmd.AddCommand(newHospitalReleaseCmd())

	return cmd
}

func newHospitalAdmitCmd() *cobra.Command {
	var duration int
	var reason string

	cmd := &cobra.Command{
		Use:   "admit",
		Short: "Admit yourself to hospital",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{}
			if cmd.Flags().Changed("duration") {
				body["duration_minutes"] = duration
			}
			if cmd.Flags().Changed("reason") {
				body["reason"] = reason
			}

			var result AdmitResult

			if err := client.Post("/api/v1/hospital-admit", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&duration, "duration", 0, "Confinement duration in minutes (default: server default)")
	cmd.Flags().StringVar(&reason, "reason", "", "Admission reason (default: server default)")

	return cmd
}

func newHospitalStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current hospital status",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HospitalStatus

			if err := client.Get("/api/v1/hospital-release/status", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHospitalReleaseCmd() *cobra.Command {
	var method string
	var cost int

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Release yourself from hospital",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{}
			if cmd.Flags().Changed("method") {
				body["method"] = method
			}
			if cmd.Flags().Changed("cost") {
				body["cost"] = cost
			}

			var result ReleaseResult

			if err := client.Post("/api/v1/hospital-release/release", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "Release method (gems charges the cost; anything else is free)")
	cmd.Flags().IntVar(&cost, "cost", 0, "Gem cost when using the gems method")

	return cmd
}
