package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long: `Reset learner data. A snapshot is taken first so the reset can be undone
with "ailearn restore".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		onboarding, _ := cmd.Flags().GetBool("onboarding")
		counters, _ := cmd.Flags().GetBool("counters")
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !onboarding && !counters {
			return fmt.Errorf("this deletes all progress; pass --yes to confirm")
		}

		rt, err := openRuntime(ctx, false)
		if err != nil {
			return err
		}
		defer rt.Close()
		if err := rt.snapshot(ctx); err != nil {
			return err
		}

		svc := rt.svc.Progress
		out := cmd.OutOrStdout()
		switch {
		case counters:
			if err := svc.ResetCounters(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Error and success counters cleared.")
		case onboarding:
			if err := svc.ResetOnboarding(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Onboarding answers cleared. Progress was kept.")
		default:
			if err := svc.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "All progress cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("onboarding", false, "Only clear the onboarding answers")
	resetCmd.Flags().Bool("counters", false, "Only clear the recent error and success counters")
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm a full reset")
}
