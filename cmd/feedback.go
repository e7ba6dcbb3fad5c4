package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ailearn/internal/tutor"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [answer...]",
	Short: "Ask the tutor for feedback on an answer",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := openRuntime(ctx, true)
		if err != nil {
			return err
		}
		defer rt.Close()

		stepFlag, _ := cmd.Flags().GetString("step")
		step := tutor.Step(stepFlag)
		switch step {
		case tutor.StepPractice, tutor.StepComprehension, tutor.StepReflection, tutor.StepFinal:
		default:
			return fmt.Errorf("unknown step %q (practice, comprehension, reflection, final)", stepFlag)
		}
		answer, err := textArg(cmd, args)
		if err != nil {
			return err
		}
		perf, _ := cmd.Flags().GetString("performance")

		p, err := profileFromFlags(cmd, rt.svc.Progress.Profile())
		if err != nil {
			return err
		}
		if err := rt.svc.Pacer.Feedback(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rt.svc.Tutor.Feedback(tutor.Request{
			Step:        step,
			Answer:      answer,
			Profile:     p,
			Performance: tutor.Performance(perf),
		}))
		return nil
	},
}

func init() {
	feedbackCmd.Flags().String("step", string(tutor.StepPractice), "Lesson step: practice, comprehension, reflection, final")
	feedbackCmd.Flags().String("performance", "", `Final step performance: excelente, bueno, "en progreso"`)
	feedbackCmd.Flags().String("style", "", "Learning style override: visual, verbal, kinesthetic, logical")
	feedbackCmd.Flags().String("state", "", "Mental state override: tired, neutral, motivated")
}
