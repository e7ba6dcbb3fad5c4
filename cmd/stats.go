package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/ailearn/internal/adaptive"
	"github.com/abhisek/ailearn/internal/profile"
	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/screen"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer rt.Close()

		st := rt.svc.Progress.Snapshot()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd.OutOrStdout(), st)
		}

		p := st.Profile()
		history, err := completionHistory(cmd.Context(), rt.svc, st)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		rows := [][2]string{
			{"Onboarding", fmt.Sprint(st.HasCompletedOnboarding)},
			{"Topic", rt.svc.Catalog.TopicName(st.SelectedTopic)},
			{"Learning style", p.LearningStyle.Effective().DisplayName()},
			{"Level", p.TechnicalLevel.DisplayName()},
			{"Mental state", p.MentalState.DisplayName()},
			{"Cognitive load", string(p.CognitiveLoad)},
			{"Goal", st.Goal},
			{"Points", fmt.Sprint(st.TotalPoints)},
			{"Streak", fmt.Sprint(st.CurrentStreak)},
			{"Lessons completed", fmt.Sprint(len(st.CompletedLessons))},
			{"Hours", fmt.Sprintf("%.2f", st.TotalHours)},
			{"Recent errors / successes", fmt.Sprintf("%d / %d", st.RecentErrors, st.RecentSuccesses)},
			{"Session length", fmt.Sprintf("%d min", adaptive.SessionMinutes(p))},
			{"Recommended lesson length", recommendedLength(p, st)},
			{"Progression", string(adaptive.ProgressionPath(p, history))},
			{"Adaptations", fmt.Sprint(st.AdaptationHistory.Len())},
		}
		for _, r := range rows {
			fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
		}
		return tw.Flush()
	},
}

func recommendedLength(p profile.Profile, st progress.State) string {
	avg, ok := st.AverageLessonMinutes()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%d min", adaptive.RecommendedLength(p, avg))
}

// completionHistory lists every completed run, oldest first, repeats
// included. Without an event log only the distinct completed lessons are
// known.
func completionHistory(ctx context.Context, svc screen.Services, st progress.State) ([]adaptive.Completion, error) {
	var history []adaptive.Completion
	if svc.Events == nil {
		for _, id := range st.CompletedLessons {
			if l, err := svc.Catalog.Lookup(id); err == nil {
				history = append(history, adaptive.Completion{LessonID: id, Topic: l.Topic})
			}
		}
		return history, nil
	}

	runs, err := svc.Events.Completions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	for _, r := range runs {
		history = append(history, adaptive.Completion{LessonID: r.LessonID, Topic: r.Topic})
	}
	return history, nil
}

func init() {
	statsCmd.Flags().Bool("json", false, "Print the full progress record as JSON")
}
