package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/ailearn/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent learning activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer rt.Close()
		if rt.svc.Events == nil {
			return fmt.Errorf("the %s backend keeps no event log", cfg.Backend)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		opts := store.QueryOpts{Limit: limit}
		if lessonID, _ := cmd.Flags().GetString("lesson"); lessonID != "" {
			events, err := rt.svc.Events.LessonEvents(cmd.Context(), lessonID)
			if err != nil {
				return err
			}
			return printLessonEvents(cmd, events)
		}

		events, err := rt.svc.Events.Recent(cmd.Context(), opts)
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd.OutOrStdout(), events)
		}
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No activity yet.")
			return nil
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SEQ\tTIME\tKIND\tSUMMARY")
		for _, e := range events {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04"), e.Kind, e.Summary)
		}
		return tw.Flush()
	},
}

func printLessonEvents(cmd *cobra.Command, events []store.LessonEventData) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd.OutOrStdout(), events)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tACTION\tSCORE\tDETAIL")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", shortID(e.RunID), e.Action, e.Score, e.Detail)
	}
	return tw.Flush()
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events")
	historyCmd.Flags().String("lesson", "", "Show the step events of one lesson")
	historyCmd.Flags().Bool("json", false, "Print JSON")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
