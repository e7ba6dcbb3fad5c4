package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/ailearn/internal/adaptive"
	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/profile"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Generate and browse lessons",
}

var lessonGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a micro-lesson for a concept",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := openRuntime(ctx, true)
		if err != nil {
			return err
		}
		defer rt.Close()

		p, err := profileFromFlags(cmd, rt.svc.Progress.Profile())
		if err != nil {
			return err
		}
		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			topic = rt.svc.Progress.Snapshot().SelectedTopic
		}
		concept, _ := cmd.Flags().GetString("concept")

		if err := rt.svc.Pacer.Generation(ctx); err != nil {
			return err
		}
		lesson := lessons.Generate(rt.svc.Catalog.TopicName(topic), concept, p)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd.OutOrStdout(), struct {
				Lesson  lessons.Lesson `json:"lesson"`
				Content string         `json:"content"`
				Plan    adaptive.Plan  `json:"plan"`
			}{lesson, lessons.Format(lesson), adaptive.BuildPlan(p)})
		}
		fmt.Fprintln(cmd.OutOrStdout(), lessons.Format(lesson))
		return nil
	},
}

var lessonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the lessons of a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer rt.Close()

		st := rt.svc.Progress.Snapshot()
		topic, _ := cmd.Flags().GetString("topic")
		var list []lessons.CatalogLesson
		switch all, _ := cmd.Flags().GetBool("all"); {
		case all:
			list = rt.svc.Catalog.All()
		case topic != "":
			list = rt.svc.Catalog.ForTopic(topic)
		default:
			list = rt.svc.Catalog.ForTopic(st.SelectedTopic)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd.OutOrStdout(), list)
		}
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No lessons found.")
			return nil
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTOPIC\tTITLE\tMIN\tDONE\tMASTERY")
		for _, l := range list {
			done := ""
			if st.HasCompleted(l.ID) {
				done = "✓"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%d%%\n", l.ID, l.Topic, l.Title, l.Minutes, done, st.Mastery(l.ID))
		}
		return tw.Flush()
	},
}

var lessonPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show how content would be adapted for the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer rt.Close()

		p, err := profileFromFlags(cmd, rt.svc.Progress.Profile())
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd.OutOrStdout(), adaptive.BuildPlan(p))
		}
		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			topic = rt.svc.Progress.Snapshot().SelectedTopic
		}
		concept, _ := cmd.Flags().GetString("concept")
		fmt.Fprintln(cmd.OutOrStdout(), adaptive.Brief(rt.svc.Catalog.TopicName(topic), concept, p))
		return nil
	},
}

// profileFromFlags overrides the stored profile with --style and --state.
func profileFromFlags(cmd *cobra.Command, p profile.Profile) (profile.Profile, error) {
	if s, _ := cmd.Flags().GetString("style"); s != "" {
		style, err := profile.ParseLearningStyle(s)
		if err != nil {
			return p, err
		}
		p.LearningStyle = style
	}
	if s, _ := cmd.Flags().GetString("state"); s != "" {
		state, err := profile.ParseMentalState(s)
		if err != nil {
			return p, err
		}
		p.MentalState = state
	}
	return p, nil
}

func init() {
	for _, c := range []*cobra.Command{lessonGenerateCmd, lessonPlanCmd} {
		c.Flags().String("topic", "", "Topic id (default: the selected topic)")
		c.Flags().String("concept", "", "Concept to teach")
		c.Flags().String("style", "", "Learning style override: visual, verbal, kinesthetic, logical")
		c.Flags().String("state", "", "Mental state override: tired, neutral, motivated")
		c.Flags().Bool("json", false, "Print JSON")
	}
	_ = lessonGenerateCmd.MarkFlagRequired("concept")

	lessonListCmd.Flags().String("topic", "", "Topic id (default: the selected topic)")
	lessonListCmd.Flags().Bool("all", false, "List every topic")
	lessonListCmd.Flags().Bool("json", false, "Print JSON")

	lessonCmd.AddCommand(lessonGenerateCmd)
	lessonCmd.AddCommand(lessonListCmd)
	lessonCmd.AddCommand(lessonPlanCmd)
}
