package cmd

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ailearn/internal/evaluation"
	"github.com/abhisek/ailearn/internal/store"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [answer...]",
	Short: "Grade a written answer against the topic rubric",
	Long: `Grade a written answer. The answer is taken from the arguments or, when
there are none, from standard input. Without an answer the question for
the topic is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := openRuntime(ctx, true)
		if err != nil {
			return err
		}
		defer rt.Close()

		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			topic = rt.svc.Progress.Snapshot().SelectedTopic
		}
		answer, err := textArg(cmd, args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if answer == "" {
			q, focus := rt.svc.Evaluator.Question(topic, rt.svc.Catalog.TopicName(topic))
			fmt.Fprintf(out, "%s\n%s\n", q, focus)
			return nil
		}

		if err := rt.svc.Pacer.Evaluation(ctx); err != nil {
			return err
		}
		res, err := rt.svc.Evaluator.Evaluate(topic, answer)
		if errors.Is(err, evaluation.ErrEmptyAnswer) {
			return fmt.Errorf("answer is required")
		}
		if err != nil {
			return err
		}
		ev := store.EvaluationEventData{
			Topic:        res.Topic,
			Score:        res.Score,
			Concepts:     len(res.Evaluations),
			AnswerLength: utf8.RuneCountInString(answer),
		}
		if rt.svc.Events != nil {
			if err := rt.svc.Events.AppendEvaluation(ctx, ev); err != nil {
				logger.Warn("record evaluation", zap.Error(err))
			}
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(out, res)
		}
		for _, c := range res.Evaluations {
			fmt.Fprintf(out, "[%s] %s %d/%d\n    %s\n", c.Status, c.Concept, c.Score, c.MaxScore, c.Feedback)
		}
		fmt.Fprintf(out, "\nPuntuación final: %d/100\n", res.Score)
		return nil
	},
}

func init() {
	evaluateCmd.Flags().String("topic", "", "Topic id (default: the selected topic)")
	evaluateCmd.Flags().Bool("json", false, "Print JSON")
}
