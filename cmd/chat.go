package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the tutor from the terminal",
	Long:  "Read questions line by line from standard input and print the tutor's replies. An empty line or EOF ends the chat.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := openRuntime(ctx, true)
		if err != nil {
			return err
		}
		defer rt.Close()

		lessonID, _ := cmd.Flags().GetString("lesson")
		if lessonID != "" {
			if _, err := rt.svc.Catalog.Lookup(lessonID); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Tutor: ¡Hola! Pregúntame lo que quieras. Deja una línea vacía para salir.")
		sc := bufio.NewScanner(cmd.InOrStdin())
		messages := 0
		for {
			fmt.Fprint(out, "> ")
			if !sc.Scan() {
				break
			}
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				break
			}
			messages++
			if err := rt.svc.Pacer.Feedback(ctx); err != nil {
				return err
			}
			fmt.Fprintf(out, "Tutor: %s\n\n", rt.svc.Tutor.Reply(line, lessonID, messages))
		}
		fmt.Fprintln(out)
		return sc.Err()
	},
}

func init() {
	chatCmd.Flags().String("lesson", "", "Lesson id the questions are about")
}
