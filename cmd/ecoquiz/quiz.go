package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/ecoquiz-lambda/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <topic>",
	Short: "Generate a quiz and print it as JSON",
	Long: "Generate a quiz and print it as JSON. The topic is free text; topics without\n" +
		"a curated bank fall back to the default question set.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, t := range quiz.DefaultBank().Topics() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("a topic is required")
		}

		c, err := newTerminalContainer(cmd)
		if err != nil {
			return err
		}

		result := c.QuizContainer.Service.GenerateWithOutcome(cmd.Context(), strings.Join(args, " "))
		fmt.Fprintf(cmd.ErrOrStderr(), "outcome: %s\n", result.Outcome)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result.Quiz)
	},
}

func init() {
	quizCmd.Flags().Bool("list", false, "List topics with curated fallback questions and exit")
}
