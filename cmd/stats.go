package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer accuracy and most-missed words",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		user := userFlag(cmd)
		out := cmd.OutOrStdout()

		byType, err := s.EventRepo().AccuracyByType(ctx, user)
		if err != nil {
			return fmt.Errorf("query accuracy: %w", err)
		}
		if len(byType) == 0 {
			fmt.Fprintf(out, "No answers recorded for %s yet.\n", user)
			return nil
		}

		fmt.Fprintln(out, "Accuracy by Question Type")
		fmt.Fprintln(out, strings.Repeat("─", 52))
		fmt.Fprintf(out, "%-18s  %8s  %8s  %9s\n", "Type", "Answers", "Correct", "Accuracy")
		fmt.Fprintln(out, strings.Repeat("─", 52))

		var total, correct int
		for _, a := range byType {
			fmt.Fprintf(out, "%-18s  %8d  %8d  %8.0f%%\n", a.QuestionType, a.Attempts, a.Correct, a.Accuracy()*100)
			total += a.Attempts
			correct += a.Correct
		}
		fmt.Fprintln(out, strings.Repeat("─", 52))
		fmt.Fprintf(out, "%-18s  %8d  %8d  %8.0f%%\n", "TOTAL", total, correct, float64(correct)/float64(total)*100)

		missed, err := s.EventRepo().MostMissedWords(ctx, user, limit)
		if err != nil {
			return fmt.Errorf("query missed words: %w", err)
		}
		if len(missed) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Most Missed Words")
			fmt.Fprintln(out, strings.Repeat("─", 40))
			fmt.Fprintf(out, "%-20s  %8s  %8s\n", "Word", "Misses", "Answers")
			fmt.Fprintln(out, strings.Repeat("─", 40))
			for _, w := range missed {
				fmt.Fprintf(out, "%-20s  %8d  %8d\n", w.Word, w.Misses, w.Attempts)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of missed words to show")
}
