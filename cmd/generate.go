package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/adilsezer/lithuaningo-sub000/internal/session"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a fresh question batch as JSON without touching progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, _ := cmd.Flags().GetStringSlice("sentences")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		questions, err := a.Engine.Build(cmd.Context(), session.UserData{ID: userFlag(cmd), LearnedSentenceIDs: ids})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	},
}

func init() {
	generateCmd.Flags().StringSliceP("sentences", "s", nil, "Learned sentence IDs to use instead of the stored list")
}
