package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn [sentence-id...]",
	Short: "Mark sentences as learned, or list them",
	RunE: func(cmd *cobra.Command, args []string) error {
		replace, _ := cmd.Flags().GetBool("replace")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		user := userFlag(cmd)
		out := cmd.OutOrStdout()

		var ids []string
		switch {
		case replace:
			if err := a.Engine.SetLearned(ctx, user, args); err != nil {
				return err
			}
			ids = args
		case len(args) > 0:
			ids, err = a.Engine.MarkLearned(ctx, user, args...)
			if err != nil {
				return err
			}
		default:
			ids = a.Engine.Learned(ctx, user)
		}

		if len(ids) == 0 {
			fmt.Fprintln(out, "No learned sentences.")
			return nil
		}
		fmt.Fprintf(out, "%d learned sentences for %s: %s\n", len(ids), user, strings.Join(ids, ", "))
		return nil
	},
}

func init() {
	learnCmd.Flags().Bool("replace", false, "Replace the learned list instead of appending")
}
