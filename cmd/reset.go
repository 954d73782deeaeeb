package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear today's quiz so the next play builds a new one",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		user := userFlag(cmd)
		a.Engine.Reset(cmd.Context(), user)
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared quiz for %s on %s.\n", user, a.Engine.DateKey())
		return nil
	},
}
