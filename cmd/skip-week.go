package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var skipWeekReason string

var skipWeekCmd = &cobra.Command{
	Use:   "skip-week",
	Short: "Skip every remaining lift this week and advance the program",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.SkipWeek(cmd.Context(), skipWeekReason)
		if err != nil {
			return err
		}

		fmt.Printf("⏭️  Skipped week %d, now on week %d (%s)\n",
			result.WeekSkipped, result.AdvancedTo, result.NewStatus)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skipWeekCmd)

	skipWeekCmd.Flags().StringVarP(&skipWeekReason, "reason", "r", "", "Why the week is being skipped")
}
