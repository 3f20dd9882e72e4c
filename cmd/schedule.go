package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <day> <lift>",
	Short: "Assign a lift to a day, or clear the day with \"none\"",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := models.ParseDay(args[0])
		if err != nil {
			return err
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.SetSchedule(cmd.Context(), day, args[1])
		if err != nil {
			return err
		}

		if result.Cleared {
			fmt.Printf("✅ Cleared %s\n", result.Day)
			return nil
		}

		fmt.Printf("✅ %s on %s\n", result.Lift, result.Day)
		if result.Conflict {
			fmt.Printf("Displaced %s from %s\n", *result.PreviousLiftOnDay, result.Day)
		}
		if result.PreviousDayForLift != nil {
			fmt.Printf("Was on %s\n", *result.PreviousDayForLift)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}
