package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var rescheduleCmd = &cobra.Command{
	Use:   "reschedule <lift> <day>",
	Short: "Move a lift to a different day of the week",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lift, err := models.ParseLift(args[0])
		if err != nil {
			return err
		}
		day, err := models.ParseDay(args[1])
		if err != nil {
			return err
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.RescheduleLift(cmd.Context(), lift, day)
		if err != nil {
			return err
		}

		if result.OriginalDay != nil {
			fmt.Printf("✅ Moved %s from %s to %s\n", result.Lift, *result.OriginalDay, result.NewDay)
		} else {
			fmt.Printf("✅ Scheduled %s on %s\n", result.Lift, result.NewDay)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rescheduleCmd)
}
