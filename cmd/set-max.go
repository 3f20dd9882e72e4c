package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var setMaxCmd = &cobra.Command{
	Use:   "set-max <lift> <weight>",
	Short: "Record a tested 1RM and recompute the training max",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lift, err := models.ParseLift(args[0])
		if err != nil {
			return err
		}
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[1])
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.SetTested1RM(cmd.Context(), lift, weight)
		if err != nil {
			return err
		}

		fmt.Printf("✅ %s tested 1RM %.0f, training max %.0f (%d%%)\n",
			result.Lift, result.Tested1RM, result.NewTrainingMax, result.TMPercentage)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setMaxCmd)
}
