package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var holdTMCmd = &cobra.Command{
	Use:   "hold-tm <lift>",
	Short: "Hold a lift's training max through the pending cycle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lift, err := models.ParseLift(args[0])
		if err != nil {
			return err
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.SkipTMBump(cmd.Context(), lift)
		if err != nil {
			return err
		}

		if result.TrainingMax != nil {
			fmt.Printf("✅ Holding %s TM at %.0f\n", result.Lift, *result.TrainingMax)
		} else {
			fmt.Printf("✅ Holding %s TM (not set yet)\n", result.Lift)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(holdTMCmd)
}
