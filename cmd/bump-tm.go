package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var bumpTMCmd = &cobra.Command{
	Use:   "bump-tm <lift> <amount>",
	Short: "Add pounds to a lift's training max (0 holds it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lift, err := models.ParseLift(args[0])
		if err != nil {
			return err
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[1])
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.BumpTM(cmd.Context(), lift, amount)
		if err != nil {
			return err
		}

		fmt.Printf("✅ %s TM: %.0f → %.0f (%+.0f)\n", result.Lift, result.PreviousTM, result.NewTM, result.Amount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bumpTMCmd)
}
