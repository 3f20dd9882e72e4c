package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Manually advance the program one week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.AdvanceWeek(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("✅ Week %d → %d. %s\n", result.PreviousWeek, result.NewWeek, result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(advanceCmd)
}
