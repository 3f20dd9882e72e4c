package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var phaseCmd = &cobra.Command{
	Use:   "phase <leader|anchor>",
	Short: "Start a new phase at week 1",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		phase, err := models.ParsePhase(args[0])
		if err != nil {
			return err
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.SetPhase(cmd.Context(), phase)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Now in the %s phase, week 1\n", result.NewPhase)
		if result.LeaderCyclesCompletedReset {
			fmt.Println("Leader cycle counter reset.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(phaseCmd)
}
