package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetKeepTMs bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the program to week 1 of a fresh leader phase",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.ResetProgram(cmd.Context(), resetKeepTMs)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Program reset to week %d of the %s phase\n", result.CurrentWeek, result.CurrentPhase)
		if !result.TMsKept {
			fmt.Println("Training maxes recomputed from tested 1RMs.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolVar(&resetKeepTMs, "keep-tms", true, "Keep current training maxes")
}
