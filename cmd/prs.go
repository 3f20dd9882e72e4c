package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var prsLift string

var prsCmd = &cobra.Command{
	Use:   "prs",
	Short: "Show the rep PR table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter *models.Lift
		if prsLift != "" {
			lift, err := models.ParseLift(prsLift)
			if err != nil {
				return err
			}
			filter = &lift
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		prs, err := eng.GetPRs(cmd.Context(), filter)
		if err != nil {
			return err
		}
		if len(prs) == 0 {
			fmt.Println("No PRs yet. Log an AMRAP set to start the table.")
			return nil
		}

		for _, pr := range prs {
			name := color.New(color.FgMagenta, color.Bold).Sprint(pr.Lift)
			fmt.Printf("  • %s: %.0f lbs x %d (e1RM %.0f) on %s\n",
				name, pr.Weight, pr.BestReps, pr.Estimated1RM, pr.Date)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prsCmd)

	prsCmd.Flags().StringVarP(&prsLift, "lift", "l", "", "Filter by lift")
}
