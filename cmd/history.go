package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var (
	historyLift string
	historyLast int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent workout log entries, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter *models.Lift
		if historyLift != "" {
			lift, err := models.ParseLift(historyLift)
			if err != nil {
				return err
			}
			filter = &lift
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		history, err := eng.GetWorkoutHistory(cmd.Context(), filter, historyLast)
		if err != nil {
			return err
		}
		if len(history) == 0 {
			fmt.Println("Nothing logged yet.")
			return nil
		}

		for _, entry := range history {
			name := color.New(color.FgMagenta, color.Bold).Sprint(entry.Lift)
			line := fmt.Sprintf("%s  %s  week %d %s (%s)", entry.Date, name, entry.Week, entry.Phase, entry.Template)
			if entry.Skipped {
				line += color.New(color.FgYellow).Sprint("  [skipped]")
			} else if entry.AMRAPReps != nil && entry.AMRAPWeight != nil {
				line += fmt.Sprintf("  AMRAP %.0fx%d", *entry.AMRAPWeight, *entry.AMRAPReps)
				if entry.Calculated1RM != nil {
					line += fmt.Sprintf(" (e1RM %.0f)", *entry.Calculated1RM)
				}
			}
			fmt.Println(line)
			if entry.Notes != nil {
				fmt.Printf("    %s\n", *entry.Notes)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&historyLift, "lift", "l", "", "Filter by lift")
	historyCmd.Flags().IntVarP(&historyLast, "last", "n", 10, "How many entries to show")
}
