package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var todayCmd = &cobra.Command{
	Use:   "today <lift>",
	Short: "Show the prescribed workout for a lift this week",
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

		workout, err := eng.TodaysWorkout(cmd.Context(), lift)
		if err != nil {
			return err
		}

		header := color.New(color.FgCyan, color.Bold)
		header.Printf("%s — week %d, %s phase (%s, TM %.0f)\n\n",
			workout.Lift, workout.Week, workout.Phase, workout.Template, workout.TrainingMax)

		bold := color.New(color.Bold)
		bold.Println("Main work:")
		for i, set := range workout.MainWork {
			fmt.Printf("  %d. %.0f lbs x %s (%d%%)\n", i+1, set.Weight, set.Reps, set.Percentage)
		}

		if len(workout.Supplemental) > 0 {
			fmt.Println()
			bold.Println("Supplemental:")
			for _, set := range workout.Supplemental {
				label := ""
				if set.Type != "" {
					label = fmt.Sprintf(" [%s]", set.Type)
				}
				fmt.Printf("  %dx%s @ %.0f lbs (%d%%)%s\n", set.Sets, set.Reps, set.Weight, set.Percentage, label)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
