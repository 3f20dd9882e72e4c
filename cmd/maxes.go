package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var maxesCmd = &cobra.Command{
	Use:   "maxes",
	Short: "Show tested, estimated and training maxes for every lift",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		maxes, err := eng.GetTrainingMaxes(cmd.Context())
		if err != nil {
			return err
		}

		for _, lift := range models.AllLifts() {
			info := maxes[lift]
			name := color.New(color.FgMagenta, color.Bold).Sprint(lift)

			line := "not set up"
			if info.TrainingMax != nil {
				line = fmt.Sprintf("TM %.0f", *info.TrainingMax)
				if info.TMPercentage != nil {
					line += fmt.Sprintf(" (%d%%)", *info.TMPercentage)
				}
			}
			if info.Tested1RM != nil {
				line += fmt.Sprintf(", tested %.0f", *info.Tested1RM)
			}
			if info.Estimated1RM != nil {
				line += fmt.Sprintf(", e1RM %.0f", *info.Estimated1RM)
			}

			fmt.Printf("  • %s: %s\n", name, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(maxesCmd)
}
