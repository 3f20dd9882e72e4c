package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var skipReason string

var skipCmd = &cobra.Command{
	Use:   "skip <lift>",
	Short: "Skip a lift this week (counts toward week completion)",
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

		result, err := eng.SkipLift(cmd.Context(), lift, skipReason)
		if err != nil {
			return err
		}

		fmt.Printf("⏭️  Skipped %s for week %d\n", result.Lift, result.Week)
		if result.WeekComplete {
			fmt.Println(result.WeekAdvanced.Message)
		} else if len(result.LiftsRemaining) > 0 {
			names := make([]string, 0, len(result.LiftsRemaining))
			for _, l := range result.LiftsRemaining {
				names = append(names, string(l))
			}
			fmt.Printf("Still to go this week: %s\n", strings.Join(names, ", "))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(skipCmd)

	skipCmd.Flags().StringVarP(&skipReason, "reason", "r", "", "Why the session is being skipped")
}
