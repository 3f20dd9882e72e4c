package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week <1|2|3>",
	Short: "Jump directly to a week (escape hatch)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		week, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid week %q", args[0])
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.SetWeek(cmd.Context(), week)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Week %d → %d\n", result.PreviousWeek, result.NewWeek)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
