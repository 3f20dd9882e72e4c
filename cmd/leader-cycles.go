package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var leaderCyclesCmd = &cobra.Command{
	Use:   "leader-cycles <count>",
	Short: "Set the leader-cycles-completed counter (escape hatch)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count %q", args[0])
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.SetLeaderCyclesCompleted(cmd.Context(), count)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Leader cycles completed: %d → %d\n", result.PreviousCount, result.NewCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(leaderCyclesCmd)
}
