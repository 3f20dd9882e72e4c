package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var finalizeTMsCmd = &cobra.Command{
	Use:   "finalize-tms",
	Short: "Resolve the pending TM bump and move the program forward",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.FinalizeTMBumps(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("✅ %s\n", result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(finalizeTMsCmd)
}
