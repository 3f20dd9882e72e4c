package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var templateCmd = &cobra.Command{
	Use:   "template <lift> <template-name>",
	Short: "Assign a template to a lift",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lift, err := models.ParseLift(args[0])
		if err != nil {
			return err
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.SetTemplate(cmd.Context(), lift, args[1])
		if err != nil {
			return err
		}

		fmt.Printf("✅ %s now runs %s (%s)\n", result.Lift, result.NewTemplateDisplayName, result.NewTemplate)
		if result.PreviousTemplate != nil {
			fmt.Printf("Replaced %s\n", *result.PreviousTemplate)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
