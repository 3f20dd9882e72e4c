package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var templatesType string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the template catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		templates, err := eng.GetAvailableTemplates(cmd.Context(), templatesType)
		if err != nil {
			return err
		}
		if len(templates) == 0 {
			fmt.Println("No templates found.")
			return nil
		}

		for _, tmpl := range templates {
			name := color.New(color.FgMagenta, color.Bold).Sprint(tmpl.Name)
			fmt.Printf("  • %s: %s (%s, TM %d%%)\n", name, tmpl.DisplayName, tmpl.Type, tmpl.TMPercentage)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)

	templatesCmd.Flags().StringVarP(&templatesType, "type", "t", "", "Filter by type: leader or anchor")
}
