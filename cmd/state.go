package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the full program state: week, phase, maxes, templates and schedule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		overview, err := eng.GetProgramState(cmd.Context())
		if err != nil {
			return err
		}

		printBoxedHeader("PROGRAM STATE")

		printMetric("Week", overview.CurrentWeek)
		printMetric("Phase", overview.CurrentPhase)
		printMetric("Status", overview.PhaseStatus)
		printMetric("Cycle", overview.CycleID)
		printMetric("Leader cycles completed", overview.LeaderCyclesCompleted)
		fmt.Println()

		color.New(color.FgGreen, color.Bold).Println("Lifts:")
		for _, lift := range models.AllLifts() {
			info := overview.Lifts[lift]
			name := color.New(color.FgMagenta, color.Bold).Sprint(lift)

			tm := "—"
			if info.TrainingMax != nil {
				tm = fmt.Sprintf("TM %.0f", *info.TrainingMax)
			}
			tmpl := "no template"
			if info.ActiveTemplateDisplayName != nil {
				tmpl = *info.ActiveTemplateDisplayName
			} else if info.ActiveTemplate != nil {
				tmpl = *info.ActiveTemplate
			}
			extras := ""
			if info.Tested1RM != nil {
				extras += fmt.Sprintf(", tested %.0f", *info.Tested1RM)
			}
			if info.Estimated1RM != nil {
				extras += fmt.Sprintf(", e1RM %.0f", *info.Estimated1RM)
			}

			fmt.Printf("  • %s: %s (%s%s)\n", name, tm, tmpl, extras)
		}
		fmt.Println()

		color.New(color.FgGreen, color.Bold).Println("Schedule:")
		for _, day := range models.DayOrder() {
			if lift, ok := overview.Schedule[day]; ok {
				fmt.Printf("  • %s: %s\n", day, lift)
			}
		}

		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
