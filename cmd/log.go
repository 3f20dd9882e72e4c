package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mcunha/anvil/internal/models"
)

var (
	logSets        string
	logAMRAPReps   int
	logAMRAPWeight float64
	logNotes       string
)

var logCmd = &cobra.Command{
	Use:   "log <lift>",
	Short: "Log a completed workout for the current week",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lift, err := models.ParseLift(args[0])
		if err != nil {
			return err
		}

		actual, err := parseSetList(logSets)
		if err != nil {
			return err
		}

		var amrapReps *int
		var amrapWeight *float64
		if cmd.Flags().Changed("amrap-reps") {
			amrapReps = &logAMRAPReps
		}
		if cmd.Flags().Changed("amrap-weight") {
			amrapWeight = &logAMRAPWeight
		}
		if (amrapReps == nil) != (amrapWeight == nil) {
			return fmt.Errorf("--amrap-reps and --amrap-weight must be given together")
		}

		eng, _, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.LogWorkout(cmd.Context(), lift, actual, amrapReps, amrapWeight, logNotes)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Logged %s for %s\n", result.Lift, result.Date)

		if result.NewPR {
			pr := result.PRDetails
			prLine := fmt.Sprintf("🎉 New rep PR: %.0f lbs x %d (e1RM %.0f)", pr.Weight, pr.Reps, pr.Estimated1RM)
			if pr.PreviousBestReps != nil {
				prLine += fmt.Sprintf(", previous best %d reps", *pr.PreviousBestReps)
			}
			color.New(color.FgGreen, color.Bold).Println(prLine)
		}

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

// parseSetList parses "175x5,205x5,230x5" into actual sets.
func parseSetList(s string) ([]models.ActualSet, error) {
	if s == "" {
		return nil, nil
	}

	var sets []models.ActualSet
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		fields := strings.SplitN(part, "x", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid set %q (expected WEIGHTxREPS, e.g. 175x5)", part)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight in set %q", part)
		}
		reps, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid reps in set %q", part)
		}
		sets = append(sets, models.ActualSet{Weight: weight, Reps: reps})
	}
	return sets, nil
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVarP(&logSets, "sets", "s", "", "Sets performed as WEIGHTxREPS, comma separated (e.g. 175x5,205x5,230x5)")
	logCmd.Flags().IntVar(&logAMRAPReps, "amrap-reps", 0, "Reps achieved on the AMRAP set")
	logCmd.Flags().Float64Var(&logAMRAPWeight, "amrap-weight", 0, "Weight used on the AMRAP set")
	logCmd.Flags().StringVarP(&logNotes, "notes", "n", "", "Session notes")
}
