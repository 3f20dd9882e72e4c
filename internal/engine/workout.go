package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mcunha/anvil/internal/calc"
	"github.com/mcunha/anvil/internal/models"
)

// Workout is the fully resolved prescription for one lift on the current
// week: per-set weight, percentage and rep scheme.
type Workout struct {
	Lift         models.Lift            `json:"lift"`
	Template     string                 `json:"template"`
	Week         int                    `json:"week"`
	Phase        models.Phase           `json:"phase"`
	TrainingMax  float64                `json:"training_max"`
	MainWork     []models.PrescribedSet `json:"main_work"`
	Supplemental []models.PrescribedSet `json:"supplemental,omitempty"`
}

// TodaysWorkout resolves the active template's plan for the current week
// against the lift's training max. FSL supplemental sets take their
// percentage from the first main-work set of the same week; the 0
// placeholder never reaches the caller.
func (e *Engine) TodaysWorkout(ctx context.Context, lift models.Lift) (*Workout, error) {
	state, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}
	record, err := e.store.Lift(ctx, lift)
	if err != nil {
		return nil, err
	}

	if record.ActiveTemplate == nil {
		return nil, &MissingConfigError{Lift: lift, Missing: "template", Hint: "set one with set_template"}
	}
	if record.TrainingMax == nil {
		return nil, &MissingConfigError{Lift: lift, Missing: "training max", Hint: "set a tested 1RM first"}
	}

	tmpl, err := e.catalog.Template(*record.ActiveTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %q: %w", *record.ActiveTemplate, err)
	}

	mainSets := tmpl.MainSets(state.CurrentWeek)
	suppSets := tmpl.SupplementalSets(state.CurrentWeek)

	fslPercentage := 0
	if len(mainSets) > 0 {
		fslPercentage = mainSets[0].Percentage
	}

	tm := *record.TrainingMax
	main := make([]models.PrescribedSet, 0, len(mainSets))
	for _, s := range mainSets {
		main = append(main, models.PrescribedSet{
			Percentage: s.Percentage,
			Weight:     calc.CalculateWeight(tm, s.Percentage),
			Reps:       s.Reps,
		})
	}

	var supplemental []models.PrescribedSet
	for _, s := range suppSets {
		pct := s.Percentage
		if s.Type == models.SetTypeFSL {
			pct = fslPercentage
		}
		supplemental = append(supplemental, models.PrescribedSet{
			Percentage: pct,
			Weight:     calc.CalculateWeight(tm, pct),
			Reps:       s.Reps,
			Sets:       s.Sets,
			Type:       s.Type,
		})
	}

	return &Workout{
		Lift:         lift,
		Template:     *record.ActiveTemplate,
		Week:         state.CurrentWeek,
		Phase:        state.CurrentPhase,
		TrainingMax:  tm,
		MainWork:     main,
		Supplemental: supplemental,
	}, nil
}

type PRDetails struct {
	Weight           float64 `json:"weight"`
	Reps             int     `json:"reps"`
	Estimated1RM     float64 `json:"estimated_1rm"`
	PreviousBestReps *int    `json:"previous_best_reps"`
}

type LogResult struct {
	Logged         bool               `json:"logged"`
	Date           string             `json:"date"`
	Lift           models.Lift        `json:"lift"`
	NewPR          bool               `json:"new_pr"`
	PRDetails      *PRDetails         `json:"pr_details,omitempty"`
	WeekComplete   bool               `json:"week_complete"`
	LiftsRemaining []models.Lift      `json:"lifts_remaining,omitempty"`
	WeekAdvanced   *AdvanceWeekResult `json:"week_advanced,omitempty"`
}

// LogWorkout appends an immutable session record. The prescribed shape is
// re-derived at log time so the entry stays self-describing even if the
// template changes later. An AMRAP result feeds the PR table and, if the
// lift's best-ever e1RM moved, the lift record. Completing the week's
// fourth entry triggers AdvanceWeek.
func (e *Engine) LogWorkout(ctx context.Context, lift models.Lift, actual []models.ActualSet, amrapReps *int, amrapWeight *float64, notes string) (*LogResult, error) {
	state, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}
	record, err := e.store.Lift(ctx, lift)
	if err != nil {
		return nil, err
	}

	if record.ActiveTemplate == nil {
		return nil, &MissingConfigError{Lift: lift, Missing: "template", Hint: "set one with set_template"}
	}

	logged, err := e.store.HasLogEntry(ctx, lift, state.CurrentWeek, state.CurrentPhase, state.CycleID)
	if err != nil {
		return nil, err
	}
	if logged {
		return nil, &DuplicateLogError{Lift: lift, Week: state.CurrentWeek}
	}

	workout, err := e.TodaysWorkout(ctx, lift)
	if err != nil {
		return nil, err
	}
	prescribed, err := json.Marshal(struct {
		Main         []models.PrescribedSet `json:"main"`
		Supplemental []models.PrescribedSet `json:"supplemental,omitempty"`
	}{workout.MainWork, workout.Supplemental})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prescribed sets: %w", err)
	}
	actualJSON, err := json.Marshal(actual)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal actual sets: %w", err)
	}

	today := e.today()

	var calculated1RM *float64
	var prDetails *PRDetails
	newPR := false

	if amrapReps != nil && amrapWeight != nil {
		e1rm := calc.CalculateE1RM(*amrapWeight, *amrapReps)
		calculated1RM = &e1rm

		isNew, previousBest, err := e.store.UpsertPR(ctx, models.PR{
			Lift:         lift,
			Weight:       *amrapWeight,
			BestReps:     *amrapReps,
			Estimated1RM: e1rm,
			Date:         today,
		})
		if err != nil {
			return nil, err
		}
		newPR = isNew
		if isNew {
			prDetails = &PRDetails{
				Weight:           *amrapWeight,
				Reps:             *amrapReps,
				Estimated1RM:     e1rm,
				PreviousBestReps: previousBest,
			}
		}

		best, err := e.store.BestEstimated1RM(ctx, lift)
		if err != nil {
			return nil, err
		}
		if best != nil {
			record.Estimated1RM = best
			if err := e.store.SaveLift(ctx, record); err != nil {
				return nil, err
			}
		}
	}

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	entry := models.WorkoutLogEntry{
		ID:            uuid.New().String(),
		Date:          today,
		Lift:          lift,
		Template:      *record.ActiveTemplate,
		Week:          state.CurrentWeek,
		Phase:         state.CurrentPhase,
		CycleID:       state.CycleID,
		Prescribed:    string(prescribed),
		Actual:        string(actualJSON),
		AMRAPReps:     amrapReps,
		AMRAPWeight:   amrapWeight,
		Calculated1RM: calculated1RM,
		Skipped:       false,
		Notes:         notesPtr,
	}
	if err := e.store.AppendLog(ctx, entry); err != nil {
		return nil, err
	}

	complete, remaining, err := e.checkWeekComplete(ctx, state.CurrentWeek, state.CurrentPhase, state.CycleID)
	if err != nil {
		return nil, err
	}

	result := &LogResult{
		Logged:       true,
		Date:         today,
		Lift:         lift,
		NewPR:        newPR,
		PRDetails:    prDetails,
		WeekComplete: complete,
	}
	if complete {
		advanced, err := e.AdvanceWeek(ctx)
		if err != nil {
			return nil, err
		}
		result.WeekAdvanced = advanced
	} else {
		result.LiftsRemaining = remaining
	}

	return result, nil
}

type SkipResult struct {
	Skipped        bool               `json:"skipped"`
	Lift           models.Lift        `json:"lift"`
	Week           int                `json:"week"`
	Reason         string             `json:"reason,omitempty"`
	WeekComplete   bool               `json:"week_complete"`
	LiftsRemaining []models.Lift      `json:"lifts_remaining,omitempty"`
	WeekAdvanced   *AdvanceWeekResult `json:"week_advanced,omitempty"`
}

// SkipLift records an empty skipped entry for the triple. It satisfies
// week completion exactly like a real log.
func (e *Engine) SkipLift(ctx context.Context, lift models.Lift, reason string) (*SkipResult, error) {
	state, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}
	record, err := e.store.Lift(ctx, lift)
	if err != nil {
		return nil, err
	}

	logged, err := e.store.HasLogEntry(ctx, lift, state.CurrentWeek, state.CurrentPhase, state.CycleID)
	if err != nil {
		return nil, err
	}
	if logged {
		return nil, &DuplicateLogError{Lift: lift, Week: state.CurrentWeek}
	}

	template := "none"
	if record.ActiveTemplate != nil {
		template = *record.ActiveTemplate
	}
	var notesPtr *string
	if reason != "" {
		notesPtr = &reason
	}

	entry := models.WorkoutLogEntry{
		ID:         uuid.New().String(),
		Date:       e.today(),
		Lift:       lift,
		Template:   template,
		Week:       state.CurrentWeek,
		Phase:      state.CurrentPhase,
		CycleID:    state.CycleID,
		Prescribed: "[]",
		Actual:     "[]",
		Skipped:    true,
		Notes:      notesPtr,
	}
	if err := e.store.AppendLog(ctx, entry); err != nil {
		return nil, err
	}

	complete, remaining, err := e.checkWeekComplete(ctx, state.CurrentWeek, state.CurrentPhase, state.CycleID)
	if err != nil {
		return nil, err
	}

	result := &SkipResult{
		Skipped:      true,
		Lift:         lift,
		Week:         state.CurrentWeek,
		Reason:       reason,
		WeekComplete: complete,
	}
	if complete {
		advanced, err := e.AdvanceWeek(ctx)
		if err != nil {
			return nil, err
		}
		result.WeekAdvanced = advanced
	} else {
		result.LiftsRemaining = remaining
	}

	return result, nil
}

type SkipWeekResult struct {
	Skipped     bool               `json:"skipped"`
	WeekSkipped int                `json:"week_skipped"`
	AdvancedTo  int                `json:"advanced_to"`
	NewStatus   models.PhaseStatus `json:"new_status"`
	Reason      string             `json:"reason,omitempty"`
}

// SkipWeek skips every lift not yet logged for the current triple. The
// final SkipLift call auto-advances, so the outcome is read back from the
// store afterwards rather than aggregated from the per-lift results.
func (e *Engine) SkipWeek(ctx context.Context, reason string) (*SkipWeekResult, error) {
	state, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}

	_, remaining, err := e.checkWeekComplete(ctx, state.CurrentWeek, state.CurrentPhase, state.CycleID)
	if err != nil {
		return nil, err
	}

	skipReason := reason
	if skipReason == "" {
		skipReason = "week skipped"
	}
	for _, lift := range remaining {
		if _, err := e.SkipLift(ctx, lift, skipReason); err != nil {
			return nil, err
		}
	}

	newState, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}

	return &SkipWeekResult{
		Skipped:     true,
		WeekSkipped: state.CurrentWeek,
		AdvancedTo:  newState.CurrentWeek,
		NewStatus:   newState.PhaseStatus,
		Reason:      reason,
	}, nil
}

type RescheduleResult struct {
	Rescheduled bool              `json:"rescheduled"`
	Lift        models.Lift       `json:"lift"`
	OriginalDay *models.DayOfWeek `json:"original_day"`
	NewDay      models.DayOfWeek  `json:"new_day"`
}

// RescheduleLift moves a lift to a new day, preserving the schedule
// bijection, and reports where it used to be.
func (e *Engine) RescheduleLift(ctx context.Context, lift models.Lift, newDay models.DayOfWeek) (*RescheduleResult, error) {
	originalDay, err := e.store.DayForLift(ctx, lift)
	if err != nil {
		return nil, err
	}
	if _, _, err := e.store.AssignLift(ctx, newDay, lift); err != nil {
		return nil, err
	}

	return &RescheduleResult{
		Rescheduled: true,
		Lift:        lift,
		OriginalDay: originalDay,
		NewDay:      newDay,
	}, nil
}
