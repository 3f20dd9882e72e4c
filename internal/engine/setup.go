package engine

import (
	"context"

	"github.com/mcunha/anvil/internal/calc"
	"github.com/mcunha/anvil/internal/models"
)

// defaultTMPercentage applies when a lift has no template or its template
// document cannot be read.
const defaultTMPercentage = 90

// tmPercentageFor resolves the TM percentage from the lift's active
// template, falling back to the default when the template is absent or
// unreadable.
func (e *Engine) tmPercentageFor(record models.LiftRecord) int {
	if record.ActiveTemplate == nil {
		return defaultTMPercentage
	}
	tmpl, err := e.catalog.Template(*record.ActiveTemplate)
	if err != nil {
		return defaultTMPercentage
	}
	return tmpl.TMPercentage
}

type SetTested1RMResult struct {
	Lift           models.Lift `json:"lift"`
	Tested1RM      float64     `json:"tested_1rm"`
	TMPercentage   int         `json:"tm_percentage"`
	NewTrainingMax float64     `json:"new_training_max"`
}

// SetTested1RM stores a tested max and recomputes the training max from the
// active template's TM percentage.
func (e *Engine) SetTested1RM(ctx context.Context, lift models.Lift, weight float64) (*SetTested1RMResult, error) {
	record, err := e.store.Lift(ctx, lift)
	if err != nil {
		return nil, err
	}

	tmPercentage := e.tmPercentageFor(record)
	newTM := calc.CalculateTM(weight, tmPercentage)

	record.Tested1RM = &weight
	record.TrainingMax = &newTM
	if err := e.store.SaveLift(ctx, record); err != nil {
		return nil, err
	}

	return &SetTested1RMResult{
		Lift:           lift,
		Tested1RM:      weight,
		TMPercentage:   tmPercentage,
		NewTrainingMax: newTM,
	}, nil
}

type SetScheduleResult struct {
	Day                models.DayOfWeek  `json:"day"`
	Lift               string            `json:"lift"`
	Cleared            bool              `json:"cleared,omitempty"`
	PreviousLiftOnDay  *models.Lift      `json:"previous_lift_on_day,omitempty"`
	PreviousDayForLift *models.DayOfWeek `json:"previous_day_for_lift,omitempty"`
	Conflict           bool              `json:"conflict"`
}

// SetSchedule assigns a lift to a day, or clears the day when lift is
// "none". A conflict means a different lift previously occupied the day.
func (e *Engine) SetSchedule(ctx context.Context, day models.DayOfWeek, lift string) (*SetScheduleResult, error) {
	if lift == "none" {
		if err := e.store.ClearDay(ctx, day); err != nil {
			return nil, err
		}
		return &SetScheduleResult{Day: day, Lift: "none", Cleared: true}, nil
	}

	parsed, err := models.ParseLift(lift)
	if err != nil {
		return nil, err
	}

	prevLiftOnDay, prevDayForLift, err := e.store.AssignLift(ctx, day, parsed)
	if err != nil {
		return nil, err
	}

	return &SetScheduleResult{
		Day:                day,
		Lift:               lift,
		PreviousLiftOnDay:  prevLiftOnDay,
		PreviousDayForLift: prevDayForLift,
		Conflict:           prevLiftOnDay != nil && *prevLiftOnDay != parsed,
	}, nil
}

type ResetProgramResult struct {
	Reset                 bool         `json:"reset"`
	CurrentWeek           int          `json:"current_week"`
	CurrentPhase          models.Phase `json:"current_phase"`
	LeaderCyclesCompleted int          `json:"leader_cycles_completed"`
	TMsKept               bool         `json:"tms_kept"`
}

// ResetProgram returns the state machine to its initial values: week 1,
// leader, active, zero leader cycles. The cycle id, templates, schedule and
// history are untouched. With keepTMs false every lift's training max is
// recomputed from its stored tested 1RM; lifts without one are left alone.
func (e *Engine) ResetProgram(ctx context.Context, keepTMs bool) (*ResetProgramResult, error) {
	state, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}

	state.CurrentWeek = 1
	state.CurrentPhase = models.PhaseLeader
	state.LeaderCyclesCompleted = 0
	state.PhaseStatus = models.StatusActive
	if err := e.store.SaveProgramState(ctx, state); err != nil {
		return nil, err
	}

	if !keepTMs {
		lifts, err := e.store.Lifts(ctx)
		if err != nil {
			return nil, err
		}
		for _, record := range lifts {
			if record.Tested1RM == nil {
				continue
			}
			newTM := calc.CalculateTM(*record.Tested1RM, e.tmPercentageFor(record))
			record.TrainingMax = &newTM
			if err := e.store.SaveLift(ctx, record); err != nil {
				return nil, err
			}
		}
	}

	return &ResetProgramResult{
		Reset:                 true,
		CurrentWeek:           1,
		CurrentPhase:          models.PhaseLeader,
		LeaderCyclesCompleted: 0,
		TMsKept:               keepTMs,
	}, nil
}
