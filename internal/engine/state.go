package engine

import (
	"context"

	"github.com/mcunha/anvil/internal/models"
)

// LiftOverview is a lift's row plus the display name of its active
// template, when the template document still parses.
type LiftOverview struct {
	Tested1RM                 *float64 `json:"tested_1rm"`
	Estimated1RM              *float64 `json:"estimated_1rm"`
	TrainingMax               *float64 `json:"training_max"`
	TMIncrement               float64  `json:"tm_increment"`
	ActiveTemplate            *string  `json:"active_template"`
	ActiveTemplateDisplayName *string  `json:"active_template_display_name"`
}

type ProgramOverview struct {
	CurrentWeek           int                              `json:"current_week"`
	CurrentPhase          models.Phase                     `json:"current_phase"`
	LeaderCyclesCompleted int                              `json:"leader_cycles_completed"`
	PhaseStatus           models.PhaseStatus               `json:"phase_status"`
	CycleID               int                              `json:"cycle_id"`
	Lifts                 map[models.Lift]LiftOverview     `json:"lifts"`
	Schedule              map[models.DayOfWeek]models.Lift `json:"schedule"`
}

// GetProgramState assembles the full program view: the state row, every
// lift's configuration and the day schedule.
func (e *Engine) GetProgramState(ctx context.Context) (*ProgramOverview, error) {
	state, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}
	lifts, err := e.store.Lifts(ctx)
	if err != nil {
		return nil, err
	}
	schedule, err := e.store.Schedule(ctx)
	if err != nil {
		return nil, err
	}

	liftMap := make(map[models.Lift]LiftOverview, len(lifts))
	for _, record := range lifts {
		overview := LiftOverview{
			Tested1RM:      record.Tested1RM,
			Estimated1RM:   record.Estimated1RM,
			TrainingMax:    record.TrainingMax,
			TMIncrement:    record.TMIncrement,
			ActiveTemplate: record.ActiveTemplate,
		}
		if record.ActiveTemplate != nil {
			// Template document missing or unreadable: leave the display
			// name empty rather than failing the whole overview.
			if tmpl, err := e.catalog.Template(*record.ActiveTemplate); err == nil {
				overview.ActiveTemplateDisplayName = &tmpl.DisplayName
			}
		}
		liftMap[record.Name] = overview
	}

	scheduleMap := make(map[models.DayOfWeek]models.Lift, len(schedule))
	for _, entry := range schedule {
		scheduleMap[entry.Day] = entry.Lift
	}

	return &ProgramOverview{
		CurrentWeek:           state.CurrentWeek,
		CurrentPhase:          state.CurrentPhase,
		LeaderCyclesCompleted: state.LeaderCyclesCompleted,
		PhaseStatus:           state.PhaseStatus,
		CycleID:               state.CycleID,
		Lifts:                 liftMap,
		Schedule:              scheduleMap,
	}, nil
}

type BumpTMResult struct {
	Lift       models.Lift `json:"lift"`
	PreviousTM float64     `json:"previous_tm"`
	NewTM      float64     `json:"new_tm"`
	Amount     float64     `json:"amount"`
}

// BumpTM adds the delta to the lift's training max exactly, including a
// zero delta.
func (e *Engine) BumpTM(ctx context.Context, lift models.Lift, amount float64) (*BumpTMResult, error) {
	record, err := e.store.Lift(ctx, lift)
	if err != nil {
		return nil, err
	}

	previous := 0.0
	if record.TrainingMax != nil {
		previous = *record.TrainingMax
	}
	newTM := previous + amount
	record.TrainingMax = &newTM
	if err := e.store.SaveLift(ctx, record); err != nil {
		return nil, err
	}

	return &BumpTMResult{
		Lift:       lift,
		PreviousTM: previous,
		NewTM:      newTM,
		Amount:     amount,
	}, nil
}

type SkipTMBumpResult struct {
	Lift        models.Lift `json:"lift"`
	TrainingMax *float64    `json:"training_max"`
	Held        bool        `json:"held"`
}

// SkipTMBump holds a lift's training max through the pending cycle.
func (e *Engine) SkipTMBump(ctx context.Context, lift models.Lift) (*SkipTMBumpResult, error) {
	record, err := e.store.Lift(ctx, lift)
	if err != nil {
		return nil, err
	}
	return &SkipTMBumpResult{
		Lift:        lift,
		TrainingMax: record.TrainingMax,
		Held:        true,
	}, nil
}

type SetTemplateResult struct {
	Lift                   models.Lift `json:"lift"`
	PreviousTemplate       *string     `json:"previous_template"`
	NewTemplate            string      `json:"new_template"`
	NewTemplateDisplayName string      `json:"new_template_display_name"`
}

// SetTemplate assigns a catalog template to a lift. An identifier absent
// from the catalog is rejected with the available names.
func (e *Engine) SetTemplate(ctx context.Context, lift models.Lift, templateName string) (*SetTemplateResult, error) {
	available, err := e.catalog.All()
	if err != nil {
		return nil, err
	}

	var matched *models.Template
	for _, tmpl := range available {
		if tmpl.Name == templateName {
			matched = tmpl
			break
		}
	}
	if matched == nil {
		return nil, &UnknownTemplateError{Name: templateName, Available: available}
	}

	record, err := e.store.Lift(ctx, lift)
	if err != nil {
		return nil, err
	}
	previous := record.ActiveTemplate
	record.ActiveTemplate = &templateName
	if err := e.store.SaveLift(ctx, record); err != nil {
		return nil, err
	}

	return &SetTemplateResult{
		Lift:                   lift,
		PreviousTemplate:       previous,
		NewTemplate:            templateName,
		NewTemplateDisplayName: matched.DisplayName,
	}, nil
}
