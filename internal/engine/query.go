package engine

import (
	"context"
	"encoding/json"
	"math"

	"github.com/mcunha/anvil/internal/models"
)

// GetPRs returns the PR table, optionally filtered to one lift.
func (e *Engine) GetPRs(ctx context.Context, lift *models.Lift) ([]models.PR, error) {
	return e.store.PRs(ctx, lift)
}

// TrainingMaxInfo is one lift's max summary, including the effective TM
// percentage derived from the stored values.
type TrainingMaxInfo struct {
	TrainingMax  *float64 `json:"training_max"`
	Tested1RM    *float64 `json:"tested_1rm"`
	Estimated1RM *float64 `json:"estimated_1rm"`
	TMPercentage *int     `json:"tm_percentage"`
}

// GetTrainingMaxes summarizes every lift's tested, estimated and training
// maxes.
func (e *Engine) GetTrainingMaxes(ctx context.Context) (map[models.Lift]TrainingMaxInfo, error) {
	lifts, err := e.store.Lifts(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[models.Lift]TrainingMaxInfo, len(lifts))
	for _, record := range lifts {
		info := TrainingMaxInfo{
			TrainingMax:  record.TrainingMax,
			Tested1RM:    record.Tested1RM,
			Estimated1RM: record.Estimated1RM,
		}
		if record.Tested1RM != nil && record.TrainingMax != nil && *record.Tested1RM != 0 {
			pct := int(math.Round(*record.TrainingMax / *record.Tested1RM * 100))
			info.TMPercentage = &pct
		}
		result[record.Name] = info
	}
	return result, nil
}

// HistoryEntry is a workout log row with the serialized set lists decoded
// for the caller.
type HistoryEntry struct {
	Date          string          `json:"date"`
	Lift          models.Lift     `json:"lift"`
	Template      string          `json:"template"`
	Week          int             `json:"week"`
	Phase         models.Phase    `json:"phase"`
	Prescribed    json.RawMessage `json:"prescribed"`
	Actual        json.RawMessage `json:"actual"`
	AMRAPReps     *int            `json:"amrap_reps"`
	AMRAPWeight   *float64        `json:"amrap_weight"`
	Calculated1RM *float64        `json:"calculated_1rm"`
	Skipped       bool            `json:"skipped"`
	Notes         *string         `json:"notes"`
}

// GetWorkoutHistory returns the most recent log entries, newest first.
func (e *Engine) GetWorkoutHistory(ctx context.Context, lift *models.Lift, lastN int) ([]HistoryEntry, error) {
	if lastN <= 0 {
		lastN = 10
	}
	entries, err := e.store.History(ctx, lift, lastN)
	if err != nil {
		return nil, err
	}

	history := make([]HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		history = append(history, HistoryEntry{
			Date:          entry.Date,
			Lift:          entry.Lift,
			Template:      entry.Template,
			Week:          entry.Week,
			Phase:         entry.Phase,
			Prescribed:    json.RawMessage(entry.Prescribed),
			Actual:        json.RawMessage(entry.Actual),
			AMRAPReps:     entry.AMRAPReps,
			AMRAPWeight:   entry.AMRAPWeight,
			Calculated1RM: entry.Calculated1RM,
			Skipped:       entry.Skipped,
			Notes:         entry.Notes,
		})
	}
	return history, nil
}

// TemplateInfo is the catalog listing shape.
type TemplateInfo struct {
	Name         string              `json:"name"`
	DisplayName  string              `json:"display_name"`
	Type         models.TemplateType `json:"type"`
	TMPercentage int                 `json:"tm_percentage"`
}

// GetAvailableTemplates lists the catalog, optionally filtered by type.
// Dual-purpose ("leader/anchor") templates match either filter.
func (e *Engine) GetAvailableTemplates(ctx context.Context, templateType string) ([]TemplateInfo, error) {
	all, err := e.catalog.All()
	if err != nil {
		return nil, err
	}

	infos := make([]TemplateInfo, 0, len(all))
	for _, tmpl := range all {
		if templateType != "" && string(tmpl.Type) != templateType && tmpl.Type != models.TemplateLeaderAnchor {
			continue
		}
		infos = append(infos, TemplateInfo{
			Name:         tmpl.Name,
			DisplayName:  tmpl.DisplayName,
			Type:         tmpl.Type,
			TMPercentage: tmpl.TMPercentage,
		})
	}
	return infos, nil
}
