package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcunha/anvil/internal/engine"
	"github.com/mcunha/anvil/internal/models"
)

// Handler turns MCP tool calls into engine calls: parses input, invokes the
// engine, formats the result.
type Handler struct {
	eng *engine.Engine
}

func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{eng: eng}
}

// errResult wraps a failure as a tool error. Business errors (missing
// config, duplicate log, unknown template) are reported this way too: they
// are conversation material, not protocol failures.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errResult(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

// LiftInput names a lift: squat, bench, deadlift or ohp.
type LiftInput struct {
	Lift string `json:"lift" jsonschema:"The lift: squat, bench, deadlift or ohp"`
}

func (h *Handler) GetTodaysWorkout() func(context.Context, *mcp.CallToolRequest, LiftInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LiftInput) (*mcp.CallToolResult, any, error) {
		lift, err := models.ParseLift(in.Lift)
		if err != nil {
			return errResult(err), nil, nil
		}
		workout, err := h.eng.TodaysWorkout(ctx, lift)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(workout)
	}
}

// LogWorkoutInput is the input for log_workout.
type LogWorkoutInput struct {
	Lift          string             `json:"lift" jsonschema:"The lift: squat, bench, deadlift or ohp"`
	ActualResults []models.ActualSet `json:"actual_results,omitempty" jsonschema:"The sets actually performed, each with weight and reps"`
	AMRAPReps     *int               `json:"amrap_reps,omitempty" jsonschema:"Reps achieved on the AMRAP set, if the week has one"`
	AMRAPWeight   *float64           `json:"amrap_weight,omitempty" jsonschema:"Weight used on the AMRAP set"`
	Notes         string             `json:"notes,omitempty" jsonschema:"Free-form session notes"`
}

func (h *Handler) LogWorkout() func(context.Context, *mcp.CallToolRequest, LogWorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LogWorkoutInput) (*mcp.CallToolResult, any, error) {
		lift, err := models.ParseLift(in.Lift)
		if err != nil {
			return errResult(err), nil, nil
		}
		result, err := h.eng.LogWorkout(ctx, lift, in.ActualResults, in.AMRAPReps, in.AMRAPWeight, in.Notes)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

// SkipLiftInput is the input for skip_lift.
type SkipLiftInput struct {
	Lift   string `json:"lift" jsonschema:"The lift: squat, bench, deadlift or ohp"`
	Reason string `json:"reason,omitempty" jsonschema:"Why the session is being skipped"`
}

func (h *Handler) SkipLift() func(context.Context, *mcp.CallToolRequest, SkipLiftInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SkipLiftInput) (*mcp.CallToolResult, any, error) {
		lift, err := models.ParseLift(in.Lift)
		if err != nil {
			return errResult(err), nil, nil
		}
		result, err := h.eng.SkipLift(ctx, lift, in.Reason)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

// SkipWeekInput is the input for skip_week.
type SkipWeekInput struct {
	Reason string `json:"reason,omitempty" jsonschema:"Why the whole week is being skipped"`
}

func (h *Handler) SkipWeek() func(context.Context, *mcp.CallToolRequest, SkipWeekInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SkipWeekInput) (*mcp.CallToolResult, any, error) {
		result, err := h.eng.SkipWeek(ctx, in.Reason)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

// RescheduleInput is the input for reschedule_lift.
type RescheduleInput struct {
	Lift   string `json:"lift" jsonschema:"The lift: squat, bench, deadlift or ohp"`
	NewDay string `json:"new_day" jsonschema:"Day of the week to move the lift to, e.g. thursday"`
}

func (h *Handler) RescheduleLift() func(context.Context, *mcp.CallToolRequest, RescheduleInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RescheduleInput) (*mcp.CallToolResult, any, error) {
		lift, err := models.ParseLift(in.Lift)
		if err != nil {
			return errResult(err), nil, nil
		}
		day, err := models.ParseDay(in.NewDay)
		if err != nil {
			return errResult(err), nil, nil
		}
		result, err := h.eng.RescheduleLift(ctx, lift, day)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

func (h *Handler) GetProgramState() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		overview, err := h.eng.GetProgramState(ctx)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(overview)
	}
}

func (h *Handler) AdvanceWeek() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		result, err := h.eng.AdvanceWeek(ctx)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

// BumpTMInput is the input for bump_tm.
type BumpTMInput struct {
	Lift   string  `json:"lift" jsonschema:"The lift: squat, bench, deadlift or ohp"`
	Amount float64 `json:"amount" jsonschema:"Pounds to add to the training max; 0 holds it"`
}

func (h *Handler) BumpTM() func(context.Context, *mcp.CallToolRequest, BumpTMInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in BumpTMInput) (*mcp.CallToolResult, any, error) {
		lift, err := models.ParseLift(in.Lift)
		if err != nil {
			return errResult(err), nil, nil
		}
		result, err := h.eng.BumpTM(ctx, lift, in.Amount)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

func (h *Handler) SkipTMBump() func(context.Context, *mcp.CallToolRequest, LiftInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LiftInput) (*mcp.CallToolResult, any, error) {
		lift, err := models.ParseLift(in.Lift)
		if err != nil {
			return errResult(err), nil, nil
		}
		result, err := h.eng.SkipTMBump(ctx, lift)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

func (h *Handler) FinalizeTMBumps() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		result, err := h.eng.FinalizeTMBumps(ctx)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

// SetPhaseInput is the input for set_phase.
type SetPhaseInput struct {
	Phase string `json:"phase" jsonschema:"The phase to enter: leader or anchor"`
}

func (h *Handler) SetPhase() func(context.Context, *mcp.CallToolRequest, SetPhaseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SetPhaseInput) (*mcp.CallToolResult, any, error) {
		phase, err := models.ParsePhase(in.Phase)
		if err != nil {
			return errResult(err), nil, nil
		}
		result, err := h.eng.SetPhase(ctx, phase)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

// SetTemplateInput is the input for set_template.
type SetTemplateInput struct {
	Lift         string `json:"lift" jsonschema:"The lift: squat, bench, deadlift or ohp"`
	TemplateName string `json:"template_name" jsonschema:"Catalog template identifier, e.g. 5s-pro-fsl"`
}

func (h *Handler) SetTemplate() func(context.Context, *mcp.CallToolRequest, SetTemplateInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SetTemplateInput) (*mcp.CallToolResult, any, error) {
		lift, err := models.ParseLift(in.Lift)
		if err != nil {
			return errResult(err), nil, nil
		}
		result, err := h.eng.SetTemplate(ctx, lift, in.TemplateName)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

// SetWeekInput is the input for set_week.
type SetWeekInput struct {
	Week int `json:"week" jsonschema:"The week to jump to: 1, 2 or 3"`
}

func (h *Handler) SetWeek() func(context.Context, *mcp.CallToolRequest, SetWeekInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SetWeekInput) (*mcp.CallToolResult, any, error) {
		result, err := h.eng.SetWeek(ctx, in.Week)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

// SetLeaderCyclesInput is the input for set_leader_cycles_completed.
type SetLeaderCyclesInput struct {
	Count int `json:"count" jsonschema:"The leader cycles completed count, non-negative"`
}

func (h *Handler) SetLeaderCyclesCompleted() func(context.Context, *mcp.CallToolRequest, SetLeaderCyclesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SetLeaderCyclesInput) (*mcp.CallToolResult, any, error) {
		result, err := h.eng.SetLeaderCyclesCompleted(ctx, in.Count)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

// LiftFilterInput optionally narrows a query to one lift.
type LiftFilterInput struct {
	Lift string `json:"lift,omitempty" jsonschema:"Optional lift filter: squat, bench, deadlift or ohp"`
}

func (h *Handler) GetPRs() func(context.Context, *mcp.CallToolRequest, LiftFilterInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LiftFilterInput) (*mcp.CallToolResult, any, error) {
		var filter *models.Lift
		if in.Lift != "" {
			lift, err := models.ParseLift(in.Lift)
			if err != nil {
				return errResult(err), nil, nil
			}
			filter = &lift
		}
		prs, err := h.eng.GetPRs(ctx, filter)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(prs)
	}
}

func (h *Handler) GetTrainingMaxes() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		maxes, err := h.eng.GetTrainingMaxes(ctx)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(maxes)
	}
}

// HistoryInput is the input for get_workout_history.
type HistoryInput struct {
	Lift  string `json:"lift,omitempty" jsonschema:"Optional lift filter: squat, bench, deadlift or ohp"`
	LastN int    `json:"last_n,omitempty" jsonschema:"How many entries to return, newest first; defaults to 10"`
}

func (h *Handler) GetWorkoutHistory() func(context.Context, *mcp.CallToolRequest, HistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in HistoryInput) (*mcp.CallToolResult, any, error) {
		var filter *models.Lift
		if in.Lift != "" {
			lift, err := models.ParseLift(in.Lift)
			if err != nil {
				return errResult(err), nil, nil
			}
			filter = &lift
		}
		history, err := h.eng.GetWorkoutHistory(ctx, filter, in.LastN)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(history)
	}
}

// TemplatesInput is the input for get_available_templates.
type TemplatesInput struct {
	Type string `json:"type,omitempty" jsonschema:"Optional filter: leader or anchor"`
}

func (h *Handler) GetAvailableTemplates() func(context.Context, *mcp.CallToolRequest, TemplatesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in TemplatesInput) (*mcp.CallToolResult, any, error) {
		templates, err := h.eng.GetAvailableTemplates(ctx, in.Type)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(templates)
	}
}

// Tested1RMInput is the input for set_tested_1rm.
type Tested1RMInput struct {
	Lift   string  `json:"lift" jsonschema:"The lift: squat, bench, deadlift or ohp"`
	Weight float64 `json:"weight" jsonschema:"The tested one-rep max in pounds"`
}

func (h *Handler) SetTested1RM() func(context.Context, *mcp.CallToolRequest, Tested1RMInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in Tested1RMInput) (*mcp.CallToolResult, any, error) {
		lift, err := models.ParseLift(in.Lift)
		if err != nil {
			return errResult(err), nil, nil
		}
		result, err := h.eng.SetTested1RM(ctx, lift, in.Weight)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

// SetScheduleInput is the input for set_schedule.
type SetScheduleInput struct {
	Day  string `json:"day" jsonschema:"Day of the week, e.g. monday"`
	Lift string `json:"lift" jsonschema:"The lift to assign, or none to clear the day"`
}

func (h *Handler) SetSchedule() func(context.Context, *mcp.CallToolRequest, SetScheduleInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SetScheduleInput) (*mcp.CallToolResult, any, error) {
		day, err := models.ParseDay(in.Day)
		if err != nil {
			return errResult(err), nil, nil
		}
		result, err := h.eng.SetSchedule(ctx, day, in.Lift)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}

// ResetInput is the input for reset_program.
type ResetInput struct {
	KeepTMs *bool `json:"keep_tms,omitempty" jsonschema:"Keep current training maxes; defaults to true"`
}

func (h *Handler) ResetProgram() func(context.Context, *mcp.CallToolRequest, ResetInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ResetInput) (*mcp.CallToolResult, any, error) {
		keep := true
		if in.KeepTMs != nil {
			keep = *in.KeepTMs
		}
		result, err := h.eng.ResetProgram(ctx, keep)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(result)
	}
}
