// Package mcpserver exposes the program engine as MCP tools over stdio,
// the surface the conversational front end drives.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/mcunha/anvil/internal/engine"
)

// NewServer builds the MCP server with every program tool registered.
func NewServer(eng *engine.Engine) *mcp.Server {
	h := NewHandler(eng)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "anvil",
		Version: "1.0.0",
	}, nil)

	// Workout tools.
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_todays_workout",
		Description: "Returns the full prescribed workout for a lift based on the active template, current week, and training max.",
	}, h.GetTodaysWorkout())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "log_workout",
		Description: "Logs a completed workout. Updates PRs if AMRAP set results are provided. Auto-advances the week once all four lifts are logged or skipped.",
	}, h.LogWorkout())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "skip_lift",
		Description: "Skips a lift for the current week. A skip counts toward week completion just like a logged session.",
	}, h.SkipLift())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "skip_week",
		Description: "Skips every lift not yet logged this week, advancing the program to the next week.",
	}, h.SkipWeek())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "reschedule_lift",
		Description: "Moves a lift to a different day of the week, displacing whatever was there.",
	}, h.RescheduleLift())

	// State tools.
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_program_state",
		Description: "Returns the full program state: week, phase, status, cycle, per-lift maxes and templates, and the day schedule.",
	}, h.GetProgramState())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "advance_week",
		Description: "Manually advances the program one week. From week 3 this parks the program pending TM bumps.",
	}, h.AdvanceWeek())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "bump_tm",
		Description: "Adds the given amount to a lift's training max. Use 0 to hold.",
	}, h.BumpTM())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "skip_tm_bump",
		Description: "Holds a lift's training max through the pending cycle, leaving it unchanged.",
	}, h.SkipTMBump())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "finalize_tm_bumps",
		Description: "Resolves the pending TM bump: starts the next leader cycle or parks the program for a deload or TM test.",
	}, h.FinalizeTMBumps())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "set_phase",
		Description: "Transitions into the given phase (leader or anchor): week 1, active, new cycle.",
	}, h.SetPhase())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "set_template",
		Description: "Assigns a catalog template to a lift.",
	}, h.SetTemplate())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "set_week",
		Description: "Directly sets the current week (1-3). Escape hatch; no other field is re-derived.",
	}, h.SetWeek())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "set_leader_cycles_completed",
		Description: "Directly sets the leader-cycles-completed counter. Escape hatch.",
	}, h.SetLeaderCyclesCompleted())

	// Query tools.
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_prs",
		Description: "Returns the PR table, optionally filtered to one lift.",
	}, h.GetPRs())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_maxes",
		Description: "Returns every lift's tested 1RM, estimated 1RM, training max and effective TM percentage.",
	}, h.GetTrainingMaxes())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_history",
		Description: "Returns recent workout log entries, newest first. Optional lift filter and count (default 10).",
	}, h.GetWorkoutHistory())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_available_templates",
		Description: "Lists the template catalog, optionally filtered by type (leader or anchor).",
	}, h.GetAvailableTemplates())

	// Setup tools.
	mcp.AddTool(s, &mcp.Tool{
		Name:        "set_tested_1rm",
		Description: "Stores a tested 1RM and recomputes the training max from the active template's TM percentage.",
	}, h.SetTested1RM())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "set_schedule",
		Description: "Assigns a lift to a day of the week, or clears the day with lift \"none\".",
	}, h.SetSchedule())
	mcp.AddTool(s, &mcp.Tool{
		Name:        "reset_program",
		Description: "Resets week/phase/status/leader-count to initial values. With keep_tms false, training maxes are recomputed from tested 1RMs.",
	}, h.ResetProgram())

	return s
}

// Run serves the tools over stdio until the client disconnects.
func Run(ctx context.Context, eng *engine.Engine) error {
	logrus.Info("starting anvil MCP server on stdio")
	return NewServer(eng).Run(ctx, &mcp.StdioTransport{})
}
