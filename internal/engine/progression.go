package engine

import (
	"context"
	"fmt"

	"github.com/mcunha/anvil/internal/models"
)

// leaderCyclesPerBlock is how many leader cycles run before a deload or TM
// test is expected ahead of the anchor.
const leaderCyclesPerBlock = 2

type AdvanceWeekResult struct {
	PreviousWeek int                `json:"previous_week"`
	NewWeek      int                `json:"new_week"`
	Status       models.PhaseStatus `json:"status"`
	Message      string             `json:"message"`
}

// AdvanceWeek moves the program forward one week. From week 3 it resets to
// week 1 and parks the program in pending_tm_bump; the cycle id is not
// incremented until the bumps are resolved.
func (e *Engine) AdvanceWeek(ctx context.Context) (*AdvanceWeekResult, error) {
	state, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}
	previousWeek := state.CurrentWeek

	if previousWeek < 3 {
		state.CurrentWeek = previousWeek + 1
		if err := e.store.SaveProgramState(ctx, state); err != nil {
			return nil, err
		}
		return &AdvanceWeekResult{
			PreviousWeek: previousWeek,
			NewWeek:      state.CurrentWeek,
			Status:       models.StatusActive,
			Message:      fmt.Sprintf("Moving to week %d.", state.CurrentWeek),
		}, nil
	}

	state.CurrentWeek = 1
	state.PhaseStatus = models.StatusPendingTMBump
	if err := e.store.SaveProgramState(ctx, state); err != nil {
		return nil, err
	}
	return &AdvanceWeekResult{
		PreviousWeek: 3,
		NewWeek:      1,
		Status:       models.StatusPendingTMBump,
		Message:      "Cycle complete. Ready to discuss TM bumps.",
	}, nil
}

type FinalizeTMBumpsResult struct {
	NextStatus models.PhaseStatus `json:"next_status"`
	Message    string             `json:"message"`
}

// FinalizeTMBumps resolves a pending TM bump. In the leader phase it counts
// the finished cycle and either starts the next leader cycle (new cycle id)
// or, once the block is exhausted, parks the program in
// pending_deload_or_test. Anchors are single-cycle and always park.
func (e *Engine) FinalizeTMBumps(ctx context.Context) (*FinalizeTMBumpsResult, error) {
	state, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}

	if state.CurrentPhase == models.PhaseLeader {
		state.LeaderCyclesCompleted++

		if state.LeaderCyclesCompleted >= leaderCyclesPerBlock {
			state.PhaseStatus = models.StatusPendingDeloadOrTest
			if err := e.store.SaveProgramState(ctx, state); err != nil {
				return nil, err
			}
			return &FinalizeTMBumpsResult{
				NextStatus: models.StatusPendingDeloadOrTest,
				Message:    fmt.Sprintf("That's %d leader cycles done. Time for a deload or TM test before the anchor.", state.LeaderCyclesCompleted),
			}, nil
		}

		state.CurrentWeek = 1
		state.PhaseStatus = models.StatusActive
		state.CycleID++
		if err := e.store.SaveProgramState(ctx, state); err != nil {
			return nil, err
		}
		return &FinalizeTMBumpsResult{
			NextStatus: models.StatusActive,
			Message:    fmt.Sprintf("Leader cycle %d complete. Starting next leader cycle at week 1.", state.LeaderCyclesCompleted),
		}, nil
	}

	state.PhaseStatus = models.StatusPendingDeloadOrTest
	if err := e.store.SaveProgramState(ctx, state); err != nil {
		return nil, err
	}
	return &FinalizeTMBumpsResult{
		NextStatus: models.StatusPendingDeloadOrTest,
		Message:    "Anchor done. Time for a deload or TM test before starting new leaders.",
	}, nil
}

type SetPhaseResult struct {
	PreviousPhase              models.Phase `json:"previous_phase"`
	NewPhase                   models.Phase `json:"new_phase"`
	LeaderCyclesCompletedReset bool         `json:"leader_cycles_completed_reset"`
	CurrentWeek                int          `json:"current_week"`
}

// SetPhase transitions into a new phase: week 1, active, next cycle id.
// Entering the leader phase also resets the leader-cycle counter.
func (e *Engine) SetPhase(ctx context.Context, phase models.Phase) (*SetPhaseResult, error) {
	state, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}
	previous := state.CurrentPhase

	state.CurrentPhase = phase
	state.CurrentWeek = 1
	state.PhaseStatus = models.StatusActive
	state.CycleID++
	if phase == models.PhaseLeader {
		state.LeaderCyclesCompleted = 0
	}
	if err := e.store.SaveProgramState(ctx, state); err != nil {
		return nil, err
	}

	return &SetPhaseResult{
		PreviousPhase:              previous,
		NewPhase:                   phase,
		LeaderCyclesCompletedReset: phase == models.PhaseLeader,
		CurrentWeek:                1,
	}, nil
}

type SetWeekResult struct {
	PreviousWeek int `json:"previous_week"`
	NewWeek      int `json:"new_week"`
}

// SetWeek writes the week counter directly. Manual escape hatch: no other
// field is re-derived.
func (e *Engine) SetWeek(ctx context.Context, week int) (*SetWeekResult, error) {
	if week < 1 || week > 3 {
		return nil, fmt.Errorf("week must be 1, 2 or 3, got %d", week)
	}
	state, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}
	previous := state.CurrentWeek
	state.CurrentWeek = week
	if err := e.store.SaveProgramState(ctx, state); err != nil {
		return nil, err
	}
	return &SetWeekResult{PreviousWeek: previous, NewWeek: week}, nil
}

type SetLeaderCyclesResult struct {
	PreviousCount int `json:"previous_count"`
	NewCount      int `json:"new_count"`
}

// SetLeaderCyclesCompleted writes the leader-cycle counter directly.
func (e *Engine) SetLeaderCyclesCompleted(ctx context.Context, count int) (*SetLeaderCyclesResult, error) {
	if count < 0 {
		return nil, fmt.Errorf("leader cycles completed must be non-negative, got %d", count)
	}
	state, err := e.store.ProgramState(ctx)
	if err != nil {
		return nil, err
	}
	previous := state.LeaderCyclesCompleted
	state.LeaderCyclesCompleted = count
	if err := e.store.SaveProgramState(ctx, state); err != nil {
		return nil, err
	}
	return &SetLeaderCyclesResult{PreviousCount: previous, NewCount: count}, nil
}

// checkWeekComplete reports whether every lift has an entry (logged or
// skipped) for the triple, and which lifts are still missing. Run right
// after every log/skip write.
func (e *Engine) checkWeekComplete(ctx context.Context, week int, phase models.Phase, cycleID int) (bool, []models.Lift, error) {
	logged, err := e.store.LiftsLogged(ctx, week, phase, cycleID)
	if err != nil {
		return false, nil, err
	}

	done := make(map[models.Lift]bool, len(logged))
	for _, lift := range logged {
		done[lift] = true
	}

	var remaining []models.Lift
	for _, lift := range models.AllLifts() {
		if !done[lift] {
			remaining = append(remaining, lift)
		}
	}
	return len(remaining) == 0, remaining, nil
}
