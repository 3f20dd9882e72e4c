package storage

import (
	"context"
	"fmt"

	"github.com/mcunha/anvil/internal/models"
)

func (s *Storage) ProgramState(ctx context.Context) (models.ProgramState, error) {
	var state models.ProgramState
	err := s.DB.QueryRowContext(ctx, `
        SELECT current_week, current_phase, leader_cycles_completed, phase_status, cycle_id
        FROM program_state WHERE id = 1`,
	).Scan(
		&state.CurrentWeek,
		&state.CurrentPhase,
		&state.LeaderCyclesCompleted,
		&state.PhaseStatus,
		&state.CycleID,
	)
	if err != nil {
		return models.ProgramState{}, fmt.Errorf("failed to read program state: %w", err)
	}
	return state, nil
}

func (s *Storage) SaveProgramState(ctx context.Context, state models.ProgramState) error {
	_, err := s.DB.ExecContext(ctx, `
        UPDATE program_state
        SET current_week = ?, current_phase = ?, leader_cycles_completed = ?, phase_status = ?, cycle_id = ?
        WHERE id = 1`,
		state.CurrentWeek,
		state.CurrentPhase,
		state.LeaderCyclesCompleted,
		state.PhaseStatus,
		state.CycleID,
	)
	if err != nil {
		return fmt.Errorf("failed to save program state: %w", err)
	}
	return nil
}
