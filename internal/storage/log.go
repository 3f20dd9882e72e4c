package storage

import (
	"context"
	"fmt"

	"github.com/mcunha/anvil/internal/models"
)

func (s *Storage) AppendLog(ctx context.Context, entry models.WorkoutLogEntry) error {
	_, err := s.DB.ExecContext(ctx, `
        INSERT INTO workout_log
        (id, date, lift, template, week, phase, cycle_id, prescribed, actual, amrap_reps, amrap_weight, calculated_1rm, skipped, notes)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Date,
		entry.Lift,
		entry.Template,
		entry.Week,
		entry.Phase,
		entry.CycleID,
		entry.Prescribed,
		entry.Actual,
		entry.AMRAPReps,
		entry.AMRAPWeight,
		entry.Calculated1RM,
		entry.Skipped,
		entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to append workout log: %w", err)
	}
	return nil
}

func (s *Storage) History(ctx context.Context, lift *models.Lift, lastN int) ([]models.WorkoutLogEntry, error) {
	query := `
        SELECT id, date, lift, template, week, phase, cycle_id, prescribed, actual,
               amrap_reps, amrap_weight, calculated_1rm, skipped, notes
        FROM workout_log`
	args := []any{}
	if lift != nil {
		query += ` WHERE lift = ?`
		args = append(args, *lift)
	}
	query += ` ORDER BY date DESC, rowid DESC LIMIT ?`
	args = append(args, lastN)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workout history: %w", err)
	}
	defer rows.Close()

	var entries []models.WorkoutLogEntry
	for rows.Next() {
		var entry models.WorkoutLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Lift,
			&entry.Template,
			&entry.Week,
			&entry.Phase,
			&entry.CycleID,
			&entry.Prescribed,
			&entry.Actual,
			&entry.AMRAPReps,
			&entry.AMRAPWeight,
			&entry.Calculated1RM,
			&entry.Skipped,
			&entry.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workout log entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Storage) LiftsLogged(ctx context.Context, week int, phase models.Phase, cycleID int) ([]models.Lift, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT DISTINCT lift FROM workout_log
        WHERE week = ? AND phase = ? AND cycle_id = ?`,
		week, phase, cycleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query logged lifts: %w", err)
	}
	defer rows.Close()

	var lifts []models.Lift
	for rows.Next() {
		var lift models.Lift
		if err := rows.Scan(&lift); err != nil {
			return nil, fmt.Errorf("failed to scan logged lift: %w", err)
		}
		lifts = append(lifts, lift)
	}
	return lifts, rows.Err()
}

func (s *Storage) HasLogEntry(ctx context.Context, lift models.Lift, week int, phase models.Phase, cycleID int) (bool, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, `
        SELECT COUNT(1) FROM workout_log
        WHERE lift = ? AND week = ? AND phase = ? AND cycle_id = ?`,
		lift, week, phase, cycleID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check log entry: %w", err)
	}
	return count > 0, nil
}
