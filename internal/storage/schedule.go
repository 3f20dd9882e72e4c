package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcunha/anvil/internal/models"
)

func (s *Storage) Schedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT day_of_week, lift FROM schedule`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	defer rows.Close()

	var schedule []models.ScheduleEntry
	for rows.Next() {
		var entry models.ScheduleEntry
		if err := rows.Scan(&entry.Day, &entry.Lift); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		schedule = append(schedule, entry)
	}
	return schedule, rows.Err()
}

func (s *Storage) DayForLift(ctx context.Context, lift models.Lift) (*models.DayOfWeek, error) {
	var day models.DayOfWeek
	err := s.DB.QueryRowContext(ctx, `SELECT day_of_week FROM schedule WHERE lift = ?`, lift).Scan(&day)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query day for lift: %w", err)
	}
	return &day, nil
}

func (s *Storage) LiftForDay(ctx context.Context, day models.DayOfWeek) (*models.Lift, error) {
	var lift models.Lift
	err := s.DB.QueryRowContext(ctx, `SELECT lift FROM schedule WHERE day_of_week = ?`, day).Scan(&lift)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query lift for day: %w", err)
	}
	return &lift, nil
}

// AssignLift keeps the day/lift mapping a bijection: the lift's old day and
// the day's old lift are both removed before inserting the new entry.
func (s *Storage) AssignLift(ctx context.Context, day models.DayOfWeek, lift models.Lift) (*models.Lift, *models.DayOfWeek, error) {
	previousLiftOnDay, err := s.LiftForDay(ctx, day)
	if err != nil {
		return nil, nil, err
	}
	previousDayForLift, err := s.DayForLift(ctx, lift)
	if err != nil {
		return nil, nil, err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule WHERE lift = ?`, lift); err != nil {
		return nil, nil, fmt.Errorf("failed to clear lift entry: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule WHERE day_of_week = ?`, day); err != nil {
		return nil, nil, fmt.Errorf("failed to clear day entry: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schedule (day_of_week, lift) VALUES (?, ?)`, day, lift); err != nil {
		return nil, nil, fmt.Errorf("failed to insert schedule entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit schedule change: %w", err)
	}
	return previousLiftOnDay, previousDayForLift, nil
}

func (s *Storage) ClearDay(ctx context.Context, day models.DayOfWeek) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM schedule WHERE day_of_week = ?`, day); err != nil {
		return fmt.Errorf("failed to clear schedule day: %w", err)
	}
	return nil
}
