package storage

import (
	"context"
	"fmt"

	"github.com/mcunha/anvil/internal/models"
)

func (s *Storage) Lift(ctx context.Context, name models.Lift) (models.LiftRecord, error) {
	var record models.LiftRecord
	err := s.DB.QueryRowContext(ctx, `
        SELECT name, tested_1rm, estimated_1rm, training_max, tm_increment, active_template
        FROM lifts WHERE name = ?`, name,
	).Scan(
		&record.Name,
		&record.Tested1RM,
		&record.Estimated1RM,
		&record.TrainingMax,
		&record.TMIncrement,
		&record.ActiveTemplate,
	)
	if err != nil {
		return models.LiftRecord{}, fmt.Errorf("failed to read lift %s: %w", name, err)
	}
	return record, nil
}

func (s *Storage) Lifts(ctx context.Context) ([]models.LiftRecord, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT name, tested_1rm, estimated_1rm, training_max, tm_increment, active_template
        FROM lifts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lifts: %w", err)
	}
	defer rows.Close()

	var lifts []models.LiftRecord
	for rows.Next() {
		var record models.LiftRecord
		if err := rows.Scan(
			&record.Name,
			&record.Tested1RM,
			&record.Estimated1RM,
			&record.TrainingMax,
			&record.TMIncrement,
			&record.ActiveTemplate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lift: %w", err)
		}
		lifts = append(lifts, record)
	}
	return lifts, rows.Err()
}

func (s *Storage) SaveLift(ctx context.Context, record models.LiftRecord) error {
	_, err := s.DB.ExecContext(ctx, `
        UPDATE lifts
        SET tested_1rm = ?, estimated_1rm = ?, training_max = ?, tm_increment = ?, active_template = ?
        WHERE name = ?`,
		record.Tested1RM,
		record.Estimated1RM,
		record.TrainingMax,
		record.TMIncrement,
		record.ActiveTemplate,
		record.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to save lift %s: %w", record.Name, err)
	}
	return nil
}
