package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcunha/anvil/internal/models"
)

func (s *Storage) PRs(ctx context.Context, lift *models.Lift) ([]models.PR, error) {
	query := `SELECT lift, weight, best_reps, estimated_1rm, date FROM prs`
	args := []any{}
	if lift != nil {
		query += ` WHERE lift = ? ORDER BY estimated_1rm DESC`
		args = append(args, *lift)
	} else {
		query += ` ORDER BY lift, estimated_1rm DESC`
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query prs: %w", err)
	}
	defer rows.Close()

	var prs []models.PR
	for rows.Next() {
		var pr models.PR
		if err := rows.Scan(&pr.Lift, &pr.Weight, &pr.BestReps, &pr.Estimated1RM, &pr.Date); err != nil {
			return nil, fmt.Errorf("failed to scan pr: %w", err)
		}
		prs = append(prs, pr)
	}
	return prs, rows.Err()
}

// UpsertPR keeps best_reps monotone: an existing row is only overwritten
// when the new rep count strictly exceeds the stored best at that weight.
func (s *Storage) UpsertPR(ctx context.Context, pr models.PR) (bool, *int, error) {
	var existingReps int
	err := s.DB.QueryRowContext(ctx,
		`SELECT best_reps FROM prs WHERE lift = ? AND weight = ?`,
		pr.Lift, pr.Weight,
	).Scan(&existingReps)

	if errors.Is(err, sql.ErrNoRows) {
		_, err := s.DB.ExecContext(ctx,
			`INSERT INTO prs (lift, weight, best_reps, estimated_1rm, date) VALUES (?, ?, ?, ?, ?)`,
			pr.Lift, pr.Weight, pr.BestReps, pr.Estimated1RM, pr.Date,
		)
		if err != nil {
			return false, nil, fmt.Errorf("failed to insert pr: %w", err)
		}
		return true, nil, nil
	}
	if err != nil {
		return false, nil, fmt.Errorf("failed to query pr: %w", err)
	}

	if pr.BestReps > existingReps {
		_, err := s.DB.ExecContext(ctx,
			`UPDATE prs SET best_reps = ?, estimated_1rm = ?, date = ? WHERE lift = ? AND weight = ?`,
			pr.BestReps, pr.Estimated1RM, pr.Date, pr.Lift, pr.Weight,
		)
		if err != nil {
			return false, nil, fmt.Errorf("failed to update pr: %w", err)
		}
		return true, &existingReps, nil
	}

	return false, &existingReps, nil
}

func (s *Storage) BestEstimated1RM(ctx context.Context, lift models.Lift) (*float64, error) {
	var best sql.NullFloat64
	err := s.DB.QueryRowContext(ctx,
		`SELECT MAX(estimated_1rm) FROM prs WHERE lift = ?`, lift,
	).Scan(&best)
	if err != nil {
		return nil, fmt.Errorf("failed to query best e1rm: %w", err)
	}
	if !best.Valid {
		return nil, nil
	}
	return &best.Float64, nil
}
