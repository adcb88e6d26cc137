package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/summary"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/database"
)

type summaryRepository struct {
	db *database.DB
}

// Upsert implements summary.SummaryRepository.
func (r *summaryRepository) Upsert(ctx context.Context, s summary.Summary) (summary.Summary, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO monthly_summaries (
			id, employee_id, month, year, total_hours, overtime_hours,
			leave_days, late_minutes, early_minutes, penalty_amount, generated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			total_hours = EXCLUDED.total_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			leave_days = EXCLUDED.leave_days,
			late_minutes = EXCLUDED.late_minutes,
			early_minutes = EXCLUDED.early_minutes,
			penalty_amount = EXCLUDED.penalty_amount,
			generated_at = EXCLUDED.generated_at
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		s.ID,
		s.EmployeeID,
		s.Month,
		s.Year,
		s.TotalHours,
		s.OvertimeHours,
		s.LeaveDays,
		s.LateMinutes,
		s.EarlyMinutes,
		s.PenaltyAmount,
		s.GeneratedAt,
	).Scan(&s.ID)

	if err != nil {
		return summary.Summary{}, fmt.Errorf("failed to upsert monthly summary: %w", err)
	}

	return s, nil
}

// GetByEmployeeAndMonth implements summary.SummaryRepository.
func (r *summaryRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month int, year int) (summary.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, total_hours, overtime_hours,
		       leave_days, late_minutes, early_minutes, penalty_amount, generated_at
		FROM monthly_summaries
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	s, err := scanSummary(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.Summary{}, summary.ErrSummaryNotFound
		}
		return summary.Summary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return s, nil
}

// ListByMonth implements summary.SummaryRepository.
func (r *summaryRepository) ListByMonth(ctx context.Context, month int, year int) ([]summary.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, total_hours, overtime_hours,
		       leave_days, late_minutes, early_minutes, penalty_amount, generated_at
		FROM monthly_summaries
		WHERE month = $1 AND year = $2
		ORDER BY employee_id ASC
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly summaries: %w", err)
	}
	defer rows.Close()

	var summaries []summary.Summary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func scanSummary(row pgx.Row) (summary.Summary, error) {
	var s summary.Summary
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Month, &s.Year, &s.TotalHours, &s.OvertimeHours,
		&s.LeaveDays, &s.LateMinutes, &s.EarlyMinutes, &s.PenaltyAmount, &s.GeneratedAt,
	)
	return s, err
}

func NewSummaryRepository(db *database.DB) summary.SummaryRepository {
	return &summaryRepository{db: db}
}
