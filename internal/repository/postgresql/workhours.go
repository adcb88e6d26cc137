package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/database"
)

type workHoursRepository struct {
	db *database.DB
}

const workHoursColumns = `
	id, employee_id, work_date, first_check_in, last_check_out,
	regular_hours, overtime_hours, late_minutes, early_leave_minutes,
	status, created_at, updated_at
`

// Upsert implements workhours.RecordRepository. Re-derivation overwrites the
// existing row for the (employee, date) key wholesale; the row ID survives.
func (r *workHoursRepository) Upsert(ctx context.Context, record workhours.Record) (workhours.Record, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO work_hours_records (
			id, employee_id, work_date, first_check_in, last_check_out,
			regular_hours, overtime_hours, late_minutes, early_leave_minutes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (employee_id, work_date) DO UPDATE SET
			first_check_in = EXCLUDED.first_check_in,
			last_check_out = EXCLUDED.last_check_out,
			regular_hours = EXCLUDED.regular_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			late_minutes = EXCLUDED.late_minutes,
			early_leave_minutes = EXCLUDED.early_leave_minutes,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.FirstCheckIn,
		record.LastCheckOut,
		record.RegularHours,
		record.OvertimeHours,
		record.LateMinutes,
		record.EarlyLeaveMinutes,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return workhours.Record{}, fmt.Errorf("failed to upsert work hours record: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndDate implements workhours.RecordRepository.
func (r *workHoursRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (workhours.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + workHoursColumns + `
		FROM work_hours_records
		WHERE employee_id = $1 AND work_date = $2
	`

	rec, err := scanWorkHours(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workhours.Record{}, workhours.ErrRecordNotFound
		}
		return workhours.Record{}, fmt.Errorf("failed to get work hours record: %w", err)
	}

	return rec, nil
}

// ListByEmployeeAndMonth implements workhours.RecordRepository.
func (r *workHoursRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month int, year int) ([]workhours.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + workHoursColumns + `
		FROM work_hours_records
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM work_date) = $2
		  AND EXTRACT(YEAR FROM work_date) = $3
		ORDER BY work_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list work hours records: %w", err)
	}
	defer rows.Close()

	var records []workhours.Record
	for rows.Next() {
		rec, err := scanWorkHours(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work hours record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// List implements workhours.RecordRepository.
func (r *workHoursRepository) List(ctx context.Context, filter workhours.RecordFilter) ([]workhours.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `
		WHERE EXTRACT(MONTH FROM work_date) = $1
		  AND EXTRACT(YEAR FROM work_date) = $2
	`
	args := []interface{}{filter.Month, filter.Year}
	argPos := 3

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM work_hours_records " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work hours records: %w", err)
	}

	query := `SELECT` + workHoursColumns + `
		FROM work_hours_records ` + where + fmt.Sprintf(`
		ORDER BY work_date ASC, employee_id ASC
		LIMIT $%d OFFSET $%d
	`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work hours records: %w", err)
	}
	defer rows.Close()

	var records []workhours.Record
	for rows.Next() {
		rec, err := scanWorkHours(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan work hours record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

func scanWorkHours(row pgx.Row) (workhours.Record, error) {
	var rec workhours.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.FirstCheckIn, &rec.LastCheckOut,
		&rec.RegularHours, &rec.OvertimeHours, &rec.LateMinutes, &rec.EarlyLeaveMinutes,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func NewWorkHoursRepository(db *database.DB) workhours.RecordRepository {
	return &workHoursRepository{db: db}
}
