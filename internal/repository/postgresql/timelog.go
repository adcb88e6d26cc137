package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/timelog"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/database"
)

type timeLogEventRepository struct {
	db *database.DB
}

// Create implements timelog.EventRepository.
func (r *timeLogEventRepository) Create(ctx context.Context, event timelog.Event) (timelog.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_log_events (
			id, employee_id, event_timestamp, kind, source, device_id, confidence
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.Timestamp,
		event.Kind,
		event.Source,
		event.DeviceID,
		event.Confidence,
	).Scan(&event.CreatedAt)

	if err != nil {
		return timelog.Event{}, fmt.Errorf("failed to create time log event: %w", err)
	}

	return event, nil
}

// ListByEmployeeAndDay implements timelog.EventRepository.
func (r *timeLogEventRepository) ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]timelog.Event, error) {
	q := GetQuerier(ctx, r.db)

	// Ordering by timestamp with created_at as tiebreak preserves insertion
	// order for equal timestamps.
	query := `
		SELECT id, employee_id, event_timestamp, kind, source, device_id, confidence, created_at
		FROM time_log_events
		WHERE employee_id = $1
		  AND event_timestamp >= $2
		  AND event_timestamp < $3
		ORDER BY event_timestamp ASC, created_at ASC
	`

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := q.Query(ctx, query, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for day: %w", err)
	}
	defer rows.Close()

	var events []timelog.Event
	for rows.Next() {
		var ev timelog.Event
		if err := rows.Scan(
			&ev.ID, &ev.EmployeeID, &ev.Timestamp, &ev.Kind, &ev.Source,
			&ev.DeviceID, &ev.Confidence, &ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// List implements timelog.EventRepository.
func (r *timeLogEventRepository) List(ctx context.Context, filter timelog.EventFilter) ([]timelog.Event, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.StartDate != "" {
		where += fmt.Sprintf(" AND event_timestamp >= $%d", argPos)
		args = append(args, filter.StartDate)
		argPos++
	}
	if filter.EndDate != "" {
		where += fmt.Sprintf(" AND event_timestamp < ($%d::date + 1)", argPos)
		args = append(args, filter.EndDate)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM time_log_events" + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := `
		SELECT id, employee_id, event_timestamp, kind, source, device_id, confidence, created_at
		FROM time_log_events` + where + fmt.Sprintf(`
		ORDER BY event_timestamp DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []timelog.Event
	for rows.Next() {
		var ev timelog.Event
		if err := rows.Scan(
			&ev.ID, &ev.EmployeeID, &ev.Timestamp, &ev.Kind, &ev.Source,
			&ev.DeviceID, &ev.Confidence, &ev.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}

	return events, total, rows.Err()
}

func NewTimeLogEventRepository(db *database.DB) timelog.EventRepository {
	return &timeLogEventRepository{db: db}
}
