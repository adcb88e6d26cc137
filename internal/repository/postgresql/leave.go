package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/leave"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/database"
)

// leaveRepository reads approved leave days produced by the external leave
// workflow.
type leaveRepository struct {
	db *database.DB
}

// IsOnLeave implements leave.LeaveRepository.
func (r *leaveRepository) IsOnLeave(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM approved_leave_days
			WHERE employee_id = $1 AND leave_date = $2
		)
	`

	var onLeave bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&onLeave); err != nil {
		return false, fmt.Errorf("failed to check leave: %w", err)
	}

	return onLeave, nil
}

// CountDays implements leave.LeaveRepository.
func (r *leaveRepository) CountDays(ctx context.Context, employeeID string, month int, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FROM approved_leave_days
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM leave_date) = $2
		  AND EXTRACT(YEAR FROM leave_date) = $3
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leave days: %w", err)
	}

	return count, nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
