package aggregation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/employee"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/leave"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/policy"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/summary"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/database"
)

type AggregationServiceImpl struct {
	db        *database.DB
	policy    policy.WorkPolicy
	records   workhours.RecordRepository
	summaries summary.SummaryRepository
	employees employee.EmployeeRepository
	leaves    leave.LeaveRepository
}

func NewAggregationService(
	db *database.DB,
	pol policy.WorkPolicy,
	recordRepo workhours.RecordRepository,
	summaryRepo summary.SummaryRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
) summary.AggregationService {
	return &AggregationServiceImpl{
		db:        db,
		policy:    pol,
		records:   recordRepo,
		summaries: summaryRepo,
		employees: employeeRepo,
		leaves:    leaveRepo,
	}
}

// AggregateEmployee implements summary.AggregationService.
func (s *AggregationServiceImpl) AggregateEmployee(ctx context.Context, employeeID string, month int, year int) (summary.Summary, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return summary.Summary{}, summary.ErrEmployeeNotFound
		}
		return summary.Summary{}, fmt.Errorf("failed to load employee: %w", err)
	}

	records, err := s.records.ListByEmployeeAndMonth(ctx, employeeID, month, year)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("failed to load work hours records: %w", err)
	}

	leaveDays, err := s.leaves.CountDays(ctx, employeeID, month, year)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("failed to count leave days: %w", err)
	}

	agg := Aggregate(employeeID, month, year, records, leaveDays, s.policy.PenaltyTable)
	agg.GeneratedAt = time.Now().UTC()

	stored, err := s.summaries.Upsert(ctx, agg)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("failed to store attendance summary: %w", err)
	}
	return stored, nil
}

// AggregateMonth implements summary.AggregationService.
func (s *AggregationServiceImpl) AggregateMonth(ctx context.Context, month int, year int) ([]summary.Summary, error) {
	employees, err := s.employees.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	summaries := make([]summary.Summary, 0, len(employees))
	for _, emp := range employees {
		sum, err := s.AggregateEmployee(ctx, emp.ID, month, year)
		if err != nil {
			slog.Error("aggregation failed",
				"employee_id", emp.ID,
				"month", month,
				"year", year,
				"error", err)
			continue
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// ListSummaries implements summary.AggregationService.
func (s *AggregationServiceImpl) ListSummaries(ctx context.Context, month int, year int) (summary.ListSummariesResponse, error) {
	req := summary.MonthRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return summary.ListSummariesResponse{}, err
	}

	stored, err := s.summaries.ListByMonth(ctx, month, year)
	if err != nil {
		return summary.ListSummariesResponse{}, fmt.Errorf("failed to list summaries: %w", err)
	}

	resp := summary.ListSummariesResponse{
		Summaries: make([]summary.SummaryResponse, 0, len(stored)),
		Month:     month,
		Year:      year,
	}
	for _, sum := range stored {
		resp.Summaries = append(resp.Summaries, summary.ToResponse(sum))
	}
	return resp, nil
}
