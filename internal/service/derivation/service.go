package derivation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/employee"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/holiday"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/leave"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/policy"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/timelog"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/database"
	"github.com/facetrack/timekeeper-backend-go/internal/repository/postgresql"
	"github.com/facetrack/timekeeper-backend-go/internal/service/calendar"
)

type DerivationServiceImpl struct {
	db        *database.DB
	policy    policy.WorkPolicy
	events    timelog.EventRepository
	records   workhours.RecordRepository
	employees employee.EmployeeRepository
	leaves    leave.LeaveRepository
	holidays  holiday.HolidayRepository
}

func NewDerivationService(
	db *database.DB,
	pol policy.WorkPolicy,
	eventRepo timelog.EventRepository,
	recordRepo workhours.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
	holidayRepo holiday.HolidayRepository,
) workhours.DerivationService {
	return &DerivationServiceImpl{
		db:        db,
		policy:    pol,
		events:    eventRepo,
		records:   recordRepo,
		employees: employeeRepo,
		leaves:    leaveRepo,
		holidays:  holidayRepo,
	}
}

// DeriveDay implements workhours.DerivationService.
func (s *DerivationServiceImpl) DeriveDay(ctx context.Context, employeeID string, date time.Time) (workhours.Record, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return workhours.Record{}, workhours.ErrEmployeeNotFound
		}
		return workhours.Record{}, fmt.Errorf("failed to load employee: %w", err)
	}

	classifier, err := s.classifierFor(ctx, date, date)
	if err != nil {
		return workhours.Record{}, err
	}

	return s.deriveOne(ctx, emp.ID, midnight(date), classifier)
}

// DeriveDate implements workhours.DerivationService.
func (s *DerivationServiceImpl) DeriveDate(ctx context.Context, date time.Time) ([]workhours.Record, error) {
	employees, err := s.employees.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	classifier, err := s.classifierFor(ctx, date, date)
	if err != nil {
		return nil, err
	}

	day := midnight(date)
	derived := make([]workhours.Record, 0, len(employees))
	for _, emp := range employees {
		rec, err := s.deriveOne(ctx, emp.ID, day, classifier)
		if err != nil {
			slog.Error("derivation failed",
				"employee_id", emp.ID,
				"date", day.Format("2006-01-02"),
				"error", err)
			continue
		}
		derived = append(derived, rec)
	}

	return derived, nil
}

// deriveOne runs the pure pipeline for one employee-day and replaces the
// stored record wholesale. The event read and the record write share one
// transaction so the stored record always matches the snapshot it was
// derived from.
func (s *DerivationServiceImpl) deriveOne(ctx context.Context, employeeID string, day time.Time, classifier *calendar.Classifier) (workhours.Record, error) {
	var stored workhours.Record

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		events, err := s.events.ListByEmployeeAndDay(txCtx, employeeID, day)
		if err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}

		onLeave, err := s.leaves.IsOnLeave(txCtx, employeeID, day)
		if err != nil {
			return fmt.Errorf("failed to read leave flag: %w", err)
		}

		rec, warnings := Derive(Input{
			EmployeeID: employeeID,
			Date:       day,
			Events:     events,
			IsWorkday:  classifier.IsWorkday(day),
			OnLeave:    onLeave,
		}, s.policy)

		for _, w := range warnings {
			slog.Warn("event order anomaly",
				"employee_id", employeeID,
				"date", day.Format("2006-01-02"),
				"detail", w)
		}

		stored, err = s.records.Upsert(txCtx, rec)
		if err != nil {
			return fmt.Errorf("failed to store work hours record: %w", err)
		}
		return nil
	})
	if err != nil {
		return workhours.Record{}, err
	}

	return stored, nil
}

// GetRecord implements workhours.DerivationService.
func (s *DerivationServiceImpl) GetRecord(ctx context.Context, employeeID string, date time.Time) (workhours.RecordResponse, error) {
	rec, err := s.records.GetByEmployeeAndDate(ctx, employeeID, midnight(date))
	if err != nil {
		return workhours.RecordResponse{}, err
	}
	return workhours.ToResponse(rec), nil
}

// ListRecords implements workhours.DerivationService.
func (s *DerivationServiceImpl) ListRecords(ctx context.Context, filter workhours.RecordFilter) (workhours.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return workhours.ListRecordsResponse{}, err
	}

	records, total, err := s.records.List(ctx, filter)
	if err != nil {
		return workhours.ListRecordsResponse{}, fmt.Errorf("failed to list work hours records: %w", err)
	}

	resp := workhours.ListRecordsResponse{
		Records:    make([]workhours.RecordResponse, 0, len(records)),
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, workhours.ToResponse(rec))
	}
	return resp, nil
}

// classifierFor builds a calendar classifier covering [from, to].
func (s *DerivationServiceImpl) classifierFor(ctx context.Context, from, to time.Time) (*calendar.Classifier, error) {
	holidays, err := s.holidays.ListBetween(ctx, midnight(from), midnight(to))
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	dates := make([]time.Time, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}
	return calendar.NewClassifier(s.policy.WeekendShiftDays, dates), nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
