package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/employee"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/report"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/summary"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
)

type ReportServiceImpl struct {
	employees employee.EmployeeRepository
	records   workhours.RecordRepository
	summaries summary.SummaryRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	recordRepo workhours.RecordRepository,
	summaryRepo summary.SummaryRepository,
) report.ReportService {
	return &ReportServiceImpl{
		employees: employeeRepo,
		records:   recordRepo,
		summaries: summaryRepo,
	}
}

// MonthlyAttendance implements report.ReportService.
func (s *ReportServiceImpl) MonthlyAttendance(ctx context.Context, req report.MonthlyAttendanceReportRequest) (report.MonthlyAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	employees, err := s.employees.ListActive(ctx)
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	out := report.MonthlyAttendanceReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format("2006-01-02"),
		PeriodEnd:   periodEnd.Format("2006-01-02"),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Employees:   make([]report.MonthlyAttendanceEmployee, 0, len(employees)),
	}

	for _, emp := range employees {
		row, err := s.buildEmployeeRow(ctx, emp, req.Month, req.Year)
		if err != nil {
			return report.MonthlyAttendanceReport{}, err
		}
		out.Employees = append(out.Employees, row)
	}

	return out, nil
}

func (s *ReportServiceImpl) buildEmployeeRow(ctx context.Context, emp employee.Employee, month, year int) (report.MonthlyAttendanceEmployee, error) {
	row := report.MonthlyAttendanceEmployee{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		EmployeeCode: emp.Code,
	}
	if emp.Position != nil {
		row.Position = *emp.Position
	}

	records, err := s.records.ListByEmployeeAndMonth(ctx, emp.ID, month, year)
	if err != nil {
		return report.MonthlyAttendanceEmployee{}, fmt.Errorf("failed to load records for %s: %w", emp.ID, err)
	}

	row.DailyLogs = make([]report.AttendanceDailyLog, 0, len(records))
	for _, rec := range records {
		log := report.AttendanceDailyLog{
			Date:              rec.Date.Format("2006-01-02"),
			DayOfWeek:         rec.Date.Weekday().String(),
			RegularHours:      rec.RegularHours.StringFixed(2),
			OvertimeHours:     rec.OvertimeHours.StringFixed(2),
			Status:            string(rec.Status),
			LateMinutes:       rec.LateMinutes,
			EarlyLeaveMinutes: rec.EarlyLeaveMinutes,
		}
		if rec.FirstCheckIn != nil {
			v := rec.FirstCheckIn.Format("15:04:05")
			log.FirstCheckIn = &v
		}
		if rec.LastCheckOut != nil {
			v := rec.LastCheckOut.Format("15:04:05")
			log.LastCheckOut = &v
		}
		row.DailyLogs = append(row.DailyLogs, log)

		switch rec.Status {
		case workhours.StatusPresent:
			row.Summary.PresentDays++
		case workhours.StatusLate:
			row.Summary.LateDays++
		case workhours.StatusAbsent:
			row.Summary.AbsentDays++
		}
	}

	sum, err := s.summaries.GetByEmployeeAndMonth(ctx, emp.ID, month, year)
	switch {
	case err == nil:
		row.Summary.TotalHours = sum.TotalHours.StringFixed(2)
		row.Summary.OvertimeHours = sum.OvertimeHours.StringFixed(2)
		row.Summary.LeaveDays = sum.LeaveDays
		row.Summary.LateMinutes = sum.LateMinutes
		row.Summary.EarlyMinutes = sum.EarlyMinutes
		row.Summary.PenaltyAmount = sum.PenaltyAmount
	case errors.Is(err, summary.ErrSummaryNotFound):
		// No aggregation run yet for this employee; the daily logs still
		// render and the totals stay zero.
		row.Summary.TotalHours = "0.00"
		row.Summary.OvertimeHours = "0.00"
	default:
		return report.MonthlyAttendanceEmployee{}, fmt.Errorf("failed to load summary for %s: %w", emp.ID, err)
	}

	return row, nil
}
