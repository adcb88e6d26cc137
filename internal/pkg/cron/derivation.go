package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/summary"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
)

// DerivationJobs keeps derived records and summaries converged with the raw
// event log. Both jobs re-run pure computations, so overlapping with manual
// derive requests is harmless.
type DerivationJobs struct {
	derivation  workhours.DerivationService
	aggregation summary.AggregationService
	location    *time.Location
}

func NewDerivationJobs(
	derivationService workhours.DerivationService,
	aggregationService summary.AggregationService,
	location *time.Location,
) *DerivationJobs {
	if location == nil {
		location = time.UTC
	}
	return &DerivationJobs{
		derivation:  derivationService,
		aggregation: aggregationService,
		location:    location,
	}
}

func (j *DerivationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("derive_previous_day", 1*time.Hour, j.DerivePreviousDay)
	scheduler.AddJob("refresh_current_month_summaries", 1*time.Hour, j.RefreshCurrentMonthSummaries)
}

// DerivePreviousDay derives yesterday's records for every active employee.
// It catches events that arrived after the last in-band derivation.
func (j *DerivationJobs) DerivePreviousDay(ctx context.Context) error {
	// Only run in the first hour after local midnight
	now := time.Now().In(j.location)
	if now.Hour() != 1 {
		return nil
	}

	yesterday := now.AddDate(0, 0, -1)
	slog.Info("Cron: Deriving previous day", "date", yesterday.Format("2006-01-02"))

	records, err := j.derivation.DeriveDate(ctx, yesterday)
	if err != nil {
		return err
	}

	slog.Info("Cron: Previous day derived", "date", yesterday.Format("2006-01-02"), "count", len(records))
	return nil
}

// RefreshCurrentMonthSummaries re-aggregates the running month so dashboards
// stay close to the event log without waiting for month end.
func (j *DerivationJobs) RefreshCurrentMonthSummaries(ctx context.Context) error {
	now := time.Now().In(j.location)
	if now.Hour() != 2 {
		return nil
	}

	slog.Info("Cron: Refreshing current month summaries", "month", int(now.Month()), "year", now.Year())

	summaries, err := j.aggregation.AggregateMonth(ctx, int(now.Month()), now.Year())
	if err != nil {
		return err
	}

	slog.Info("Cron: Current month summaries refreshed", "count", len(summaries))
	return nil
}
