package timelog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/employee"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/timelog"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/database"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/validator"
)

type EventServiceImpl struct {
	db         *database.DB
	events     timelog.EventRepository
	employees  employee.EmployeeRepository
	derivation workhours.DerivationService
}

func NewEventService(
	db *database.DB,
	eventRepo timelog.EventRepository,
	employeeRepo employee.EmployeeRepository,
	derivationService workhours.DerivationService,
) timelog.EventService {
	return &EventServiceImpl{
		db:         db,
		events:     eventRepo,
		employees:  employeeRepo,
		derivation: derivationService,
	}
}

// IngestDeviceEvent implements timelog.EventService.
func (s *EventServiceImpl) IngestDeviceEvent(ctx context.Context, req timelog.IngestEventRequest) (timelog.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.EventResponse{}, err
	}

	ts, _ := validator.IsValidDateTime(req.Timestamp)
	deviceID := req.DeviceID

	ev := timelog.Event{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Timestamp:  ts.Truncate(time.Second),
		Kind:       timelog.Kind(req.Kind),
		Source:     timelog.SourceDevice,
		DeviceID:   &deviceID,
		Confidence: req.Confidence,
	}

	return s.store(ctx, ev)
}

// CreateManualEvent implements timelog.EventService.
func (s *EventServiceImpl) CreateManualEvent(ctx context.Context, req timelog.ManualEventRequest) (timelog.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.EventResponse{}, err
	}

	ts, _ := validator.IsValidDateTime(req.Timestamp)

	ev := timelog.Event{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Timestamp:  ts.Truncate(time.Second),
		Kind:       timelog.Kind(req.Kind),
		Source:     timelog.SourceManual,
	}

	return s.store(ctx, ev)
}

func (s *EventServiceImpl) store(ctx context.Context, ev timelog.Event) (timelog.EventResponse, error) {
	emp, err := s.employees.GetByID(ctx, ev.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timelog.EventResponse{}, timelog.ErrEmployeeNotFound
		}
		return timelog.EventResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}
	if !emp.Active {
		return timelog.EventResponse{}, timelog.ErrEmployeeInactive
	}

	created, err := s.events.Create(ctx, ev)
	if err != nil {
		return timelog.EventResponse{}, fmt.Errorf("failed to store event: %w", err)
	}

	// Keep the derived record fresh for the event's own calendar day. A
	// failure here is not an ingest failure: the nightly job and the manual
	// derive endpoint re-run the same pure derivation later.
	if _, err := s.derivation.DeriveDay(ctx, created.EmployeeID, created.Timestamp); err != nil {
		slog.Warn("post-ingest derivation failed",
			"employee_id", created.EmployeeID,
			"date", created.Timestamp.Format("2006-01-02"),
			"error", err)
	}

	return toResponse(created), nil
}

// ListEvents implements timelog.EventService.
func (s *EventServiceImpl) ListEvents(ctx context.Context, filter timelog.EventFilter) (timelog.ListEventsResponse, error) {
	if err := filter.Validate(); err != nil {
		return timelog.ListEventsResponse{}, err
	}

	events, total, err := s.events.List(ctx, filter)
	if err != nil {
		return timelog.ListEventsResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	resp := timelog.ListEventsResponse{
		Events:     make([]timelog.EventResponse, 0, len(events)),
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, ev := range events {
		resp.Events = append(resp.Events, toResponse(ev))
	}
	return resp, nil
}

func toResponse(ev timelog.Event) timelog.EventResponse {
	return timelog.EventResponse{
		ID:         ev.ID,
		EmployeeID: ev.EmployeeID,
		Timestamp:  ev.Timestamp.Format(time.RFC3339),
		Kind:       string(ev.Kind),
		Source:     string(ev.Source),
		DeviceID:   ev.DeviceID,
		Confidence: ev.Confidence,
	}
}
