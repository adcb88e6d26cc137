package timelog

import (
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/validator"
)

// ========================================
// TIME LOG DTOs
// ========================================

// IngestEventRequest is what a recognition terminal posts after a face match.
type IngestEventRequest struct {
	EmployeeID string   `json:"employee_id"`
	Timestamp  string   `json:"timestamp"` // RFC3339
	Kind       string   `json:"kind"`
	Confidence *float64 `json:"confidence,omitempty"`

	// DeviceID is set by the device-key middleware, not by the request body.
	DeviceID string `json:"-"`
}

func (r *IngestEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC3339 datetime",
		})
	}

	if !ValidKind(r.Kind) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be check_in or check_out",
		})
	}

	if r.Confidence != nil && (*r.Confidence < 0 || *r.Confidence > 1) {
		errs = append(errs, validator.ValidationError{
			Field:   "confidence",
			Message: "confidence must be between 0 and 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ManualEventRequest is an administrator-entered event, used to backfill a
// missed badge or correct terminal downtime.
type ManualEventRequest struct {
	EmployeeID string `json:"employee_id"`
	Timestamp  string `json:"timestamp"` // RFC3339
	Kind       string `json:"kind"`
}

func (r *ManualEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC3339 datetime",
		})
	}

	if !ValidKind(r.Kind) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be check_in or check_out",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Timestamp  string   `json:"timestamp"`
	Kind       string   `json:"kind"`
	Source     string   `json:"source"`
	DeviceID   *string  `json:"device_id,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

type EventFilter struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEventsResponse struct {
	Events     []EventResponse `json:"events"`
	TotalItems int64           `json:"total_items"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}
