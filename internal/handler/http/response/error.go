package response

import (
	"errors"
	"net/http"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/device"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/holiday"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/summary"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/timelog"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Time log domain errors
	case errors.Is(err, timelog.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, timelog.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, timelog.ErrEventNotFound):
		NotFound(w, "Time log event not found")
	case errors.Is(err, timelog.ErrDuplicateEvent):
		Conflict(w, "An identical event already exists")

	// Work hours domain errors
	case errors.Is(err, workhours.ErrRecordNotFound):
		NotFound(w, "Work hours record not found")
	case errors.Is(err, workhours.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Summary domain errors
	case errors.Is(err, summary.ErrSummaryNotFound):
		NotFound(w, "Attendance summary not found")
	case errors.Is(err, summary.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")

	// Device domain errors
	case errors.Is(err, device.ErrMissingDeviceID):
		Unauthorized(w, "Device credentials missing")
	case errors.Is(err, device.ErrDeviceNotFound), errors.Is(err, device.ErrInvalidKey):
		Unauthorized(w, "Invalid device credentials")
	case errors.Is(err, device.ErrDeviceInactive):
		Forbidden(w, "Device is deactivated")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
