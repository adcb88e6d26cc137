package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/device"
	"github.com/facetrack/timekeeper-backend-go/internal/domain/timelog"
	"github.com/facetrack/timekeeper-backend-go/internal/handler/http/middleware"
	"github.com/facetrack/timekeeper-backend-go/internal/handler/http/response"
)

type TimeLogHandler interface {
	Ingest(w http.ResponseWriter, r *http.Request)
	CreateManual(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type timeLogHandlerImpl struct {
	eventService timelog.EventService
}

func NewTimeLogHandler(eventService timelog.EventService) TimeLogHandler {
	return &timeLogHandlerImpl{
		eventService: eventService,
	}
}

// Ingest implements TimeLogHandler. The posting terminal is identified by the
// device-key middleware, never by the request body.
func (h *timeLogHandlerImpl) Ingest(w http.ResponseWriter, r *http.Request) {
	var req timelog.IngestEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	deviceID, ok := middleware.DeviceIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, device.ErrMissingDeviceID)
		return
	}
	req.DeviceID = deviceID

	result, err := h.eventService.IngestDeviceEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event recorded", result)
}

// CreateManual implements TimeLogHandler.
func (h *timeLogHandlerImpl) CreateManual(w http.ResponseWriter, r *http.Request) {
	var req timelog.ManualEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.eventService.CreateManualEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event recorded", result)
}

// List implements TimeLogHandler.
func (h *timeLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timelog.EventFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.eventService.ListEvents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Events, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
	})
}
