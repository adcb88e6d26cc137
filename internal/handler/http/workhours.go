package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/workhours"
	"github.com/facetrack/timekeeper-backend-go/internal/handler/http/response"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/validator"
)

type WorkHoursHandler interface {
	Derive(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type workHoursHandlerImpl struct {
	derivationService workhours.DerivationService
}

func NewWorkHoursHandler(derivationService workhours.DerivationService) WorkHoursHandler {
	return &workHoursHandlerImpl{
		derivationService: derivationService,
	}
}

// Derive implements WorkHoursHandler. With an employee_id the request
// re-derives one employee-day; without one it derives every active employee
// on the date.
func (h *workHoursHandlerImpl) Derive(w http.ResponseWriter, r *http.Request) {
	var req workhours.DeriveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date, _ := validator.IsValidDate(req.Date)

	var records []workhours.Record
	if req.EmployeeID != "" {
		rec, err := h.derivationService.DeriveDay(r.Context(), req.EmployeeID, date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		records = []workhours.Record{rec}
	} else {
		var err error
		records, err = h.derivationService.DeriveDate(r.Context(), date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
	}

	resp := workhours.DeriveResponse{
		Derived: len(records),
		Records: make([]workhours.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, workhours.ToResponse(rec))
	}

	response.SuccessWithMessage(w, "Derivation complete", resp)
}

// Get implements WorkHoursHandler.
func (h *workHoursHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	rawDate := chi.URLParam(r, "date")

	date, ok := validator.IsValidDate(rawDate)
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.derivationService.GetRecord(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkHoursHandler.
func (h *workHoursHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := workhours.RecordFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
	}
	filter.Month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	filter.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	// Default to the current month when unspecified.
	if filter.Month == 0 && filter.Year == 0 {
		now := time.Now()
		filter.Month = int(now.Month())
		filter.Year = now.Year()
	}

	result, err := h.derivationService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
	})
}
