package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/summary"
	"github.com/facetrack/timekeeper-backend-go/internal/handler/http/response"
)

type SummaryHandler interface {
	Aggregate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	aggregationService summary.AggregationService
}

func NewSummaryHandler(aggregationService summary.AggregationService) SummaryHandler {
	return &summaryHandlerImpl{
		aggregationService: aggregationService,
	}
}

// Aggregate implements SummaryHandler. With an employee_id the request
// re-aggregates one employee's month; without one it aggregates every active
// employee.
func (h *summaryHandlerImpl) Aggregate(w http.ResponseWriter, r *http.Request) {
	var req summary.AggregateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	var summaries []summary.Summary
	if req.EmployeeID != "" {
		s, err := h.aggregationService.AggregateEmployee(r.Context(), req.EmployeeID, req.Month, req.Year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		summaries = []summary.Summary{s}
	} else {
		var err error
		summaries, err = h.aggregationService.AggregateMonth(r.Context(), req.Month, req.Year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
	}

	resp := summary.AggregateResponse{
		Aggregated: len(summaries),
		Summaries:  make([]summary.SummaryResponse, 0, len(summaries)),
	}
	for _, s := range summaries {
		resp.Summaries = append(resp.Summaries, summary.ToResponse(s))
	}

	response.SuccessWithMessage(w, "Aggregation complete", resp)
}

// List implements SummaryHandler.
func (h *summaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	req := summary.MonthRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.aggregationService.ListSummaries(r.Context(), req.Month, req.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
