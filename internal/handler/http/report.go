package http

import (
	"net/http"
	"strconv"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/report"
	"github.com/facetrack/timekeeper-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// MonthlyAttendance implements ReportHandler.
func (h *reportHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	var req report.MonthlyAttendanceReportRequest
	req.Month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	req.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))

	result, err := h.reportService.MonthlyAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
