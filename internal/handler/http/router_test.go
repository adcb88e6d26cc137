package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facetrack/timekeeper-backend-go/internal/pkg/jwt"
)

func testRouter() http.Handler {
	return NewRouter(RouterDeps{
		JWTService: jwt.NewJWTService("router-test-secret"),
		TimeLog:    NewTimeLogHandler(nil),
		WorkHours:  NewWorkHoursHandler(nil),
		Summary:    NewSummaryHandler(nil),
		Report:     NewReportHandler(nil),
		Holiday:    NewHolidayHandler(nil),
	})
}

func TestRouter_Heartbeat(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/timelogs"},
		{http.MethodGet, "/api/v1/work-hours"},
		{http.MethodGet, "/api/v1/summaries"},
		{http.MethodGet, "/api/v1/reports/attendance"},
		{http.MethodGet, "/api/v1/holidays"},
		{http.MethodPost, "/api/v1/timelogs/manual"},
		{http.MethodPost, "/api/v1/work-hours/derive"},
		{http.MethodPost, "/api/v1/summaries/aggregate"},
	}

	router := testRouter()
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_IngestRequiresDeviceKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timelogs/events", nil)
	rec := httptest.NewRecorder()

	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
