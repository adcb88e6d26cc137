package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/device"
	"github.com/facetrack/timekeeper-backend-go/internal/handler/http/middleware"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService jwt.Service
	Devices    device.DeviceRepository

	TimeLog   TimeLogHandler
	WorkHours WorkHoursHandler
	Summary   SummaryHandler
	Report    ReportHandler
	Holiday   HolidayHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timekeeper-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Device-Key"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Terminal ingest authenticates with a device key, not a JWT.
		r.Group(func(r chi.Router) {
			r.Use(middleware.DeviceAuth(deps.Devices))
			r.Post("/timelogs/events", deps.TimeLog.Ingest)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Get("/timelogs", deps.TimeLog.List)

			r.Route("/work-hours", func(r chi.Router) {
				r.Get("/", deps.WorkHours.List)
				r.Get("/{employeeID}/{date}", deps.WorkHours.Get)
			})

			r.Get("/summaries", deps.Summary.List)
			r.Get("/reports/attendance", deps.Report.MonthlyAttendance)
			r.Get("/holidays", deps.Holiday.List)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/timelogs/manual", deps.TimeLog.CreateManual)
				r.Post("/work-hours/derive", deps.WorkHours.Derive)
				r.Post("/summaries/aggregate", deps.Summary.Aggregate)

				r.Route("/holidays", func(r chi.Router) {
					r.Post("/", deps.Holiday.Create)
					r.Delete("/{holidayID}", deps.Holiday.Delete)
				})
			})
		})
	})

	return r
}
