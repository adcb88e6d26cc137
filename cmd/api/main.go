package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/config"
	appHTTP "github.com/facetrack/timekeeper-backend-go/internal/handler/http"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/cron"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/database"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/jwt"
	"github.com/facetrack/timekeeper-backend-go/internal/repository/postgresql"
	aggregationService "github.com/facetrack/timekeeper-backend-go/internal/service/aggregation"
	derivationService "github.com/facetrack/timekeeper-backend-go/internal/service/derivation"
	holidayService "github.com/facetrack/timekeeper-backend-go/internal/service/holiday"
	reportService "github.com/facetrack/timekeeper-backend-go/internal/service/report"
	timelogService "github.com/facetrack/timekeeper-backend-go/internal/service/timelog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	workPolicy, err := cfg.WorkPolicy()
	if err != nil {
		fmt.Println("Error building work policy:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", cfg.App.Timezone)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	eventRepo := postgresql.NewTimeLogEventRepository(db)
	workHoursRepo := postgresql.NewWorkHoursRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	derivationSvc := derivationService.NewDerivationService(
		db,
		workPolicy,
		eventRepo,
		workHoursRepo,
		employeeRepo,
		leaveRepo,
		holidayRepo,
	)
	aggregationSvc := aggregationService.NewAggregationService(
		db,
		workPolicy,
		workHoursRepo,
		summaryRepo,
		employeeRepo,
		leaveRepo,
	)
	eventSvc := timelogService.NewEventService(db, eventRepo, employeeRepo, derivationSvc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	reportSvc := reportService.NewReportService(employeeRepo, workHoursRepo, summaryRepo)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService: JWTService,
		Devices:    deviceRepo,
		TimeLog:    appHTTP.NewTimeLogHandler(eventSvc),
		WorkHours:  appHTTP.NewWorkHoursHandler(derivationSvc),
		Summary:    appHTTP.NewSummaryHandler(aggregationSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewDerivationJobs(derivationSvc, aggregationSvc, location).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	if err := server.Close(); err != nil {
		fmt.Println("Server close error:", err)
	}
}
