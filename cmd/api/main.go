package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/attendance-engine-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-engine-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-engine-go/internal/repository/postgresql"
	assignmentService "github.com/cmlabs-hris/attendance-engine-go/internal/service/assignment"
	breakTypeService "github.com/cmlabs-hris/attendance-engine-go/internal/service/breaktype"
	punchService "github.com/cmlabs-hris/attendance-engine-go/internal/service/punch"
	"github.com/cmlabs-hris/attendance-engine-go/internal/service/reconcile"
	reportService "github.com/cmlabs-hris/attendance-engine-go/internal/service/report"
	scheduleService "github.com/cmlabs-hris/attendance-engine-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "attendance-engine"),
	)

	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	breakTypeRepo := postgresql.NewBreakTypeRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	shiftSvc := scheduleService.NewShiftService(shiftRepo)
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepo, shiftRepo)
	punchSvc := punchService.NewPunchService(punchRepo, breakTypeRepo)
	breakTypeSvc := breakTypeService.NewBreakTypeService(breakTypeRepo)
	reconcileSvc := reconcile.NewDayService(assignmentRepo, shiftRepo, punchRepo, logger)
	reportSvc := reportService.NewReportService(assignmentRepo, shiftRepo, punchRepo, logger, cfg.Report.MaxConcurrency, cfg.Report.PeakDaysTopN)

	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	assignmentHandler := appHTTP.NewAssignmentHandler(assignmentSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	breakTypeHandler := appHTTP.NewBreakTypeHandler(breakTypeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, reconcileSvc)

	scheduler := cron.NewScheduler()
	cron.NewPunchJobs(punchRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		shiftHandler,
		assignmentHandler,
		punchHandler,
		breakTypeHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
