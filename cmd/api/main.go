package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/eakathit/TimeTracker/internal/config"
	appHTTP "github.com/eakathit/TimeTracker/internal/handler/http"
	"github.com/eakathit/TimeTracker/internal/pkg/database"
	"github.com/eakathit/TimeTracker/internal/pkg/jwt"
	"github.com/eakathit/TimeTracker/internal/pkg/oauth"
	"github.com/eakathit/TimeTracker/internal/repository/postgresql"
	attendanceService "github.com/eakathit/TimeTracker/internal/service/attendance"
	authService "github.com/eakathit/TimeTracker/internal/service/auth"
	calendarService "github.com/eakathit/TimeTracker/internal/service/calendar"
	employeeService "github.com/eakathit/TimeTracker/internal/service/employee"
	leaveService "github.com/eakathit/TimeTracker/internal/service/leave"
	overtimeService "github.com/eakathit/TimeTracker/internal/service/overtime"
	payrollService "github.com/eakathit/TimeTracker/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := newLogger(cfg.App.LogLevel)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	recordRepo := postgresql.NewWorkRecordRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	overtimeRepo := postgresql.NewOvertimeRequestRepository(db)
	calendarRepo := postgresql.NewCalendarRuleRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(employeeRepo, jwtService, logger)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, logger)
	attendanceSvc := attendanceService.NewWorkRecordService(recordRepo, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, logger)
	overtimeSvc := overtimeService.NewOvertimeService(db, overtimeRepo, recordRepo, logger)
	calendarSvc := calendarService.NewRuleSetService(calendarRepo, logger)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, recordRepo, leaveRepo, calendarRepo, logger)

	router := appHTTP.NewRouter(appHTTP.RouterParams{
		JWTService:        jwtService,
		FrontendURL:       cfg.App.FrontendURL,
		Env:               cfg.App.Env,
		AuthHandler:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		EmployeeHandler:   appHTTP.NewEmployeeHandler(employeeSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		LeaveHandler:      appHTTP.NewLeaveHandler(leaveSvc),
		OvertimeHandler:   appHTTP.NewOvertimeHandler(overtimeSvc),
		CalendarHandler:   appHTTP.NewCalendarHandler(calendarSvc),
		PayrollHandler:    appHTTP.NewPayrollHandler(payrollSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server starting", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
