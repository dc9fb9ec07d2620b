package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/config"
	httphandler "github.com/workforcehq/workforce-backend-go/internal/handler/http"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/clock"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cron"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/jwt"
	"github.com/workforcehq/workforce-backend-go/internal/repository/postgresql"
	attendanceservice "github.com/workforcehq/workforce-backend-go/internal/service/attendance"
	authservice "github.com/workforcehq/workforce-backend-go/internal/service/auth"
	departmentservice "github.com/workforcehq/workforce-backend-go/internal/service/department"
	employeeservice "github.com/workforcehq/workforce-backend-go/internal/service/employee"
	leaveservice "github.com/workforcehq/workforce-backend-go/internal/service/leave"
	projectservice "github.com/workforcehq/workforce-backend-go/internal/service/project"
	reminderservice "github.com/workforcehq/workforce-backend-go/internal/service/reminder"
	reportservice "github.com/workforcehq/workforce-backend-go/internal/service/report"
	workentryservice "github.com/workforcehq/workforce-backend-go/internal/service/workentry"
)

const appName = "workforce-backend"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", appName),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Pool.Close()
	logger.Info("database connected", "host", cfg.Database.Host, "name", cfg.Database.Name)

	// Repositories
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	workEntryRepo := postgresql.NewWorkEntryRepository(db)
	reminderRepo := postgresql.NewReminderRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	clk := clock.System()
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	inTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}

	// Services
	attendanceSvc := attendanceservice.NewService(attendanceRepo, leaveRepo, clk, logger)
	leaveSvc := leaveservice.NewService(leaveRepo, attendanceRepo, clk, logger, inTx)
	reportSvc := reportservice.NewService(attendanceRepo)
	employeeSvc := employeeservice.NewService(employeeRepo)
	departmentSvc := departmentservice.NewService(departmentRepo)
	projectSvc := projectservice.NewService(projectRepo)
	workEntrySvc := workentryservice.NewService(workEntryRepo)
	reminderSvc := reminderservice.NewService(reminderRepo)
	authSvc := authservice.NewService(userRepo, jwtService, logger)

	// Daily attendance sweeps
	sweeper := cron.NewAttendanceSweeper(attendanceRepo, employeeRepo, leaveRepo, clk, logger, cfg.Sweep.AutoCheckoutStamp)
	scheduler := cron.NewScheduler(logger, clk)
	if err := scheduler.Register(cron.Job{Name: "auto-absent", At: cfg.Sweep.AutoAbsentAt, Run: sweeper.MarkAbsent}); err != nil {
		return err
	}
	if err := scheduler.Register(cron.Job{Name: "auto-checkout", At: cfg.Sweep.AutoCheckoutAt, Run: sweeper.ForceCheckout}); err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := httphandler.NewRouter(jwtService, httphandler.Handlers{
		Auth:       httphandler.NewAuthHandler(authSvc),
		Attendance: httphandler.NewAttendanceHandler(attendanceSvc, reportSvc),
		Leave:      httphandler.NewLeaveHandler(leaveSvc),
		Employee:   httphandler.NewEmployeeHandler(employeeSvc),
		Department: httphandler.NewDepartmentHandler(departmentSvc),
		Project:    httphandler.NewProjectHandler(projectSvc),
		WorkEntry:  httphandler.NewWorkEntryHandler(workEntrySvc),
		Reminder:   httphandler.NewReminderHandler(reminderSvc),
	}, appName, cfg.App.Env, []string{cfg.App.FrontendURL})

	server := &stdhttp.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
