package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workforcehq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Employee   EmployeeHandler
	Department DepartmentHandler
	Project    ProjectHandler
	WorkEntry  WorkEntryHandler
	Reminder   ReminderHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, appName, appEnv string, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Post("/auth/login", h.Auth.Login)

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/check-in", h.Attendance.CheckIn)
			r.Post("/check-out", h.Attendance.CheckOut)
			r.Get("/today/{employeeId}", h.Attendance.Today)
			r.Get("/my/{employeeId}", h.Attendance.My)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/today", h.Attendance.AdminToday)
				r.Get("/date/{date}", h.Attendance.AdminByDate)
				r.Get("/monthly/{month}", h.Attendance.AdminMonthly)
			})
		})

		r.Route("/leave-requests", func(r chi.Router) {
			r.Post("/request", h.Leave.Request)
			r.Get("/my/{employeeId}", h.Leave.My)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/pending", h.Leave.AdminPending)
				r.Post("/approve/{id}", h.Leave.Approve)
				r.Post("/reject/{id}", h.Leave.Reject)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Get("/{id}", h.Employee.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Employee.Create)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Deactivate)
			})
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", h.Department.List)
			r.Get("/{id}", h.Department.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Department.Create)
				r.Put("/{id}", h.Department.Update)
				r.Delete("/{id}", h.Department.Delete)
			})
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Project.List)
			r.Get("/{id}", h.Project.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Project.Create)
				r.Put("/{id}", h.Project.Update)
				r.Delete("/{id}", h.Project.Delete)
			})
		})

		r.Route("/work-entries", func(r chi.Router) {
			r.Post("/", h.WorkEntry.Create)
			r.Delete("/{id}", h.WorkEntry.Delete)
			r.Get("/my/{employeeId}/{month}", h.WorkEntry.ListByEmployeeMonth)
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Post("/", h.Reminder.Create)
			r.Post("/{id}/done", h.Reminder.MarkDone)
			r.Delete("/{id}", h.Reminder.Delete)
			r.Get("/my/{employeeId}", h.Reminder.ListUpcoming)
		})
	})

	return r
}
