package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/eakathit/TimeTracker/internal/handler/http/middleware"
	"github.com/eakathit/TimeTracker/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterParams struct {
	JWTService        jwt.Service
	FrontendURL       string
	Env               string
	AuthHandler       AuthHandler
	EmployeeHandler   EmployeeHandler
	AttendanceHandler AttendanceHandler
	LeaveHandler      LeaveHandler
	OvertimeHandler   OvertimeHandler
	CalendarHandler   CalendarHandler
	PayrollHandler    PayrollHandler
}

func NewRouter(p RouterParams) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timetracker"),
		slog.String("version", "v1.0.0"),
		slog.String("env", p.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{p.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", p.AuthHandler.Login)
			r.Post("/refresh", p.AuthHandler.RefreshToken)
			r.Post("/logout", p.AuthHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", p.AuthHandler.LoginWithGoogle)
				r.Get("/callback/google", p.AuthHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(p.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(p.JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", p.AttendanceHandler.CheckIn)
				r.Post("/check-out", p.AttendanceHandler.CheckOut)
				r.Post("/reports", p.AttendanceHandler.SubmitReport)
				r.Get("/my", p.AttendanceHandler.GetMyRecords)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/records", p.AttendanceHandler.Backfill)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", p.LeaveHandler.Create)
				r.Get("/my", p.LeaveHandler.GetMyRequests)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", p.LeaveHandler.ListPending)
					r.Put("/{id}/approve", p.LeaveHandler.Approve)
					r.Put("/{id}/reject", p.LeaveHandler.Reject)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", p.OvertimeHandler.Create)
				r.Get("/my", p.OvertimeHandler.GetMyRequests)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", p.OvertimeHandler.ListPending)
					r.Put("/{id}/approve", p.OvertimeHandler.Approve)
					r.Put("/{id}/reject", p.OvertimeHandler.Reject)
				})
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/", p.CalendarHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/holidays", p.CalendarHandler.AddHoliday)
					r.Delete("/holidays", p.CalendarHandler.RemoveHoliday)
					r.Post("/working-saturdays", p.CalendarHandler.AddWorkingSaturday)
					r.Delete("/working-saturdays", p.CalendarHandler.RemoveWorkingSaturday)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", p.EmployeeHandler.List)
					r.Post("/", p.EmployeeHandler.Create)
					r.Get("/{id}", p.EmployeeHandler.Get)
					r.Put("/{id}", p.EmployeeHandler.Update)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/summary", p.PayrollHandler.Summary)
					r.Get("/export", p.PayrollHandler.Export)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
