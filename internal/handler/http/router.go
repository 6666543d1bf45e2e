package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/bayanihr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	payrollHandler PayrollHandler,
	attendanceHandler AttendanceHandler,
	adminHandler AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payrolls", func(r chi.Router) {
				r.Post("/", payrollHandler.Generate)
				r.Get("/", payrollHandler.List)
				r.Get("/{id}", payrollHandler.Get)
				r.Get("/{id}/logs", payrollHandler.GetLogs)
				r.Post("/{id}/recalculate", payrollHandler.Recalculate)
				r.Post("/{id}/approve", payrollHandler.Approve)
				r.Post("/{id}/release", payrollHandler.Release)
				r.Post("/{id}/void", payrollHandler.Void)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Route("/rates", func(r chi.Router) {
					r.Post("/", adminHandler.CreateRate)
					r.Get("/", adminHandler.ListRates)
					r.Delete("/{id}", adminHandler.DeleteRate)
				})
				r.Route("/pay-rules", func(r chi.Router) {
					r.Post("/", adminHandler.CreatePayRule)
					r.Get("/", adminHandler.ListPayRules)
					r.Delete("/{id}", adminHandler.DeletePayRule)
				})
				r.Route("/holidays", func(r chi.Router) {
					r.Post("/", adminHandler.CreateHoliday)
					r.Get("/", adminHandler.ListHolidays)
					r.Delete("/{id}", adminHandler.DeleteHoliday)
				})
				r.Route("/late-policies", func(r chi.Router) {
					r.Post("/", adminHandler.CreateLatePolicy)
					r.Get("/", adminHandler.ListLatePolicies)
					r.Delete("/{id}", adminHandler.DeleteLatePolicy)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return r
}
