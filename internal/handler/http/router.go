package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-engine-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	shiftHandler ShiftHandler,
	assignmentHandler AssignmentHandler,
	punchHandler PunchHandler,
	breakTypeHandler BreakTypeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-engine"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.List)
				r.Post("/", shiftHandler.Create)
				r.Get("/{id}", shiftHandler.Get)
				r.Put("/{id}", shiftHandler.Update)
				r.Delete("/{id}", shiftHandler.Delete)
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Post("/", assignmentHandler.Create)
				r.Get("/employees/{employeeID}", assignmentHandler.GetWeek)
				r.Delete("/{id}", assignmentHandler.Delete)
			})

			r.Route("/punches", func(r chi.Router) {
				r.Post("/{kind}", punchHandler.Record)
				r.Get("/employees/{employeeID}", punchHandler.GetDay)
			})

			r.Route("/break-types", func(r chi.Router) {
				r.Get("/", breakTypeHandler.List)
				r.Post("/", breakTypeHandler.Create)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/{kind}", reportHandler.Generate)
				r.Get("/employees/{employeeID}/day", reportHandler.ReconcileDay)
			})
		})
	})
	return r
}
