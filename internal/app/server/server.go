package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"hrdash/internal/domain/employee"
	"hrdash/internal/domain/leave"
	"hrdash/internal/domain/overview"
	"hrdash/internal/domain/reports"
	"hrdash/internal/domain/workhours"
	"hrdash/internal/erp"
	"hrdash/internal/platform/config"
	authhandler "hrdash/internal/transport/http/handlers/auth"
	employeehandler "hrdash/internal/transport/http/handlers/employees"
	leavehandler "hrdash/internal/transport/http/handlers/leave"
	overviewhandler "hrdash/internal/transport/http/handlers/overview"
	reportshandler "hrdash/internal/transport/http/handlers/reports"
	workhourshandler "hrdash/internal/transport/http/handlers/workhours"
	"hrdash/internal/transport/http/middleware"
)

// App wires the ERP client, domain services and HTTP transport together.
// Router is exported so tests can drive the full stack through httptest.
type App struct {
	Config config.Config
	Router http.Handler
}

func New(cfg config.Config) *App {
	client := erp.New(cfg.ERPBaseURL, cfg.ERPAPIKey, cfg.ERPAPISecret, cfg.ERPTimeout)

	employeeSvc := employee.NewService(client)
	leaveSvc := leave.NewService(client)
	workhoursSvc := workhours.NewService(client)
	overviewSvc := overview.NewService(employeeSvc, leaveSvc, workhoursSvc)
	exportSvc := reports.NewService(reports.NewGenerator(cfg.CompanyName, nil))

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "hrdash"),
		slog.String("env", cfg.Environment),
	)
	slog.SetDefault(logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api", func(r chi.Router) {
		authhandler.NewHandler(client).RegisterRoutes(r)

		r.Route("/v1", func(r chi.Router) {
			overviewhandler.NewHandler(overviewSvc).RegisterRoutes(r)
			employeehandler.NewHandler(employeeSvc, cfg.DefaultPageSize).RegisterRoutes(r)
			leavehandler.NewHandler(leaveSvc, cfg.DefaultPageSize).RegisterRoutes(r)
			workhourshandler.NewHandler(workhoursSvc, cfg.DefaultPageSize).RegisterRoutes(r)
			reportshandler.NewHandler(workhoursSvc, exportSvc).RegisterRoutes(r)
		})
	})

	return &App{Config: cfg, Router: router}
}

func (a *App) Run() error {
	slog.Info("server listening", "addr", a.Config.Addr, "env", a.Config.Environment)
	return http.ListenAndServe(a.Config.Addr, a.Router)
}
