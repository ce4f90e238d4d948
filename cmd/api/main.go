package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resumeparser/docs"
	"resumeparser/internal/config"
	"resumeparser/internal/database"
	"resumeparser/internal/database/migration"
	"resumeparser/internal/extract"
	handlers "resumeparser/internal/http/handler"
	"resumeparser/internal/http/middleware"
	"resumeparser/internal/logging"
	"resumeparser/internal/metrics"
	"resumeparser/internal/otel"
	"resumeparser/internal/repository"
	"resumeparser/internal/repository/postgres"
	"resumeparser/internal/service"
	"resumeparser/internal/tempstore"
)

const shutdownTimeout = 10 * time.Second

// @title Resume Parser API
// @version 1.0
// @description Extracts plain text from uploaded PDF, DOCX and TXT resumes.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	logger := logging.New(os.Stdout, loc, cfg.Level())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.ServiceName, logger)
	if err != nil {
		fatal(logger, "failed to initialize tracing", err)
	}

	store, err := tempstore.NewLocal(cfg.Upload.Dir)
	if err != nil {
		fatal(logger, "failed to prepare upload directory", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg, "/healthz")
	if err != nil {
		fatal(logger, "failed to register http metrics", err)
	}
	extractionMetrics, err := metrics.NewExtraction(reg)
	if err != nil {
		fatal(logger, "failed to register extraction metrics", err)
	}

	// The audit log is optional; repo stays a nil interface when no database is configured.
	var repo repository.ExtractionRepository
	if cfg.Database.Enabled() {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			fatal(logger, "failed to connect to database", err)
		}
		defer db.Close()

		if cfg.Database.AutoMigrate {
			if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
				fatal(logger, "failed to migrate database", err)
			}
		}
		repo = postgres.NewExtractionPostgres(db)
	}

	extractor := extract.New(cfg.Upload.MinTextLength)
	resumeSvc := service.NewResumeService(store, extractor, repo, extractionMetrics, logger)

	app := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.Upload.MaxSizeBytes(),
		DisableStartupMessage: true,
	})

	// RequestID first so every later layer, including error responses, sees the ID.
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(loc))
	app.Use(httpMetrics.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	handlers.RegisterRoutes(app, resumeSvc, repo)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_started",
			"addr", addr,
			"upload_dir", store.Dir(),
			"min_text_length", extractor.MinTextLength(),
			"audit_enabled", repo != nil,
		)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			fatal(logger, "failed to start server", err)
		}
	case <-ctx.Done():
		logger.Info("server_stopping")
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("server_shutdown_failed", "error", err.Error())
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error("tracing_shutdown_failed", "error", err.Error())
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err.Error())
	os.Exit(1)
}
