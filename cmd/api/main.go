package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resumebuilder/docs"
	"resumebuilder/internal/app"
	"resumebuilder/internal/config"
	handlers "resumebuilder/internal/http/handler"
	"resumebuilder/internal/http/middleware"
	"resumebuilder/internal/logger"
	"resumebuilder/internal/otel"
)

// @title Resume Builder Workspace API
// @version 1.0
// @BasePath /
func main() {
	if err := run(); err != nil {
		log := logger.Component("main")
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup always runs.
func run() error {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	log := logger.Component("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	ws, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize workspace: %w", err)
	}
	defer ws.Close()

	// Handlers wait for the session to settle, so the server can accept
	// connections while the stored credential is still being checked.
	go func() {
		if err := ws.Start(ctx); err != nil {
			log.Error().Err(err).Msg("workspace start failed")
		}
	}()

	srv, err := newServer(cfg, ws, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.ShutdownWithContext(sctx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("backend", cfg.Backend.BaseURL).Msg("listening")
	if err := srv.Listen(addr); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}

func newServer(cfg *config.AppConfig, ws *app.Workspace, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*fiber.App, error) {
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	// The swagger spec is shared by every request; it is filled in once.
	docs.SwaggerInfo.Host = cfg.AppHost
	docs.SwaggerInfo.Schemes = []string{cfg.AppScheme}

	srv := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		Immutable:    true,
	})
	srv.Use(otelfiber.Middleware())
	srv.Use(middleware.RequestID())
	srv.Use(middleware.Logger())
	srv.Use(prom.Handler())

	srv.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(srv, handlers.Deps{
		Session:   ws.Session,
		Logout:    ws,
		Editor:    ws.Editor,
		Dashboard: ws.Dashboard,
		Exports:   ws.Exports,
		Health:    ws,
	})

	srv.Get("/swagger/*", swagger.HandlerDefault)

	return srv, nil
}
