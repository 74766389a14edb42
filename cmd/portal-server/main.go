package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/patient360/backend/internal/config"
	authdomain "github.com/patient360/backend/internal/domain/auth"
	"github.com/patient360/backend/internal/domain/chatbot"
	"github.com/patient360/backend/internal/domain/health"
	"github.com/patient360/backend/internal/domain/patient"
	platformauth "github.com/patient360/backend/internal/platform/auth"
	"github.com/patient360/backend/internal/platform/metrics"
	"github.com/patient360/backend/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal-server",
		Short: "Patient 360 Portal API Server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the portal API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// newServer assembles the echo application. Kept separate from runServer so
// tests can drive the full router without binding a port.
func newServer(cfg *config.Config, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	e.Use(collector.Middleware())

	// Stores are owned here and injected; nothing is package-global.
	tokenStore := authdomain.NewStore()
	patientRepo := patient.NewMemRepo()

	authSvc := authdomain.NewService(tokenStore)
	authdomain.NewHandler(authSvc).RegisterRoutes(e.Group("/auth"))

	e.GET("/", health.Handler(cfg.DBConfigured()))
	e.GET("/metrics", metrics.Handler(registry))

	var responder chatbot.Responder = chatbot.DemoResponder{}
	if cfg.GeminiAPIKey != "" {
		responder = chatbot.NewGeminiResponder(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	protected := e.Group("", platformauth.Bearer(tokenStore))
	patient.NewHandler(patient.NewService(patientRepo)).RegisterRoutes(protected)
	chatbot.NewHandler(responder, cfg.GeminiModel).RegisterRoutes(protected)

	return e
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	e := newServer(cfg, logger)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().
			Str("addr", addr).
			Str("app", config.AppName).
			Str("version", config.AppVersion).
			Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
