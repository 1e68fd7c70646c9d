package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Greco-cyber/poster-dashboard/internal/config"
	"github.com/Greco-cyber/poster-dashboard/internal/handlers"
	custommiddleware "github.com/Greco-cyber/poster-dashboard/internal/middleware"
	"github.com/Greco-cyber/poster-dashboard/internal/poster"
	"github.com/Greco-cyber/poster-dashboard/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is a development convenience; production reads real env vars
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if cfg.Poster.Token == "" {
		logger.Warn("POSTER_TOKEN is not set, data endpoints will answer with CONFIG_001")
	}

	e := buildServer(cfg, logger)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server",
			"addr", addr,
			"environment", cfg.Server.Environment,
			"bar_categories", cfg.Reports.BarCategories,
			"match_strategy", string(cfg.Reports.MatchStrategy),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}

func buildServer(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	api := poster.New(poster.Config{
		BaseURL: cfg.Poster.BaseURL,
		Token:   cfg.Poster.Token,
		Timeout: cfg.Poster.CallTimeout,
	}, logger)

	cache := services.NewProductCache(api, cfg.Reports.ProductCacheTTL, logger)
	fetcher := services.NewTransactionFetcher(api, logger)
	overall := services.NewCategoryReportService(api, logger)
	reports := services.NewReportService(cache, fetcher, overall, cfg.Reports, logger)
	sales := services.NewSalesService(api, logger)
	menu := services.NewMenuService(api, logger)

	loc := cfg.Reports.Timezone

	healthHandler := handlers.NewHealthHandler()
	salesHandler := handlers.NewSalesHandler(sales, reports, loc)
	barHandler := handlers.NewBarHandler(reports, loc)
	menuHandler := handlers.NewMenuHandler(menu)
	debugHandler := handlers.NewDebugHandler(reports, loc)

	e.GET("/api/health", healthHandler.HealthCheck)
	e.GET("/api/waiters-sales", salesHandler.WaitersSales)
	e.GET("/api/waiters-categories", salesHandler.WaitersCategories)
	e.GET("/api/bar-sales", barHandler.BarSales)
	e.GET("/api/menu-categories", menuHandler.Categories)
	e.GET("/api/debug/tx", debugHandler.Transactions)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
