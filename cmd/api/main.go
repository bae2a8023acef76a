package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/auth"
	"github.com/BruksfildServices01/barbershop-api/internal/cache"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-api/internal/db"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/payments"
	"github.com/BruksfildServices01/barbershop-api/internal/routes"
)

const auditBuffer = 256

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env", "error", err)
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	var store cache.Client = cache.Noop{}
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, caching disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			defer rc.Close()
			store = rc
		}
	}

	providers := payments.NewRegistry()
	if cfg.MercadoPagoToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MercadoPagoToken)
		if err != nil {
			logger.Warn("mercado pago disabled", "error", err)
		} else {
			providers = payments.NewRegistry(mp)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(middleware.Collectors()...)
	registry.MustRegister(audit.Collectors()...)

	dispatcher := audit.NewDispatcher(audit.New(db), auditBuffer)
	limiter := middleware.NewRateLimiter(middleware.PerMinute(cfg.AuthRatePerMinute))

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Config:      cfg,
		Logger:      logger,
		Cache:       store,
		Tokens:      auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL),
		Audit:       dispatcher,
		Providers:   providers,
		Metrics:     registry,
		AuthLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	limiter.Stop()
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Warn("audit events not flushed", "error", err)
	}
}
