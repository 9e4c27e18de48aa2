package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/billing-tracker/internal/audit"
	"github.com/BruksfildServices01/billing-tracker/internal/cache"
	"github.com/BruksfildServices01/billing-tracker/internal/config"
	dbpkg "github.com/BruksfildServices01/billing-tracker/internal/db"
	"github.com/BruksfildServices01/billing-tracker/internal/logger"
	"github.com/BruksfildServices01/billing-tracker/internal/routes"
	"github.com/BruksfildServices01/billing-tracker/internal/timezone"
	"github.com/BruksfildServices01/billing-tracker/internal/validators"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zl.Sync() }()

	decimal.MarshalJSONWithoutQuotes = true

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validators.Register(); err != nil {
		zl.Fatal("failed to register validators", zap.Error(err))
	}

	db, err := dbpkg.NewDB(cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect database", zap.Error(err))
	}

	caps := dbpkg.FullCapabilities()
	if !cfg.DBAutoMigrate {
		caps = dbpkg.DetectCapabilities(db)
	}
	if !caps.TimeEntrySplitDuration {
		zl.Warn("time_entries lacks entry_hour/entry_minute; split durations will not be stored")
	}

	summaryCache := cache.New(context.Background(), cfg, zl)
	auditDispatcher := audit.NewDispatcher(audit.New(db), zl)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Dependencies{
		DB:           db,
		Config:       cfg,
		Logger:       zl,
		Cache:        summaryCache,
		Capabilities: caps,
		Audit:        auditDispatcher,
		Now:          timezone.Clock(cfg.Timezone),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("server shutdown failed", zap.Error(err))
	}
	if err := auditDispatcher.Close(ctx); err != nil {
		zl.Warn("audit queue not drained", zap.Error(err))
	}
	if err := summaryCache.Close(); err != nil {
		zl.Warn("cache close failed", zap.Error(err))
	}
	if err := dbpkg.Close(db); err != nil {
		zl.Warn("database close failed", zap.Error(err))
	}
}
