package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/noah-isme/school-records/api/swagger"
	"github.com/noah-isme/school-records/internal/repository"
	"github.com/noah-isme/school-records/internal/server"
	"github.com/noah-isme/school-records/internal/service"
	"github.com/noah-isme/school-records/pkg/config"
	"github.com/noah-isme/school-records/pkg/database"
	"github.com/noah-isme/school-records/pkg/logger"
)

// @title School Records
// @version 1.0.0
// @description Student, instructor, faculty and course records managed through HTML forms.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewSQLite(cfg.Database)
	if err != nil {
		logr.Fatal("failed to open database", zap.String("path", cfg.Database.Path), zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	if err := repository.EnsureSchema(ctx, db); err != nil {
		logr.Fatal("failed to create schema", zap.Error(err))
	}

	if cfg.Database.Seed {
		if _, err := server.NewSeeder(db, logr).Seed(ctx); err != nil {
			logr.Fatal("failed to seed database", zap.Error(err))
		}
	}

	router, err := server.NewRouter(server.Options{
		DB:      db,
		Logger:  logr,
		Metrics: service.NewMetricsService(),
		Docs:    cfg.Docs.Enabled,
	})
	if err != nil {
		logr.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "db", cfg.Database.Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Errorw("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
