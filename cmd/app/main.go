package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-list-api/internal/config"
	"github.com/BuzzLyutic/task-list-api/internal/handler"
	"github.com/BuzzLyutic/task-list-api/internal/repo"
	"github.com/BuzzLyutic/task-list-api/internal/server"
	"github.com/BuzzLyutic/task-list-api/internal/service"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("Invalid configuration", zap.Error(err))
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	pool, err := repo.NewPool(ctx, cfg.DSN(), repo.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		cancel()
		logger.Fatal("Failed to connect to the database", zap.Error(err))
	}
	defer pool.Close()

	if err := repo.EnsureSchema(ctx, pool); err != nil {
		cancel()
		logger.Fatal("Database initialization failed", zap.Error(err))
	}
	cancel()
	logger.Info("Database initialized",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
		zap.Int32("max_conns", cfg.DBMaxConns),
	)

	taskService := service.NewTaskService(repo.NewTaskRepo(pool))
	taskHandler := handler.NewTaskHandler(taskService, logger)

	srv := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.NewRouter(taskHandler, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func newLogger(cfg config.Config) *zap.Logger {
	build := zap.NewProduction
	if cfg.IsDevelopment() {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		return zap.NewExample()
	}
	return logger
}
