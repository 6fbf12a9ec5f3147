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

	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/pickup/config"
	_ "github.com/DhavalSuthar-24/pickup/docs"
	"github.com/DhavalSuthar-24/pickup/internal/group"
	"github.com/DhavalSuthar-24/pickup/internal/player"
	"github.com/DhavalSuthar-24/pickup/internal/storage"
	"github.com/DhavalSuthar-24/pickup/internal/team"
	"github.com/DhavalSuthar-24/pickup/pkg/logger"
	"github.com/DhavalSuthar-24/pickup/routes"
)

// @title Pickup REST API
// @version 1.0
// @description Groups, players and team selection for pickup games.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	zl, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	for _, w := range cfg.Warnings() {
		zl.Warn(w)
	}

	if err := storage.Migrate(config.DB); err != nil {
		zl.Fatal("AutoMigrate failed", zap.Error(err))
	}
	zl.Info("AutoMigrate successful", zap.String("driver", cfg.DB.Driver))

	selector, err := team.NewSelector(cfg.Teams)
	if err != nil {
		zl.Fatal("invalid team configuration", zap.Error(err))
	}

	groups := group.NewGroupRepository(storage.NewKVStore(config.DB))
	r := routes.SetupRoutes(routes.Dependencies{
		Config:   cfg,
		Log:      zl,
		Groups:   groups,
		Selector: selector,
		Players:  player.NewService(groups, zl),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	go func() {
		zl.Info("Starting server", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Warn("Server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := config.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zl.Info("Server exited")
}
