// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arcadiareads/bookstore-backend/internal/config"
	"github.com/arcadiareads/bookstore-backend/internal/infrastructure/database/postgres"
	"github.com/arcadiareads/bookstore-backend/internal/infrastructure/database/redis"
	"github.com/arcadiareads/bookstore-backend/internal/interfaces/http"
	"github.com/arcadiareads/bookstore-backend/internal/pkg/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logrus.WithFields(logrus.Fields{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting application")

	db, err := postgres.NewConnection(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	if err := db.Health(); err != nil {
		logrus.WithError(err).Fatal("Database health check failed")
	}

	if err := db.Migrate(); err != nil {
		logrus.WithError(err).Fatal("Database migration failed")
	}

	// Seed initial data in development
	if cfg.IsDevelopment() {
		if err := db.Seed(auth.NewPasswordManager(cfg)); err != nil {
			logrus.WithError(err).Warn("Data seeding failed")
		}
	}

	server := http.NewServer(cfg, db, redisClient)

	go func() {
		if err := server.Start(); err != nil {
			logrus.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logrus.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logrus.Info("Server shutdown completed")
}
