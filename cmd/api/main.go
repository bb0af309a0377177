package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bankapp/internal/config"
	"bankapp/internal/database"
	"bankapp/internal/logger"
	"bankapp/internal/notify"
	"bankapp/internal/server"
)

const shutdownTimeout = 10 * time.Second

// @title           BankApp API
// @version         1.0
// @description     BankApp is a personal banking backend: savings goals, transaction limits, onboarding, Strava fitness data and market prices.

// @host      localhost:3001
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	dbManager, err := database.NewManager(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	publisher, err := newPublisher(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warnw("failed to close notification publisher", "error", err)
		}
	}()

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	svc, err := server.NewServices(cfg, dbManager.DB(), publisher, httpClient)
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}
	router := server.NewRouter(cfg, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting BankApp backend server on port %s", cfg.Server.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Infow("Shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("Server exited")
	return nil
}

// newPublisher connects to RabbitMQ when AMQP_URL is set and otherwise
// writes notifications to the log.
func newPublisher(cfg *config.Config) (notify.Publisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Get().Info("AMQP_URL not set, notifications will be logged only")
		return notify.NewLogPublisher(logger.Get()), nil
	}

	publisher, err := notify.NewRabbitMQPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to notification broker: %w", err)
	}
	return publisher, nil
}
