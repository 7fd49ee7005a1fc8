package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Asamoah4284/PENNIT-sub001/internal/adapter"
	"github.com/Asamoah4284/PENNIT-sub001/internal/api/middleware"
	"github.com/Asamoah4284/PENNIT-sub001/internal/api/server"
	"github.com/Asamoah4284/PENNIT-sub001/internal/attribution"
	"github.com/Asamoah4284/PENNIT-sub001/internal/config"
	"github.com/Asamoah4284/PENNIT-sub001/internal/logger"
	"github.com/Asamoah4284/PENNIT-sub001/internal/payment"
	"github.com/Asamoah4284/PENNIT-sub001/internal/settlement"
	"github.com/Asamoah4284/PENNIT-sub001/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting PENNIT attribution API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store and services
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	engine := attribution.NewEngine(dataStore, clock)

	settleCfg, err := settlementConfig(cfg.Settlement)
	if err != nil {
		logger.Fatal("Invalid settlement config", zap.Error(err))
	}
	gateway := payment.NewHTTPGateway(payment.Config{
		BaseURL:   cfg.Payment.BaseURL,
		SecretKey: cfg.Payment.SecretKey,
		Timeout:   cfg.Payment.Timeout,
	})
	settle := settlement.NewService(settleCfg, dataStore, gateway, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTSecret: cfg.Auth.JWTSecret,
			APIKeys:   cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, engine, settle)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error(err, zap.String("component", "server"))
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.Info("Shutting down server...")

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}

// settlementConfig converts the loaded configuration into the settlement
// service's runtime config
func settlementConfig(cfg config.SettlementConfig) (settlement.Config, error) {
	fixed, err := cfg.CostFixed()
	if err != nil {
		return settlement.Config{}, err
	}
	percent, err := cfg.CostPercent()
	if err != nil {
		return settlement.Config{}, err
	}
	return settlement.Config{
		Enabled:              cfg.Enabled,
		Weights:              cfg.Weights.PointWeights(),
		PlatformCostFixedGhc: fixed,
		PlatformCostPercent:  percent,
		PayoutWorkers:        cfg.PayoutWorkers,
		PayoutNarration:      cfg.PayoutNarration,
	}, nil
}
