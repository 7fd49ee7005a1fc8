package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Asamoah4284/PENNIT-sub001/internal/adapter"
	"github.com/Asamoah4284/PENNIT-sub001/internal/config"
	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
	"github.com/Asamoah4284/PENNIT-sub001/internal/logger"
	"github.com/Asamoah4284/PENNIT-sub001/internal/payment"
	"github.com/Asamoah4284/PENNIT-sub001/internal/settlement"
	"github.com/Asamoah4284/PENNIT-sub001/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	monthFlag  = flag.String("month", "", "Month to settle in YYYY-MM form (default: previous month)")
	jobFlag    = flag.String("job", "accrual", "Job to run: accrual, payouts or all")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadBatchConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "settlement",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	month, err := resolveMonth(*monthFlag)
	if err != nil {
		logger.Fatal("Invalid month", zap.String("month", *monthFlag), zap.Error(err))
	}
	logger.Info("Starting settlement run",
		zap.String("month", string(month)),
		zap.String("job", *jobFlag),
	)

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)
	settleCfg, err := settlementConfig(cfg.Settlement)
	if err != nil {
		logger.Fatal("Invalid settlement config", zap.Error(err))
	}
	gateway := payment.NewHTTPGateway(payment.Config{
		BaseURL:   cfg.Payment.BaseURL,
		SecretKey: cfg.Payment.SecretKey,
		Timeout:   cfg.Payment.Timeout,
	})
	service := settlement.NewService(settleCfg, dataStore, gateway, adapter.NewClock())

	ctx := context.Background()

	switch *jobFlag {
	case "accrual":
		runAccrual(ctx, service, month)
	case "payouts":
		runPayouts(ctx, service, month)
	case "all":
		runAccrual(ctx, service, month)
		runPayouts(ctx, service, month)
	default:
		logger.Fatal("Unknown job", zap.String("job", *jobFlag))
	}

	logger.Info("Settlement run finished", zap.String("month", string(month)))
}

func runAccrual(ctx context.Context, service *settlement.Service, month domain.Month) {
	summary, err := service.RunMonthlyAccrual(ctx, month)
	if err != nil {
		logger.Fatal("Monthly accrual failed", zap.String("month", string(month)), zap.Error(err))
	}
	logger.Info("Monthly accrual finished",
		zap.String("run_id", summary.RunID),
		zap.String("gross_revenue_ghc", summary.GrossRevenueGhc.String()),
		zap.String("pool_ghc", summary.PoolGhc.String()),
		zap.Int64("total_points", summary.TotalPoints),
		zap.String("point_value", summary.PointValue.String()),
		zap.Int64("authors_settled", summary.AuthorsSettled),
		zap.Int64("authors_skipped", summary.AuthorsSkipped),
	)
}

func runPayouts(ctx context.Context, service *settlement.Service, month domain.Month) {
	summary, err := service.RunMonthlyPayouts(ctx, month)
	if err != nil {
		logger.Fatal("Monthly payout run failed", zap.String("month", string(month)), zap.Error(err))
	}
	logger.Info("Monthly payout run finished",
		zap.String("run_id", summary.RunID),
		zap.Int64("eligible", summary.Eligible),
		zap.Int64("paid", summary.Paid),
		zap.Int64("failed", summary.Failed),
		zap.Int64("skipped_no_method", summary.SkippedNoMethod),
		zap.Int64("skipped_existing", summary.SkippedExisting),
	)
}

// resolveMonth parses the month flag, defaulting to the previous calendar
// month (the latest closed month at the time the batch usually runs)
func resolveMonth(raw string) (domain.Month, error) {
	if raw != "" {
		return domain.ParseMonth(raw)
	}
	now := time.Now().UTC()
	return domain.MonthOf(now.AddDate(0, -1, -now.Day()+1)), nil
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
