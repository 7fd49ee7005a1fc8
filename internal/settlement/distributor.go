package settlement

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
	"github.com/Asamoah4284/PENNIT-sub001/internal/logger"
	"github.com/Asamoah4284/PENNIT-sub001/internal/store/schema"
)

// pointValueScale bounds the division precision so distributed amounts stay
// exact and auditable
const pointValueScale = 8

// AccrualSummary reports one monthly distribution run
type AccrualSummary struct {
	Month           domain.Month    `json:"month"`
	RunID           string          `json:"run_id"`
	GrossRevenueGhc decimal.Decimal `json:"gross_revenue_ghc"`
	PoolGhc         decimal.Decimal `json:"pool_ghc"`
	TotalPoints     int64           `json:"total_points"`
	PointValue      decimal.Decimal `json:"point_value"`
	AuthorsSettled  int64           `json:"authors_settled"`
	AuthorsSkipped  int64           `json:"authors_skipped"`
}

// RunMonthlyAccrual settles one calendar month: accrues points, computes the
// pool and upserts one earnings record per author. Deterministic over closed
// month data, so re-running before payout recomputes cleanly; records already
// paid are left untouched and reported as skipped.
func (s *Service) RunMonthlyAccrual(ctx context.Context, month domain.Month) (*AccrualSummary, error) {
	if !s.config.Enabled {
		return nil, domain.ErrMonetizationDisabled
	}
	if !month.Valid() {
		return nil, domain.ErrInvalidMonth
	}

	runID := s.newRunID()
	from, to, err := month.Bounds()
	if err != nil {
		return nil, err
	}

	points, totalPoints, err := s.accruePoints(ctx, from, to)
	if err != nil {
		return nil, err
	}

	gross, pool, err := s.computePool(ctx, from, to)
	if err != nil {
		return nil, err
	}

	pointValue := decimal.Zero
	if totalPoints > 0 {
		pointValue = pool.DivRound(decimal.NewFromInt(totalPoints), pointValueScale)
	}

	authors := make([]string, 0, len(points))
	for authorID := range points {
		authors = append(authors, authorID)
	}
	sort.Strings(authors)

	records := make([]*schema.EarningsRecord, 0, len(authors))
	now := s.clock.Now().UTC()
	for _, authorID := range authors {
		p := points[authorID]
		records = append(records, &schema.EarningsRecord{
			AuthorID:   authorID,
			Month:      month,
			Points:     p,
			PointValue: pointValue,
			AmountGhc:  pointValue.Mul(decimal.NewFromInt(p)),
			Status:     schema.EarningsStatusCalculated,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	settled, err := s.store.UpsertEarningsRecords(ctx, records)
	if err != nil {
		return nil, err
	}

	summary := &AccrualSummary{
		Month:           month,
		RunID:           runID,
		GrossRevenueGhc: gross,
		PoolGhc:         pool,
		TotalPoints:     totalPoints,
		PointValue:      pointValue,
		AuthorsSettled:  settled,
		AuthorsSkipped:  int64(len(records)) - settled,
	}

	logger.Info("monthly accrual settled",
		zap.String("run_id", runID),
		zap.String("month", month.String()),
		zap.String("pool_ghc", pool.String()),
		zap.Int64("total_points", totalPoints),
		zap.String("point_value", pointValue.String()),
		zap.Int64("authors_settled", summary.AuthorsSettled),
		zap.Int64("authors_skipped", summary.AuthorsSkipped),
	)
	if summary.AuthorsSkipped > 0 {
		logger.Warn("accrual skipped already-paid earnings records",
			zap.String("month", month.String()),
			zap.Int64("skipped", summary.AuthorsSkipped),
		)
	}

	return summary, nil
}
