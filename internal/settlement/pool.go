package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// computePool derives the distributable pool for the period: gross succeeded
// subscription revenue minus the platform cost. A fixed cost takes precedence
// over the percentage policy; the pool never goes negative.
func (s *Service) computePool(ctx context.Context, from, to time.Time) (gross, pool decimal.Decimal, err error) {
	gross, err = s.store.SumSucceededPayments(ctx, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to compute revenue pool: %w", err)
	}

	switch {
	case s.config.PlatformCostFixedGhc != nil:
		pool = gross.Sub(*s.config.PlatformCostFixedGhc)
	case s.config.PlatformCostPercent.IsPositive():
		pool = gross.Sub(gross.Mul(s.config.PlatformCostPercent).Div(oneHundred))
	default:
		pool = gross
	}

	if pool.IsNegative() {
		pool = decimal.Zero
	}
	return gross, pool, nil
}

// ComputePool returns the month's gross revenue and distributable pool
func (s *Service) ComputePool(ctx context.Context, month domain.Month) (gross, pool decimal.Decimal, err error) {
	from, to, err := month.Bounds()
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return s.computePool(ctx, from, to)
}
