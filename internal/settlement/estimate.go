package settlement

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
)

// Estimate is a live projection of one author's share of a month's pool,
// computed from data accumulated so far. Until the month is settled the
// numbers move with every counted read and pool payment.
type Estimate struct {
	AuthorID      string          `json:"author_id"`
	Month         domain.Month    `json:"month"`
	Points        int64           `json:"points"`
	TotalPoints   int64           `json:"total_points"`
	PointValue    decimal.Decimal `json:"point_value"`
	AmountGhc     decimal.Decimal `json:"amount_ghc"`
	PayoutPoolGhc decimal.Decimal `json:"payout_pool_ghc"`
}

// EstimateEarnings projects the author's earnings for the month from the
// points and pool accumulated so far
func (s *Service) EstimateEarnings(ctx context.Context, authorID string, month domain.Month) (*Estimate, error) {
	if !month.Valid() {
		return nil, domain.ErrInvalidMonth
	}

	from, to, err := month.Bounds()
	if err != nil {
		return nil, err
	}

	points, totalPoints, err := s.accruePoints(ctx, from, to)
	if err != nil {
		return nil, err
	}

	_, pool, err := s.computePool(ctx, from, to)
	if err != nil {
		return nil, err
	}

	pointValue := decimal.Zero
	if totalPoints > 0 {
		pointValue = pool.DivRound(decimal.NewFromInt(totalPoints), pointValueScale)
	}

	authorPoints := points[authorID]
	return &Estimate{
		AuthorID:      authorID,
		Month:         month,
		Points:        authorPoints,
		TotalPoints:   totalPoints,
		PointValue:    pointValue,
		AmountGhc:     pointValue.Mul(decimal.NewFromInt(authorPoints)),
		PayoutPoolGhc: pool,
	}, nil
}
