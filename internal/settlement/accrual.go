package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
)

// accruePoints maps the period's counted reads to category-weighted point
// totals per author. Derivable purely from the flagged counted-read rows; the
// raw progress history never matters here.
func (s *Service) accruePoints(ctx context.Context, from, to time.Time) (map[string]int64, int64, error) {
	groups, err := s.store.AggregateCountedReads(ctx, from, to)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to accrue points: %w", err)
	}

	points := make(map[string]int64, len(groups))
	var total int64
	for _, g := range groups {
		p := g.Reads * s.config.Weights.Weight(g.Category)
		points[g.AuthorID] += p
		total += p
	}
	return points, total, nil
}

// AccruePoints returns the month's per-author point totals
func (s *Service) AccruePoints(ctx context.Context, month domain.Month) (map[string]int64, int64, error) {
	from, to, err := month.Bounds()
	if err != nil {
		return nil, 0, err
	}
	return s.accruePoints(ctx, from, to)
}
