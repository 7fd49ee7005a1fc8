package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ViewResponse reports the outcome of a view event
type ViewResponse struct {
	ViewCounted   bool  `json:"view_counted"`
	Duplicate     bool  `json:"duplicate"`
	CountedAsRead bool  `json:"counted_as_read"`
	ViewCount     int64 `json:"view_count"`
	ReadCount     int64 `json:"read_count"`
}

// ProgressResponse reports the outcome of a progress report
type ProgressResponse struct {
	ReadCounted   bool  `json:"read_counted"`
	ThresholdMet  bool  `json:"threshold_met"`
	Duplicate     bool  `json:"duplicate"`
	CountedAsRead bool  `json:"counted_as_read"`
	ViewCount     int64 `json:"view_count"`
	ReadCount     int64 `json:"read_count"`
}

// ContentStatsResponse is a content item's counter snapshot
type ContentStatsResponse struct {
	ContentID int64  `json:"content_id"`
	AuthorID  string `json:"author_id"`
	Kind      string `json:"kind"`
	Category  string `json:"category,omitempty"`
	ViewCount int64  `json:"view_count"`
	ReadCount int64  `json:"read_count"`
}

// EarningsResponse is one author's settled earnings for a month
type EarningsResponse struct {
	AuthorID   string          `json:"author_id"`
	Month      string          `json:"month"`
	Points     int64           `json:"points"`
	PointValue decimal.Decimal `json:"point_value"`
	AmountGhc  decimal.Decimal `json:"amount_ghc"`
	Status     string          `json:"status"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
