package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
)

// EarningsStatus represents the lifecycle state of an earnings record
type EarningsStatus string

const (
	// EarningsStatusCalculated marks a record produced by the monthly
	// distribution run; it may be recomputed until a payout succeeds
	EarningsStatusCalculated EarningsStatus = "calculated"
	// EarningsStatusPaid marks a record whose payout succeeded; the monthly
	// run refuses to overwrite it afterwards
	EarningsStatusPaid EarningsStatus = "paid"
)

// EarningsRecord represents the earnings_records table - one author's settled
// share of one month's payout pool, uniquely keyed by (author_id, month)
type EarningsRecord struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AuthorID identifies the author
	AuthorID string `gorm:"column:author_id;not null;type:text;uniqueIndex:uq_earnings_author_month,priority:1"`
	// Month is the settled calendar month in YYYY-MM form
	Month domain.Month `gorm:"column:month;not null;type:text;uniqueIndex:uq_earnings_author_month,priority:2"`
	// Points is the author's category-weighted counted-read total for the month
	Points int64 `gorm:"column:points;not null"`
	// PointValue is pool / total points across all authors (0 when no points)
	PointValue decimal.Decimal `gorm:"column:point_value;not null;type:numeric(20,8)"`
	// AmountGhc is points * point value
	AmountGhc decimal.Decimal `gorm:"column:amount_ghc;not null;type:numeric(20,8)"`
	// Status is calculated or paid
	Status EarningsStatus `gorm:"column:status;not null;type:text;default:'calculated'"`
	// CreatedAt is the first settlement time for this (author, month)
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt records the latest recalculation or payout transition
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the EarningsRecord model
func (EarningsRecord) TableName() string {
	return "earnings_records"
}
