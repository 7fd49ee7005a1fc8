package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
)

// PayoutStatus represents the lifecycle state of a payout attempt
type PayoutStatus string

const (
	PayoutStatusPending    PayoutStatus = "pending"
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusPaid       PayoutStatus = "paid"
	PayoutStatusFailed     PayoutStatus = "failed"
)

// Payout represents the payouts table - at most one money-movement attempt per
// (author, month). The row is created before the external transfer is invoked
// so a re-run of the batch sees it and skips the author.
type Payout struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AuthorID identifies the author being paid
	AuthorID string `gorm:"column:author_id;not null;type:text;uniqueIndex:uq_payouts_author_month,priority:1"`
	// Month is the settled month this payout covers
	Month domain.Month `gorm:"column:month;not null;type:text;uniqueIndex:uq_payouts_author_month,priority:2"`
	// AmountGhc is the amount handed to the payment collaborator
	AmountGhc decimal.Decimal `gorm:"column:amount_ghc;not null;type:numeric(20,8)"`
	// Status is pending, processing, paid or failed
	Status PayoutStatus `gorm:"column:status;not null;type:text;default:'pending'"`
	// Reference is the provider's transfer reference, set on success
	Reference *string `gorm:"column:reference;type:text"`
	// FailureReason records why the attempt failed
	FailureReason *string `gorm:"column:failure_reason;type:text"`
	// ProviderResponse keeps the raw collaborator response for auditing
	ProviderResponse datatypes.JSON `gorm:"column:provider_response"`
	// PaidAt is stamped when the transfer succeeds
	PaidAt *time.Time `gorm:"column:paid_at"`
	// CreatedAt is when the attempt row was claimed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt records the latest status transition
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Payout model
func (Payout) TableName() string {
	return "payouts"
}
