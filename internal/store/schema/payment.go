package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the state of a subscription payment in the
// collaborator-owned financial ledger
type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment represents the payments table. It is written by the subscription
// billing collaborator; this engine only reads it to compute the monthly
// revenue pool.
type Payment struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// SubscriberID identifies the paying subscriber
	SubscriberID string `gorm:"column:subscriber_id;not null;type:text"`
	// AmountGhc is the gross payment amount
	AmountGhc decimal.Decimal `gorm:"column:amount_ghc;not null;type:numeric(20,8)"`
	// Status is the billing outcome; only succeeded payments feed the pool
	Status PaymentStatus `gorm:"column:status;not null;type:text;index:idx_payments_status_period,priority:1"`
	// PeriodStart is the start of the subscription period the payment covers;
	// a payment belongs to the pool of the month containing it
	PeriodStart time.Time `gorm:"column:period_start;not null;index:idx_payments_status_period,priority:2"`
	// CreatedAt is set by the billing collaborator
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// PayoutMethod represents the payout_methods table - the collaborator-owned
// registry of per-author payout destinations. Absence of a row means the
// author is skipped by the payout batch.
type PayoutMethod struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AuthorID identifies the author, one active method per author
	AuthorID string `gorm:"column:author_id;not null;type:text;uniqueIndex:uq_payout_methods_author"`
	// Channel is the transfer channel (bank or mobile_money)
	Channel string `gorm:"column:channel;not null;type:text"`
	// AccountName is the registered account holder name
	AccountName string `gorm:"column:account_name;not null;type:text"`
	// AccountNumber is the bank account or mobile-money wallet number
	AccountNumber string `gorm:"column:account_number;not null;type:text"`
	// ProviderCode is the bank or mobile network code used by the gateway
	ProviderCode string `gorm:"column:provider_code;not null;type:text"`
	// CreatedAt is set by the owning collaborator
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the PayoutMethod model
func (PayoutMethod) TableName() string {
	return "payout_methods"
}
