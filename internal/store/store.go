package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
	"github.com/Asamoah4284/PENNIT-sub001/internal/store/schema"
)

// CountedReadGroup is one (author, category) bucket of counted reads inside a
// settlement period
type CountedReadGroup struct {
	AuthorID string              `gorm:"column:author_id"`
	Category domain.WorkCategory `gorm:"column:category"`
	Reads    int64               `gorm:"column:reads"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetContentItem retrieves a content item by id, nil when absent
	GetContentItem(ctx context.Context, contentID int64) (*schema.ContentItem, error)
	// CreateContentItem creates a content item. Content CRUD is owned by an
	// external collaborator; this is the seeding surface it uses.
	CreateContentItem(ctx context.Context, item *schema.ContentItem) error

	// FindActiveViewEvent returns the most recent event for the content item
	// created at or after windowStart that matches the identity on either
	// signal (user id or IP), or nil when no window row exists
	FindActiveViewEvent(ctx context.Context, contentID int64, identity domain.Identity, windowStart time.Time) (*schema.ViewEvent, error)
	// CreateViewEventIfAbsent inserts the event or, when another request
	// already created the window row, returns the existing row. Returns the
	// authoritative row and whether this call created it. When created and
	// countView is set, the content item's view counter is incremented in
	// the same transaction.
	CreateViewEventIfAbsent(ctx context.Context, event *schema.ViewEvent, countView bool) (*schema.ViewEvent, bool, error)
	// MergeViewEventProgress merges progress and time-spent into the event
	// with a running maximum and returns the merged row
	MergeViewEventProgress(ctx context.Context, eventID int64, progressPercentage, timeSpentSeconds int) (*schema.ViewEvent, error)
	// CountViewEventAsRead atomically max-merges progress, flips
	// counted_as_read and increments the content item's read counter, all as
	// one unit. Returns true when this call won the false-to-true transition;
	// false when the event was already counted.
	CountViewEventAsRead(ctx context.Context, eventID, contentID int64, progressPercentage, timeSpentSeconds int) (bool, error)

	// AggregateCountedReads groups counted reads created in [from, to) by
	// author and category
	AggregateCountedReads(ctx context.Context, from, to time.Time) ([]CountedReadGroup, error)
	// SumSucceededPayments sums succeeded ledger payments whose period start
	// falls in [from, to)
	SumSucceededPayments(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// UpsertEarningsRecords writes one record per author keyed on
	// (author_id, month). Existing rows are overwritten only while their
	// status is still calculated; paid rows are left untouched. Returns the
	// number of rows written.
	UpsertEarningsRecords(ctx context.Context, records []*schema.EarningsRecord) (int64, error)
	// GetEarningsRecord retrieves one author's record for a month, nil when absent
	GetEarningsRecord(ctx context.Context, authorID string, month domain.Month) (*schema.EarningsRecord, error)
	// ListPayableEarnings lists calculated records with a positive amount for
	// the month
	ListPayableEarnings(ctx context.Context, month domain.Month) ([]*schema.EarningsRecord, error)
	// MarkEarningsPaid advances the record's status to paid
	MarkEarningsPaid(ctx context.Context, authorID string, month domain.Month) error

	// GetPayoutMethod retrieves the author's registered payout destination,
	// nil when the author has none
	GetPayoutMethod(ctx context.Context, authorID string) (*schema.PayoutMethod, error)
	// CreatePayoutMethod registers a payout destination (collaborator surface)
	CreatePayoutMethod(ctx context.Context, method *schema.PayoutMethod) error
	// ClaimPayout inserts the payout row or returns the existing one for
	// (author, month). Returns the authoritative row and whether this call
	// claimed it; an unclaimed row means the author was already handled.
	ClaimPayout(ctx context.Context, payout *schema.Payout) (*schema.Payout, bool, error)
	// MarkPayoutPaid records a successful transfer
	MarkPayoutPaid(ctx context.Context, payoutID int64, reference string, paidAt time.Time, providerResponse []byte) error
	// MarkPayoutFailed records a failed transfer attempt
	MarkPayoutFailed(ctx context.Context, payoutID int64, reason string, providerResponse []byte) error
	// GetPayout retrieves one author's payout row for a month, nil when absent
	GetPayout(ctx context.Context, authorID string, month domain.Month) (*schema.Payout, error)

	// CreatePayment appends a ledger payment (billing collaborator surface)
	CreatePayment(ctx context.Context, payment *schema.Payment) error
}
