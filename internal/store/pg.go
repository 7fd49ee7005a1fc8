package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
	"github.com/Asamoah4284/PENNIT-sub001/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetContentItem retrieves a content item by id
func (s *pgStore) GetContentItem(ctx context.Context, contentID int64) (*schema.ContentItem, error) {
	var item schema.ContentItem
	err := s.db.WithContext(ctx).Where("id = ?", contentID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content item: %w", err)
	}
	return &item, nil
}

// CreateContentItem creates a content item
func (s *pgStore) CreateContentItem(ctx context.Context, item *schema.ContentItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create content item: %w", err)
	}
	return nil
}

// FindActiveViewEvent looks up the newest window row for (content, identity).
// The identity matches on either signal: a viewer may be anonymous on first
// load and authenticated later (or vice versa), so requiring both signals to
// agree would re-count the same physical viewer.
func (s *pgStore) FindActiveViewEvent(ctx context.Context, contentID int64, identity domain.Identity, windowStart time.Time) (*schema.ViewEvent, error) {
	identityMatch := s.db.Where("viewer_ip = ?", identity.IPAddress)
	if identity.UserID != nil && *identity.UserID != "" {
		identityMatch = identityMatch.Or("viewer_user_id = ?", *identity.UserID)
	}

	var event schema.ViewEvent
	err := s.db.WithContext(ctx).
		Where("content_id = ? AND created_at >= ?", contentID, windowStart).
		Where(identityMatch).
		Order("created_at DESC").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active view event: %w", err)
	}
	return &event, nil
}

// CreateViewEventIfAbsent is the idempotent insert-or-fetch primitive for
// window rows. A concurrent first insert for the same (content, viewer key,
// bucket date) resolves through ON CONFLICT DO NOTHING: the loser re-reads
// and returns the winner's row as a duplicate instead of failing.
func (s *pgStore) CreateViewEventIfAbsent(ctx context.Context, event *schema.ViewEvent, countView bool) (*schema.ViewEvent, bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "content_id"}, {Name: "viewer_key"}, {Name: "bucket_date"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(event).Error; err != nil {
			return fmt.Errorf("failed to create view event: %w", err)
		}

		// ID 0 means the row already existed; fetch the winner
		if event.ID == 0 {
			if err := tx.
				Where("content_id = ? AND viewer_key = ? AND bucket_date = ?",
					event.ContentID, event.ViewerKey, event.BucketDate).
				First(event).Error; err != nil {
				return fmt.Errorf("failed to get existing view event: %w", err)
			}
			return nil
		}

		created = true
		if countView {
			if err := tx.Model(&schema.ContentItem{}).
				Where("id = ?", event.ContentID).
				Update("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
				return fmt.Errorf("failed to increment view count: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return event, created, nil
}

// MergeViewEventProgress applies the running-maximum merge. Progress and time
// reports are monotonic per session; GREATEST keeps an out-of-order smaller
// report from regressing the stored values.
func (s *pgStore) MergeViewEventProgress(ctx context.Context, eventID int64, progressPercentage, timeSpentSeconds int) (*schema.ViewEvent, error) {
	var event schema.ViewEvent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&schema.ViewEvent{}).
			Where("id = ?", eventID).
			Updates(map[string]interface{}{
				"progress_percentage": gorm.Expr("GREATEST(progress_percentage, ?)", progressPercentage),
				"time_spent_seconds":  gorm.Expr("GREATEST(time_spent_seconds, ?)", timeSpentSeconds),
				"updated_at":          gorm.Expr("now()"),
			}).Error; err != nil {
			return fmt.Errorf("failed to merge view event progress: %w", err)
		}
		if err := tx.Where("id = ?", eventID).First(&event).Error; err != nil {
			return fmt.Errorf("failed to reload view event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// CountViewEventAsRead performs the merge-and-flag transition and the read
// counter increment as one atomic unit. The counted_as_read guard in the WHERE
// clause serializes concurrent qualifying reports: exactly one caller sees a
// row affected and increments the counter.
func (s *pgStore) CountViewEventAsRead(ctx context.Context, eventID, contentID int64, progressPercentage, timeSpentSeconds int) (bool, error) {
	counted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.ViewEvent{}).
			Where("id = ? AND counted_as_read = ?", eventID, false).
			Updates(map[string]interface{}{
				"progress_percentage": gorm.Expr("GREATEST(progress_percentage, ?)", progressPercentage),
				"time_spent_seconds":  gorm.Expr("GREATEST(time_spent_seconds, ?)", timeSpentSeconds),
				"counted_as_read":     true,
				"updated_at":          gorm.Expr("now()"),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to count view event as read: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Already counted by a concurrent report
			return nil
		}

		counted = true
		if err := tx.Model(&schema.ContentItem{}).
			Where("id = ?", contentID).
			Update("read_count", gorm.Expr("read_count + ?", 1)).Error; err != nil {
			return fmt.Errorf("failed to increment read count: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return counted, nil
}

// AggregateCountedReads groups the month's counted reads by author and
// category. Only the flagged transition matters, so no raw progress history
// is re-scanned.
func (s *pgStore) AggregateCountedReads(ctx context.Context, from, to time.Time) ([]CountedReadGroup, error) {
	var groups []CountedReadGroup
	err := s.db.WithContext(ctx).
		Table("view_events").
		Select("content_items.author_id AS author_id, content_items.category AS category, COUNT(*) AS reads").
		Joins("JOIN content_items ON content_items.id = view_events.content_id").
		Where("view_events.counted_as_read = ? AND view_events.created_at >= ? AND view_events.created_at < ?", true, from, to).
		Group("content_items.author_id, content_items.category").
		Scan(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate counted reads: %w", err)
	}
	return groups, nil
}

// SumSucceededPayments computes the gross revenue in [from, to)
func (s *pgStore) SumSucceededPayments(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	err := s.db.WithContext(ctx).
		Table("payments").
		Select("COALESCE(SUM(amount_ghc), 0) AS total").
		Where("status = ? AND period_start >= ? AND period_start < ?", schema.PaymentStatusSucceeded, from, to).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum succeeded payments: %w", err)
	}
	return row.Total, nil
}

// UpsertEarningsRecords settles a month's earnings. The conditional DO UPDATE
// leaves paid rows alone so a re-run after payout cannot desynchronize the
// paid amount from a recomputed point value.
func (s *pgStore) UpsertEarningsRecords(ctx context.Context, records []*schema.EarningsRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "author_id"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"points":      gorm.Expr("excluded.points"),
			"point_value": gorm.Expr("excluded.point_value"),
			"amount_ghc":  gorm.Expr("excluded.amount_ghc"),
			"updated_at":  gorm.Expr("now()"),
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Table: "earnings_records", Name: "status"}, Value: string(schema.EarningsStatusCalculated)},
		}},
	}).Create(&records)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to upsert earnings records: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// GetEarningsRecord retrieves one author's record for a month
func (s *pgStore) GetEarningsRecord(ctx context.Context, authorID string, month domain.Month) (*schema.EarningsRecord, error) {
	var record schema.EarningsRecord
	err := s.db.WithContext(ctx).
		Where("author_id = ? AND month = ?", authorID, month).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get earnings record: %w", err)
	}
	return &record, nil
}

// ListPayableEarnings lists the month's calculated records with a positive amount
func (s *pgStore) ListPayableEarnings(ctx context.Context, month domain.Month) ([]*schema.EarningsRecord, error) {
	var records []*schema.EarningsRecord
	err := s.db.WithContext(ctx).
		Where("month = ? AND status = ? AND amount_ghc > 0", month, schema.EarningsStatusCalculated).
		Order("author_id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payable earnings: %w", err)
	}
	return records, nil
}

// MarkEarningsPaid advances an earnings record to paid
func (s *pgStore) MarkEarningsPaid(ctx context.Context, authorID string, month domain.Month) error {
	err := s.db.WithContext(ctx).Model(&schema.EarningsRecord{}).
		Where("author_id = ? AND month = ?", authorID, month).
		Updates(map[string]interface{}{
			"status":     schema.EarningsStatusPaid,
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark earnings paid: %w", err)
	}
	return nil
}

// GetPayoutMethod retrieves the author's registered payout destination
func (s *pgStore) GetPayoutMethod(ctx context.Context, authorID string) (*schema.PayoutMethod, error) {
	var method schema.PayoutMethod
	err := s.db.WithContext(ctx).Where("author_id = ?", authorID).First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payout method: %w", err)
	}
	return &method, nil
}

// CreatePayoutMethod registers a payout destination
func (s *pgStore) CreatePayoutMethod(ctx context.Context, method *schema.PayoutMethod) error {
	if err := s.db.WithContext(ctx).Create(method).Error; err != nil {
		return fmt.Errorf("failed to create payout method: %w", err)
	}
	return nil
}

// ClaimPayout is the insert-or-fetch primitive guarding against double pay:
// re-running the batch finds the existing (author, month) row and skips
func (s *pgStore) ClaimPayout(ctx context.Context, payout *schema.Payout) (*schema.Payout, bool, error) {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "author_id"}, {Name: "month"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(payout).Error; err != nil {
		return nil, false, fmt.Errorf("failed to claim payout: %w", err)
	}

	if payout.ID == 0 {
		if err := s.db.WithContext(ctx).
			Where("author_id = ? AND month = ?", payout.AuthorID, payout.Month).
			First(payout).Error; err != nil {
			return nil, false, fmt.Errorf("failed to get existing payout: %w", err)
		}
		return payout, false, nil
	}
	return payout, true, nil
}

// MarkPayoutPaid records a successful transfer
func (s *pgStore) MarkPayoutPaid(ctx context.Context, payoutID int64, reference string, paidAt time.Time, providerResponse []byte) error {
	err := s.db.WithContext(ctx).Model(&schema.Payout{}).
		Where("id = ?", payoutID).
		Updates(map[string]interface{}{
			"status":            schema.PayoutStatusPaid,
			"reference":         reference,
			"paid_at":           paidAt,
			"provider_response": providerResponse,
			"updated_at":        gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark payout paid: %w", err)
	}
	return nil
}

// MarkPayoutFailed records a failed transfer attempt
func (s *pgStore) MarkPayoutFailed(ctx context.Context, payoutID int64, reason string, providerResponse []byte) error {
	err := s.db.WithContext(ctx).Model(&schema.Payout{}).
		Where("id = ?", payoutID).
		Updates(map[string]interface{}{
			"status":            schema.PayoutStatusFailed,
			"failure_reason":    reason,
			"provider_response": providerResponse,
			"updated_at":        gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark payout failed: %w", err)
	}
	return nil
}

// GetPayout retrieves one author's payout for a month
func (s *pgStore) GetPayout(ctx context.Context, authorID string, month domain.Month) (*schema.Payout, error) {
	var payout schema.Payout
	err := s.db.WithContext(ctx).
		Where("author_id = ? AND month = ?", authorID, month).
		First(&payout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payout: %w", err)
	}
	return &payout, nil
}

// CreatePayment appends a ledger payment
func (s *pgStore) CreatePayment(ctx context.Context, payment *schema.Payment) error {
	if err := s.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}
