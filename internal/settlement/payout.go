package settlement

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
	"github.com/Asamoah4284/PENNIT-sub001/internal/logger"
	"github.com/Asamoah4284/PENNIT-sub001/internal/payment"
	"github.com/Asamoah4284/PENNIT-sub001/internal/store/schema"
)

// PayoutSummary reports one monthly payout run
type PayoutSummary struct {
	Month           domain.Month `json:"month"`
	RunID           string       `json:"run_id"`
	Eligible        int64        `json:"eligible"`
	Paid            int64        `json:"paid"`
	Failed          int64        `json:"failed"`
	SkippedNoMethod int64        `json:"skipped_no_method"`
	SkippedExisting int64        `json:"skipped_existing"`
}

// RunMonthlyPayouts executes payouts for the month's calculated earnings with
// a positive amount. Authors are processed independently on a worker pool: a
// failed transfer records a failed payout row and leaves the earnings record
// retryable, without aborting the rest of the batch. The (author, month)
// payout claim guarantees at most one attempt row per author per month across
// re-runs.
func (s *Service) RunMonthlyPayouts(ctx context.Context, month domain.Month) (*PayoutSummary, error) {
	if !s.config.Enabled {
		return nil, domain.ErrMonetizationDisabled
	}
	if !month.Valid() {
		return nil, domain.ErrInvalidMonth
	}

	runID := s.newRunID()

	records, err := s.store.ListPayableEarnings(ctx, month)
	if err != nil {
		// Aborting entirely is right only here: without the month's input
		// data there is nothing to isolate per author
		return nil, err
	}

	summary := &PayoutSummary{
		Month:    month,
		RunID:    runID,
		Eligible: int64(len(records)),
	}

	pool := pond.NewPool(s.config.PayoutWorkers, pond.WithContext(ctx))
	for _, record := range records {
		pool.Submit(func() {
			s.payAuthor(ctx, runID, record, summary)
		})
	}
	pool.StopAndWait()

	logger.Info("monthly payout run finished",
		zap.String("run_id", runID),
		zap.String("month", month.String()),
		zap.Int64("eligible", summary.Eligible),
		zap.Int64("paid", atomic.LoadInt64(&summary.Paid)),
		zap.Int64("failed", atomic.LoadInt64(&summary.Failed)),
		zap.Int64("skipped_no_method", atomic.LoadInt64(&summary.SkippedNoMethod)),
		zap.Int64("skipped_existing", atomic.LoadInt64(&summary.SkippedExisting)),
	)

	return summary, nil
}

// payAuthor runs one author's payout attempt end to end. Every failure path
// logs and returns; nothing propagates to the batch.
func (s *Service) payAuthor(ctx context.Context, runID string, record *schema.EarningsRecord, summary *PayoutSummary) {
	method, err := s.store.GetPayoutMethod(ctx, record.AuthorID)
	if err != nil {
		atomic.AddInt64(&summary.Failed, 1)
		logger.Error(err, zap.String("author_id", record.AuthorID), zap.String("run_id", runID))
		return
	}
	if method == nil {
		// No registered destination is an expected skip, not an error
		atomic.AddInt64(&summary.SkippedNoMethod, 1)
		logger.Debug("author has no payout method, skipping",
			zap.String("author_id", record.AuthorID),
			zap.String("month", record.Month.String()),
		)
		return
	}

	now := s.clock.Now().UTC()
	payout, claimed, err := s.store.ClaimPayout(ctx, &schema.Payout{
		AuthorID:  record.AuthorID,
		Month:     record.Month,
		AmountGhc: record.AmountGhc,
		Status:    schema.PayoutStatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		atomic.AddInt64(&summary.Failed, 1)
		logger.Error(err, zap.String("author_id", record.AuthorID), zap.String("run_id", runID))
		return
	}
	if !claimed {
		// A previous run already handled (or attempted) this author
		atomic.AddInt64(&summary.SkippedExisting, 1)
		logger.Debug("payout already exists, skipping",
			zap.String("author_id", record.AuthorID),
			zap.String("month", record.Month.String()),
			zap.String("status", string(payout.Status)),
		)
		return
	}

	result, err := s.gateway.Transfer(ctx, payment.TransferRequest{
		Reference:     fmt.Sprintf("%s-%s", runID, uuid.NewString()),
		AmountGhc:     record.AmountGhc,
		Channel:       method.Channel,
		AccountName:   method.AccountName,
		AccountNumber: method.AccountNumber,
		ProviderCode:  method.ProviderCode,
		Narration:     fmt.Sprintf("%s %s", s.config.PayoutNarration, record.Month),
	})
	if err != nil {
		s.recordFailure(ctx, payout.ID, record.AuthorID, err.Error(), nil)
		atomic.AddInt64(&summary.Failed, 1)
		return
	}
	if !result.Success {
		s.recordFailure(ctx, payout.ID, record.AuthorID, result.FailureReason, result.Raw)
		atomic.AddInt64(&summary.Failed, 1)
		return
	}

	if err := s.store.MarkPayoutPaid(ctx, payout.ID, result.Reference, s.clock.Now().UTC(), result.Raw); err != nil {
		atomic.AddInt64(&summary.Failed, 1)
		logger.Error(err, zap.String("author_id", record.AuthorID), zap.Int64("payout_id", payout.ID))
		return
	}
	if err := s.store.MarkEarningsPaid(ctx, record.AuthorID, record.Month); err != nil {
		atomic.AddInt64(&summary.Failed, 1)
		logger.Error(err, zap.String("author_id", record.AuthorID), zap.Int64("payout_id", payout.ID))
		return
	}

	atomic.AddInt64(&summary.Paid, 1)
	logger.Info("payout completed",
		zap.String("author_id", record.AuthorID),
		zap.String("month", record.Month.String()),
		zap.String("amount_ghc", record.AmountGhc.String()),
		zap.String("reference", result.Reference),
	)
}

// recordFailure marks the payout failed; the earnings record stays calculated
// so a future run can retry the author
func (s *Service) recordFailure(ctx context.Context, payoutID int64, authorID, reason string, raw []byte) {
	logger.Warn("payout attempt failed",
		zap.String("author_id", authorID),
		zap.Int64("payout_id", payoutID),
		zap.String("reason", reason),
	)
	if err := s.store.MarkPayoutFailed(ctx, payoutID, reason, raw); err != nil {
		logger.Error(err, zap.Int64("payout_id", payoutID))
	}
}
