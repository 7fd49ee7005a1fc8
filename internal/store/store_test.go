package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
	"github.com/Asamoah4284/PENNIT-sub001/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testAuthorSeq int

// buildTestContentItem creates a content item for one test author
func buildTestContentItem(kind domain.ContentKind, category domain.WorkCategory) *schema.ContentItem {
	testAuthorSeq++
	return &schema.ContentItem{
		AuthorID: fmt.Sprintf("author-%d", testAuthorSeq),
		Kind:     kind,
		Category: category,
		Title:    "Test Content",
	}
}

// buildTestViewEvent creates a view event row for the given viewer key
func buildTestViewEvent(contentID int64, userID *string, ip string, now time.Time) *schema.ViewEvent {
	identity := domain.Identity{UserID: userID, IPAddress: ip}
	return &schema.ViewEvent{
		ContentID:    contentID,
		ViewerUserID: userID,
		ViewerIP:     ip,
		ViewerKey:    identity.Key(),
		BucketDate:   now.UTC().Truncate(24 * time.Hour),
	}
}

// buildTestEarningsRecord creates an earnings record for upsert tests
func buildTestEarningsRecord(authorID string, month domain.Month, points int64, pointValue string) *schema.EarningsRecord {
	pv := decimal.RequireFromString(pointValue)
	return &schema.EarningsRecord{
		AuthorID:   authorID,
		Month:      month,
		Points:     points,
		PointValue: pv,
		AmountGhc:  pv.Mul(decimal.NewFromInt(points)),
		Status:     schema.EarningsStatusCalculated,
	}
}

func strPtr(s string) *string {
	return &s
}

// =============================================================================
// Content Items
// =============================================================================

func testContentItems(t *testing.T, st Store) {
	ctx := context.Background()

	item := buildTestContentItem(domain.ContentKindWork, domain.CategoryNovel)
	require.NoError(t, st.CreateContentItem(ctx, item))
	require.NotZero(t, item.ID)

	got, err := st.GetContentItem(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, item.AuthorID, got.AuthorID)
	assert.Equal(t, domain.ContentKindWork, got.Kind)
	assert.Equal(t, domain.CategoryNovel, got.Category)
	assert.Zero(t, got.ViewCount)
	assert.Zero(t, got.ReadCount)

	missing, err := st.GetContentItem(ctx, item.ID+100000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// =============================================================================
// View Events
// =============================================================================

func testCreateViewEventIfAbsent(t *testing.T, st Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	item := buildTestContentItem(domain.ContentKindPost, "")
	require.NoError(t, st.CreateContentItem(ctx, item))

	event := buildTestViewEvent(item.ID, strPtr("viewer-1"), "203.0.113.9", now)
	created, isNew, err := st.CreateViewEventIfAbsent(ctx, event, true)
	require.NoError(t, err)
	assert.True(t, isNew)
	require.NotZero(t, created.ID)

	// Same viewer key and bucket date resolves to the existing row
	dup := buildTestViewEvent(item.ID, strPtr("viewer-1"), "198.51.100.4", now)
	existing, isNew, err := st.CreateViewEventIfAbsent(ctx, dup, true)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, existing.ID)

	// Only the first insert moved the counter
	got, err := st.GetContentItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	// countView=false inserts the row without moving the counter
	anon := buildTestViewEvent(item.ID, nil, "192.0.2.7", now)
	_, isNew, err = st.CreateViewEventIfAbsent(ctx, anon, false)
	require.NoError(t, err)
	assert.True(t, isNew)

	got, err = st.GetContentItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)
}

func testFindActiveViewEvent(t *testing.T, st Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	item := buildTestContentItem(domain.ContentKindPost, "")
	require.NoError(t, st.CreateContentItem(ctx, item))

	event := buildTestViewEvent(item.ID, strPtr("viewer-2"), "203.0.113.9", now)
	_, _, err := st.CreateViewEventIfAbsent(ctx, event, true)
	require.NoError(t, err)

	windowStart := now.Add(-24 * time.Hour)

	// Same user from a different IP still matches
	found, err := st.FindActiveViewEvent(ctx, item.ID,
		domain.Identity{UserID: strPtr("viewer-2"), IPAddress: "198.51.100.4"}, windowStart)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "user:viewer-2", found.ViewerKey)

	// Anonymous request from the recorded IP matches on the IP signal
	found, err = st.FindActiveViewEvent(ctx, item.ID,
		domain.Identity{IPAddress: "203.0.113.9"}, windowStart)
	require.NoError(t, err)
	require.NotNil(t, found)

	// Different viewer entirely does not match
	found, err = st.FindActiveViewEvent(ctx, item.ID,
		domain.Identity{UserID: strPtr("viewer-3"), IPAddress: "192.0.2.1"}, windowStart)
	require.NoError(t, err)
	assert.Nil(t, found)

	// A window starting after the event excludes it
	found, err = st.FindActiveViewEvent(ctx, item.ID,
		domain.Identity{UserID: strPtr("viewer-2"), IPAddress: "203.0.113.9"}, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Nil(t, found)
}

func testMergeViewEventProgress(t *testing.T, st Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	item := buildTestContentItem(domain.ContentKindPost, "")
	require.NoError(t, st.CreateContentItem(ctx, item))

	event := buildTestViewEvent(item.ID, strPtr("viewer-4"), "203.0.113.9", now)
	created, _, err := st.CreateViewEventIfAbsent(ctx, event, true)
	require.NoError(t, err)

	merged, err := st.MergeViewEventProgress(ctx, created.ID, 40, 20)
	require.NoError(t, err)
	assert.Equal(t, 40, merged.ProgressPercentage)
	assert.Equal(t, 20, merged.TimeSpentSeconds)

	// Lower reports never regress the maxima
	merged, err = st.MergeViewEventProgress(ctx, created.ID, 10, 25)
	require.NoError(t, err)
	assert.Equal(t, 40, merged.ProgressPercentage)
	assert.Equal(t, 25, merged.TimeSpentSeconds)
}

func testCountViewEventAsRead(t *testing.T, st Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	item := buildTestContentItem(domain.ContentKindWork, domain.CategoryPoem)
	require.NoError(t, st.CreateContentItem(ctx, item))

	event := buildTestViewEvent(item.ID, strPtr("viewer-5"), "203.0.113.9", now)
	created, _, err := st.CreateViewEventIfAbsent(ctx, event, true)
	require.NoError(t, err)

	counted, err := st.CountViewEventAsRead(ctx, created.ID, item.ID, 80, 45)
	require.NoError(t, err)
	assert.True(t, counted)

	got, err := st.GetContentItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ReadCount)

	// Second qualifying report within the window does not count again
	counted, err = st.CountViewEventAsRead(ctx, created.ID, item.ID, 100, 120)
	require.NoError(t, err)
	assert.False(t, counted)

	got, err = st.GetContentItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ReadCount)

	// The losing call left the counted row untouched
	merged, err := st.MergeViewEventProgress(ctx, created.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 80, merged.ProgressPercentage)
	assert.Equal(t, 45, merged.TimeSpentSeconds)
	assert.True(t, merged.CountedAsRead)
}

// =============================================================================
// Settlement Aggregates
// =============================================================================

func testAggregateCountedReads(t *testing.T, st Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	novel := buildTestContentItem(domain.ContentKindWork, domain.CategoryNovel)
	require.NoError(t, st.CreateContentItem(ctx, novel))
	poem := buildTestContentItem(domain.ContentKindWork, domain.CategoryPoem)
	require.NoError(t, st.CreateContentItem(ctx, poem))

	for i, item := range []*schema.ContentItem{novel, novel, poem} {
		viewer := fmt.Sprintf("reader-%d", i)
		event := buildTestViewEvent(item.ID, &viewer, "203.0.113.9", now)
		created, _, err := st.CreateViewEventIfAbsent(ctx, event, true)
		require.NoError(t, err)
		counted, err := st.CountViewEventAsRead(ctx, created.ID, item.ID, 90, 60)
		require.NoError(t, err)
		require.True(t, counted)
	}

	// A view that never qualified must not appear in the aggregate
	viewer := "reader-uncounted"
	event := buildTestViewEvent(novel.ID, &viewer, "198.51.100.4", now)
	_, _, err := st.CreateViewEventIfAbsent(ctx, event, true)
	require.NoError(t, err)

	groups, err := st.AggregateCountedReads(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)

	byAuthor := make(map[string]map[domain.WorkCategory]int64)
	for _, g := range groups {
		if byAuthor[g.AuthorID] == nil {
			byAuthor[g.AuthorID] = make(map[domain.WorkCategory]int64)
		}
		byAuthor[g.AuthorID][g.Category] = g.Reads
	}
	assert.Equal(t, int64(2), byAuthor[novel.AuthorID][domain.CategoryNovel])
	assert.Equal(t, int64(1), byAuthor[poem.AuthorID][domain.CategoryPoem])

	// Counted reads outside the period are excluded
	groups, err = st.AggregateCountedReads(ctx, now.Add(time.Hour), now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func testSumSucceededPayments(t *testing.T, st Store) {
	ctx := context.Background()
	periodStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	payments := []*schema.Payment{
		{SubscriberID: "sub-1", AmountGhc: decimal.RequireFromString("15.00"), Status: schema.PaymentStatusSucceeded, PeriodStart: periodStart},
		{SubscriberID: "sub-2", AmountGhc: decimal.RequireFromString("25.50"), Status: schema.PaymentStatusSucceeded, PeriodStart: periodStart},
		{SubscriberID: "sub-3", AmountGhc: decimal.RequireFromString("99.99"), Status: schema.PaymentStatusFailed, PeriodStart: periodStart},
		{SubscriberID: "sub-4", AmountGhc: decimal.RequireFromString("10.00"), Status: schema.PaymentStatusSucceeded, PeriodStart: periodStart.AddDate(0, 1, 0)},
	}
	for _, p := range payments {
		require.NoError(t, st.CreatePayment(ctx, p))
	}

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	sum, err := st.SumSucceededPayments(ctx, from, to)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("40.50")), "got %s", sum)

	// Empty period sums to zero
	sum, err = st.SumSucceededPayments(ctx, from.AddDate(-1, 0, 0), to.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

// =============================================================================
// Earnings Records
// =============================================================================

func testUpsertEarningsRecords(t *testing.T, st Store) {
	ctx := context.Background()
	month := domain.Month("2026-03")

	first := buildTestEarningsRecord("author-up-1", month, 10, "0.50")
	second := buildTestEarningsRecord("author-up-2", month, 30, "0.50")
	written, err := st.UpsertEarningsRecords(ctx, []*schema.EarningsRecord{first, second})
	require.NoError(t, err)
	assert.Equal(t, int64(2), written)

	// Re-running with new figures overwrites calculated rows
	recalc := buildTestEarningsRecord("author-up-1", month, 12, "0.40")
	_, err = st.UpsertEarningsRecords(ctx, []*schema.EarningsRecord{recalc})
	require.NoError(t, err)

	got, err := st.GetEarningsRecord(ctx, "author-up-1", month)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(12), got.Points)
	assert.True(t, got.PointValue.Equal(decimal.RequireFromString("0.40")))

	// Paid rows are never overwritten
	require.NoError(t, st.MarkEarningsPaid(ctx, "author-up-2", month))
	stale := buildTestEarningsRecord("author-up-2", month, 99, "9.99")
	_, err = st.UpsertEarningsRecords(ctx, []*schema.EarningsRecord{stale})
	require.NoError(t, err)

	got, err = st.GetEarningsRecord(ctx, "author-up-2", month)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, schema.EarningsStatusPaid, got.Status)
	assert.Equal(t, int64(30), got.Points)
}

func testListPayableEarnings(t *testing.T, st Store) {
	ctx := context.Background()
	month := domain.Month("2026-04")

	payable := buildTestEarningsRecord("author-pay-1", month, 10, "0.50")
	zero := buildTestEarningsRecord("author-pay-2", month, 0, "0")
	paid := buildTestEarningsRecord("author-pay-3", month, 5, "0.50")
	otherMonth := buildTestEarningsRecord("author-pay-4", "2026-05", 5, "0.50")
	_, err := st.UpsertEarningsRecords(ctx, []*schema.EarningsRecord{payable, zero, paid, otherMonth})
	require.NoError(t, err)
	require.NoError(t, st.MarkEarningsPaid(ctx, "author-pay-3", month))

	records, err := st.ListPayableEarnings(ctx, month)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "author-pay-1", records[0].AuthorID)
}

// =============================================================================
// Payouts
// =============================================================================

func testClaimPayout(t *testing.T, st Store) {
	ctx := context.Background()
	month := domain.Month("2026-03")

	payout := &schema.Payout{
		AuthorID:  "author-claim-1",
		Month:     month,
		AmountGhc: decimal.RequireFromString("5.00"),
		Status:    schema.PayoutStatusProcessing,
	}
	claimed, ok, err := st.ClaimPayout(ctx, payout)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotZero(t, claimed.ID)

	// A second claim for the same (author, month) loses and sees the first row
	rival := &schema.Payout{
		AuthorID:  "author-claim-1",
		Month:     month,
		AmountGhc: decimal.RequireFromString("5.00"),
		Status:    schema.PayoutStatusProcessing,
	}
	existing, ok, err := st.ClaimPayout(ctx, rival)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, claimed.ID, existing.ID)

	// The same author in another month claims independently
	other := &schema.Payout{
		AuthorID:  "author-claim-1",
		Month:     "2026-04",
		AmountGhc: decimal.RequireFromString("7.00"),
		Status:    schema.PayoutStatusProcessing,
	}
	_, ok, err = st.ClaimPayout(ctx, other)
	require.NoError(t, err)
	assert.True(t, ok)
}

func testPayoutTransitions(t *testing.T, st Store) {
	ctx := context.Background()
	month := domain.Month("2026-03")
	paidAt := time.Now().UTC().Truncate(time.Second)

	success := &schema.Payout{
		AuthorID:  "author-tr-1",
		Month:     month,
		AmountGhc: decimal.RequireFromString("5.00"),
		Status:    schema.PayoutStatusProcessing,
	}
	claimed, ok, err := st.ClaimPayout(ctx, success)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, st.MarkPayoutPaid(ctx, claimed.ID, "trf-123", paidAt, []byte(`{"status":"success"}`)))

	got, err := st.GetPayout(ctx, "author-tr-1", month)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, schema.PayoutStatusPaid, got.Status)
	require.NotNil(t, got.Reference)
	assert.Equal(t, "trf-123", *got.Reference)
	require.NotNil(t, got.PaidAt)

	failure := &schema.Payout{
		AuthorID:  "author-tr-2",
		Month:     month,
		AmountGhc: decimal.RequireFromString("3.00"),
		Status:    schema.PayoutStatusProcessing,
	}
	claimed, ok, err = st.ClaimPayout(ctx, failure)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, st.MarkPayoutFailed(ctx, claimed.ID, "insufficient balance", []byte(`{"status":"failed"}`)))

	got, err = st.GetPayout(ctx, "author-tr-2", month)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, schema.PayoutStatusFailed, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Equal(t, "insufficient balance", *got.FailureReason)
	assert.Nil(t, got.PaidAt)
}

func testPayoutMethods(t *testing.T, st Store) {
	ctx := context.Background()

	method := &schema.PayoutMethod{
		AuthorID:      "author-pm-1",
		Channel:       "mobile_money",
		AccountName:   "Ama Mensah",
		AccountNumber: "0244000000",
		ProviderCode:  "MTN",
	}
	require.NoError(t, st.CreatePayoutMethod(ctx, method))

	got, err := st.GetPayoutMethod(ctx, "author-pm-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "mobile_money", got.Channel)
	assert.Equal(t, "MTN", got.ProviderCode)

	missing, err := st.GetPayoutMethod(ctx, "author-pm-none")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// =============================================================================
// Suite Runner
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"ContentItems", testContentItems},
		{"CreateViewEventIfAbsent", testCreateViewEventIfAbsent},
		{"FindActiveViewEvent", testFindActiveViewEvent},
		{"MergeViewEventProgress", testMergeViewEventProgress},
		{"CountViewEventAsRead", testCountViewEventAsRead},
		{"AggregateCountedReads", testAggregateCountedReads},
		{"SumSucceededPayments", testSumSucceededPayments},
		{"UpsertEarningsRecords", testUpsertEarningsRecords},
		{"ListPayableEarnings", testListPayableEarnings},
		{"ClaimPayout", testClaimPayout},
		{"PayoutTransitions", testPayoutTransitions},
		{"PayoutMethods", testPayoutMethods},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
