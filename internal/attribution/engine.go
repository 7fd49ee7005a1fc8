package attribution

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Asamoah4284/PENNIT-sub001/internal/adapter"
	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
	"github.com/Asamoah4284/PENNIT-sub001/internal/logger"
	"github.com/Asamoah4284/PENNIT-sub001/internal/store"
	"github.com/Asamoah4284/PENNIT-sub001/internal/store/schema"
)

// Counters is a read-only snapshot of a content item's monotonic counters
type Counters struct {
	ViewCount int64 `json:"view_count"`
	ReadCount int64 `json:"read_count"`
}

// ViewResult is the outcome of a RecordView call
type ViewResult struct {
	// ViewCounted reports whether this call incremented the view counter
	ViewCounted bool
	// Duplicate reports whether an active window row already existed
	Duplicate bool
	// EventID is the authoritative window row for this (content, viewer)
	EventID int64
	// CountedAsRead mirrors the window row's read flag
	CountedAsRead bool
	// Counters is the content item's state after the call
	Counters Counters
}

// ProgressResult is the outcome of a RecordProgress call
type ProgressResult struct {
	// ReadCounted reports whether this call incremented the read counter
	ReadCounted bool
	// ThresholdMet reports whether the merged report qualifies as a read
	ThresholdMet bool
	// Duplicate reports whether the window's read was already counted before
	// this call
	Duplicate bool
	// CountedAsRead mirrors the window row's read flag after the call
	CountedAsRead bool
	// Counters is the content item's state after the call
	Counters Counters
}

// Engine decides, per incoming view or progress report, whether the content
// item's counters move. All shared mutable state (the window row and the
// counters) lives in the store and is only ever touched through its atomic
// primitives, so concurrent reports for the same viewer cannot double count.
type Engine struct {
	store store.Store
	clock adapter.Clock
}

// NewEngine creates a new attribution engine
func NewEngine(st store.Store, clock adapter.Clock) *Engine {
	return &Engine{store: st, clock: clock}
}

// RecordView counts a view for (contentID, identity) unless an active window
// row already exists. The window lookup matches the identity on either signal
// so a viewer who authenticates mid-window is still recognized.
func (e *Engine) RecordView(ctx context.Context, contentID int64, identity domain.Identity) (*ViewResult, error) {
	if !identity.Resolvable() {
		return nil, domain.ErrIdentityUnresolvable
	}

	item, err := e.store.GetContentItem(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrContentNotFound
	}

	now := e.clock.Now().UTC()
	windowStart := now.Add(-domain.ViewWindow)

	existing, err := e.store.FindActiveViewEvent(ctx, contentID, identity, windowStart)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &ViewResult{
			ViewCounted:   false,
			Duplicate:     true,
			EventID:       existing.ID,
			CountedAsRead: existing.CountedAsRead,
			Counters:      Counters{ViewCount: item.ViewCount, ReadCount: item.ReadCount},
		}, nil
	}

	event, created, err := e.store.CreateViewEventIfAbsent(ctx, e.newWindowRow(contentID, identity, now), true)
	if err != nil {
		return nil, err
	}
	if !created {
		logger.Debug("lost first-insert race, returning existing window row",
			zap.Int64("content_id", contentID),
			zap.Int64("event_id", event.ID),
		)
	}

	counters, err := e.currentCounters(ctx, contentID)
	if err != nil {
		return nil, err
	}

	return &ViewResult{
		ViewCounted:   created,
		Duplicate:     !created,
		EventID:       event.ID,
		CountedAsRead: event.CountedAsRead,
		Counters:      counters,
	}, nil
}

// RecordProgress merges a progress report into the viewer's active window row
// and counts a read when the merged report crosses both thresholds. The merge,
// the counted-as-read transition and the counter increment apply as one atomic
// store operation.
func (e *Engine) RecordProgress(ctx context.Context, contentID int64, identity domain.Identity, progressPercentage, timeSpentSeconds int) (*ProgressResult, error) {
	if progressPercentage < 0 || progressPercentage > 100 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidProgress, progressPercentage)
	}
	if timeSpentSeconds < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidTimeSpent, timeSpentSeconds)
	}
	if !identity.Resolvable() {
		return nil, domain.ErrIdentityUnresolvable
	}

	item, err := e.store.GetContentItem(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrContentNotFound
	}

	now := e.clock.Now().UTC()
	windowStart := now.Add(-domain.ViewWindow)

	event, err := e.store.FindActiveViewEvent(ctx, contentID, identity, windowStart)
	if err != nil {
		return nil, err
	}

	// Already counted this window: nothing to merge, nothing to increment
	if event != nil && event.CountedAsRead {
		return &ProgressResult{
			ReadCounted:   false,
			ThresholdMet:  true,
			Duplicate:     true,
			CountedAsRead: true,
			Counters:      Counters{ViewCount: item.ViewCount, ReadCount: item.ReadCount},
		}, nil
	}

	// A report can arrive before any explicit view call; upsert the window
	// row rather than failing. The view counter stays untouched here.
	if event == nil {
		event, _, err = e.store.CreateViewEventIfAbsent(ctx, e.newWindowRow(contentID, identity, now), false)
		if err != nil {
			return nil, err
		}
	}

	thresholdMet := progressPercentage >= domain.ReadProgressThreshold &&
		timeSpentSeconds >= domain.ReadTimeThresholdSeconds

	if !thresholdMet {
		merged, err := e.store.MergeViewEventProgress(ctx, event.ID, progressPercentage, timeSpentSeconds)
		if err != nil {
			return nil, err
		}
		return &ProgressResult{
			ReadCounted:   false,
			ThresholdMet:  false,
			CountedAsRead: merged.CountedAsRead,
			Counters:      Counters{ViewCount: item.ViewCount, ReadCount: item.ReadCount},
		}, nil
	}

	counted, err := e.store.CountViewEventAsRead(ctx, event.ID, contentID, progressPercentage, timeSpentSeconds)
	if err != nil {
		return nil, err
	}

	counters, err := e.currentCounters(ctx, contentID)
	if err != nil {
		return nil, err
	}

	return &ProgressResult{
		ReadCounted:   counted,
		ThresholdMet:  true,
		Duplicate:     !counted,
		CountedAsRead: true,
		Counters:      counters,
	}, nil
}

// newWindowRow builds a fresh window anchor for (contentID, identity) at now
func (e *Engine) newWindowRow(contentID int64, identity domain.Identity, now time.Time) *schema.ViewEvent {
	return &schema.ViewEvent{
		ContentID:    contentID,
		ViewerUserID: identity.UserID,
		ViewerIP:     identity.IPAddress,
		ViewerKey:    identity.Key(),
		BucketDate:   now.Truncate(24 * time.Hour),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// currentCounters reloads the content item's counters after a mutation
func (e *Engine) currentCounters(ctx context.Context, contentID int64) (Counters, error) {
	item, err := e.store.GetContentItem(ctx, contentID)
	if err != nil {
		return Counters{}, err
	}
	if item == nil {
		return Counters{}, domain.ErrContentNotFound
	}
	return Counters{ViewCount: item.ViewCount, ReadCount: item.ReadCount}, nil
}
