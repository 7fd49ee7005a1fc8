package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Asamoah4284/PENNIT-sub001/internal/api/rest/dto"
	"github.com/Asamoah4284/PENNIT-sub001/internal/attribution"
	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
	"github.com/Asamoah4284/PENNIT-sub001/internal/identity"
	"github.com/Asamoah4284/PENNIT-sub001/internal/settlement"
	"github.com/Asamoah4284/PENNIT-sub001/internal/store"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// RecordView records a view event for a content item
	// POST /api/v1/contents/:id/view
	RecordView(c *gin.Context)

	// RecordProgress records a reading-progress report for a content item
	// POST /api/v1/contents/:id/progress
	RecordProgress(c *gin.Context)

	// GetContentStats retrieves a content item's counter snapshot
	// GET /api/v1/contents/:id/stats
	GetContentStats(c *gin.Context)

	// GetEstimatedEarnings projects an author's month-to-date earnings
	// GET /api/v1/authors/:id/earnings/estimate?month=<YYYY-MM>
	GetEstimatedEarnings(c *gin.Context)

	// GetEarnings retrieves an author's settled earnings record for a month
	// GET /api/v1/authors/:id/earnings?month=<YYYY-MM>
	GetEarnings(c *gin.Context)

	// RunAccrual triggers the monthly distribution run (requires API key)
	// POST /api/v1/settlements/:month/accrual
	RunAccrual(c *gin.Context)

	// RunPayouts triggers payout execution for a settled month (requires API key)
	// POST /api/v1/settlements/:month/payouts
	RunPayouts(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// timeNow is swapped out in tests
var timeNow = time.Now

// handler implements the Handler interface
type handler struct {
	engine     *attribution.Engine
	settlement *settlement.Service
	store      store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(engine *attribution.Engine, settle *settlement.Service, st store.Store) Handler {
	return &handler{
		engine:     engine,
		settlement: settle,
		store:      st,
	}
}

// RecordView records a view event for a content item
func (h *handler) RecordView(c *gin.Context) {
	contentID, ok := contentIDParam(c)
	if !ok {
		return
	}

	viewer, err := identity.FromRequest(c)
	if err != nil {
		respondBadRequest(c, "Viewer identity could not be resolved")
		return
	}

	result, err := h.engine.RecordView(c.Request.Context(), contentID, viewer)
	if err != nil {
		h.respondDomainError(c, err, "Failed to record view",
			zap.Int64("content_id", contentID))
		return
	}

	c.JSON(http.StatusOK, dto.ViewResponse{
		ViewCounted:   result.ViewCounted,
		Duplicate:     result.Duplicate,
		CountedAsRead: result.CountedAsRead,
		ViewCount:     result.Counters.ViewCount,
		ReadCount:     result.Counters.ReadCount,
	})
}

// RecordProgress records a reading-progress report for a content item
func (h *handler) RecordProgress(c *gin.Context) {
	contentID, ok := contentIDParam(c)
	if !ok {
		return
	}

	var req dto.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	viewer, err := identity.FromRequest(c)
	if err != nil {
		respondBadRequest(c, "Viewer identity could not be resolved")
		return
	}

	result, err := h.engine.RecordProgress(c.Request.Context(), contentID, viewer,
		*req.ProgressPercentage, *req.TimeSpentSeconds)
	if err != nil {
		h.respondDomainError(c, err, "Failed to record progress",
			zap.Int64("content_id", contentID))
		return
	}

	c.JSON(http.StatusOK, dto.ProgressResponse{
		ReadCounted:   result.ReadCounted,
		ThresholdMet:  result.ThresholdMet,
		Duplicate:     result.Duplicate,
		CountedAsRead: result.CountedAsRead,
		ViewCount:     result.Counters.ViewCount,
		ReadCount:     result.Counters.ReadCount,
	})
}

// GetContentStats retrieves a content item's counter snapshot
func (h *handler) GetContentStats(c *gin.Context) {
	contentID, ok := contentIDParam(c)
	if !ok {
		return
	}

	item, err := h.store.GetContentItem(c.Request.Context(), contentID)
	if err != nil {
		respondInternalError(c, err, "Failed to fetch content item",
			zap.Int64("content_id", contentID))
		return
	}
	if item == nil {
		respondNotFound(c, "Content item not found")
		return
	}

	c.JSON(http.StatusOK, dto.ContentStatsResponse{
		ContentID: item.ID,
		AuthorID:  item.AuthorID,
		Kind:      string(item.Kind),
		Category:  string(item.Category),
		ViewCount: item.ViewCount,
		ReadCount: item.ReadCount,
	})
}

// GetEstimatedEarnings projects an author's month-to-date earnings
func (h *handler) GetEstimatedEarnings(c *gin.Context) {
	authorID := c.Param("id")
	if authorID == "" {
		respondBadRequest(c, "Author ID is required")
		return
	}

	month, ok := monthQuery(c)
	if !ok {
		return
	}

	estimate, err := h.settlement.EstimateEarnings(c.Request.Context(), authorID, month)
	if err != nil {
		h.respondDomainError(c, err, "Failed to estimate earnings",
			zap.String("author_id", authorID),
			zap.String("month", string(month)))
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// GetEarnings retrieves an author's settled earnings record for a month
func (h *handler) GetEarnings(c *gin.Context) {
	authorID := c.Param("id")
	if authorID == "" {
		respondBadRequest(c, "Author ID is required")
		return
	}

	month, ok := monthQuery(c)
	if !ok {
		return
	}

	record, err := h.store.GetEarningsRecord(c.Request.Context(), authorID, month)
	if err != nil {
		respondInternalError(c, err, "Failed to fetch earnings record",
			zap.String("author_id", authorID),
			zap.String("month", string(month)))
		return
	}
	if record == nil {
		respondNotFound(c, "No earnings record for this author and month")
		return
	}

	c.JSON(http.StatusOK, dto.EarningsResponse{
		AuthorID:   record.AuthorID,
		Month:      string(record.Month),
		Points:     record.Points,
		PointValue: record.PointValue,
		AmountGhc:  record.AmountGhc,
		Status:     string(record.Status),
		UpdatedAt:  record.UpdatedAt,
	})
}

// RunAccrual triggers the monthly distribution run
func (h *handler) RunAccrual(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	summary, err := h.settlement.RunMonthlyAccrual(c.Request.Context(), month)
	if err != nil {
		h.respondDomainError(c, err, "Monthly accrual failed",
			zap.String("month", string(month)))
		return
	}

	c.JSON(http.StatusOK, summary)
}

// RunPayouts triggers payout execution for a settled month
func (h *handler) RunPayouts(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	summary, err := h.settlement.RunMonthlyPayouts(c.Request.Context(), month)
	if err != nil {
		h.respondDomainError(c, err, "Monthly payout run failed",
			zap.String("month", string(month)))
		return
	}

	c.JSON(http.StatusOK, summary)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "pennit-attribution",
	})
}

// respondDomainError maps domain sentinel errors to client responses,
// everything else to a logged 500
func (h *handler) respondDomainError(c *gin.Context, err error, message string, fields ...zap.Field) {
	switch {
	case errors.Is(err, domain.ErrContentNotFound):
		respondNotFound(c, "Content item not found")
	case errors.Is(err, domain.ErrIdentityUnresolvable):
		respondBadRequest(c, "Viewer identity could not be resolved")
	case errors.Is(err, domain.ErrInvalidProgress):
		respondValidationError(c, "progress_percentage must be between 0 and 100")
	case errors.Is(err, domain.ErrInvalidTimeSpent):
		respondValidationError(c, "time_spent_seconds must not be negative")
	case errors.Is(err, domain.ErrInvalidMonth):
		respondBadRequest(c, "Month must be in YYYY-MM format")
	case errors.Is(err, domain.ErrMonetizationDisabled):
		respondConflict(c, "Monetization is disabled")
	default:
		respondInternalError(c, err, message, fields...)
	}
}

// contentIDParam parses the :id path parameter
func contentIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	contentID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || contentID <= 0 {
		respondBadRequest(c, "Content ID must be a positive integer", raw)
		return 0, false
	}
	return contentID, true
}

// monthParam parses the :month path parameter
func monthParam(c *gin.Context) (domain.Month, bool) {
	month, err := domain.ParseMonth(c.Param("month"))
	if err != nil {
		respondBadRequest(c, "Month must be in YYYY-MM format", c.Param("month"))
		return "", false
	}
	return month, true
}

// monthQuery parses the month query parameter, defaulting to the current month
func monthQuery(c *gin.Context) (domain.Month, bool) {
	raw := c.Query("month")
	if raw == "" {
		return domain.MonthOf(timeNow()), true
	}
	month, err := domain.ParseMonth(raw)
	if err != nil {
		respondBadRequest(c, "Month must be in YYYY-MM format", raw)
		return "", false
	}
	return month, true
}
