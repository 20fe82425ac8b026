package handler

import (
	"net/http"
	"strconv"
	"time"

	"visitorbadge/internal/model"
	"visitorbadge/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the public analytics API
type AnalyticsHandler struct {
	service service.BadgeServiceInterface
	now     func() time.Time
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(service service.BadgeServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		now:     time.Now,
	}
}

// GetAnalytics handles GET /api/analytics/:pageId
// @Summary Get analytics for a badge
// @Description Returns hit windows, time series and top referrers, countries, agents and platforms
// @Tags analytics
// @Produce json
// @Param pageId path string true "Page id"
// @Success 200 {object} model.Summary
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} RateLimitedResponse
// @Router /api/analytics/{pageId} [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	ctx := c.Request.Context()
	pageID := c.Param("pageId")

	limit, err := h.service.CheckRateLimit(ctx, pageID, model.LimitAnalytics)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	setRateLimitHeaders(c, limit)

	if !limit.Allowed {
		c.Header("Retry-After", strconv.FormatInt(retryAfterSeconds(limit.ResetAt, h.now()), 10))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, RateLimitedResponse{
			Code:       http.StatusTooManyRequests,
			Message:    "Rate limit exceeded",
			RetryAfter: limit.ResetAt,
		})
		return
	}

	exists, err := h.service.Exists(ctx, pageID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !exists {
		abortWithError(c, http.StatusNotFound, "Badge not found")
		return
	}

	summary, err := h.service.GetSummary(ctx, pageID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
