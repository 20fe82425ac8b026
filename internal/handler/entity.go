package handler

import (
	"net/http"

	"visitorbadge/internal/model"
	"visitorbadge/internal/service"

	"github.com/gin-gonic/gin"
)

// EntityHandler exposes the per-badge operations to internal callers
type EntityHandler struct {
	service service.BadgeServiceInterface
}

// NewEntityHandler creates a new EntityHandler
func NewEntityHandler(service service.BadgeServiceInterface) *EntityHandler {
	return &EntityHandler{service: service}
}

// Register mounts the routes under group
func (h *EntityHandler) Register(group *gin.RouterGroup) {
	group.GET("/:pageId/count", h.Count)
	group.POST("/:pageId/hit", h.Hit)
	group.GET("/:pageId/summary", h.Summary)
	group.GET("/:pageId/exists", h.Exists)
	group.GET("/:pageId/full", h.Full)
	group.POST("/:pageId/ratelimit", h.RateLimit)
}

// CountResponse carries a hit count
type CountResponse struct {
	Count int64 `json:"count"`
}

// ExistsResponse reports whether a badge has a record
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// Count handles GET /internal/badges/:pageId/count
// @Summary Get the hit count
// @Tags internal
// @Param pageId path string true "Page id"
// @Success 200 {object} CountResponse
// @Router /internal/badges/{pageId}/count [get]
func (h *EntityHandler) Count(c *gin.Context) {
	count, err := h.service.FetchCount(c.Request.Context(), c.Param("pageId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// Hit handles POST /internal/badges/:pageId/hit
// @Summary Record a hit
// @Tags internal
// @Accept json
// @Param pageId path string true "Page id"
// @Param request body model.HitInput true "Requester metadata"
// @Success 200 {object} CountResponse
// @Router /internal/badges/{pageId}/hit [post]
func (h *EntityHandler) Hit(c *gin.Context) {
	var in model.HitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	count, err := h.service.FetchAndIncrement(c.Request.Context(), c.Param("pageId"), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// Summary handles GET /internal/badges/:pageId/summary
// @Summary Get the analytics summary
// @Tags internal
// @Param pageId path string true "Page id"
// @Success 200 {object} model.Summary
// @Failure 404 {object} ErrorResponse
// @Router /internal/badges/{pageId}/summary [get]
func (h *EntityHandler) Summary(c *gin.Context) {
	summary, err := h.service.GetSummary(c.Request.Context(), c.Param("pageId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Exists handles GET /internal/badges/:pageId/exists
// @Summary Check whether a badge has a record
// @Tags internal
// @Param pageId path string true "Page id"
// @Success 200 {object} ExistsResponse
// @Router /internal/badges/{pageId}/exists [get]
func (h *EntityHandler) Exists(c *gin.Context) {
	exists, err := h.service.Exists(c.Request.Context(), c.Param("pageId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ExistsResponse{Exists: exists})
}

// Full handles GET /internal/badges/:pageId/full
// @Summary Get the raw analytics record
// @Tags internal
// @Param pageId path string true "Page id"
// @Success 200 {object} model.BadgeAnalytics
// @Failure 404 {object} ErrorResponse
// @Router /internal/badges/{pageId}/full [get]
func (h *EntityHandler) Full(c *gin.Context) {
	rec, err := h.service.GetFull(c.Request.Context(), c.Param("pageId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// RateLimit handles POST /internal/badges/:pageId/ratelimit.
// The path segment is used as the limiter key as-is.
// @Summary Check and consume a sliding window quota
// @Tags internal
// @Accept json
// @Param pageId path string true "Limiter key"
// @Param request body model.RateLimitConfig true "Quota"
// @Success 200 {object} model.RateLimitResult
// @Router /internal/badges/{pageId}/ratelimit [post]
func (h *EntityHandler) RateLimit(c *gin.Context) {
	var cfg model.RateLimitConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, err := h.service.CheckRateLimitKey(c.Request.Context(), c.Param("pageId"), cfg)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
