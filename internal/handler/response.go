package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"visitorbadge/internal/model"
	"visitorbadge/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RateLimitedResponse is returned with 429
type RateLimitedResponse struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	RetryAfter int64  `json:"retryAfter"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// writeServiceError maps service errors to HTTP statuses
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoData):
		abortWithError(c, http.StatusNotFound, "No analytics data available")
	case errors.Is(err, service.ErrInvalidPageID):
		abortWithError(c, http.StatusBadRequest, "Invalid page id")
	case errors.Is(err, service.ErrReservedKey):
		abortWithError(c, http.StatusForbidden, "Reserved rate limit key")
	case errors.Is(err, service.ErrInvalidRateLimit):
		abortWithError(c, http.StatusBadRequest, "Invalid rate limit config")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Badge service call failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func setRateLimitHeaders(c *gin.Context, r model.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(r.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(r.Remaining))
	c.Header("X-RateLimit-Reset", time.UnixMilli(r.ResetAt).UTC().Format("2006-01-02T15:04:05.000Z"))
}

// retryAfterSeconds rounds the time until resetAt up to whole seconds
func retryAfterSeconds(resetAt int64, now time.Time) int64 {
	ms := resetAt - now.UnixMilli()
	if ms <= 0 {
		return 0
	}
	return (ms + 999) / 1000
}
