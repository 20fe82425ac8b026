package service

import (
	"context"
	"errors"

	"visitorbadge/internal/model"
)

var (
	// ErrNoData is returned when a badge has no analytics record
	ErrNoData = errors.New("no analytics data")
	// ErrInvalidPageID is returned for empty or oversized page ids
	ErrInvalidPageID = errors.New("invalid page id")
	// ErrInvalidRateLimit is returned for non-positive or oversized quotas
	ErrInvalidRateLimit = errors.New("invalid rate limit config")
	// ErrReservedKey is returned when a caller-chosen limiter key falls in the page id quota namespace
	ErrReservedKey = errors.New("reserved rate limit key")
)

// BadgeServiceInterface defines the badge operations used by handlers
type BadgeServiceInterface interface {
	FetchCount(ctx context.Context, pageID string) (int64, error)
	FetchAndIncrement(ctx context.Context, pageID string, in model.HitInput) (int64, error)
	GetSummary(ctx context.Context, pageID string) (*model.Summary, error)
	Exists(ctx context.Context, pageID string) (bool, error)
	GetFull(ctx context.Context, pageID string) (*model.BadgeAnalytics, error)
	CheckRateLimit(ctx context.Context, pageID string, class model.LimitClass) (model.RateLimitResult, error)
	CheckRateLimitKey(ctx context.Context, key string, cfg model.RateLimitConfig) (model.RateLimitResult, error)
}

// CleanupRunnerInterface runs the scheduled cleanup of one badge (for testing)
type CleanupRunnerInterface interface {
	RunScheduledCleanup(ctx context.Context, pageID string) error
}
