package model

// RateLimitConfig is a sliding window quota
type RateLimitConfig struct {
	MaxRequests int   `json:"maxRequests"`
	WindowMs    int64 `json:"windowMs"`
}

// RateLimitResult is the outcome of a check-and-consume
type RateLimitResult struct {
	Allowed   bool  `json:"allowed"`
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	ResetAt   int64 `json:"resetAt"`
}

// RateLimitState is the persisted state of one limiter key
type RateLimitState struct {
	// Requests holds in-window request timestamps (unix ms), oldest first
	Requests    []int64 `json:"requests"`
	LastCleanup int64   `json:"lastCleanup"`
}

// LimitClass names a quota applied per page id
type LimitClass string

const (
	// LimitBadge guards badge rendering
	LimitBadge LimitClass = "badge"
	// LimitAnalytics guards the analytics API
	LimitAnalytics LimitClass = "analytics"
)
