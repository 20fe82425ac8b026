package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"visitorbadge/internal/model"
	"visitorbadge/internal/repository"
)

// RateLimitField is the storage field holding limiter state
const RateLimitField = "ratelimit"

// LimiterActor enforces a sliding window quota for one key.
// Callers must serialize access; BadgeService does so through a Registry.
type LimiterActor struct {
	key     string
	storage repository.EntityStorage
	now     func() time.Time

	state *model.RateLimitState
}

// NewLimiterActor creates a limiter for key
func NewLimiterActor(key string, storage repository.EntityStorage, now func() time.Time) *LimiterActor {
	if now == nil {
		now = time.Now
	}
	return &LimiterActor{
		key:     key,
		storage: storage,
		now:     now,
	}
}

// CheckAndConsume admits the request if fewer than MaxRequests fall inside the window.
// Rejected requests are not recorded.
func (l *LimiterActor) CheckAndConsume(ctx context.Context, cfg model.RateLimitConfig) (model.RateLimitResult, error) {
	if cfg.MaxRequests <= 0 || cfg.WindowMs <= 0 {
		return model.RateLimitResult{}, ErrInvalidRateLimit
	}

	if err := l.load(ctx); err != nil {
		return model.RateLimitResult{}, err
	}

	now := l.now().UnixMilli()
	windowStart := now - cfg.WindowMs

	kept := l.state.Requests[:0]
	for _, ts := range l.state.Requests {
		if ts > windowStart {
			kept = append(kept, ts)
		}
	}
	l.state.Requests = kept

	allowed := len(l.state.Requests) < cfg.MaxRequests
	if allowed {
		l.state.Requests = append(l.state.Requests, now)
	}
	l.state.LastCleanup = now

	if err := l.persist(ctx); err != nil {
		l.state = nil
		return model.RateLimitResult{}, err
	}

	oldest := now
	if len(l.state.Requests) > 0 {
		oldest = l.state.Requests[0]
	}
	remaining := cfg.MaxRequests - len(l.state.Requests)
	if remaining < 0 {
		remaining = 0
	}

	return model.RateLimitResult{
		Allowed:   allowed,
		Limit:     cfg.MaxRequests,
		Remaining: remaining,
		ResetAt:   oldest + cfg.WindowMs,
	}, nil
}

func (l *LimiterActor) load(ctx context.Context) error {
	if l.state != nil {
		return nil
	}

	raw, err := l.storage.Get(ctx, RateLimitField)
	if errors.Is(err, repository.ErrNotFound) {
		l.state = &model.RateLimitState{Requests: []int64{}}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load rate limit state: %w", err)
	}

	state := &model.RateLimitState{}
	if err := json.Unmarshal(raw, state); err != nil {
		return fmt.Errorf("failed to decode rate limit state: %w", err)
	}
	if state.Requests == nil {
		state.Requests = []int64{}
	}
	l.state = state
	return nil
}

func (l *LimiterActor) persist(ctx context.Context) error {
	data, err := json.Marshal(l.state)
	if err != nil {
		return fmt.Errorf("failed to encode rate limit state: %w", err)
	}
	if err := l.storage.Put(ctx, RateLimitField, data); err != nil {
		return fmt.Errorf("failed to persist rate limit state: %w", err)
	}
	return nil
}
