package service

import (
	"context"
	"strings"
	"time"

	"visitorbadge/internal/model"
	"visitorbadge/internal/mq"
	"visitorbadge/internal/repository"
	"visitorbadge/pkg/util"

	"github.com/rs/zerolog/log"
)

const (
	badgeEntityPrefix   = "badge:"
	limiterEntityPrefix = "limiter:"
	rateLimitKeyPrefix  = "ratelimit:"
	maxPageIDLength     = 256

	// MaxKeyedRequests bounds the quota of caller-chosen limiter keys
	MaxKeyedRequests = 10000
)

// DefaultLimits are the per page id quotas
var DefaultLimits = map[model.LimitClass]model.RateLimitConfig{
	model.LimitBadge:     {MaxRequests: 60, WindowMs: 60 * 1000},
	model.LimitAnalytics: {MaxRequests: 30, WindowMs: 60 * 1000},
}

// RateLimitKey namespaces a page id per limit class
func RateLimitKey(class model.LimitClass, pageID string) string {
	return rateLimitKeyPrefix + string(class) + ":" + pageID
}

// BadgeEntityID is the storage entity id of a badge record
func BadgeEntityID(pageID string) string {
	return badgeEntityPrefix + pageID
}

// PageIDFromEntity reverses BadgeEntityID
func PageIDFromEntity(entityID string) (string, bool) {
	if !strings.HasPrefix(entityID, badgeEntityPrefix) {
		return "", false
	}
	return strings.TrimPrefix(entityID, badgeEntityPrefix), true
}

// Options configures a BadgeService
type Options struct {
	Storage  repository.StorageProvider
	Migrator *LegacyMigrator
	Producer mq.ProducerInterface
	Limits   map[model.LimitClass]model.RateLimitConfig
	Badge    BadgeOptions
	IdleTTL  time.Duration
}

// BadgeService routes each page id to its own serialized actor
type BadgeService struct {
	badges   *Registry[*BadgeActor]
	limiters *Registry[*LimiterActor]
	limits   map[model.LimitClass]model.RateLimitConfig
	producer mq.ProducerInterface
	now      func() time.Time
}

// NewBadgeService creates a new Badge Service
func NewBadgeService(opts Options) *BadgeService {
	badgeOpts := opts.Badge.withDefaults()
	limits := opts.Limits
	if limits == nil {
		limits = DefaultLimits
	}

	s := &BadgeService{
		limits:   limits,
		producer: opts.Producer,
		now:      badgeOpts.Now,
	}
	s.badges = NewRegistry(func(pageID string) *BadgeActor {
		return NewBadgeActor(pageID, opts.Storage.Entity(BadgeEntityID(pageID)), opts.Migrator, badgeOpts)
	}, opts.IdleTTL)
	s.limiters = NewRegistry(func(key string) *LimiterActor {
		return NewLimiterActor(key, opts.Storage.Entity(limiterEntityPrefix+key), badgeOpts.Now)
	}, opts.IdleTTL)

	return s
}

// StartJanitor evicts idle actors every interval until ctx is done
func (s *BadgeService) StartJanitor(ctx context.Context, every time.Duration) {
	s.badges.StartJanitor(ctx, every)
	s.limiters.StartJanitor(ctx, every)
}

// FetchCount returns the hit count without counting a hit
func (s *BadgeService) FetchCount(ctx context.Context, pageID string) (int64, error) {
	if err := validatePageID(pageID); err != nil {
		return 0, err
	}

	var count int64
	err := s.badges.Do(ctx, pageID, func(a *BadgeActor) error {
		var err error
		count, err = a.GetCount(ctx)
		return err
	})
	return count, err
}

// FetchAndIncrement counts a hit and returns the new total
func (s *BadgeService) FetchAndIncrement(ctx context.Context, pageID string, in model.HitInput) (int64, error) {
	if err := validatePageID(pageID); err != nil {
		return 0, err
	}
	in.PageID = pageID

	var count int64
	err := s.badges.Do(ctx, pageID, func(a *BadgeActor) error {
		var err error
		count, err = a.RecordHit(ctx, in)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.publishHit(ctx, in, count)
	return count, nil
}

// GetSummary returns the analytics summary or ErrNoData
func (s *BadgeService) GetSummary(ctx context.Context, pageID string) (*model.Summary, error) {
	if err := validatePageID(pageID); err != nil {
		return nil, err
	}

	var summary *model.Summary
	err := s.badges.Do(ctx, pageID, func(a *BadgeActor) error {
		var err error
		summary, err = a.GetSummary(ctx)
		return err
	})
	return summary, err
}

// Exists reports whether the badge has a record
func (s *BadgeService) Exists(ctx context.Context, pageID string) (bool, error) {
	if err := validatePageID(pageID); err != nil {
		return false, err
	}

	var exists bool
	err := s.badges.Do(ctx, pageID, func(a *BadgeActor) error {
		var err error
		exists, err = a.Exists(ctx)
		return err
	})
	return exists, err
}

// GetFull returns the raw analytics record or ErrNoData
func (s *BadgeService) GetFull(ctx context.Context, pageID string) (*model.BadgeAnalytics, error) {
	if err := validatePageID(pageID); err != nil {
		return nil, err
	}

	var rec *model.BadgeAnalytics
	err := s.badges.Do(ctx, pageID, func(a *BadgeActor) error {
		var err error
		rec, err = a.GetFullData(ctx)
		return err
	})
	return rec, err
}

// RunScheduledCleanup runs retention cleanup for pageID
func (s *BadgeService) RunScheduledCleanup(ctx context.Context, pageID string) error {
	return s.badges.Do(ctx, pageID, func(a *BadgeActor) error {
		return a.RunScheduledCleanup(ctx)
	})
}

// CheckRateLimit applies the quota of class to pageID
func (s *BadgeService) CheckRateLimit(ctx context.Context, pageID string, class model.LimitClass) (model.RateLimitResult, error) {
	if err := validatePageID(pageID); err != nil {
		return model.RateLimitResult{}, err
	}
	cfg, ok := s.limits[class]
	if !ok {
		return model.RateLimitResult{}, ErrInvalidRateLimit
	}
	return s.consume(ctx, RateLimitKey(class, pageID), cfg)
}

// CheckRateLimitKey applies cfg to a caller-chosen limiter key.
// Keys in the page id quota namespace are rejected so callers cannot drain another badge's quota.
func (s *BadgeService) CheckRateLimitKey(ctx context.Context, key string, cfg model.RateLimitConfig) (model.RateLimitResult, error) {
	if key == "" || len(key) > maxPageIDLength {
		return model.RateLimitResult{}, ErrInvalidPageID
	}
	if strings.HasPrefix(key, rateLimitKeyPrefix) {
		return model.RateLimitResult{}, ErrReservedKey
	}
	if cfg.MaxRequests > MaxKeyedRequests {
		return model.RateLimitResult{}, ErrInvalidRateLimit
	}
	return s.consume(ctx, key, cfg)
}

func (s *BadgeService) consume(ctx context.Context, key string, cfg model.RateLimitConfig) (model.RateLimitResult, error) {
	var result model.RateLimitResult
	err := s.limiters.Do(ctx, key, func(l *LimiterActor) error {
		var err error
		result, err = l.CheckAndConsume(ctx, cfg)
		return err
	})
	return result, err
}

// publishHit sends the hit to the audit pipeline; failures never fail the hit
func (s *BadgeService) publishHit(ctx context.Context, in model.HitInput, count int64) {
	if s.producer == nil {
		return
	}

	now := s.now()
	msg := &mq.HitMessage{
		MessageID:  util.GenerateUUID(),
		PageID:     in.PageID,
		VisitorKey: util.VisitorKey(in.IP, util.DayBucket(now)),
		Referrer:   ClassifyReferrer(in.Referrer),
		Country:    in.Country,
		UserAgent:  SimplifyUserAgent(in.UserAgent),
		Platform:   DetectPlatform(in.UserAgent),
		Count:      count,
		HitTime:    now,
	}
	if err := s.producer.SendHit(ctx, msg); err != nil {
		log.Warn().Err(err).Str("page_id", in.PageID).Msg("Failed to publish hit")
	}
}

func validatePageID(pageID string) error {
	if pageID == "" || len(pageID) > maxPageIDLength {
		return ErrInvalidPageID
	}
	return nil
}
