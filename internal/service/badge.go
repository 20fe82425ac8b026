package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"visitorbadge/internal/model"
	"visitorbadge/internal/repository"
	"visitorbadge/pkg/util"

	"github.com/rs/zerolog/log"
)

const (
	// AnalyticsField is the storage field holding the badge record
	AnalyticsField = "analytics"

	// DefaultRetention is how long hourly and daily buckets are kept
	DefaultRetention = 14 * 24 * time.Hour
	// DefaultCleanupInterval is the delay between scheduled cleanups
	DefaultCleanupInterval = 6 * time.Hour

	cleanupEveryHits = 100
	topN             = 10
	hourlyStatsSpan  = 48 * time.Hour
)

// BadgeOptions tunes a BadgeActor
type BadgeOptions struct {
	Retention       time.Duration
	CleanupInterval time.Duration
	Now             func() time.Time
}

func (o BadgeOptions) withDefaults() BadgeOptions {
	if o.Retention <= 0 {
		o.Retention = DefaultRetention
	}
	if o.CleanupInterval <= 0 {
		o.CleanupInterval = DefaultCleanupInterval
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// BadgeActor owns the analytics record of one page id.
// Callers must serialize access; BadgeService does so through a Registry.
type BadgeActor struct {
	pageID   string
	storage  repository.EntityStorage
	migrator *LegacyMigrator
	opts     BadgeOptions

	analytics   *model.BadgeAnalytics
	initialized bool
}

// NewBadgeActor creates a cold actor for pageID
func NewBadgeActor(pageID string, storage repository.EntityStorage, migrator *LegacyMigrator, opts BadgeOptions) *BadgeActor {
	return &BadgeActor{
		pageID:   pageID,
		storage:  storage,
		migrator: migrator,
		opts:     opts.withDefaults(),
	}
}

// GetCount returns the total hits, 0 when the badge has no record
func (a *BadgeActor) GetCount(ctx context.Context) (int64, error) {
	if err := a.initialize(ctx); err != nil {
		return 0, a.fail(err)
	}
	if a.analytics == nil {
		return 0, nil
	}
	return a.analytics.TotalHits, nil
}

// RecordHit counts one hit and returns the new total.
// The total is returned only after the record has been persisted.
func (a *BadgeActor) RecordHit(ctx context.Context, in model.HitInput) (int64, error) {
	if err := a.initialize(ctx); err != nil {
		return 0, a.fail(err)
	}

	now := a.opts.Now()
	created := false
	if a.analytics == nil {
		a.analytics = model.NewBadgeAnalytics(a.pageID, now.UnixMilli())
		created = true
	}

	rec := a.analytics
	hour := util.HourBucket(now)
	day := util.DayBucket(now)

	rec.TotalHits++
	rec.LastUpdated = now.UnixMilli()
	rec.HourlyHits[hour]++
	rec.DailyHits[day]++
	rec.UniqueVisitors.Add(util.VisitorKey(in.IP, day))
	rec.Referrers[ClassifyReferrer(in.Referrer)]++
	rec.Countries[in.Country]++
	rec.UserAgents[SimplifyUserAgent(in.UserAgent)]++
	rec.Platforms[DetectPlatform(in.UserAgent)]++

	if rec.TotalHits%cleanupEveryHits == 0 {
		a.cleanup(now)
	}

	if err := a.persist(ctx); err != nil {
		return 0, a.fail(err)
	}

	if created {
		a.armAlarm(ctx, now)
	}

	return rec.TotalHits, nil
}

// GetSummary returns the analytics summary or ErrNoData
func (a *BadgeActor) GetSummary(ctx context.Context) (*model.Summary, error) {
	if err := a.initialize(ctx); err != nil {
		return nil, a.fail(err)
	}
	if a.analytics == nil {
		return nil, ErrNoData
	}

	now := a.opts.Now()
	a.cleanup(now)

	return a.summarize(now), nil
}

// Exists reports whether the badge has a record, migrating one if possible
func (a *BadgeActor) Exists(ctx context.Context) (bool, error) {
	if err := a.initialize(ctx); err != nil {
		return false, a.fail(err)
	}
	return a.analytics != nil, nil
}

// GetFullData returns a copy of the raw record or ErrNoData
func (a *BadgeActor) GetFullData(ctx context.Context) (*model.BadgeAnalytics, error) {
	if err := a.initialize(ctx); err != nil {
		return nil, a.fail(err)
	}
	if a.analytics == nil {
		return nil, ErrNoData
	}

	data, err := json.Marshal(a.analytics)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analytics: %w", err)
	}
	out := &model.BadgeAnalytics{}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("failed to copy analytics: %w", err)
	}
	out.Normalize()
	return out, nil
}

// RunScheduledCleanup purges expired buckets and re-arms the next cleanup
func (a *BadgeActor) RunScheduledCleanup(ctx context.Context) error {
	if err := a.initialize(ctx); err != nil {
		return a.fail(err)
	}

	now := a.opts.Now()
	if a.analytics != nil {
		a.cleanup(now)
		if err := a.persist(ctx); err != nil {
			return a.fail(err)
		}
	}

	if err := a.storage.SetAlarm(ctx, now.Add(a.opts.CleanupInterval)); err != nil {
		return fmt.Errorf("failed to schedule cleanup: %w", err)
	}
	return nil
}

// initialize loads the record once per cold actor, falling back to legacy migration
func (a *BadgeActor) initialize(ctx context.Context) error {
	if a.initialized {
		return nil
	}

	raw, err := a.storage.Get(ctx, AnalyticsField)
	switch {
	case err == nil:
		rec := &model.BadgeAnalytics{}
		if err := json.Unmarshal(raw, rec); err != nil {
			return fmt.Errorf("failed to decode analytics: %w", err)
		}
		rec.Normalize()
		if rec.PageID == "" {
			rec.PageID = a.pageID
		}
		a.analytics = rec
	case errors.Is(err, repository.ErrNotFound):
		if err := a.migrate(ctx); err != nil {
			return err
		}
	default:
		return fmt.Errorf("failed to load analytics: %w", err)
	}

	a.initialized = true
	return nil
}

// migrate seeds a record from the legacy counter, attributing it to today
func (a *BadgeActor) migrate(ctx context.Context) error {
	count, ok := a.migrator.Lookup(ctx, a.pageID)
	if !ok {
		return nil
	}

	now := a.opts.Now()
	rec := model.NewBadgeAnalytics(a.pageID, now.UnixMilli())
	rec.TotalHits = count
	rec.DailyHits[util.DayBucket(now)] = count

	a.analytics = rec
	if err := a.persist(ctx); err != nil {
		return err
	}
	a.armAlarm(ctx, now)

	log.Info().Str("page_id", a.pageID).Int64("count", count).Msg("Migrated legacy badge counter")
	return nil
}

func (a *BadgeActor) persist(ctx context.Context) error {
	data, err := json.Marshal(a.analytics)
	if err != nil {
		return fmt.Errorf("failed to encode analytics: %w", err)
	}
	if err := a.storage.Put(ctx, AnalyticsField, data); err != nil {
		return fmt.Errorf("failed to persist analytics: %w", err)
	}
	return nil
}

// armAlarm schedules the first cleanup; the hit is already durable so faults are only logged
func (a *BadgeActor) armAlarm(ctx context.Context, now time.Time) {
	if err := a.storage.SetAlarm(ctx, now.Add(a.opts.CleanupInterval)); err != nil {
		log.Warn().Err(err).Str("page_id", a.pageID).Msg("Failed to schedule cleanup")
	}
}

// fail drops in-memory state so the next call reloads from storage
func (a *BadgeActor) fail(err error) error {
	a.analytics = nil
	a.initialized = false
	return err
}

// cleanup drops buckets older than the retention window and trims the visitor set
func (a *BadgeActor) cleanup(now time.Time) {
	rec := a.analytics
	if rec == nil {
		return
	}

	for key := range rec.HourlyHits {
		ts, err := util.ParseHourBucket(key)
		if err != nil || now.Sub(ts) >= a.opts.Retention {
			delete(rec.HourlyHits, key)
		}
	}
	for key := range rec.DailyHits {
		ts, err := util.ParseDayBucket(key)
		if err != nil || now.Sub(ts) >= a.opts.Retention {
			delete(rec.DailyHits, key)
		}
	}

	if rec.UniqueVisitors.Len() > model.MaxUniqueVisitors {
		rec.UniqueVisitors.KeepNewest(model.KeepUniqueVisitors)
	}
}

func (a *BadgeActor) summarize(now time.Time) *model.Summary {
	rec := a.analytics
	s := &model.Summary{
		TotalHits:      rec.TotalHits,
		UniqueVisitors: rec.UniqueVisitors.Len(),
		DailyStats:     make([]model.DailyStat, 0, len(rec.DailyHits)),
		HourlyStats:    make([]model.HourlyStat, 0),
	}

	for key, hits := range rec.HourlyHits {
		ts, err := util.ParseHourBucket(key)
		if err != nil {
			continue
		}
		age := now.Sub(ts)
		if age < 24*time.Hour {
			s.HitsLast24Hours += hits
		}
		if age < 7*24*time.Hour {
			s.HitsLast7Days += hits
		}
		if age < 14*24*time.Hour {
			s.HitsLast14Days += hits
		}
		if age < hourlyStatsSpan {
			s.HourlyStats = append(s.HourlyStats, model.HourlyStat{Hour: key, Hits: hits})
		}
	}
	sort.Slice(s.HourlyStats, func(i, j int) bool { return s.HourlyStats[i].Hour < s.HourlyStats[j].Hour })

	for key, hits := range rec.DailyHits {
		s.DailyStats = append(s.DailyStats, model.DailyStat{Date: key, Hits: hits})
	}
	sort.Slice(s.DailyStats, func(i, j int) bool { return s.DailyStats[i].Date < s.DailyStats[j].Date })

	for _, e := range topEntries(rec.Referrers) {
		s.TopReferrers = append(s.TopReferrers, model.ReferrerStat{Referrer: e.label, Count: e.count})
	}
	for _, e := range topEntries(rec.Countries) {
		s.TopCountries = append(s.TopCountries, model.CountryStat{Country: e.label, Count: e.count})
	}
	for _, e := range topEntries(rec.UserAgents) {
		s.TopUserAgents = append(s.TopUserAgents, model.UserAgentStat{Agent: e.label, Count: e.count})
	}
	for _, e := range topEntries(rec.Platforms) {
		s.TopPlatforms = append(s.TopPlatforms, model.PlatformStat{Platform: e.label, Count: e.count})
	}
	if s.TopReferrers == nil {
		s.TopReferrers = []model.ReferrerStat{}
	}
	if s.TopCountries == nil {
		s.TopCountries = []model.CountryStat{}
	}
	if s.TopUserAgents == nil {
		s.TopUserAgents = []model.UserAgentStat{}
	}
	if s.TopPlatforms == nil {
		s.TopPlatforms = []model.PlatformStat{}
	}

	return s
}

type labelCount struct {
	label string
	count int64
}

// topEntries orders by count descending, then label ascending, and keeps the first topN.
// Maps keep no insertion order, so label order is the stable tie-break in its place.
func topEntries(counts map[string]int64) []labelCount {
	entries := make([]labelCount, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, labelCount{label: label, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].label < entries[j].label
	})
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
