package model

import (
	"encoding/json"
)

const (
	// MaxUniqueVisitors is the cardinality above which the visitor set is trimmed
	MaxUniqueVisitors = 10000
	// KeepUniqueVisitors is how many of the most recent visitors survive a trim
	KeepUniqueVisitors = 5000
)

// BadgeAnalytics is the per-badge counter and analytics record
type BadgeAnalytics struct {
	PageID         string           `json:"pageId"`
	TotalHits      int64            `json:"totalHits"`
	LastUpdated    int64            `json:"lastUpdated"`
	HourlyHits     map[string]int64 `json:"hourlyHits"`
	DailyHits      map[string]int64 `json:"dailyHits"`
	UniqueVisitors *VisitorSet      `json:"uniqueVisitors"`
	Referrers      map[string]int64 `json:"referrers"`
	Countries      map[string]int64 `json:"countries"`
	UserAgents     map[string]int64 `json:"userAgents"`
	Platforms      map[string]int64 `json:"platforms"`
}

// NewBadgeAnalytics creates an empty record for pageID
func NewBadgeAnalytics(pageID string, now int64) *BadgeAnalytics {
	return &BadgeAnalytics{
		PageID:         pageID,
		LastUpdated:    now,
		HourlyHits:     make(map[string]int64),
		DailyHits:      make(map[string]int64),
		UniqueVisitors: NewVisitorSet(),
		Referrers:      make(map[string]int64),
		Countries:      make(map[string]int64),
		UserAgents:     make(map[string]int64),
		Platforms:      make(map[string]int64),
	}
}

// Normalize fills in collections missing from records written by older versions
func (b *BadgeAnalytics) Normalize() {
	if b.HourlyHits == nil {
		b.HourlyHits = make(map[string]int64)
	}
	if b.DailyHits == nil {
		b.DailyHits = make(map[string]int64)
	}
	if b.UniqueVisitors == nil {
		b.UniqueVisitors = NewVisitorSet()
	}
	if b.Referrers == nil {
		b.Referrers = make(map[string]int64)
	}
	if b.Countries == nil {
		b.Countries = make(map[string]int64)
	}
	if b.UserAgents == nil {
		b.UserAgents = make(map[string]int64)
	}
	if b.Platforms == nil {
		b.Platforms = make(map[string]int64)
	}
}

// VisitorSet is an insertion-ordered set of opaque visitor keys.
// It is serialized as a JSON array, oldest first.
type VisitorSet struct {
	order []string
	index map[string]struct{}
}

// NewVisitorSet creates an empty set
func NewVisitorSet(keys ...string) *VisitorSet {
	s := &VisitorSet{index: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add inserts key and reports whether it was new
func (s *VisitorSet) Add(key string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.order = append(s.order, key)
	return true
}

// Contains reports whether key is in the set
func (s *VisitorSet) Contains(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Len returns the number of keys
func (s *VisitorSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Keys returns a copy of the keys in insertion order
func (s *VisitorSet) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// KeepNewest drops all but the n most recently inserted keys
func (s *VisitorSet) KeepNewest(n int) {
	if len(s.order) <= n {
		return
	}
	drop := s.order[:len(s.order)-n]
	for _, k := range drop {
		delete(s.index, k)
	}
	kept := make([]string, n)
	copy(kept, s.order[len(s.order)-n:])
	s.order = kept
}

// MarshalJSON encodes the set as an array
func (s *VisitorSet) MarshalJSON() ([]byte, error) {
	if s == nil || s.order == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.order)
}

// UnmarshalJSON restores the set from an array
func (s *VisitorSet) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*s = VisitorSet{index: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.Add(k)
	}
	return nil
}

// HitInput carries the requester metadata of a hit
type HitInput struct {
	PageID    string `json:"pageId"`
	IP        string `json:"ip"`
	Referrer  string `json:"referrer"`
	Country   string `json:"country"`
	UserAgent string `json:"userAgent"`
}

// Summary is the analytics summary returned to API callers
type Summary struct {
	TotalHits       int64           `json:"totalHits"`
	UniqueVisitors  int             `json:"uniqueVisitors"`
	HitsLast24Hours int64           `json:"hitsLast24Hours"`
	HitsLast7Days   int64           `json:"hitsLast7Days"`
	HitsLast14Days  int64           `json:"hitsLast14Days"`
	TopReferrers    []ReferrerStat  `json:"topReferrers"`
	TopCountries    []CountryStat   `json:"topCountries"`
	TopUserAgents   []UserAgentStat `json:"topUserAgents"`
	TopPlatforms    []PlatformStat  `json:"topPlatforms"`
	DailyStats      []DailyStat     `json:"dailyStats"`
	HourlyStats     []HourlyStat    `json:"hourlyStats"`
}

// ReferrerStat represents referrer statistics
type ReferrerStat struct {
	Referrer string `json:"referrer"`
	Count    int64  `json:"count"`
}

// CountryStat represents country statistics
type CountryStat struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// UserAgentStat represents user agent statistics
type UserAgentStat struct {
	Agent string `json:"agent"`
	Count int64  `json:"count"`
}

// PlatformStat represents platform statistics
type PlatformStat struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

// DailyStat is one point of the daily series
type DailyStat struct {
	Date string `json:"date"`
	Hits int64  `json:"hits"`
}

// HourlyStat is one point of the hourly series
type HourlyStat struct {
	Hour string `json:"hour"`
	Hits int64  `json:"hits"`
}
