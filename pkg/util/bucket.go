package util

import (
	"fmt"
	"time"
)

const (
	// HourBucketLayout is the layout of hourly bucket keys (UTC)
	HourBucketLayout = "2006-01-02-15"
	// DayBucketLayout is the layout of daily bucket keys (UTC)
	DayBucketLayout = "2006-01-02"
)

// HourBucket returns the hour bucket key (YYYY-MM-DD-HH) for t
func HourBucket(t time.Time) string {
	return t.UTC().Format(HourBucketLayout)
}

// DayBucket returns the day bucket key (YYYY-MM-DD) for t
func DayBucket(t time.Time) string {
	return t.UTC().Format(DayBucketLayout)
}

// ParseHourBucket returns the start of the hour named by key
func ParseHourBucket(key string) (time.Time, error) {
	t, err := time.ParseInLocation(HourBucketLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid hour bucket %q: %w", key, err)
	}
	return t, nil
}

// ParseDayBucket returns the start of the day named by key
func ParseDayBucket(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayBucketLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day bucket %q: %w", key, err)
	}
	return t, nil
}
