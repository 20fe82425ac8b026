package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourBucket(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "utc time",
			input:    time.Date(2026, 10, 19, 7, 45, 12, 0, time.UTC),
			expected: "2026-10-19-07",
		},
		{
			name:     "non utc zone is normalised",
			input:    time.Date(2026, 10, 19, 1, 30, 0, 0, time.FixedZone("UTC-8", -8*3600)),
			expected: "2026-10-19-09",
		},
		{
			name:     "midnight",
			input:    time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			expected: "2026-01-02-00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HourBucket(tt.input))
		})
	}
}

func TestDayBucket(t *testing.T) {
	assert.Equal(t, "2026-10-19", DayBucket(time.Date(2026, 10, 19, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, "2026-10-20", DayBucket(time.Date(2026, 10, 19, 20, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))))
}

func TestParseHourBucket(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		now := time.Date(2026, 10, 19, 7, 45, 12, 0, time.UTC)
		parsed, err := ParseHourBucket(HourBucket(now))
		require.NoError(t, err)
		assert.Equal(t, now.Truncate(time.Hour), parsed)
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := ParseHourBucket("2026-10-19")
		assert.Error(t, err)
	})
}

func TestParseDayBucket(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		parsed, err := ParseDayBucket("2026-10-19")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := ParseDayBucket("19/10/2026")
		assert.Error(t, err)
	})
}
