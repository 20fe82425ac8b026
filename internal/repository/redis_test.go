package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitorbadge/internal/config"
)

func newTestRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	return &RedisRepository{
		client: client,
		cfg: &config.RedisConfig{
			Addr:     s.Addr(),
			Password: "",
			DB:       0,
		},
	}, s
}

func TestNewRedisRepository(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	cfg := &config.RedisConfig{
		Addr:     s.Addr(),
		Password: "",
		DB:       0,
	}

	repo := NewRedisRepository(cfg)

	assert.NotNil(t, repo)
	assert.Equal(t, cfg, repo.cfg)

	// Close connection after test
	repo.Close()
}

func TestRedisRepository_Records(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()
	storage := repo.Entity("badge:test")

	t.Run("missing field", func(t *testing.T) {
		_, err := storage.Get(ctx, "analytics")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, storage.Put(ctx, "analytics", []byte(`{"totalHits":1}`)))

		val, err := storage.Get(ctx, "analytics")
		require.NoError(t, err)
		assert.Equal(t, `{"totalHits":1}`, string(val))
		assert.Equal(t, `{"totalHits":1}`, s.HGet(EntityKeyPrefix+"badge:test", "analytics"))
	})

	t.Run("fields are scoped per entity", func(t *testing.T) {
		_, err := repo.Entity("badge:other").Get(ctx, "analytics")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("connection error", func(t *testing.T) {
		s.SetError("boom")
		defer s.SetError("")

		_, err := storage.Get(ctx, "analytics")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestRedisRepository_DueAlarms(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Entity("late").SetAlarm(ctx, now.Add(-time.Minute)))
	require.NoError(t, repo.Entity("early").SetAlarm(ctx, now.Add(-time.Hour)))
	require.NoError(t, repo.Entity("future").SetAlarm(ctx, now.Add(time.Hour)))

	ids, err := repo.DueAlarms(ctx, now, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"early", "late"}, ids)

	ids, err = repo.DueAlarms(ctx, now, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"early"}, ids)

	// Rescheduling replaces the previous alarm
	require.NoError(t, repo.Entity("early").SetAlarm(ctx, now.Add(2*time.Hour)))
	ids, err = repo.DueAlarms(ctx, now, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"late"}, ids)
}

func TestRedisRepository_GetLegacyCount(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, s.Set("1916fc9ec5d0376496596d7f145dace2", "150"))

	val, ok, err := repo.GetLegacyCount(ctx, "1916fc9ec5d0376496596d7f145dace2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "150", val)

	val, ok, err = repo.GetLegacyCount(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}
