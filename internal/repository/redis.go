package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"visitorbadge/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	EntityKeyPrefix = "badge:entity:"
	AlarmsKey       = "badge:alarms"
)

// RedisRepository stores entity records as one hash per entity and
// alarms in a sorted set scored by fire time (unix ms).
// It also serves legacy flat counters with plain GET.
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Str("addr", cfg.Addr).Msg("Failed to connect to Redis")
	} else {
		log.Info().Str("addr", cfg.Addr).Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// Entity returns storage scoped to entityID
func (r *RedisRepository) Entity(entityID string) EntityStorage {
	return Scope(r, entityID)
}

// GetRecord reads one field of an entity
func (r *RedisRepository) GetRecord(ctx context.Context, entityID, field string) ([]byte, error) {
	val, err := r.client.HGet(ctx, r.entityKey(entityID), field).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// PutRecord writes one field of an entity
func (r *RedisRepository) PutRecord(ctx context.Context, entityID, field string, value []byte) error {
	return r.client.HSet(ctx, r.entityKey(entityID), field, value).Err()
}

// SetAlarm replaces the alarm of an entity
func (r *RedisRepository) SetAlarm(ctx context.Context, entityID string, at time.Time) error {
	return r.client.ZAdd(ctx, AlarmsKey, redis.Z{
		Score:  float64(at.UnixMilli()),
		Member: entityID,
	}).Err()
}

// DueAlarms returns entity ids whose alarm time has passed, oldest first
func (r *RedisRepository) DueAlarms(ctx context.Context, now time.Time, limit int) ([]string, error) {
	return r.client.ZRangeByScore(ctx, AlarmsKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.UnixMilli(), 10),
		Count: int64(limit),
	}).Result()
}

// GetLegacyCount reads a legacy flat counter. The bool is false when the key is absent.
func (r *RedisRepository) GetLegacyCount(ctx context.Context, hashedKey string) (string, bool, error) {
	val, err := r.client.Get(ctx, hashedKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) entityKey(entityID string) string {
	return EntityKeyPrefix + entityID
}
