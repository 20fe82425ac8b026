package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitorbadge/internal/mocks"
	"visitorbadge/internal/model"
	"visitorbadge/internal/mq"
	"visitorbadge/internal/repository"
	"visitorbadge/pkg/util"
)

func newTestService(repo repository.StorageProvider, clock *testClock) *BadgeService {
	return NewBadgeService(Options{
		Storage: repo,
		Badge:   BadgeOptions{Now: clock.Now},
		IdleTTL: time.Minute,
	})
}

func TestBadgeService_ConcurrentHits(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := newTestService(repo, newTestClock(testNow))
	ctx := context.Background()

	const perPage = 100
	var wg sync.WaitGroup
	for _, page := range []string{"a", "b"} {
		for i := 0; i < perPage; i++ {
			wg.Add(1)
			go func(page string) {
				defer wg.Done()
				_, err := svc.FetchAndIncrement(ctx, page, hit("10.0.0.1"))
				assert.NoError(t, err)
			}(page)
		}
	}
	wg.Wait()

	for _, page := range []string{"a", "b"} {
		count, err := svc.FetchCount(ctx, page)
		require.NoError(t, err)
		assert.Equal(t, int64(perPage), count, page)
	}

	count, err := svc.FetchCount(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestBadgeService_Scenario(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := newTestService(repo, newTestClock(testNow))
	ctx := context.Background()

	exists, err := svc.Exists(ctx, "x")
	require.NoError(t, err)
	assert.False(t, exists)

	for i := 0; i < 3; i++ {
		_, err := svc.FetchAndIncrement(ctx, "x", hit("10.0.0.1"))
		require.NoError(t, err)
	}

	exists, err = svc.Exists(ctx, "x")
	require.NoError(t, err)
	assert.True(t, exists)

	summary, err := svc.GetSummary(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalHits)
	assert.Equal(t, int64(3), summary.HitsLast24Hours)

	full, err := svc.GetFull(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", full.PageID)

	_, err = svc.GetSummary(ctx, "missing")
	assert.ErrorIs(t, err, ErrNoData)
	_, err = svc.GetFull(ctx, "missing")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBadgeService_InvalidPageID(t *testing.T) {
	svc := newTestService(repository.NewMemoryRepository(), newTestClock(testNow))
	ctx := context.Background()
	long := strings.Repeat("p", maxPageIDLength+1)

	for _, pageID := range []string{"", long} {
		_, err := svc.FetchCount(ctx, pageID)
		assert.ErrorIs(t, err, ErrInvalidPageID)
		_, err = svc.FetchAndIncrement(ctx, pageID, hit("10.0.0.1"))
		assert.ErrorIs(t, err, ErrInvalidPageID)
		_, err = svc.GetSummary(ctx, pageID)
		assert.ErrorIs(t, err, ErrInvalidPageID)
		_, err = svc.Exists(ctx, pageID)
		assert.ErrorIs(t, err, ErrInvalidPageID)
		_, err = svc.GetFull(ctx, pageID)
		assert.ErrorIs(t, err, ErrInvalidPageID)
		_, err = svc.CheckRateLimit(ctx, pageID, model.LimitBadge)
		assert.ErrorIs(t, err, ErrInvalidPageID)
	}

	_, err := svc.CheckRateLimitKey(ctx, "", model.RateLimitConfig{MaxRequests: 1, WindowMs: 1})
	assert.ErrorIs(t, err, ErrInvalidPageID)
}

func TestBadgeService_RateLimitClasses(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewBadgeService(Options{
		Storage: repo,
		Limits: map[model.LimitClass]model.RateLimitConfig{
			model.LimitBadge:     {MaxRequests: 2, WindowMs: 60_000},
			model.LimitAnalytics: {MaxRequests: 1, WindowMs: 60_000},
		},
		Badge: BadgeOptions{Now: newTestClock(testNow).Now},
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		r, err := svc.CheckRateLimit(ctx, "p", model.LimitBadge)
		require.NoError(t, err)
		assert.True(t, r.Allowed)
	}
	r, err := svc.CheckRateLimit(ctx, "p", model.LimitBadge)
	require.NoError(t, err)
	assert.False(t, r.Allowed)
	assert.Equal(t, 2, r.Limit)

	r, err = svc.CheckRateLimit(ctx, "p", model.LimitAnalytics)
	require.NoError(t, err)
	assert.True(t, r.Allowed, "classes are limited independently")

	r, err = svc.CheckRateLimit(ctx, "other", model.LimitBadge)
	require.NoError(t, err)
	assert.True(t, r.Allowed, "page ids are limited independently")

	_, err = svc.CheckRateLimit(ctx, "p", model.LimitClass("unknown"))
	assert.ErrorIs(t, err, ErrInvalidRateLimit)

	// Limiter state never touches the badge record
	exists, err := svc.Exists(ctx, "p")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBadgeService_PublishesHits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := mocks.NewMockProducerInterface(ctrl)
	svc := NewBadgeService(Options{
		Storage:  repository.NewMemoryRepository(),
		Producer: producer,
		Badge:    BadgeOptions{Now: newTestClock(testNow).Now},
	})
	ctx := context.Background()

	gomock.InOrder(
		producer.EXPECT().SendHit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg *mq.HitMessage) error {
				assert.NotEmpty(t, msg.MessageID)
				assert.Equal(t, "p", msg.PageID)
				assert.Equal(t, util.VisitorKey("10.0.0.1", "2026-10-19"), msg.VisitorKey)
				assert.Equal(t, "github.com", msg.Referrer)
				assert.Equal(t, "Chrome", msg.UserAgent)
				assert.Equal(t, "Linux", msg.Platform)
				assert.Equal(t, int64(1), msg.Count)
				assert.True(t, testNow.Equal(msg.HitTime))
				return nil
			}),
		producer.EXPECT().SendHit(gomock.Any(), gomock.Any()).Return(assert.AnError),
	)

	count, err := svc.FetchAndIncrement(ctx, "p", hit("10.0.0.1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.FetchAndIncrement(ctx, "p", hit("10.0.0.1"))
	require.NoError(t, err, "publish failures never fail the hit")
	assert.Equal(t, int64(2), count)

	// Reads publish nothing
	_, err = svc.FetchCount(ctx, "p")
	require.NoError(t, err)
}

func TestBadgeService_FailedHitIsNotPublished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorageProvider(ctrl)
	entity := mocks.NewMockEntityStorage(ctrl)
	producer := mocks.NewMockProducerInterface(ctrl)

	storage.EXPECT().Entity(BadgeEntityID("p")).Return(entity)
	entity.EXPECT().Get(gomock.Any(), AnalyticsField).Return(nil, assert.AnError)

	svc := NewBadgeService(Options{Storage: storage, Producer: producer})
	_, err := svc.FetchAndIncrement(context.Background(), "p", hit("10.0.0.1"))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestEntityIDs(t *testing.T) {
	assert.Equal(t, "ratelimit:badge:user.repo", RateLimitKey(model.LimitBadge, "user.repo"))
	assert.Equal(t, "ratelimit:analytics:user.repo", RateLimitKey(model.LimitAnalytics, "user.repo"))

	pageID, ok := PageIDFromEntity(BadgeEntityID("user.repo"))
	assert.True(t, ok)
	assert.Equal(t, "user.repo", pageID)

	_, ok = PageIDFromEntity("limiter:ratelimit:badge:user.repo")
	assert.False(t, ok)
}

func TestBadgeService_KeyedLimitCannotDrainPageQuota(t *testing.T) {
	svc := newTestService(repository.NewMemoryRepository(), newTestClock(testNow))
	ctx := context.Background()
	huge := model.RateLimitConfig{MaxRequests: MaxKeyedRequests, WindowMs: 60_000}

	victimKey := RateLimitKey(model.LimitBadge, "victim")
	for i := 0; i < 61; i++ {
		_, err := svc.CheckRateLimitKey(ctx, victimKey, huge)
		require.ErrorIs(t, err, ErrReservedKey)
	}

	r, err := svc.CheckRateLimit(ctx, "victim", model.LimitBadge)
	require.NoError(t, err)
	assert.True(t, r.Allowed)
	assert.Equal(t, DefaultLimits[model.LimitBadge].MaxRequests-1, r.Remaining)
}

func TestBadgeService_CheckRateLimitKey(t *testing.T) {
	svc := newTestService(repository.NewMemoryRepository(), newTestClock(testNow))
	ctx := context.Background()

	r, err := svc.CheckRateLimitKey(ctx, "webhook:abc", model.RateLimitConfig{MaxRequests: 1, WindowMs: 1000})
	require.NoError(t, err)
	assert.True(t, r.Allowed)

	r, err = svc.CheckRateLimitKey(ctx, "webhook:abc", model.RateLimitConfig{MaxRequests: 1, WindowMs: 1000})
	require.NoError(t, err)
	assert.False(t, r.Allowed)

	_, err = svc.CheckRateLimitKey(ctx, "webhook:abc", model.RateLimitConfig{MaxRequests: MaxKeyedRequests + 1, WindowMs: 1000})
	assert.ErrorIs(t, err, ErrInvalidRateLimit)

	_, err = svc.CheckRateLimitKey(ctx, strings.Repeat("k", maxPageIDLength+1), model.RateLimitConfig{MaxRequests: 1, WindowMs: 1000})
	assert.ErrorIs(t, err, ErrInvalidPageID)
}
