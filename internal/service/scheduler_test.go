package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitorbadge/internal/mocks"
	"visitorbadge/internal/repository"
)

func TestCleanupScheduler_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	require.NoError(t, repo.Entity(BadgeEntityID("a")).SetAlarm(ctx, testNow.Add(-time.Hour)))
	require.NoError(t, repo.Entity(BadgeEntityID("b")).SetAlarm(ctx, testNow.Add(-time.Minute)))
	require.NoError(t, repo.Entity(BadgeEntityID("later")).SetAlarm(ctx, testNow.Add(time.Hour)))
	require.NoError(t, repo.Entity("limiter:x").SetAlarm(ctx, testNow.Add(-time.Hour)))

	runner := mocks.NewMockCleanupRunnerInterface(ctrl)
	runner.EXPECT().RunScheduledCleanup(gomock.Any(), "a").Return(nil)
	runner.EXPECT().RunScheduledCleanup(gomock.Any(), "b").Return(assert.AnError)

	s := NewCleanupScheduler(repo, runner, time.Minute, 10)
	s.now = func() time.Time { return testNow }

	done, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, done)
}

func TestCleanupScheduler_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorageProvider(ctrl)
	storage.EXPECT().DueAlarms(gomock.Any(), gomock.Any(), 100).Return(nil, assert.AnError)

	s := NewCleanupScheduler(storage, mocks.NewMockCleanupRunnerInterface(ctrl), time.Minute, 0)
	_, err := s.Sweep(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCleanupScheduler_RearmsAlarms(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	clock := newTestClock(testNow)
	svc := newTestService(repo, clock)

	_, err := svc.FetchAndIncrement(ctx, "p", hit("10.0.0.1"))
	require.NoError(t, err)

	s := NewCleanupScheduler(repo, svc, time.Minute, 10)
	s.now = clock.Now

	done, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, done, "first cleanup is not due yet")

	clock.Advance(DefaultCleanupInterval)
	done, err = s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, done)

	done, err = s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, done, "alarm moved to the next interval")

	ids, err := repo.DueAlarms(ctx, clock.Now().Add(DefaultCleanupInterval), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{BadgeEntityID("p")}, ids)
}

func TestCleanupScheduler_StartStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorageProvider(ctrl)
	storage.EXPECT().DueAlarms(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	s := NewCleanupScheduler(storage, mocks.NewMockCleanupRunnerInterface(ctrl), 5*time.Millisecond, 10)
	s.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)
}
