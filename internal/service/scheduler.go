package service

import (
	"context"
	"time"

	"visitorbadge/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultSweepConcurrency = 8

// CleanupScheduler fires due cleanup alarms
type CleanupScheduler struct {
	storage     repository.StorageProvider
	runner      CleanupRunnerInterface
	interval    time.Duration
	batch       int
	concurrency int
	now         func() time.Time
}

// NewCleanupScheduler creates a scheduler that polls for due alarms every interval
func NewCleanupScheduler(storage repository.StorageProvider, runner CleanupRunnerInterface, interval time.Duration, batch int) *CleanupScheduler {
	if batch <= 0 {
		batch = 100
	}
	return &CleanupScheduler{
		storage:     storage,
		runner:      runner,
		interval:    interval,
		batch:       batch,
		concurrency: defaultSweepConcurrency,
		now:         time.Now,
	}
}

// Sweep runs cleanup for every due badge and returns how many succeeded.
// Failed badges keep their alarm and are retried on the next sweep.
func (s *CleanupScheduler) Sweep(ctx context.Context) (int, error) {
	ids, err := s.storage.DueAlarms(ctx, s.now(), s.batch)
	if err != nil {
		return 0, err
	}

	results := make(chan bool, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, id := range ids {
		pageID, ok := PageIDFromEntity(id)
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := s.runner.RunScheduledCleanup(gctx, pageID); err != nil {
				log.Error().Err(err).Str("page_id", pageID).Msg("Scheduled cleanup failed")
				results <- false
				return nil
			}
			results <- true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	close(results)

	done := 0
	for ok := range results {
		if ok {
			done++
		}
	}
	return done, nil
}

// Start sweeps every interval until ctx is done
func (s *CleanupScheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := s.Sweep(ctx)
				if err != nil {
					log.Error().Err(err).Msg("Failed to list due cleanups")
					continue
				}
				if n > 0 {
					log.Info().Int("count", n).Msg("Scheduled cleanups completed")
				}
			}
		}
	}()
}
