package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/weather-net-bot/internal/domain"
	"github.com/couchcryptid/weather-net-bot/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Publisher sends bulletin chunks to the destination channel.
type Publisher interface {
	VerifyAccess(ctx context.Context) error
	PublishChunks(ctx context.Context, chunks []string) error
}

// BulletinMirror archives each published bulletin to a secondary sink.
type BulletinMirror interface {
	MirrorBulletin(ctx context.Context, postedAt time.Time, chunks []string) error
}

const maxAccessAttempts = 5

// Scheduler owns the periodic loop: verify the destination, run one cycle
// immediately, then one per interval until the context is cancelled. The
// loop is a single goroutine, so at most one cycle ever runs at a time; a
// tick that fires during a long cycle sits in the ticker's one-slot buffer
// and starts the next cycle immediately after, and ticks beyond that are
// dropped.
type Scheduler struct {
	composer  *Composer
	publisher Publisher
	mirror    BulletinMirror // nil disables mirroring
	clock     clockwork.Clock
	interval  time.Duration
	chunkLen  int
	logger    *slog.Logger
	metrics   *observability.Metrics
	published atomic.Bool
}

// NewScheduler wires the bulletin loop. Pass a nil mirror when the Kafka
// sink is disabled.
func NewScheduler(
	composer *Composer,
	publisher Publisher,
	mirror BulletinMirror,
	clock clockwork.Clock,
	interval time.Duration,
	chunkLen int,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Scheduler {
	return &Scheduler{
		composer:  composer,
		publisher: publisher,
		mirror:    mirror,
		clock:     clock,
		interval:  interval,
		chunkLen:  chunkLen,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once the first bulletin has been published.
func (s *Scheduler) CheckReadiness(_ context.Context) error {
	if !s.published.Load() {
		return errors.New("no bulletin published yet")
	}
	return nil
}

// Run executes the loop until ctx is cancelled. A failed cycle is counted
// and logged, never fatal; only startup access verification can make Run
// return an error.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.waitForAccess(ctx); err != nil {
		return err
	}

	s.metrics.SchedulerRunning.Set(1)
	defer s.metrics.SchedulerRunning.Set(0)
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCycle(ctx)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
			s.runCycle(ctx)
		}
	}
}

// RunOnce verifies channel access and runs exactly one cycle, returning its
// error. Used as a deploy-time connectivity and permission check.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if err := s.publisher.VerifyAccess(ctx); err != nil {
		return fmt.Errorf("verify channel access: %w", err)
	}
	return s.cycle(ctx)
}

func (s *Scheduler) runCycle(ctx context.Context) {
	if err := s.cycle(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.metrics.CycleErrors.Inc()
		s.logger.Error("bulletin cycle failed", "error", err)
	}
}

// cycle runs one compose-chunk-publish sequence. Publishing is
// buffer-then-send: the line sequence is fully composed before the first
// chunk goes out, so cancellation mid-compose never leaves a half-published
// bulletin.
func (s *Scheduler) cycle(ctx context.Context) error {
	start := s.clock.Now()
	s.metrics.CyclesTotal.Inc()

	lines, err := s.composer.Compose(ctx)
	if err != nil {
		return fmt.Errorf("compose bulletin: %w", err)
	}

	chunks := domain.ChunkLines(lines, s.chunkLen)
	if err := s.publisher.PublishChunks(ctx, chunks); err != nil {
		s.metrics.PublishErrors.WithLabelValues("discord").Inc()
		return fmt.Errorf("publish bulletin: %w", err)
	}

	s.published.Store(true)
	s.metrics.ChunksPublished.Add(float64(len(chunks)))
	s.metrics.CycleDuration.Observe(s.clock.Since(start).Seconds())

	if s.mirror != nil {
		if err := s.mirror.MirrorBulletin(ctx, start, chunks); err != nil {
			s.metrics.PublishErrors.WithLabelValues("kafka").Inc()
			s.logger.Warn("bulletin mirror failed", "error", err)
		}
	}

	s.logger.Info("bulletin published", "lines", len(lines), "chunks", len(chunks), "duration", s.clock.Since(start))
	return nil
}

// waitForAccess gates the Idle→Running transition: the loop starts only
// once the destination channel is confirmed reachable, retrying with
// backoff through transient startup races (token propagation, networking).
func (s *Scheduler) waitForAccess(ctx context.Context) error {
	backoff := time.Second
	for attempt := 1; ; attempt++ {
		err := s.publisher.VerifyAccess(ctx)
		if err == nil {
			return nil
		}
		if attempt >= maxAccessAttempts {
			return fmt.Errorf("verify channel access: %w", err)
		}
		s.logger.Warn("destination channel not reachable yet", "attempt", attempt, "error", err)
		if err := sleepWithClock(ctx, s.clock, backoff); err != nil {
			return err
		}
		backoff = nextBackoff(backoff, 30*time.Second)
	}
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}
