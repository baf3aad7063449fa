package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"estudio_admin/internal/infrastructure/metrics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrEmptyJobName = errors.New("job name is required")

// JobFunc is one scheduled unit of work.
type JobFunc func(ctx context.Context) error

// Scheduler runs named jobs on cron specs. Overlapping runs of the same job
// are skipped and panics are recovered, both reported through zerolog.
type Scheduler struct {
	cron    *cron.Cron
	metrics *metrics.CronJobMetrics
	ctx     context.Context
	timeout time.Duration
}

type Options struct {
	Location *time.Location
	Metrics  *metrics.CronJobMetrics
	// Timeout bounds each run; zero means no deadline.
	Timeout time.Duration
}

func New(ctx context.Context, opts Options) *Scheduler {
	if ctx == nil {
		ctx = context.Background()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	logger := cronLogger{log: log.With().Str("component", "scheduler").Logger()}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	return &Scheduler{cron: c, metrics: opts.Metrics, ctx: ctx, timeout: opts.Timeout}
}

// Register adds a job. The spec uses the standard five-field cron syntax.
func (s *Scheduler) Register(name, spec string, job JobFunc) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyJobName
	}
	if _, err := s.cron.AddFunc(spec, func() { _ = s.Run(name, job) }); err != nil {
		return fmt.Errorf("register job %s with spec %q: %w", name, spec, err)
	}
	log.Info().Str("component", "scheduler").Str("job", name).Str("spec", spec).Msg("job registered")
	return nil
}

// Run executes job once, synchronously, recording duration and outcome.
func (s *Scheduler) Run(name string, job JobFunc) error {
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	logger := log.With().Str("component", "scheduler").Str("job", name).Logger()
	logger.Info().Msg("job start")
	start := time.Now()
	err := job(ctx)
	duration := time.Since(start)
	s.metrics.ObserveDuration(name, duration)
	if err != nil {
		logger.Error().Err(err).Int64("duration_ms", duration.Milliseconds()).Msg("job failed")
		s.metrics.IncFailure(name)
		return err
	}
	logger.Info().Int64("duration_ms", duration.Milliseconds()).Msg("job completed")
	s.metrics.IncSuccess(name)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and returns once the running ones finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
