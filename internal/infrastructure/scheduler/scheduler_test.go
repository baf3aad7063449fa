package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"estudio_admin/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	s := New(context.Background(), Options{})

	require.NoError(t, s.Register("overdue-installments", "0 9 * * *", func(context.Context) error { return nil }))
	assert.Equal(t, 1, s.Entries())

	assert.ErrorIs(t, s.Register(" ", "0 9 * * *", nil), ErrEmptyJobName)
	assert.Error(t, s.Register("broken", "every day", func(context.Context) error { return nil }))
	assert.Equal(t, 1, s.Entries())
}

func TestRunRecordsOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := New(context.Background(), Options{Metrics: metrics.NewCronJobMetrics(reg), Timeout: time.Second})

	var sawDeadline bool
	require.NoError(t, s.Run("ok", func(ctx context.Context) error {
		_, sawDeadline = ctx.Deadline()
		return nil
	}))
	assert.True(t, sawDeadline)

	boom := errors.New("boom")
	assert.ErrorIs(t, s.Run("fails", func(context.Context) error { return boom }), boom)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	assert.True(t, names["job_success"])
	assert.True(t, names["job_failure"])
	assert.True(t, names["job_duration_seconds"])
}

func TestStartStop(t *testing.T) {
	s := New(context.Background(), Options{})
	s.Start()
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stop did not return")
	}
}
