package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventSignup/internal/lib/logger/handlers/slogdiscard"
)

func TestRunOnStart(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	s := New(slogdiscard.NewDiscardLogger(), Job{
		Name:       "once",
		Interval:   time.Hour,
		RunOnStart: true,
		Run: func(context.Context) error {
			runs.Add(1)
			return nil
		},
	})
	s.Start(ctx)

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	s.Wait()

	assert.Equal(t, int32(1), runs.Load())
}

func TestRunsNeverOverlap(t *testing.T) {
	t.Parallel()

	var (
		active  atomic.Int32
		maxSeen atomic.Int32
		runs    atomic.Int32
	)
	ctx, cancel := context.WithCancel(context.Background())

	s := New(slogdiscard.NewDiscardLogger(), Job{
		Name:     "slow",
		Interval: time.Millisecond,
		Run: func(context.Context) error {
			n := active.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(10 * time.Millisecond)
			active.Add(-1)
			runs.Add(1)
			return nil
		},
	})
	s.Start(ctx)

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	s.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestFailingJobKeepsRunning(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	s := New(slogdiscard.NewDiscardLogger(), Job{
		Name:     "flaky",
		Interval: time.Millisecond,
		Run: func(context.Context) error {
			runs.Add(1)
			return errors.New("boom")
		},
	})
	s.Start(ctx)

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	s.Wait()
}

func TestDisabledJob(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(slogdiscard.NewDiscardLogger(), Job{
		Name:       "off",
		RunOnStart: true,
		Run: func(context.Context) error {
			t.Error("disabled job ran")
			return nil
		},
	})
	s.Start(ctx)
	cancel()
	s.Wait()
}
