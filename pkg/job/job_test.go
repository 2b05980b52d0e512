package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/pkg/job"
)

func TestService_RunsUntilCancelled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())

	s := job.NewService().
		RegisterJob("counter", 10*time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		RegisterJob("failing", 10*time.Millisecond, func(context.Context) error {
			return errors.New("boom")
		}).
		RegisterJob("panicking", 10*time.Millisecond, func(context.Context) error {
			panic("boom")
		})

	s.Start(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	s.Stop()
}

func TestService_TryRegisterJobDisabled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())

	s := job.NewService().
		TryRegisterJob(false, "off", time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		TryRegisterJob(true, "zero interval", 0, func(context.Context) error {
			calls.Add(1)
			return nil
		})

	s.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	s.Stop()

	require.Zero(t, calls.Load())
}
