package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/entity"
)

func TestNewTimerStatus(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

	t.Run("not started", func(t *testing.T) {
		t.Parallel()

		s := entity.NewTimerStatus(entity.Installation{ID: 1}, start)
		require.False(t, s.IsRunning)
		require.Zero(t, s.ElapsedSeconds)
		require.Equal(t, "00:00:00", s.Display)
	})

	t.Run("running matches wall clock delta", func(t *testing.T) {
		t.Parallel()

		inst := entity.Installation{ID: 1, TimerStartedAt: &start}

		var prev int64

		for _, delta := range []time.Duration{0, time.Second, 59 * time.Second, 61 * time.Second, 2*time.Hour + 5*time.Minute + 3*time.Second} {
			s := entity.NewTimerStatus(inst, start.Add(delta))

			require.True(t, s.IsRunning)
			require.Equal(t, int64(delta/time.Second), s.ElapsedSeconds)
			require.Equal(t, s.ElapsedSeconds/60, s.ElapsedMinutes)
			require.GreaterOrEqual(t, s.ElapsedSeconds, prev)

			prev = s.ElapsedSeconds
		}

		s := entity.NewTimerStatus(inst, start.Add(2*time.Hour+5*time.Minute+3*time.Second))
		require.Equal(t, "02:05:03", s.Display)
	})

	t.Run("clock skew never yields negative time", func(t *testing.T) {
		t.Parallel()

		inst := entity.Installation{ID: 1, TimerStartedAt: &start}
		s := entity.NewTimerStatus(inst, start.Add(-time.Minute))
		require.Zero(t, s.ElapsedSeconds)
	})

	t.Run("stopped timer is frozen", func(t *testing.T) {
		t.Parallel()

		end := start.Add(90 * time.Minute)
		inst := entity.Installation{ID: 1, TimerStartedAt: &start, TimerEndedAt: &end}

		s := entity.NewTimerStatus(inst, end.Add(10*time.Hour))
		require.False(t, s.IsRunning)
		require.Equal(t, int64(5400), s.ElapsedSeconds)
		require.Equal(t, int64(90), s.ElapsedMinutes)
	})
}

func TestInstallation_Timer(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

	var inst entity.Installation

	require.ErrorIs(t, inst.StopTimer(start), entity.ErrTimerNotStarted)

	started, err := inst.StartTimer(entity.TimerByTechnician, start)
	require.NoError(t, err)
	require.True(t, started)

	started, err = inst.StartTimer(entity.TimerByAdmin, start.Add(time.Minute))
	require.NoError(t, err)
	require.False(t, started)
	require.Equal(t, entity.TimerByTechnician, *inst.TimerStartedBy)
	require.True(t, start.Equal(*inst.TimerStartedAt))

	require.NoError(t, inst.StopTimer(start.Add(45*time.Minute+30*time.Second)))
	require.Equal(t, 46, *inst.DurationMinutes)

	require.ErrorIs(t, inst.StopTimer(start.Add(time.Hour)), entity.ErrTimerAlreadyStopped)

	_, err = inst.StartTimer("robot", start)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestDurationMinutes(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, 0, entity.DurationMinutes(start, start.Add(29*time.Second)))
	require.Equal(t, 1, entity.DurationMinutes(start, start.Add(30*time.Second)))
	require.Equal(t, 60, entity.DurationMinutes(start, start.Add(time.Hour)))
	require.Equal(t, 0, entity.DurationMinutes(start, start.Add(-time.Hour)))
}
