package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/pkg/timezone"
)

func TestDateOf(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name    string
		instant time.Time
		want    string
	}{
		{
			name:    "utc late evening is still the same day in Colombia",
			instant: time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC),
			want:    "2024-03-15",
		},
		{
			name:    "utc early morning belongs to the previous Colombia day",
			instant: time.Date(2024, 3, 16, 3, 0, 0, 0, time.UTC),
			want:    "2024-03-15",
		},
		{
			name:    "utc 05:00 is Colombia midnight",
			instant: time.Date(2024, 3, 16, 5, 0, 0, 0, time.UTC),
			want:    "2024-03-16",
		},
		{
			name:    "host zone is irrelevant",
			instant: time.Date(2024, 3, 16, 18, 0, 0, 0, tokyo),
			want:    "2024-03-16",
		},
		{
			name:    "year boundary",
			instant: time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC),
			want:    "2024-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := timezone.DateOf(tt.instant)
			require.Equal(t, tt.want, got.Format(time.DateOnly))
			require.Equal(t, tt.want, timezone.FormatDate(tt.instant))
			require.Zero(t, got.Hour())
		})
	}
}

func TestDayRangeUTC(t *testing.T) {
	t.Parallel()

	day, err := timezone.ParseDate("2024-06-01")
	require.NoError(t, err)

	start, end := timezone.DayRangeUTC(day)

	require.Equal(t, time.Date(2024, 6, 1, 5, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2024, 6, 2, 5, 0, 0, 0, time.UTC), end)
	require.Equal(t, time.UTC, start.Location())

	// 21:00 on June 1 in Bogotá is already June 2 in UTC.
	evening := time.Date(2024, 6, 2, 2, 0, 0, 0, time.UTC)

	start, end = timezone.DayRangeUTC(evening)
	require.Equal(t, time.Date(2024, 6, 1, 5, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2024, 6, 2, 5, 0, 0, 0, time.UTC), end)
}

func TestToColombia(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	got := timezone.ToColombia(in)

	require.True(t, in.Equal(got))
	require.Equal(t, 7, got.Hour())

	_, off := got.Zone()
	require.Equal(t, -5*60*60, off)
}

func TestNowAndToday(t *testing.T) {
	t.Parallel()

	now := timezone.Now()
	today := timezone.Today()

	_, off := now.Zone()
	require.Equal(t, -5*60*60, off)
	require.False(t, today.After(now))
	require.Less(t, now.Sub(today), 24*time.Hour)
}
