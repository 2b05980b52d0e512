package entity

import (
	"fmt"
	"time"
)

// TimerStatus is the state of the installation stopwatch at a given instant.
type TimerStatus struct {
	InstallationID  int64           `json:"installation_id"`
	IsRunning       bool            `json:"is_running"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	EndedAt         *time.Time      `json:"ended_at,omitempty"`
	StartedBy       *TimerStartedBy `json:"started_by,omitempty"`
	ElapsedSeconds  int64           `json:"elapsed_seconds"`
	ElapsedMinutes  int64           `json:"elapsed_minutes"`
	DurationMinutes *int            `json:"duration_minutes,omitempty"`
	Display         string          `json:"display"`
}

func NewTimerStatus(i Installation, now time.Time) TimerStatus {
	s := TimerStatus{
		InstallationID:  i.ID,
		StartedAt:       i.TimerStartedAt,
		EndedAt:         i.TimerEndedAt,
		StartedBy:       i.TimerStartedBy,
		DurationMinutes: i.DurationMinutes,
	}

	if i.TimerStartedAt != nil {
		end := now
		if i.TimerEndedAt != nil {
			end = *i.TimerEndedAt
		} else {
			s.IsRunning = true
		}

		s.ElapsedSeconds = ElapsedSeconds(*i.TimerStartedAt, end)
	}

	s.ElapsedMinutes = s.ElapsedSeconds / 60
	s.Display = FormatElapsed(s.ElapsedSeconds)

	return s
}

// ElapsedSeconds is the whole seconds from start to end, never negative.
func ElapsedSeconds(start, end time.Time) int64 {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}

	return int64(d / time.Second)
}

// DurationMinutes rounds a timer span to minutes, halves rounding up.
func DurationMinutes(start, end time.Time) int {
	sec := ElapsedSeconds(start, end)
	return int((sec + 30) / 60)
}

// FormatElapsed renders seconds as HH:MM:SS.
func FormatElapsed(sec int64) string {
	if sec < 0 {
		sec = 0
	}

	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec%3600)/60, sec%60)
}

// StartTimer starts the stopwatch. A running timer is left untouched.
// A stopped timer is restarted from now.
func (i *Installation) StartTimer(by TimerStartedBy, now time.Time) (bool, error) {
	if !by.IsValid() {
		return false, ErrInvalidArgument
	}

	if i.TimerStartedAt != nil && i.TimerEndedAt == nil {
		return false, nil
	}

	t := now.UTC()
	i.TimerStartedAt = &t
	i.TimerEndedAt = nil
	i.TimerStartedBy = &by
	i.DurationMinutes = nil

	return true, nil
}

// StopTimer stops a running stopwatch and stores its duration.
func (i *Installation) StopTimer(now time.Time) error {
	if i.TimerStartedAt == nil {
		return ErrTimerNotStarted
	}

	if i.TimerEndedAt != nil {
		return ErrTimerAlreadyStopped
	}

	t := now.UTC()
	if t.Before(*i.TimerStartedAt) {
		t = *i.TimerStartedAt
	}

	minutes := DurationMinutes(*i.TimerStartedAt, t)
	i.TimerEndedAt = &t
	i.DurationMinutes = &minutes

	return nil
}
