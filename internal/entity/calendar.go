package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/zafesys/suite/pkg/timezone"
)

// Date is a Colombia calendar date, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: timezone.DateOf(t)}
}

func ParseDate(s string) (Date, error) {
	t, err := timezone.ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q", ErrInvalidArgument, s)
	}

	return Date{Time: t}, nil
}

// FromCivil keeps the year, month and day of t whatever its location.
func FromCivil(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: timezone.Date(y, m, d)}
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

// Civil is the date at UTC midnight, as stored in DATE columns.
func (d Date) Civil() time.Time {
	y, m, dd := d.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string

	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	v, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = v

	return nil
}

// Week is a Monday to Sunday calendar week.
type Week struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// WeekOf returns the week containing date, shifted by offset weeks.
func WeekOf(date Date, offset int) Week {
	shift := (int(date.Weekday()) + 6) % 7
	start := date.AddDays(-shift + 7*offset)

	return Week{Start: start, End: start.AddDays(6)}
}

func (w Week) Days() []Date {
	days := make([]Date, 7)
	for i := range days {
		days[i] = w.Start.AddDays(i)
	}

	return days
}

// CalendarDay is one day of the installations calendar.
type CalendarDay struct {
	Date          Date           `json:"date"`
	Installations []Installation `json:"installations"`
}

type CalendarWeek struct {
	Week
	Days []CalendarDay `json:"days"`
}

// BuildCalendarWeek places installations on the days of the week. Unscheduled
// or out-of-week installations are skipped. Every day has a non-nil slice.
func BuildCalendarWeek(w Week, installations []Installation) CalendarWeek {
	days := w.Days()
	idx := make(map[string]int, len(days))
	out := CalendarWeek{Week: w, Days: make([]CalendarDay, len(days))}

	for i, d := range days {
		idx[d.String()] = i
		out.Days[i] = CalendarDay{Date: d, Installations: []Installation{}}
	}

	for _, inst := range installations {
		if inst.ScheduledDate == nil {
			continue
		}

		i, ok := idx[inst.ScheduledDate.String()]
		if !ok {
			continue
		}

		out.Days[i].Installations = append(out.Days[i].Installations, inst)
	}

	return out
}
