// Package timezone converts instants to Colombia local time. Results never depend on the host TZ.
package timezone

import (
	"time"
	// America/Bogota must resolve on hosts without a zoneinfo database.
	_ "time/tzdata"
)

const (
	Name   = "America/Bogota"
	offset = -5 * 60 * 60
)

// Colombia is America/Bogota. Colombia has no DST, so the fixed fallback is exact.
var Colombia = load()

func load() *time.Location {
	loc, err := time.LoadLocation(Name)
	if err != nil {
		return time.FixedZone("COT", offset)
	}

	return loc
}

// Now returns the current instant in Colombia time.
func Now() time.Time {
	return time.Now().In(Colombia)
}

// Today returns midnight of the current Colombia date, in Colombia time.
func Today() time.Time {
	return DateOf(time.Now())
}

// ToColombia converts t to Colombia time.
func ToColombia(t time.Time) time.Time {
	return t.In(Colombia)
}

// DateOf returns midnight (Colombia) of the Colombia calendar date containing t.
func DateOf(t time.Time) time.Time {
	y, m, d := t.In(Colombia).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, Colombia)
}

// Date builds the Colombia midnight for a calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, Colombia)
}

// DayRangeUTC returns the UTC [start, end) interval covering the Colombia date of day.
func DayRangeUTC(day time.Time) (time.Time, time.Time) {
	y, m, d := day.In(Colombia).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, Colombia)

	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// ParseDate parses a YYYY-MM-DD string as a Colombia calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, Colombia)
}

// FormatDate formats the Colombia calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.In(Colombia).Format(time.DateOnly)
}
