// Package period resolves named analytics periods into absolute UTC
// intervals using a fixed shop timezone offset. The offset arithmetic is
// deliberately isolated here so a tz-database lookup could replace it
// without touching callers.
package period

import "time"

// Kind names an analytics time window.
type Kind string

const (
	Today  Kind = "today"
	Week   Kind = "week"
	Month  Kind = "month"
	Custom Kind = "custom"
)

// ParseKind maps a query-string value to a Kind, defaulting to Today.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case Week, Month, Custom:
		return Kind(s)
	default:
		return Today
	}
}

// Range is a half-open UTC interval [Start, End). End is always exclusive
// and always one calendar day past the last included local day.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

const dateLayout = "2006-01-02"

// Resolver converts named periods to UTC ranges for a shop operating at a
// fixed offset from UTC (e.g. +05:30 = 330 minutes).
type Resolver struct {
	offset time.Duration
}

// NewResolver creates a resolver for the given offset east of UTC, in minutes.
func NewResolver(offsetMinutes int) *Resolver {
	return &Resolver{offset: time.Duration(offsetMinutes) * time.Minute}
}

// Resolve computes the UTC range for the given period kind relative to now.
// For Custom, start and end are local YYYY-MM-DD dates; if either is missing
// or malformed the range silently falls back to Today.
func (r *Resolver) Resolve(kind Kind, now time.Time, customStart, customEnd string) Range {
	local := now.UTC().Add(r.offset)
	y, m, d := local.Date()

	switch kind {
	case Week:
		// Weekday index 0 = Sunday, matching the shop's week convention.
		wd := int(local.Weekday())
		return Range{
			Start: r.localMidnight(y, m, d-wd),
			End:   r.localMidnight(y, m, d+1),
		}
	case Month:
		return Range{
			Start: r.localMidnight(y, m, 1),
			End:   r.localMidnight(y, m, d+1),
		}
	case Custom:
		start, serr := time.Parse(dateLayout, customStart)
		end, eerr := time.Parse(dateLayout, customEnd)
		if serr != nil || eerr != nil {
			break
		}
		sy, sm, sd := start.Date()
		ey, em, ed := end.Date()
		return Range{
			Start: r.localMidnight(sy, sm, sd),
			End:   r.localMidnight(ey, em, ed+1),
		}
	}

	return Range{
		Start: r.localMidnight(y, m, d),
		End:   r.localMidnight(y, m, d+1),
	}
}

// Local shifts t to shop-local wall time. The result is still marked UTC;
// only the wall-clock fields matter to callers formatting dates.
func (r *Resolver) Local(t time.Time) time.Time {
	return t.UTC().Add(r.offset)
}

// LocalDate formats t as the shop-local calendar date (YYYY-MM-DD). Daily
// analytics buckets and single-date filters both use this so a late-night
// sale lands on the local day it was made.
func (r *Resolver) LocalDate(t time.Time) string {
	return r.Local(t).Format(dateLayout)
}

// localMidnight returns midnight of the given local calendar day as a UTC
// instant. time.Date normalizes out-of-range days, so d+1 and d-weekday
// roll over month and year boundaries correctly.
func (r *Resolver) localMidnight(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Add(-r.offset)
}
