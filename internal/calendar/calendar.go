// Package calendar derives the calendar view from the trip collection: which
// days carry a trip marker, which day is selected, and which trips are active
// on a given day.
//
// A trip's display window is [startdate - 1 day, enddate). Marking starts the
// day before the recorded start and stops the day before the recorded end.
// ActiveOn uses the exact same window so marked days and day-press results
// always agree.
package calendar

import (
	"sort"
	"time"

	"github.com/pkordes/travel-tracker/internal/domain"
)

// DayLayout is the ISO day format trips are stored in.
const DayLayout = "2006-01-02"

// Marker is the per-day state consumed by the calendar widget.
type Marker struct {
	Marked   bool `json:"marked,omitempty"`
	Selected bool `json:"selected,omitempty"`
}

// MarkedDates maps an ISO day to its marker.
type MarkedDates map[string]Marker

// ParseDay parses an ISO day as midnight UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.UTC)
}

// FormatDay renders t's calendar day in ISO form.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// Window returns the half-open display window of trip.
// ok is false when either date is missing or unparseable.
func Window(trip domain.Trip) (from, to time.Time, ok bool) {
	if !trip.HasDates() {
		return time.Time{}, time.Time{}, false
	}
	start, err := ParseDay(trip.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := ParseDay(trip.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start.AddDate(0, 0, -1), end, true
}

// Marks marks every day touched by any trip.
func Marks(trips []domain.Trip) MarkedDates {
	return MarksBetween(trips, time.Time{}, time.Time{})
}

// MarksBetween is like Marks but only emits days in [lo, hi).
// A zero lo or hi leaves that side unbounded. Trip windows themselves are
// never shortened, so a day inside [lo, hi) is marked exactly when ActiveOn
// finds a trip for it.
func MarksBetween(trips []domain.Trip, lo, hi time.Time) MarkedDates {
	out := MarkedDates{}
	for _, trip := range trips {
		from, to, ok := Window(trip)
		if !ok {
			continue
		}
		if !lo.IsZero() && from.Before(lo) {
			from = lo
		}
		if !hi.IsZero() && to.After(hi) {
			to = hi
		}
		for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
			out[FormatDay(d)] = Marker{Marked: true}
		}
	}
	return out
}

// Select returns a copy of m in which only day is selected. Any previous
// selection is cleared; day gets an entry even if no trip marks it.
func (m MarkedDates) Select(day string) MarkedDates {
	out := make(MarkedDates, len(m)+1)
	for k, v := range m {
		v.Selected = false
		out[k] = v
	}
	mk := out[day]
	mk.Selected = true
	out[day] = mk
	return out
}

// Selected returns the selected day, or "" when none is.
func (m MarkedDates) Selected() string {
	for k, v := range m {
		if v.Selected {
			return k
		}
	}
	return ""
}

// Days returns the marked days in ascending order.
func (m MarkedDates) Days() []string {
	days := make([]string, 0, len(m))
	for k, v := range m {
		if v.Marked {
			days = append(days, k)
		}
	}
	sort.Strings(days)
	return days
}

// ActiveOn returns the trips whose display window contains day, in input order.
// Trips missing either date are never active.
func ActiveOn(trips []domain.Trip, day time.Time) []domain.Trip {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	out := []domain.Trip{}
	for _, trip := range trips {
		from, to, ok := Window(trip)
		if !ok {
			continue
		}
		if !day.Before(from) && day.Before(to) {
			out = append(out, trip)
		}
	}
	return out
}
