package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/calendar"
	"github.com/pkordes/travel-tracker/internal/domain"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.ParseDay(s)
	require.NoError(t, err)
	return d
}

func june() domain.Trip {
	return domain.Trip{ID: 1, Title: "Ibiza", StartDate: "2025-06-10", EndDate: "2025-06-12"}
}

func TestMarks_WindowStartsADayEarlyAndExcludesEnd(t *testing.T) {
	marks := calendar.Marks([]domain.Trip{june()})

	assert.Equal(t, []string{"2025-06-09", "2025-06-10", "2025-06-11"}, marks.Days())
	_, hasEnd := marks["2025-06-12"]
	assert.False(t, hasEnd)
}

func TestMarks_CrossesMonthBoundary(t *testing.T) {
	trip := domain.Trip{StartDate: "2025-03-01", EndDate: "2025-03-03"}

	marks := calendar.Marks([]domain.Trip{trip})

	assert.Equal(t, []string{"2025-02-28", "2025-03-01", "2025-03-02"}, marks.Days())
}

func TestMarks_SkipsTripsWithoutBothDates(t *testing.T) {
	trips := []domain.Trip{
		{StartDate: "2025-06-10"},
		{EndDate: "2025-06-12"},
		{StartDate: "not-a-date", EndDate: "2025-06-12"},
		{},
	}

	assert.Empty(t, calendar.Marks(trips))
}

func TestMarks_EndBeforeStartMarksNothing(t *testing.T) {
	trip := domain.Trip{StartDate: "2025-06-12", EndDate: "2025-06-01"}

	assert.Empty(t, calendar.Marks([]domain.Trip{trip}))
}

func TestMarks_SameDayTripMarksOnlyTheDayBefore(t *testing.T) {
	trip := domain.Trip{StartDate: "2025-06-10", EndDate: "2025-06-10"}

	assert.Equal(t, []string{"2025-06-09"}, calendar.Marks([]domain.Trip{trip}).Days())
}

func TestMarks_OverlappingTripsShareOneFlag(t *testing.T) {
	a := june()
	b := domain.Trip{ID: 2, StartDate: "2025-06-11", EndDate: "2025-06-14"}

	marks := calendar.Marks([]domain.Trip{a, b})

	assert.Equal(t,
		[]string{"2025-06-09", "2025-06-10", "2025-06-11", "2025-06-12", "2025-06-13"},
		marks.Days())
	assert.Equal(t, calendar.Marker{Marked: true}, marks["2025-06-11"])
}

func TestMarks_LongSpanMarksEveryDay(t *testing.T) {
	trip := domain.Trip{StartDate: "2025-01-01", EndDate: "2040-01-01"}

	marks := calendar.Marks([]domain.Trip{trip})

	first, last := day(t, "2024-12-31"), day(t, "2040-01-01")
	assert.Len(t, marks, int(last.Sub(first).Hours()/24))
	assert.True(t, marks["2038-06-01"].Marked)
	assert.True(t, marks["2039-12-31"].Marked)
	assert.False(t, marks["2040-01-01"].Marked)
}

func TestMarksBetween_LongSpanAgreesWithActiveOn(t *testing.T) {
	trips := []domain.Trip{{ID: 1, StartDate: "2025-01-01", EndDate: "2040-01-01"}}
	lo, hi := day(t, "2038-05-01"), day(t, "2038-07-01")

	marks := calendar.MarksBetween(trips, lo, hi)

	assert.Len(t, marks, 61)
	for d := lo; d.Before(hi); d = d.AddDate(0, 0, 1) {
		assert.Equal(t, marks[calendar.FormatDay(d)].Marked, len(calendar.ActiveOn(trips, d)) > 0, calendar.FormatDay(d))
	}
}

func TestMarksBetween_Clips(t *testing.T) {
	trip := domain.Trip{StartDate: "2025-05-30", EndDate: "2025-06-03"}

	marks := calendar.MarksBetween([]domain.Trip{trip}, day(t, "2025-06-01"), day(t, "2025-07-01"))

	assert.Equal(t, []string{"2025-06-01", "2025-06-02"}, marks.Days())
}

func TestSelect_ClearsPreviousSelection(t *testing.T) {
	marks := calendar.Marks([]domain.Trip{june()})

	first := marks.Select("2025-06-10")
	second := first.Select("2025-06-20")

	assert.Equal(t, "2025-06-20", second.Selected())
	assert.False(t, second["2025-06-10"].Selected)
	assert.True(t, second["2025-06-10"].Marked, "marking survives selection")
	assert.Equal(t, calendar.Marker{Selected: true}, second["2025-06-20"])

	// Select never mutates its receiver.
	assert.Equal(t, "", marks.Selected())
	assert.Equal(t, "2025-06-10", first.Selected())
}

func TestActiveOn_MatchesMarkingWindow(t *testing.T) {
	trips := []domain.Trip{june()}

	assert.Len(t, calendar.ActiveOn(trips, day(t, "2025-06-09")), 1)
	assert.Len(t, calendar.ActiveOn(trips, day(t, "2025-06-11")), 1)
	assert.Empty(t, calendar.ActiveOn(trips, day(t, "2025-06-12")))
	assert.Empty(t, calendar.ActiveOn(trips, day(t, "2025-06-08")))
}

func TestActiveOn_AgreesWithMarksForEveryDay(t *testing.T) {
	trips := []domain.Trip{
		june(),
		{ID: 2, StartDate: "2025-06-20", EndDate: "2025-06-21"},
		{ID: 3, StartDate: "2025-06-15"},
	}
	marks := calendar.Marks(trips)

	for d := day(t, "2025-06-01"); d.Before(day(t, "2025-07-01")); d = d.AddDate(0, 0, 1) {
		active := calendar.ActiveOn(trips, d)
		assert.Equal(t, marks[calendar.FormatDay(d)].Marked, len(active) > 0, calendar.FormatDay(d))
	}
}

func TestActiveOn_IgnoresTimeOfDay(t *testing.T) {
	evening := time.Date(2025, 6, 11, 21, 30, 0, 0, time.UTC)

	assert.Len(t, calendar.ActiveOn([]domain.Trip{june()}, evening), 1)
}

func TestActiveOn_KeepsInputOrder(t *testing.T) {
	a := domain.Trip{ID: 7, StartDate: "2025-06-10", EndDate: "2025-06-20"}
	b := domain.Trip{ID: 3, StartDate: "2025-06-09", EndDate: "2025-06-15"}

	got := calendar.ActiveOn([]domain.Trip{a, b}, day(t, "2025-06-12"))

	require.Len(t, got, 2)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}
