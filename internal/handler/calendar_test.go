package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/domain"
)

type calendarBody struct {
	MarkedDates map[string]struct {
		Marked   bool `json:"marked"`
		Selected bool `json:"selected"`
	} `json:"marked_dates"`
	Selected      *string       `json:"selected"`
	SelectedLabel string        `json:"selected_label"`
	Trips         []domain.Trip `json:"trips"`
}

func calendarTrips() *mockTripServicer {
	return &mockTripServicer{
		list: func(_ context.Context) ([]domain.Trip, error) {
			return []domain.Trip{
				tripFixture(),
				{ID: 8, Title: "Someday"},
			}, nil
		},
	}
}

func getCalendar(t *testing.T, query string) calendarBody {
	t.Helper()
	rec := serve(newHTTPHandler(calendarTrips(), nil, nil), http.MethodGet, "/calendar"+query, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body calendarBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestGetCalendar_MarksWindow(t *testing.T) {
	body := getCalendar(t, "")

	assert.Len(t, body.MarkedDates, 3)
	for _, day := range []string{"2025-06-09", "2025-06-10", "2025-06-11"} {
		assert.True(t, body.MarkedDates[day].Marked, day)
	}
	assert.Nil(t, body.Selected)
	assert.NotNil(t, body.Trips)
	assert.Empty(t, body.Trips)
}

func TestGetCalendar_SelectedDayBeforeStart(t *testing.T) {
	body := getCalendar(t, "?selected=2025-06-09")

	require.NotNil(t, body.Selected)
	assert.Equal(t, "2025-06-09", *body.Selected)
	assert.Equal(t, "June 9, 2025", body.SelectedLabel)
	assert.True(t, body.MarkedDates["2025-06-09"].Selected)
	require.Len(t, body.Trips, 1)
	assert.Equal(t, int64(7), body.Trips[0].ID)
}

func TestGetCalendar_SelectedEndDayHasNoTrips(t *testing.T) {
	body := getCalendar(t, "?selected=2025-06-12")

	assert.Empty(t, body.Trips)
	assert.True(t, body.MarkedDates["2025-06-12"].Selected)
	assert.False(t, body.MarkedDates["2025-06-12"].Marked)
}

func TestGetCalendar_Clipped(t *testing.T) {
	body := getCalendar(t, "?from=2025-06-10&to=2025-06-11")

	assert.Len(t, body.MarkedDates, 1)
	assert.True(t, body.MarkedDates["2025-06-10"].Marked)
}

func TestGetCalendar_422_BadDate(t *testing.T) {
	rec := serve(newHTTPHandler(calendarTrips(), nil, nil), http.MethodGet, "/calendar?selected=June-9", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "selected must be YYYY-MM-DD", decodeError(t, rec).Error.Message)
}
