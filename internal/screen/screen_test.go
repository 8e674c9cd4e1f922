package screen_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/screen"
)

type mockTripStore struct {
	list     func(ctx context.Context) ([]domain.Trip, error)
	upcoming func(ctx context.Context) ([]domain.Trip, error)
	create   func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	update   func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete   func(ctx context.Context, id int64) error
	next     func(ctx context.Context, now time.Time) (domain.Trip, bool, error)
}

func (m *mockTripStore) List(ctx context.Context) ([]domain.Trip, error) { return m.list(ctx) }
func (m *mockTripStore) Upcoming(ctx context.Context) ([]domain.Trip, error) {
	return m.upcoming(ctx)
}
func (m *mockTripStore) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripStore) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripStore) Delete(ctx context.Context, id int64) error { return m.delete(ctx, id) }
func (m *mockTripStore) Next(ctx context.Context, now time.Time) (domain.Trip, bool, error) {
	return m.next(ctx, now)
}

var (
	_ screen.TripStore   = (*mockTripStore)(nil)
	_ screen.TripLister  = (*mockTripStore)(nil)
	_ screen.NextTripper = (*mockTripStore)(nil)
)

type mockChatLogStore struct {
	list   func(ctx context.Context) ([]domain.ChatLog, error)
	remove func(ctx context.Context, id int64) error
}

func (m *mockChatLogStore) List(ctx context.Context) ([]domain.ChatLog, error) { return m.list(ctx) }
func (m *mockChatLogStore) Remove(ctx context.Context, id int64) error         { return m.remove(ctx, id) }

var errStore = errors.New("database is locked")

func TestGuard(t *testing.T) {
	var g screen.Guard
	first := g.Begin()
	assert.True(t, g.Current(first))

	second := g.Begin()
	assert.False(t, g.Current(first))
	assert.True(t, g.Current(second))
}

// ---- TripsScreen -----------------------------------------------------------

func TestTripsScreen_AddRefetches(t *testing.T) {
	var db []domain.Trip
	st := &mockTripStore{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			trip.ID = int64(len(db) + 1)
			db = append(db, trip)
			return trip, nil
		},
		upcoming: func(_ context.Context) ([]domain.Trip, error) {
			return append([]domain.Trip{}, db...), nil
		},
	}
	s := screen.NewTripsScreen(st)

	created, err := s.Add(context.Background(), domain.Trip{Title: "Lisbon"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, []domain.Trip{created}, s.Trips())
}

func TestTripsScreen_FailedMutationKeepsState(t *testing.T) {
	refetched := false
	st := &mockTripStore{
		upcoming: func(_ context.Context) ([]domain.Trip, error) {
			refetched = true
			return []domain.Trip{{ID: 1, Title: "Porto"}}, nil
		},
		delete: func(_ context.Context, _ int64) error { return errStore },
		update: func(_ context.Context, _ domain.Trip) (domain.Trip, error) { return domain.Trip{}, errStore },
	}
	s := screen.NewTripsScreen(st)
	require.NoError(t, s.Refresh(context.Background()))
	refetched = false

	assert.ErrorIs(t, s.Remove(context.Background(), 1), errStore)
	_, err := s.Edit(context.Background(), domain.Trip{ID: 1, Title: "x"})
	assert.ErrorIs(t, err, errStore)

	assert.False(t, refetched)
	assert.Equal(t, []domain.Trip{{ID: 1, Title: "Porto"}}, s.Trips())
}

func TestTripsScreen_RefreshErrorKeepsState(t *testing.T) {
	calls := 0
	st := &mockTripStore{upcoming: func(_ context.Context) ([]domain.Trip, error) {
		calls++
		if calls > 1 {
			return nil, errStore
		}
		return []domain.Trip{{ID: 1}}, nil
	}}
	s := screen.NewTripsScreen(st)
	require.NoError(t, s.Refresh(context.Background()))

	assert.ErrorIs(t, s.Refresh(context.Background()), errStore)
	assert.Len(t, s.Trips(), 1)
}

func TestTripsScreen_StaleRefreshDropped(t *testing.T) {
	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	n := 0
	st := &mockTripStore{upcoming: func(_ context.Context) ([]domain.Trip, error) {
		n++
		if n == 1 {
			close(slowStarted)
			<-releaseSlow
			return []domain.Trip{{ID: 1, Title: "stale"}}, nil
		}
		return []domain.Trip{{ID: 2, Title: "fresh"}}, nil
	}}
	s := screen.NewTripsScreen(st)

	done := make(chan error, 1)
	go func() { done <- s.Refresh(context.Background()) }()
	<-slowStarted

	require.NoError(t, s.Refresh(context.Background()))
	close(releaseSlow)
	require.NoError(t, <-done)

	assert.Equal(t, "fresh", s.Trips()[0].Title)
}

// ---- CalendarScreen --------------------------------------------------------

func juneTrip() domain.Trip {
	return domain.Trip{ID: 1, Title: "Ibiza", StartDate: "2025-06-10", EndDate: "2025-06-12"}
}

func TestCalendarScreen_RefreshAndPress(t *testing.T) {
	st := &mockTripStore{list: func(_ context.Context) ([]domain.Trip, error) {
		return []domain.Trip{juneTrip(), {ID: 2, Title: "undated"}}, nil
	}}
	s := screen.NewCalendarScreen(st)
	require.NoError(t, s.Refresh(context.Background()))

	assert.Equal(t, []string{"2025-06-09", "2025-06-10", "2025-06-11"}, s.Marks().Days())

	marks, active, err := s.Press("2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", marks.Selected())
	assert.Equal(t, []domain.Trip{juneTrip()}, active)

	marks, active, err = s.Press("2025-06-12")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-12", marks.Selected())
	assert.False(t, marks["2025-06-09"].Selected, "previous selection cleared")
	assert.Empty(t, active)
}

func TestCalendarScreen_PressInvalidDay(t *testing.T) {
	s := screen.NewCalendarScreen(&mockTripStore{})

	_, _, err := s.Press("June 9")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalendarScreen_RefreshKeepsSelection(t *testing.T) {
	trips := []domain.Trip{}
	st := &mockTripStore{list: func(_ context.Context) ([]domain.Trip, error) { return trips, nil }}
	s := screen.NewCalendarScreen(st)
	require.NoError(t, s.Refresh(context.Background()))
	_, active, err := s.Press("2025-06-10")
	require.NoError(t, err)
	require.Empty(t, active)

	trips = []domain.Trip{juneTrip()}
	require.NoError(t, s.Refresh(context.Background()))

	assert.Equal(t, "2025-06-10", s.Marks().Selected())
	assert.Equal(t, []domain.Trip{juneTrip()}, s.Active())
}

// ---- ChatLogsScreen --------------------------------------------------------

func TestChatLogsScreen_Remove(t *testing.T) {
	logs := []domain.ChatLog{{ID: 1, Query: "a"}, {ID: 2, Query: "b"}}
	st := &mockChatLogStore{
		list:   func(_ context.Context) ([]domain.ChatLog, error) { return logs, nil },
		remove: func(_ context.Context, _ int64) error { return nil },
	}
	s := screen.NewChatLogsScreen(st)
	require.NoError(t, s.Refresh(context.Background()))

	require.NoError(t, s.Remove(context.Background(), 1))
	assert.Equal(t, []domain.ChatLog{{ID: 2, Query: "b"}}, s.Logs())

	require.NoError(t, s.Remove(context.Background(), 99), "missing id is a no-op")
	assert.Equal(t, []domain.ChatLog{{ID: 2, Query: "b"}}, s.Logs())
}

func TestChatLogsScreen_RemoveFailureKeepsList(t *testing.T) {
	st := &mockChatLogStore{
		list:   func(_ context.Context) ([]domain.ChatLog, error) { return []domain.ChatLog{{ID: 1}}, nil },
		remove: func(_ context.Context, _ int64) error { return errStore },
	}
	s := screen.NewChatLogsScreen(st)
	require.NoError(t, s.Refresh(context.Background()))

	assert.ErrorIs(t, s.Remove(context.Background(), 1), errStore)
	assert.Len(t, s.Logs(), 1)
}

// ---- DashboardScreen -------------------------------------------------------

func TestDashboardScreen_Refresh(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var gotNow time.Time
	st := &mockTripStore{next: func(_ context.Context, n time.Time) (domain.Trip, bool, error) {
		gotNow = n
		return juneTrip(), true, nil
	}}
	s := screen.NewDashboardScreen(st)

	_, ok := s.Next()
	assert.False(t, ok)

	require.NoError(t, s.Refresh(context.Background(), now))

	next, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, juneTrip(), next)
	assert.Equal(t, now, gotNow)
}

func TestDashboardScreen_RefreshError(t *testing.T) {
	st := &mockTripStore{next: func(_ context.Context, _ time.Time) (domain.Trip, bool, error) {
		return domain.Trip{}, false, errStore
	}}
	s := screen.NewDashboardScreen(st)

	assert.ErrorIs(t, s.Refresh(context.Background(), time.Now()), errStore)
}
