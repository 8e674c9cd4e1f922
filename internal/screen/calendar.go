package screen

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/pkordes/travel-tracker/internal/calendar"
	"github.com/pkordes/travel-tracker/internal/domain"
)

// TripLister is satisfied by *service.TripService.
type TripLister interface {
	List(ctx context.Context) ([]domain.Trip, error)
}

// CalendarScreen holds the marked days and the trips active on the pressed day.
type CalendarScreen struct {
	store TripLister
	guard Guard

	mu       sync.Mutex
	trips    []domain.Trip
	marks    calendar.MarkedDates
	selected string
	active   []domain.Trip
}

// NewCalendarScreen returns an empty calendar screen; call Refresh to load it.
func NewCalendarScreen(store TripLister) *CalendarScreen {
	return &CalendarScreen{
		store:  store,
		trips:  []domain.Trip{},
		marks:  calendar.MarkedDates{},
		active: []domain.Trip{},
	}
}

// Refresh refetches trips and rebuilds the marks. A pressed day stays selected.
func (s *CalendarScreen) Refresh(ctx context.Context) error {
	ticket := s.guard.Begin()
	trips, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("screen.CalendarScreen.Refresh: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.guard.Current(ticket) {
		return nil
	}
	s.trips = trips
	s.marks = calendar.Marks(trips)
	if s.selected != "" {
		return s.pressLocked(s.selected)
	}
	return nil
}

// Press selects day (YYYY-MM-DD) and recomputes the active trips from the
// full list, not from the marks.
func (s *CalendarScreen) Press(day string) (calendar.MarkedDates, []domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.pressLocked(day); err != nil {
		return nil, nil, fmt.Errorf("screen.CalendarScreen.Press: %w", err)
	}
	return s.marks.Select(s.selected), append([]domain.Trip{}, s.active...), nil
}

func (s *CalendarScreen) pressLocked(day string) error {
	d, err := calendar.ParseDay(day)
	if err != nil {
		return fmt.Errorf("%w: day must be YYYY-MM-DD", domain.ErrValidation)
	}
	s.selected = day
	s.active = calendar.ActiveOn(s.trips, d)
	return nil
}

// Marks returns the marked days with the current selection applied.
func (s *CalendarScreen) Marks() calendar.MarkedDates {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return maps.Clone(s.marks)
	}
	return s.marks.Select(s.selected)
}

func (s *CalendarScreen) Active() []domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Trip{}, s.active...)
}
