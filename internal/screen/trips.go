package screen

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkordes/travel-tracker/internal/domain"
)

// TripStore is the subset of *service.TripService the trip screens use.
type TripStore interface {
	List(ctx context.Context) ([]domain.Trip, error)
	Upcoming(ctx context.Context) ([]domain.Trip, error)
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id int64) error
}

// TripsScreen is the upcoming-trips list.
type TripsScreen struct {
	store TripStore
	guard Guard

	mu    sync.Mutex
	trips []domain.Trip
}

// NewTripsScreen returns an empty trips screen backed by store.
func NewTripsScreen(store TripStore) *TripsScreen {
	return &TripsScreen{store: store, trips: []domain.Trip{}}
}

// Trips returns a copy of the displayed list.
func (s *TripsScreen) Trips() []domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Trip{}, s.trips...)
}

// Refresh replaces the list. On error the previous list stays.
func (s *TripsScreen) Refresh(ctx context.Context) error {
	ticket := s.guard.Begin()
	trips, err := s.store.Upcoming(ctx)
	if err != nil {
		return fmt.Errorf("screen.TripsScreen.Refresh: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guard.Current(ticket) {
		s.trips = trips
	}
	return nil
}

func (s *TripsScreen) Add(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	created, err := s.store.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("screen.TripsScreen.Add: %w", err)
	}
	return created, s.Refresh(ctx)
}

func (s *TripsScreen) Edit(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	updated, err := s.store.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("screen.TripsScreen.Edit: %w", err)
	}
	return updated, s.Refresh(ctx)
}

func (s *TripsScreen) Remove(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("screen.TripsScreen.Remove: %w", err)
	}
	return s.Refresh(ctx)
}
