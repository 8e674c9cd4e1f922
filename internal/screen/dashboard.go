package screen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkordes/travel-tracker/internal/domain"
)

// NextTripper is satisfied by *service.TripService.
type NextTripper interface {
	Next(ctx context.Context, now time.Time) (domain.Trip, bool, error)
}

// DashboardScreen shows the next confirmed trip, if there is one.
type DashboardScreen struct {
	store NextTripper
	guard Guard

	mu   sync.Mutex
	next domain.Trip
	ok   bool
}

// NewDashboardScreen returns a dashboard with no next trip loaded.
func NewDashboardScreen(store NextTripper) *DashboardScreen {
	return &DashboardScreen{store: store}
}

func (s *DashboardScreen) Next() (domain.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next, s.ok
}

func (s *DashboardScreen) Refresh(ctx context.Context, now time.Time) error {
	ticket := s.guard.Begin()
	next, ok, err := s.store.Next(ctx, now)
	if err != nil {
		return fmt.Errorf("screen.DashboardScreen.Refresh: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guard.Current(ticket) {
		s.next, s.ok = next, ok
	}
	return nil
}
