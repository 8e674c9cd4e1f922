// Package service contains the business logic for the Travel Tracker backend.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkordes/travel-tracker/internal/calendar"
	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/repo"
)

// undatedSortKey is where a trip without a start date sorts: far enough in the
// future that undated trips never display ahead of dated upcoming ones.
var undatedSortKey = time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip. An empty status defaults to Ideated.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if trip.Status == "" {
		trip.Status = domain.StatusIdeated
	}
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by id.
func (s *TripService) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips in insertion order. Never nil.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// Upcoming returns all trips sorted for the upcoming-trip views.
func (s *TripService) Upcoming(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	SortUpcoming(trips)
	return trips, nil
}

// Next returns the trip shown on the dashboard, if any.
func (s *TripService) Next(ctx context.Context, now time.Time) (domain.Trip, bool, error) {
	trips, err := s.List(ctx)
	if err != nil {
		return domain.Trip{}, false, err
	}
	next, ok := NextTrip(trips, now)
	return next, ok, nil
}

// Update validates and updates an existing trip.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	updated, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip by id. Deleting a trip that does not exist succeeds.
func (s *TripService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// SortUpcoming sorts trips in place by ascending start date. Trips without a
// usable start date sort as if dated in the year 3000; ties break on id.
func SortUpcoming(trips []domain.Trip) {
	sort.SliceStable(trips, func(i, j int) bool {
		return lessByStart(trips[i], trips[j])
	})
}

// NextTrip returns the earliest-starting Confirmed trip whose end date is
// strictly after now. ok is false when no trip qualifies.
func NextTrip(trips []domain.Trip, now time.Time) (next domain.Trip, ok bool) {
	for _, t := range trips {
		if t.Status != domain.StatusConfirmed {
			continue
		}
		end, err := calendar.ParseDay(t.EndDate)
		if err != nil || !end.After(now) {
			continue
		}
		if !ok || lessByStart(t, next) {
			next, ok = t, true
		}
	}
	return next, ok
}

func lessByStart(a, b domain.Trip) bool {
	ka, kb := startKey(a), startKey(b)
	if !ka.Equal(kb) {
		return ka.Before(kb)
	}
	return a.ID < b.ID
}

func startKey(t domain.Trip) time.Time {
	d, err := calendar.ParseDay(t.StartDate)
	if err != nil {
		return undatedSortKey
	}
	return d
}

// validateTrip enforces the rules applied before any write reaches the store.
// An end date before the start date is accepted; it simply marks no calendar days.
func validateTrip(t domain.Trip) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: status must be one of Ideated, Planned, Confirmed", domain.ErrValidation)
	}
	for _, f := range [...]struct{ name, value string }{
		{"startdate", t.StartDate},
		{"enddate", t.EndDate},
	} {
		if f.value == "" {
			continue
		}
		if _, err := calendar.ParseDay(f.value); err != nil {
			return fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrValidation, f.name)
		}
	}
	return nil
}
