// Package repo contains all database access logic for the Travel Tracker backend.
// Each resource has its own file with an interface and a SQL implementation that
// runs unchanged on SQLite and Postgres.
// No business logic lives here: only SQL and type mapping.
package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/store"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete SQL implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns it with the store-generated id.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by id.
	// Returns domain.ErrNotFound if no trip with that id exists.
	GetByID(ctx context.Context, id int64) (domain.Trip, error)

	// List returns all trips in insertion order.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites every mutable field of an existing trip.
	// Returns domain.ErrNotFound if no trip with that id exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
}

// tripColumns is the column order shared by inserts and selects.
// The mixed-case logistics names match the on-device schema.
var tripColumns = []string{
	"title", "startdate", "enddate", "status", "people",
	"TravelTo", "TravelBack", "Accomodation1", "Accomodation2",
	"ExtraTravel", "ExtraAccomodation", "notes",
}

// sqlTripRepo is the database/sql implementation of TripRepo.
type sqlTripRepo struct {
	db  store.Querier
	sql sq.StatementBuilderType
}

// NewTripRepo constructs a TripRepo backed by the provided connection.
// In production pass store.DB(); in tests a *sql.Tx works for rollback isolation.
// b must use the placeholder style of the underlying dialect (see store.Builder).
func NewTripRepo(db store.Querier, b sq.StatementBuilderType) TripRepo {
	return &sqlTripRepo{db: db, sql: b}
}

// Create inserts a new trip row and returns the trip with its generated id.
func (r *sqlTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	q, args, err := r.sql.Insert("trips").
		Columns(tripColumns...).
		Values(tripValues(trip)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: build: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&trip.ID); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return trip, nil
}

// GetByID retrieves a trip by primary key.
func (r *sqlTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	q, args, err := r.selectTrips().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: build: %w", err)
	}

	result, err := scanTrip(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips ordered by id (insertion order).
// Callers apply their own filtering and sorting.
func (r *sqlTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	q, args, err := r.selectTrips().OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: build: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the stored record.
func (r *sqlTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	values := tripValues(trip)
	set := make(map[string]any, len(tripColumns))
	for i, col := range tripColumns {
		set[col] = values[i]
	}

	q, args, err := r.sql.Update("trips").SetMap(set).Where(sq.Eq{"id": trip.ID}).ToSql()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: build: %w", err)
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: rows affected: %w", err)
	}
	if n == 0 {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", domain.ErrNotFound)
	}
	return trip, nil
}

// Delete removes a trip by primary key. A missing row is treated as success.
func (r *sqlTripRepo) Delete(ctx context.Context, id int64) error {
	q, args, err := r.sql.Delete("trips").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: build: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	return nil
}

func (r *sqlTripRepo) selectTrips() sq.SelectBuilder {
	return r.sql.Select(append([]string{"id"}, tripColumns...)...).From("trips")
}

// tripValues returns trip's fields in tripColumns order.
func tripValues(t domain.Trip) []any {
	return []any{
		t.Title, t.StartDate, t.EndDate, string(t.Status), t.People,
		t.TravelTo, t.TravelBack, t.Accommodation1, t.Accommodation2,
		t.ExtraTravel, t.ExtraAccommodation, t.Notes,
	}
}

// scanner is satisfied by both *sql.Row and *sql.Rows, allowing scanTrip to be
// reused for both QueryRowContext and QueryContext calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// Every text column is nullable in the schema; NULL reads back as "".
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t      domain.Trip
		fields [12]sql.NullString
	)

	dest := []any{&t.ID}
	for i := range fields {
		dest = append(dest, &fields[i])
	}

	if err := s.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.Title = fields[0].String
	t.StartDate = fields[1].String
	t.EndDate = fields[2].String
	t.Status = domain.Status(fields[3].String)
	t.People = fields[4].String
	t.TravelTo = fields[5].String
	t.TravelBack = fields[6].String
	t.Accommodation1 = fields[7].String
	t.Accommodation2 = fields[8].String
	t.ExtraTravel = fields[9].String
	t.ExtraAccommodation = fields[10].String
	t.Notes = fields[11].String

	return t, nil
}
