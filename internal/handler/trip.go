package handler

import (
	"context"
	"errors"

	"github.com/pkordes/travel-tracker/internal/calendar"
	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/handler/gen"
)

// CreateTrip handles POST /trips. Any id in the body is ignored.
func (s *Server) CreateTrip(ctx context.Context, req gen.CreateTripRequestObject) (gen.CreateTripResponseObject, error) {
	if req.Body == nil {
		return gen.CreateTrip422JSONResponse{InvalidJSONResponse: gen.InvalidJSONResponse(requestBody("request body is required"))}, nil
	}

	created, err := s.trips.Create(ctx, requestToTrip(0, req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateTrip422JSONResponse{InvalidJSONResponse: gen.InvalidJSONResponse(validationBody(err))}, nil
		}
		return nil, err
	}

	return gen.CreateTrip201JSONResponse(tripToResponse(created)), nil
}

// ListTrips handles GET /trips. Trips come back in insertion order.
func (s *Server) ListTrips(ctx context.Context, _ gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListTrips200JSONResponse(tripsToResponse(trips)), nil
}

// ListUpcomingTrips handles GET /trips/upcoming.
func (s *Server) ListUpcomingTrips(ctx context.Context, _ gen.ListUpcomingTripsRequestObject) (gen.ListUpcomingTripsResponseObject, error) {
	trips, err := s.trips.Upcoming(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListUpcomingTrips200JSONResponse(tripsToResponse(trips)), nil
}

// GetNextTrip handles GET /trips/next. 204 when no trip qualifies.
func (s *Server) GetNextTrip(ctx context.Context, _ gen.GetNextTripRequestObject) (gen.GetNextTripResponseObject, error) {
	next, ok, err := s.trips.Next(ctx, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return gen.GetNextTrip204Response{}, nil
	}
	return gen.GetNextTrip200JSONResponse(tripToResponse(next)), nil
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody("trip not found"))}, nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(tripToResponse(trip)), nil
}

// UpdateTrip handles PUT /trips/{id}. The path id wins over any id in the body.
func (s *Server) UpdateTrip(ctx context.Context, req gen.UpdateTripRequestObject) (gen.UpdateTripResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateTrip422JSONResponse{InvalidJSONResponse: gen.InvalidJSONResponse(requestBody("request body is required"))}, nil
	}

	updated, err := s.trips.Update(ctx, requestToTrip(req.Id, req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateTrip404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody("trip not found"))}, nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateTrip422JSONResponse{InvalidJSONResponse: gen.InvalidJSONResponse(validationBody(err))}, nil
		}
		return nil, err
	}

	return gen.UpdateTrip200JSONResponse(tripToResponse(updated)), nil
}

// DeleteTrip handles DELETE /trips/{id}. Deleting a missing trip is still 204.
func (s *Server) DeleteTrip(ctx context.Context, req gen.DeleteTripRequestObject) (gen.DeleteTripResponseObject, error) {
	if err := s.trips.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return gen.DeleteTrip204Response{}, nil
}

// GetTripLogistics handles GET /trips/{id}/logistics: the links shown on the
// trip details screen, with "No plan yet!" standing in for empty ones.
func (s *Server) GetTripLogistics(ctx context.Context, req gen.GetTripLogisticsRequestObject) (gen.GetTripLogisticsResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTripLogistics404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody("trip not found"))}, nil
		}
		return nil, err
	}

	resp := gen.GetTripLogistics200JSONResponse{
		TripId:    trip.ID,
		Title:     trip.Title,
		DateRange: calendar.FormatDateRange(trip.StartDate, trip.EndDate),
		Logistics: []gen.Logistic{},
	}
	for _, l := range trip.Logistics() {
		item := gen.Logistic{
			Kind:    gen.LogisticKind(l.Kind),
			Label:   l.Label,
			Url:     l.URL,
			Planned: l.Planned(),
			Display: l.URL,
		}
		if !item.Planned {
			item.Display = domain.NoPlanMessage
		}
		resp.Logistics = append(resp.Logistics, item)
	}
	return resp, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a TripInput body into a domain.Trip with the given id.
// Absent fields become empty strings, which is how the app stores them.
func requestToTrip(id int64, body *gen.TripInput) domain.Trip {
	t := domain.Trip{
		ID:                 id,
		Title:              body.Title,
		StartDate:          deref(body.Startdate),
		EndDate:            deref(body.Enddate),
		People:             deref(body.People),
		TravelTo:           deref(body.TravelTo),
		TravelBack:         deref(body.TravelBack),
		Accommodation1:     deref(body.Accomodation1),
		Accommodation2:     deref(body.Accomodation2),
		ExtraTravel:        deref(body.ExtraTravel),
		ExtraAccommodation: deref(body.ExtraAccomodation),
		Notes:              deref(body.Notes),
	}
	if body.Status != nil {
		t.Status = domain.Status(*body.Status)
	}
	return t
}

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
func tripToResponse(t domain.Trip) gen.Trip {
	return gen.Trip{
		Id:                t.ID,
		Title:             t.Title,
		Startdate:         t.StartDate,
		Enddate:           t.EndDate,
		Status:            gen.TripStatus(t.Status),
		People:            t.People,
		TravelTo:          t.TravelTo,
		TravelBack:        t.TravelBack,
		Accomodation1:     t.Accommodation1,
		Accomodation2:     t.Accommodation2,
		ExtraTravel:       t.ExtraTravel,
		ExtraAccomodation: t.ExtraAccommodation,
		Notes:             t.Notes,
	}
}

// tripsToResponse never returns nil, so empty lists encode as [].
func tripsToResponse(trips []domain.Trip) []gen.Trip {
	out := make([]gen.Trip, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
