package handler

import (
	"context"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-tracker/internal/calendar"
	"github.com/pkordes/travel-tracker/internal/handler/gen"
)

// GetCalendar handles GET /calendar?selected=&from=&to=.
//
// marked_dates covers every day in a trip's display window, clipped to
// [from, to) when those are given. With selected, that day is highlighted and
// trips lists the trips active on it, recomputed from the full trip list.
func (s *Server) GetCalendar(ctx context.Context, req gen.GetCalendarRequestObject) (gen.GetCalendarResponseObject, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}

	marks := calendar.MarksBetween(trips, utcDay(req.Params.From), utcDay(req.Params.To))
	resp := gen.GetCalendar200JSONResponse{Trips: []gen.Trip{}}
	if req.Params.Selected != nil {
		selected := utcDay(req.Params.Selected)
		day := calendar.FormatDay(selected)
		label := calendar.FormatLongDay(day)

		marks = marks.Select(day)
		resp.Selected = &day
		resp.SelectedLabel = &label
		resp.Trips = tripsToResponse(calendar.ActiveOn(trips, selected))
	}

	resp.MarkedDates = make(map[string]gen.MarkedDate, len(marks))
	for day, m := range marks {
		resp.MarkedDates[day] = gen.MarkedDate{Marked: m.Marked, Selected: m.Selected}
	}
	return resp, nil
}

// utcDay maps an optional date parameter onto midnight UTC. Absent is the zero time.
func utcDay(d *openapi_types.Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	t := d.Time
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
