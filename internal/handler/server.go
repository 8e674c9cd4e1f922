// Package handler implements the HTTP handlers for the Travel Tracker API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, calendar.go,
// chat.go) but share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pkordes/travel-tracker/internal/chat"
	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/handler/gen"
	"github.com/pkordes/travel-tracker/internal/metrics"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id int64) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Upcoming(ctx context.Context) ([]domain.Trip, error)
	Next(ctx context.Context, now time.Time) (domain.Trip, bool, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id int64) error
}

// ChatLogServicer is the saved-exchange surface.
type ChatLogServicer interface {
	Save(ctx context.Context, query, response string) (domain.ChatLog, error)
	List(ctx context.Context) ([]domain.ChatLog, error)
	Remove(ctx context.Context, id int64) error
}

// ChatServicer is the live chat surface.
type ChatServicer interface {
	Start(ctx context.Context) (chat.Session, error)
	Get(ctx context.Context, id string) (chat.Session, error)
	Send(ctx context.Context, id, prompt, interest string) (chat.Exchange, error)
	Reset(ctx context.Context, id string) (chat.Session, error)
	SaveExchange(ctx context.Context, id string, index int) (domain.ChatLog, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Routes wires it behind the generated strict handler.
type Server struct {
	trips   TripServicer
	logs    ChatLogServicer
	chat    ChatServicer
	logger  zerolog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ gen.StrictServerInterface = (*Server)(nil)

// Option customises a Server.
type Option func(*Server)

// WithClock overrides the clock used to pick the next trip.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, logs ChatLogServicer, sessions ChatServicer, logger zerolog.Logger, opts ...Option) *Server {
	s := &Server{
		trips:   trips,
		logs:    logs,
		chat:    sessions,
		logger:  logger,
		metrics: metrics.Global(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes returns the API router: the generated chi routes for every
// operation in openapi.yaml plus /metrics. Cross-cutting middleware (request
// IDs, logging, CORS, body limits) is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errorBody("not_found", "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})
	r.Handle("/metrics", promhttp.Handler())

	strict := gen.NewStrictHandlerWithOptions(s, []gen.StrictMiddlewareFunc{s.recordFailures}, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestErrorHandler,
		ResponseErrorHandlerFunc: responseErrorHandler,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: requestErrorHandler,
	})
}
