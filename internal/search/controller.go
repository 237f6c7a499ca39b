package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/couchcryptid/weather-widget-service/internal/domain"
	"github.com/couchcryptid/weather-widget-service/internal/observability"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// publishTimeout bounds how long a lookup event may hold up a resolved search.
const publishTimeout = 5 * time.Second

// Controller drives one widget's search state machine. It is safe for
// concurrent use; only the most recently issued request may change state.
type Controller struct {
	provider domain.Provider
	sink     domain.LookupSink
	logger   *slog.Logger
	metrics  *observability.Metrics
	clock    clockwork.Clock
	newID    func() string

	mu     sync.Mutex
	state  domain.SearchState
	latest string
	cancel context.CancelFunc
}

// Option customizes a Controller.
type Option func(*Controller)

// WithClock sets the time source for lookup event timestamps.
func WithClock(c clockwork.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithIDGenerator replaces the request token generator.
func WithIDGenerator(fn func() string) Option {
	return func(ctl *Controller) { ctl.newID = fn }
}

// New creates an idle Controller. Pass a nil sink to disable lookup events.
func New(provider domain.Provider, sink domain.LookupSink, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Controller {
	c := &Controller{
		provider: provider,
		sink:     sink,
		logger:   logger,
		metrics:  metrics,
		clock:    clockwork.NewRealClock(),
		newID:    uuid.NewString,
		state:    domain.IdleState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request is an issued provider lookup awaiting Resolve.
type Request struct {
	ID    string
	Query string

	raw    string
	ctx    context.Context
	cancel context.CancelFunc
}

// State returns a snapshot of the current widget state.
func (c *Controller) State() domain.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit validates rawInput, performs the lookup, and returns the resulting state.
func (c *Controller) Submit(ctx context.Context, rawInput string) domain.SearchState {
	req, state := c.Begin(ctx, rawInput)
	if req == nil {
		return state
	}
	return c.Resolve(req)
}

// Begin performs the synchronous half of a submit. Blank input moves straight
// to Error and returns a nil Request. Otherwise the widget enters Loading and
// the returned Request must be passed to Resolve. Either way any request still
// in flight is cancelled and its result will be ignored.
func (c *Controller) Begin(ctx context.Context, rawInput string) (*Request, domain.SearchState) {
	query := strings.TrimSpace(rawInput)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.supersedeLocked()

	if query == "" {
		c.state = domain.ErrorState(rawInput, "", domain.ErrEmptyInput)
		c.metrics.Searches.WithLabelValues("empty_input").Inc()
		return nil, c.state
	}

	reqCtx, cancel := context.WithCancel(ctx)
	req := &Request{
		ID:     c.newID(),
		Query:  query,
		raw:    rawInput,
		ctx:    reqCtx,
		cancel: cancel,
	}
	c.latest = req.ID
	c.cancel = cancel
	c.state = domain.LoadingState(rawInput, req.ID)

	c.logger.Debug("search issued", "request_id", req.ID, "query", query)
	return req, c.state
}

// Resolve calls the provider for req and applies the outcome if req is still
// the latest request. It returns the widget state afterwards, which for a
// superseded request is whatever the newer request left behind.
func (c *Controller) Resolve(req *Request) domain.SearchState {
	if req == nil {
		return c.State()
	}
	defer req.cancel()

	c.metrics.SearchesInFlight.Inc()
	rec, err := c.provider.CurrentWeather(req.ctx, req.Query)
	c.metrics.SearchesInFlight.Dec()

	c.mu.Lock()
	if c.latest != req.ID {
		current := c.state
		c.mu.Unlock()
		c.metrics.StaleCompletions.Inc()
		c.logger.Debug("discarding superseded search result", "request_id", req.ID, "query", req.Query)
		return current
	}

	var next domain.SearchState
	if err != nil {
		c.logger.Error("error fetching weather data",
			"request_id", req.ID,
			"query", req.Query,
			"error", err,
		)
		c.metrics.Searches.WithLabelValues("fetch_failure").Inc()
		next = domain.ErrorState(req.raw, req.ID, domain.ErrFetchFailure)
	} else {
		c.metrics.Searches.WithLabelValues("success").Inc()
		next = domain.SuccessState(req.raw, req.ID, rec)
	}
	c.state = next
	c.latest = ""
	c.cancel = nil
	c.mu.Unlock()

	c.publish(req.ctx, next)
	return next
}

// Close cancels any in-flight request and returns the widget to Idle.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.supersedeLocked()
	c.state = domain.IdleState()
}

// CheckReadiness reports whether the provider can serve lookups.
func (c *Controller) CheckReadiness(_ context.Context) error {
	if cp, ok := c.provider.(interface{ Configured() bool }); ok && !cp.Configured() {
		return errors.New("weather provider has no API key configured")
	}
	return nil
}

func (c *Controller) supersedeLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.latest = ""
}

func (c *Controller) publish(ctx context.Context, state domain.SearchState) {
	if c.sink == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := domain.NewLookupEvent(state, c.clock.Now())
	if err := c.sink.Publish(ctx, event); err != nil {
		c.logger.Warn("publish lookup event failed", "request_id", state.RequestID, "error", err)
		c.metrics.LookupEvents.WithLabelValues("failed").Inc()
		return
	}
	c.metrics.LookupEvents.WithLabelValues("published").Inc()
}
