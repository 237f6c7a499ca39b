package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/weather-widget-service/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes caps search request bodies.
const maxBodyBytes = 4 << 10

// Widget is the search state machine the server drives.
type Widget interface {
	Submit(ctx context.Context, rawInput string) domain.SearchState
	State() domain.SearchState
	CheckReadiness(ctx context.Context) error
}

// Server exposes the widget page, its JSON API, and health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	widget     Widget
	presenter  *domain.Presenter
	logger     *slog.Logger
}

// NewServer creates an HTTP server for one widget instance.
func NewServer(addr string, widget Widget, presenter *domain.Presenter, logger *slog.Logger) *Server {
	r := chi.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		widget:    widget,
		presenter: presenter,
		logger:    logger,
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", sharedobs.LivenessHandler())
	r.Get("/readyz", sharedobs.ReadinessHandler(widget))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/", s.handlePage)
	r.Post("/", s.handleFormSubmit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/search", s.handleSearch)
	})

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

type searchRequest struct {
	Location string `json:"location"`
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, s.presenter.Render(s.widget.State()))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	state := s.submit(r, req.Location)
	sharedobs.WriteJSON(w, statusCode(state), s.presenter.Render(state))
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, s.widget.State())
}

func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	s.renderPage(w, s.submit(r, r.PostFormValue("location")))
}

// submit runs the search detached from the request's cancellation so a
// dropped connection does not turn into a provider failure.
func (s *Server) submit(r *http.Request, location string) domain.SearchState {
	return s.widget.Submit(context.WithoutCancel(r.Context()), location)
}

func (s *Server) renderPage(w http.ResponseWriter, state domain.SearchState) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, newPage(s.presenter.Render(state))); err != nil {
		s.logger.Error("render widget page", "error", err)
	}
}

// statusCode maps a widget state to an API response code.
func statusCode(state domain.SearchState) int {
	switch state.Status {
	case domain.StatusSuccess:
		return http.StatusOK
	case domain.StatusLoading:
		return http.StatusAccepted
	case domain.StatusError:
		if errors.Is(state.Err, domain.ErrEmptyInput) {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}

// requestLogger logs each request's method, path, status, and duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
