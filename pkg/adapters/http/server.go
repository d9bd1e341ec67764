package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/aegraph"
	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/aegraph/pkg/graph"
	"github.com/aretw0/aegraph/pkg/proof"
	"github.com/aretw0/aegraph/pkg/rules"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Engine defines the subset of the aegraph engine the server needs.
type Engine interface {
	Parse(text string) (*graph.Graph, error)
	Moves(ctx context.Context, g *graph.Graph, r rules.Rule) ([]rules.Move, error)
	AllMoves(ctx context.Context, g *graph.Graph) []rules.Move
	Apply(ctx context.Context, g *graph.Graph, m rules.Move) (*graph.Graph, error)
	Check(ctx context.Context, ex domain.Exercise) (*proof.Report, error)
	Exercises(ctx context.Context) ([]string, error)
	Exercise(ctx context.Context, id string) (*domain.Exercise, error)
	CheckExercise(ctx context.Context, id string) (*proof.Report, error)
}

// Server exposes the engine as a JSON API.
type Server struct {
	Engine  Engine
	Streams *StreamManager
	Metrics http.Handler
	Logger  *slog.Logger
}

// Option configures the handler built by NewHandler.
type Option func(*Server)

// WithStreams serves rule events from sm on GET /events. Register
// sm.Hooks() on the engine so that the stream has something to carry.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// WithMetrics serves h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{Engine: engine, Logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestID)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Post("/parse", s.Parse)
	r.Post("/moves", s.Moves)
	r.Post("/apply", s.Apply)
	r.Post("/check", s.Check)
	r.Route("/exercises", func(r chi.Router) {
		r.Get("/", s.ListExercises)
		r.Get("/{id}", s.GetExercise)
		r.Post("/{id}/check", s.CheckExercise)
	})
	if s.Streams != nil {
		r.Get("/events", s.Streams.ServeHTTP)
	}
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type requestIDKey struct{}

// requestID propagates or assigns an X-Request-ID header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// RequestIDFrom returns the request ID assigned by the handler, if any.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{
		"app":     "aegraph-http",
		"version": strings.TrimSpace(aegraph.Version),
	})
}

// Parse handles the POST /parse request.
func (s *Server) Parse(w http.ResponseWriter, r *http.Request) {
	var body GraphRequest
	if !s.decode(w, r, &body) {
		return
	}
	g, err := s.Engine.Parse(body.Graph)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	s.writeJSON(w, r, http.StatusOK, describe(g))
}

// Moves handles the POST /moves request.
func (s *Server) Moves(w http.ResponseWriter, r *http.Request) {
	var body MovesRequest
	if !s.decode(w, r, &body) {
		return
	}
	g, err := s.Engine.Parse(body.Graph)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}

	var moves []rules.Move
	if body.Rule == "" {
		moves = s.Engine.AllMoves(r.Context(), g)
	} else {
		rule, err := rules.ParseRule(body.Rule)
		if err != nil {
			s.writeError(w, r, err, nil)
			return
		}
		if moves, err = s.Engine.Moves(r.Context(), g, rule); err != nil {
			s.writeError(w, r, err, nil)
			return
		}
	}
	if moves == nil {
		moves = []rules.Move{}
	}
	s.writeJSON(w, r, http.StatusOK, MovesResponse{Graph: g.String(), Moves: moves})
}

// Apply handles the POST /apply request.
func (s *Server) Apply(w http.ResponseWriter, r *http.Request) {
	var body ApplyRequest
	if !s.decode(w, r, &body) {
		return
	}
	g, err := s.Engine.Parse(body.Graph)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	move, err := proof.MoveFromStep(domain.Step{Rule: body.Rule, Path: body.Path, Members: body.Members})
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}

	out, err := s.Engine.Apply(r.Context(), g, move)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	s.writeJSON(w, r, http.StatusOK, ApplyResponse{Move: move, Before: g.String(), Graph: out.String()})
}

// Check handles the POST /check request. The body is an exercise.
func (s *Server) Check(w http.ResponseWriter, r *http.Request) {
	var ex domain.Exercise
	if !s.decode(w, r, &ex) {
		return
	}
	report, err := s.Engine.Check(r.Context(), ex)
	s.writeReport(w, r, report, err)
}

// ListExercises handles the GET /exercises request.
func (s *Server) ListExercises(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Engine.Exercises(r.Context())
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	s.writeJSON(w, r, http.StatusOK, ids)
}

// GetExercise handles the GET /exercises/{id} request.
func (s *Server) GetExercise(w http.ResponseWriter, r *http.Request) {
	ex, err := s.Engine.Exercise(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	s.writeJSON(w, r, http.StatusOK, ex)
}

// CheckExercise handles the POST /exercises/{id}/check request.
func (s *Server) CheckExercise(w http.ResponseWriter, r *http.Request) {
	report, err := s.Engine.CheckExercise(r.Context(), chi.URLParam(r, "id"))
	s.writeReport(w, r, report, err)
}

func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, report *proof.Report, err error) {
	if err != nil {
		var withReport any
		if report != nil {
			withReport = report
		}
		s.writeError(w, r, err, withReport)
		return
	}
	s.writeJSON(w, r, http.StatusOK, report)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.Logger.Warn("Invalid request body", "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()), "error", err)
		s.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{
			Error:     fmt.Sprintf("invalid request body: %v", err),
			RequestID: RequestIDFrom(r.Context()),
		})
		return false
	}
	return true
}

// StatusFor maps engine errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, graph.ErrMalformedInput),
		errors.Is(err, rules.ErrUnknownRule),
		errors.Is(err, rules.ErrNotEnumerable),
		errors.Is(err, domain.ErrInvalidExercise):
		return http.StatusBadRequest
	case errors.Is(err, graph.ErrInvalidPath),
		errors.Is(err, rules.ErrNotApplicable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrExerciseNotFound),
		errors.Is(err, aegraph.ErrNoLibrary):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, report any) {
	status := StatusFor(err)
	id := RequestIDFrom(r.Context())
	if status == http.StatusInternalServerError {
		s.Logger.Error("Request failed", "path", r.URL.Path, "request_id", id, "error", err)
	} else {
		s.Logger.Debug("Request refused", "path", r.URL.Path, "request_id", id, "status", status, "error", err)
	}
	s.writeJSON(w, r, status, ErrorResponse{Error: err.Error(), RequestID: id, Report: report})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "path", r.URL.Path, "error", err)
	}
}
