package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/apperr"
	appPresentation "github.com/execution-hub/presentation-hub/internal/application/presentation"
	"github.com/execution-hub/presentation-hub/internal/domain/document"
	"github.com/execution-hub/presentation-hub/internal/domain/notification"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
	"github.com/execution-hub/presentation-hub/internal/ledger"
)

// PresentationService is the presentation workflow as seen by handlers.
type PresentationService interface {
	Create(ctx context.Context, lcReference string) (*presentation.Presentation, error)
	Get(ctx context.Context, staticID string) (*presentation.Presentation, error)
	ListByLC(ctx context.Context, lcReference string) ([]*presentation.Presentation, error)
	Submit(ctx context.Context, staticID, comments string) (*presentation.Presentation, error)
	Delete(ctx context.Context, staticID string) error
	DeleteDocument(ctx context.Context, staticID, documentID string) error
	MarkCompliant(ctx context.Context, staticID string) error
	MarkDiscrepant(ctx context.Context, staticID, comments string) error
	AdviseDiscrepancies(ctx context.Context, staticID, comments string) error
	AcceptDiscrepancies(ctx context.Context, staticID, comments string) error
	RejectDiscrepancies(ctx context.Context, staticID, comments string) error
	Documents(ctx context.Context, staticID string) ([]*document.Document, error)
	DocumentsFeedback(ctx context.Context, staticID string) (*appPresentation.DocumentsFeedback, error)
}

// TaskLister lists review tasks.
type TaskLister interface {
	ListTasks(ctx context.Context, filter task.Filter) ([]*task.Task, error)
}

// LogProcessor runs a ledger log through the event pipeline.
type LogProcessor interface {
	Process(ctx context.Context, log *ledger.Log) error
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	presentationSvc PresentationService
	taskSvc         TaskLister
	events          LogProcessor
	sseHub          notification.SSEHub
	allowedOrigins  []string
	logger          zerolog.Logger
}

func NewServer(
	presentationSvc PresentationService,
	taskSvc TaskLister,
	events LogProcessor,
	sseHub notification.SSEHub,
	allowedOrigins []string,
	logger zerolog.Logger,
) *Server {
	return &Server{
		presentationSvc: presentationSvc,
		taskSvc:         taskSvc,
		events:          events,
		sseHub:          sseHub,
		allowedOrigins:  allowedOrigins,
		logger:          logger.With().Str("component", "http").Logger(),
	}
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.health)

	r.Route("/v1", func(r chi.Router) {
		// the event stream is long-lived and stays outside the timeout
		r.Get("/notifications/stream", s.sseEndpoint)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(30 * time.Second))

			r.Route("/lc/{lcReference}/presentations", func(r chi.Router) {
				r.Post("/", s.createPresentation)
				r.Get("/", s.listPresentations)
			})

			r.Route("/presentations/{presentationId}", func(r chi.Router) {
				r.Get("/", s.getPresentation)
				r.Delete("/", s.deletePresentation)
				r.Get("/documents", s.listDocuments)
				r.Delete("/documents/{documentId}", s.deleteDocument)
				r.Get("/documents-feedback", s.documentsFeedback)
				r.Post("/submit", s.submitPresentation)
				r.Post("/compliant", s.markCompliant)
				r.Post("/discrepant", s.markDiscrepant)
				r.Post("/advise-discrepancies", s.adviseDiscrepancies)
				r.Post("/accept-discrepancies", s.acceptDiscrepancies)
				r.Post("/reject-discrepancies", s.rejectDiscrepancies)
			})

			r.Get("/tasks", s.listTasks)
			r.Post("/ledger/events", s.ingestLedgerEvent)
		})
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"sse_clients": s.sseHub.GetClientCount(),
	})
}

// Helpers
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}

// respondServiceError maps a classified failure onto its HTTP status.
func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := http.StatusInternalServerError
	code := "INTERNAL"
	switch kind {
	case apperr.KindInvalidOperation:
		status = http.StatusUnprocessableEntity
	case apperr.KindInvalidMessage:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConnection:
		status = http.StatusBadGateway
	}
	if status != http.StatusInternalServerError {
		code = string(kind)
	}

	message := err.Error()
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	respondError(w, status, code, message)
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
