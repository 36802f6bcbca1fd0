// Package chi exposes the search service over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lumenvault/lumenvault/internal/domain"
	"github.com/lumenvault/lumenvault/internal/domain/search/mode"
	"github.com/lumenvault/lumenvault/internal/domain/search/request"
	logpkg "github.com/lumenvault/lumenvault/internal/logger"
	"github.com/lumenvault/lumenvault/internal/metrics"
	exploreuc "github.com/lumenvault/lumenvault/internal/usecase/explore"
	searchuc "github.com/lumenvault/lumenvault/internal/usecase/search"
)

// Error codes returned to clients.
const (
	codeBadRequest          = "bad_request"
	codeUnauthorized        = "unauthorized"
	codeMissingQuery        = "missing_query"
	codeSmartSearchDisabled = "smart_search_disabled"
	codeEncoderUnavailable  = "encoder_unavailable"
	codeNotFound            = "not_found"
	codeInternalError       = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Pinger reports storage availability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wires the search and explore usecases into a chi router.
type Server struct {
	search        *searchuc.Service
	explore       *exploreuc.Service
	db            Pinger
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	explore *exploreuc.Service,
	db Pinger,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		explore: explore,
		db:      db,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrMissingQuery, http.StatusBadRequest, codeMissingQuery),
		sentinelHandler(domain.ErrSmartSearchDisabled, http.StatusBadRequest, codeSmartSearchDisabled),
		sentinelHandler(domain.ErrEncoderUnavailable, http.StatusBadGateway, codeEncoderUnavailable),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
	}
	return s
}

// Router builds the HTTP route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(jsonRecoverer(s.logger))
	r.Use(chimw.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(metrics.Middleware())
	r.Use(UserMiddleware())

	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Post("/search", s.handleSearch)
		r.Get("/explore", s.handleExplore)
		r.Get("/people", s.handleSearchPerson)
	})

	return r
}

// searchBody is the POST /api/search payload.
type searchBody struct {
	Query        string `json:"query"`
	Mode         string `json:"mode"`
	Page         int    `json:"page"`
	WithArchived bool   `json:"withArchived"`
	TakenAfter   string `json:"takenAfter"`
	TakenBefore  string `json:"takenBefore"`
	City         string `json:"city"`
	Tag          string `json:"tag"`
	PersonID     string `json:"personId"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req, err := searchRequestFromBody(body)
	if err != nil {
		if errors.Is(err, domain.ErrMissingQuery) {
			writeError(w, http.StatusBadRequest, codeMissingQuery, domain.ErrMissingQuery.Error())
			return
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	env, err := s.search.Search(r.Context(), userFromContext(r.Context()), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleExplore(w http.ResponseWriter, r *http.Request) {
	groups, err := s.explore.Explore(r.Context(), userFromContext(r.Context()))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleSearchPerson(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	withHidden := r.URL.Query().Get("withHidden") == "true"

	people, err := s.search.SearchPerson(r.Context(), userFromContext(r.Context()), name, withHidden)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	if people == nil {
		people = []domain.Person{}
	}
	writeJSON(w, http.StatusOK, people)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// searchRequestFromBody validates and converts the HTTP payload.
func searchRequestFromBody(body searchBody) (*request.Request, error) {
	m := mode.Mode(body.Mode)
	if body.Mode != "" && !m.IsValid() {
		return nil, fmt.Errorf("unknown mode %q", body.Mode)
	}

	opts := request.Options{
		WithArchived: body.WithArchived,
		Page:         body.Page,
		City:         body.City,
		Tag:          body.Tag,
		PersonID:     body.PersonID,
	}

	var err error
	if opts.TakenAfter, err = parseTime(body.TakenAfter); err != nil {
		return nil, fmt.Errorf("takenAfter: %w", err)
	}
	if opts.TakenBefore, err = parseTime(body.TakenBefore); err != nil {
		return nil, fmt.Errorf("takenBefore: %w", err)
	}

	req, err := request.New(body.Query, m, opts)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func parseTime(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("invalid RFC3339 timestamp %q", v)
	}
	return &t, nil
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrMissingQuery,
		domain.ErrSmartSearchDisabled,
		domain.ErrEncoderUnavailable,
		domain.ErrNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
