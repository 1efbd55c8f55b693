// Package chi exposes the search client over HTTP for the conversational
// layers (chat widget, CLI) and for operators.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/request"
	healthuc "github.com/Wunderbot-Git/alkosto-ai-assistant/internal/usecase/health"
	searchuc "github.com/Wunderbot-Git/alkosto-ai-assistant/internal/usecase/search"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes returned by the API.
const (
	CodeBadRequest        = "bad_request"
	CodeRemoteUnavailable = "remote_unavailable"
	CodeInternal          = "internal_error"
	CodeUnauthorized      = "unauthorized"
)

// Server handles the assistant HTTP API.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{search: search, health: health, logger: logger}
}

// Routes mounts all handlers on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/search", s.handleSearch)
	r.Get("/v1/analytics", s.handleGetAnalytics)
	r.Delete("/v1/analytics", s.handleClearAnalytics)
	r.Get("/v1/cache/stats", s.handleCacheStats)
	r.Delete("/v1/cache", s.handleClearCache)
	r.Put("/v1/demo-mode", s.handleSetDemoMode)
	r.Get("/health", s.handleHealth)
}

// searchRequestBody is the POST /v1/search payload. All fields are optional;
// missing values take defaults, matching the search contract.
type searchRequestBody struct {
	Query                string   `json:"query"`
	Filters              string   `json:"filters"`
	HitsPerPage          int      `json:"hitsPerPage"`
	AttributesToRetrieve []string `json:"attributesToRetrieve"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body searchRequestBody
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}

	req := request.New(body.Query, body.Filters, body.HitsPerPage, body.AttributesToRetrieve)
	res, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.logger.Error("Search failed", zap.Error(err))
		if errors.Is(err, domain.ErrRemoteSearch) {
			writeError(w, http.StatusBadGateway, CodeRemoteUnavailable, "Remote index unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, CodeInternal, "Search failed")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGetAnalytics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.search.Analytics())
}

func (s *Server) handleClearAnalytics(w http.ResponseWriter, _ *http.Request) {
	s.search.ClearAnalytics()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.search.CacheStats(r.Context())
	if err != nil {
		s.logger.Error("Cache stats failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, CodeInternal, "Cache unavailable")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	if err := s.search.ClearCache(r.Context()); err != nil {
		s.logger.Error("Cache clear failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, CodeInternal, "Cache unavailable")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type demoModeBody struct {
	Enabled bool `json:"enabled"`
}

func (s *Server) handleSetDemoMode(w http.ResponseWriter, r *http.Request) {
	var body demoModeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.search.SetDemoMode(body.Enabled)
	writeJSON(w, http.StatusOK, map[string]bool{"demoMode": s.search.DemoMode()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
