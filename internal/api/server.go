// Package api provides the JSON HTTP surface of the support bot.
//
// Endpoints:
//   - GET  /health   - liveness probe
//   - POST /chat     - one conversational turn
//   - POST /escalate - transcript summary for human handoff
//
// All failures are caught at this boundary and converted to one of two
// error shapes: {"error": ...} with 400 for missing fields, 500 for
// anything unexpected. No stack trace or detail ever reaches the caller.
package api

import (
	"errors"
	"net/http"

	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/log"
)

// Server is the HTTP API server.
type Server struct {
	mux    *http.ServeMux
	logger log.Logger
	cors   []string
}

// ServerConfig contains configuration for creating an API server.
type ServerConfig struct {
	Logger      log.Logger // Required
	Bot         Service    // Required: orchestration service
	CORSOrigins []string   // Origins allowed to call the API from a browser
}

// NewServer creates a server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Bot == nil {
		return nil, errors.New("bot service is required")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health)
	NewChat(cfg.Bot, cfg.Logger).RegisterRoutes(mux)

	return &Server{
		mux:    mux,
		logger: cfg.Logger,
		cors:   cfg.CORSOrigins,
	}, nil
}

// Handler returns the root handler with the middleware chain applied:
// recovery first (outermost), then request logging, then CORS.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = corsMiddleware(s.cors)(h)
	h = loggingMiddleware(s.logger)(h)
	h = recoveryMiddleware(s.logger)(h)
	return h
}
