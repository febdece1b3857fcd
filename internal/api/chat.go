package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/log"
)

// maxBodyBytes caps the request body size.
const maxBodyBytes = 1 << 20 // 1 MB

// Service is the orchestration layer as seen by the HTTP handlers.
type Service interface {
	Chat(ctx context.Context, sessionID, query string) (string, error)
	Escalate(ctx context.Context, sessionID string) (string, error)
}

// Chat handles the /chat and /escalate endpoints.
type Chat struct {
	bot    Service
	logger log.Logger
}

// NewChat creates a chat handler backed by the given service.
func NewChat(bot Service, logger log.Logger) *Chat {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Chat{bot: bot, logger: logger}
}

// RegisterRoutes registers chat routes on the given mux.
func (h *Chat) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /chat", h.HandleChat)
	mux.HandleFunc("POST /escalate", h.HandleEscalate)
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type escalateRequest struct {
	SessionID string `json:"session_id"`
}

type escalateResponse struct {
	Summary string `json:"summary"`
}

// HandleChat processes one conversational turn.
// Missing session_id or query is a client error with no persistence side
// effect. Internal failures come back as a generic 500, logged server-side.
func (h *Chat) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: session_id or query")
		return
	}
	if req.SessionID == "" || req.Query == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: session_id or query")
		return
	}

	response, err := h.bot.Chat(r.Context(), req.SessionID, req.Query)
	if err != nil {
		h.logger.Error("chat request failed", "session_id", req.SessionID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: response})
}

// HandleEscalate returns a transcript summary for human-agent handoff.
// Never mutates the session store.
func (h *Chat) HandleEscalate(w http.ResponseWriter, r *http.Request) {
	var req escalateRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required field: session_id")
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: session_id")
		return
	}

	summary, err := h.bot.Escalate(r.Context(), req.SessionID)
	if err != nil {
		h.logger.Error("escalate request failed", "session_id", req.SessionID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, escalateResponse{Summary: summary})
}
