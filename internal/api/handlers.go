package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sakinah-app/sakinah/internal/guidance"
	"github.com/sakinah-app/sakinah/internal/logging"
	"github.com/sakinah-app/sakinah/internal/store"
)

// maxBodyBytes bounds the request body; a feeling is a short string.
const maxBodyBytes = 64 * 1024

// APIResponse is the standard API response wrapper for errors and metadata
// endpoints. The guidance endpoint itself returns the enriched model payload
// unwrapped.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Total     int    `json:"total,omitempty"`
	Timestamp string `json:"timestamp"`
}

// GuidanceRequest is the request body for the guidance endpoint. Profile is
// accepted in any shape for forward compatibility and ignored.
type GuidanceRequest struct {
	Feeling string          `json:"feeling"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

// HealthInfo is the health check response.
type HealthInfo struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Model    string `json:"model"`
	Sessions int    `json:"sessions"`
}

var startTime = time.Now()

// Service wiring set by Start.
var (
	guidanceService *guidance.Service
	sessionStore    *store.Store
)

func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found")
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{
		"name":    "Sakinah API",
		"version": version,
		"endpoints": []string{
			"GET /health",
			"POST /guidance",
			"GET /sessions",
			"GET /sessions/:id",
			"WS /ws",
		},
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	count := 0
	if sessionStore != nil {
		if n, err := sessionStore.Count(r.Context()); err == nil {
			count = n
		}
	}

	respond(w, http.StatusOK, HealthInfo{
		Status:   "healthy",
		Version:  version,
		Uptime:   time.Since(startTime).String(),
		Model:    ServerConfig.Model,
		Sessions: count,
	})
}

func handleGuidance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	var req GuidanceRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be JSON with a feeling field")
		return
	}

	req.Feeling = strings.TrimSpace(req.Feeling)
	if req.Feeling == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "feeling must not be empty")
		return
	}

	ctx := r.Context()
	broadcastEvent("guidance_started", "", req.Feeling, "")

	start := time.Now()
	resp, err := guidanceService.Guide(ctx, req.Feeling)
	logging.UpstreamCall(ctx, ServerConfig.Model, time.Since(start), err)
	if err != nil {
		broadcastEvent("guidance_error", "", req.Feeling, err.Error())
		respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Guidance service unavailable")
		return
	}

	sessionID := saveSession(ctx, req.Feeling, resp)
	broadcastEvent("guidance_complete", sessionID, req.Feeling, "")

	// The enriched model payload is returned as-is, not wrapped.
	writeJSON(w, http.StatusOK, resp)
}

// saveSession records the exchange best-effort and returns the session ID,
// or "" when the store is unavailable. A failed save never fails the
// request.
func saveSession(ctx context.Context, feeling string, resp *guidance.Response) string {
	if sessionStore == nil {
		return ""
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		logging.ErrorContext(ctx, "marshal session response", "error", err)
		return ""
	}
	sess, err := sessionStore.Save(ctx, feeling, raw)
	if err != nil {
		logging.ErrorContext(ctx, "save session", "error", err)
		return ""
	}
	return sess.ID
}

func handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}
	if sessionStore == nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Session log is disabled")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be an integer between 1 and 100")
			return
		}
		limit = n
	}

	sessions, err := sessionStore.List(r.Context(), limit)
	if err != nil {
		logging.ErrorContext(r.Context(), "list sessions", "error", err)
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list sessions")
		return
	}

	respondWithTotal(w, http.StatusOK, sessions, len(sessions))
}

func handleSessionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}
	if sessionStore == nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Session log is disabled")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/sessions/")
	if id == "" || strings.Contains(id, "/") {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid session ID")
		return
	}

	sess, err := sessionStore.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Session not found")
		return
	}
	if err != nil {
		logging.ErrorContext(r.Context(), "get session", "error", err)
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load session")
		return
	}

	respond(w, http.StatusOK, sess)
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func respondWithTotal(w http.ResponseWriter, status int, data interface{}, total int) {
	writeJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Total:     total,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encode response", "error", err)
	}
}
