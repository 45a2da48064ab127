package service

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the JSON body of every failed API request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RegisterRoutes mounts the plain JSON read API on mux.
func (s *SessionService) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/sessions", s.handleListSessions)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("GET /api/sessions/{id}/ranking", s.handleGetRanking)
	mux.HandleFunc("GET /api/master-list", s.handleListMasterNames)
}

// handleListSessions handles GET /api/sessions.
// An empty store yields [], never an error.
func (s *SessionService) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.store.ListSessions(r.Context())
	if err != nil {
		writeError(w, "ListSessions", err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// handleGetSession handles GET /api/sessions/{id}.
func (s *SessionService) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.GetSession(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, "GetSession", err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// handleGetRanking handles GET /api/sessions/{id}/ranking.
func (s *SessionService) handleGetRanking(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ranking(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, "GetRanking", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleListMasterNames handles GET /api/master-list.
func (s *SessionService) handleListMasterNames(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.ListMasterNames(r.Context())
	if err != nil {
		writeError(w, "ListMasterNames", err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, op string, err error) {
	status := httpStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error(op+" failed", "error", err)
		message = errInternal.Error()
	}
	writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
