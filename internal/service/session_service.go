// Package service exposes the read API over plain HTTP JSON and Connect RPC.
package service

import (
	"context"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/karaokebattle/internal/calculator"
	"github.com/mmynk/karaokebattle/internal/models"
	"github.com/mmynk/karaokebattle/internal/storage"
)

const (
	// SessionServiceName is the fully-qualified name of the SessionService.
	SessionServiceName = "karaoke.v1.SessionService"

	ListSessionsProcedure    = "/" + SessionServiceName + "/ListSessions"
	GetSessionProcedure      = "/" + SessionServiceName + "/GetSession"
	GetRankingProcedure      = "/" + SessionServiceName + "/GetRanking"
	ListMasterNamesProcedure = "/" + SessionServiceName + "/ListMasterNames"
)

type ListSessionsRequest struct{}

type ListSessionsResponse struct {
	Sessions []*models.Session `json:"sessions"`
}

type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

type GetSessionResponse struct {
	Session *models.Session `json:"session"`
}

type GetRankingRequest struct {
	SessionID string `json:"session_id"`
}

type GetRankingResponse struct {
	SessionID string                `json:"session_id"`
	Standings []calculator.Standing `json:"standings"`
}

type ListMasterNamesRequest struct{}

type ListMasterNamesResponse struct {
	Names []string `json:"names"`
}

// SessionService serves read-only session data.
type SessionService struct {
	store storage.Store
}

// NewSessionService creates a new SessionService with the given storage backend.
func NewSessionService(store storage.Store) *SessionService {
	return &SessionService{store: store}
}

// NewSessionServiceHandler builds an HTTP handler serving the Connect
// procedures. It returns the path prefix to mount it on.
func NewSessionServiceHandler(svc *SessionService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSONCodec()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ListSessionsProcedure, connect.NewUnaryHandler(ListSessionsProcedure, svc.ListSessions, opts...))
	mux.Handle(GetSessionProcedure, connect.NewUnaryHandler(GetSessionProcedure, svc.GetSession, opts...))
	mux.Handle(GetRankingProcedure, connect.NewUnaryHandler(GetRankingProcedure, svc.GetRanking, opts...))
	mux.Handle(ListMasterNamesProcedure, connect.NewUnaryHandler(ListMasterNamesProcedure, svc.ListMasterNames, opts...))

	return "/" + SessionServiceName + "/", mux
}

// ListSessions returns every session, most recent first.
func (s *SessionService) ListSessions(ctx context.Context, req *connect.Request[ListSessionsRequest]) (*connect.Response[ListSessionsResponse], error) {
	slog.Debug("ListSessions request received")

	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, connectError("ListSessions", err)
	}

	slog.Debug("ListSessions successful", "count", len(sessions))
	return connect.NewResponse(&ListSessionsResponse{Sessions: sessions}), nil
}

// GetSession returns one session with participants and scores.
func (s *SessionService) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error) {
	sessionID := req.Msg.SessionID
	slog.Debug("GetSession request received", "session_id", sessionID)

	if sessionID == "" {
		return nil, connectError("GetSession", &models.ValidationError{Field: "session_id", Message: "required"})
	}

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, connectError("GetSession", err)
	}

	return connect.NewResponse(&GetSessionResponse{Session: session}), nil
}

// GetRanking returns the leaderboard of a finished session.
func (s *SessionService) GetRanking(ctx context.Context, req *connect.Request[GetRankingRequest]) (*connect.Response[GetRankingResponse], error) {
	sessionID := req.Msg.SessionID
	slog.Debug("GetRanking request received", "session_id", sessionID)

	resp, err := s.ranking(ctx, sessionID)
	if err != nil {
		return nil, connectError("GetRanking", err)
	}
	return connect.NewResponse(resp), nil
}

// ListMasterNames returns the known participant names.
func (s *SessionService) ListMasterNames(ctx context.Context, req *connect.Request[ListMasterNamesRequest]) (*connect.Response[ListMasterNamesResponse], error) {
	names, err := s.store.ListMasterNames(ctx)
	if err != nil {
		return nil, connectError("ListMasterNames", err)
	}
	return connect.NewResponse(&ListMasterNamesResponse{Names: names}), nil
}

// ranking loads a session and ranks it. Shared by both transports.
func (s *SessionService) ranking(ctx context.Context, sessionID string) (*GetRankingResponse, error) {
	if sessionID == "" {
		return nil, &models.ValidationError{Field: "session_id", Message: "required"}
	}

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	standings, err := calculator.Rank(session)
	if err != nil {
		return nil, err
	}

	slog.Info("Session ranked",
		"session_id", sessionID,
		"participants", len(standings),
	)
	return &GetRankingResponse{SessionID: sessionID, Standings: standings}, nil
}
