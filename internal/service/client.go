package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// SessionServiceClient calls the SessionService over Connect.
type SessionServiceClient struct {
	listSessions    *connect.Client[ListSessionsRequest, ListSessionsResponse]
	getSession      *connect.Client[GetSessionRequest, GetSessionResponse]
	getRanking      *connect.Client[GetRankingRequest, GetRankingResponse]
	listMasterNames *connect.Client[ListMasterNamesRequest, ListMasterNamesResponse]
}

// NewSessionServiceClient constructs a client for the server at baseURL
// (e.g. http://localhost:8080).
func NewSessionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SessionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSONCodec()}, opts...)
	return &SessionServiceClient{
		listSessions:    connect.NewClient[ListSessionsRequest, ListSessionsResponse](httpClient, baseURL+ListSessionsProcedure, opts...),
		getSession:      connect.NewClient[GetSessionRequest, GetSessionResponse](httpClient, baseURL+GetSessionProcedure, opts...),
		getRanking:      connect.NewClient[GetRankingRequest, GetRankingResponse](httpClient, baseURL+GetRankingProcedure, opts...),
		listMasterNames: connect.NewClient[ListMasterNamesRequest, ListMasterNamesResponse](httpClient, baseURL+ListMasterNamesProcedure, opts...),
	}
}

func (c *SessionServiceClient) ListSessions(ctx context.Context, req *connect.Request[ListSessionsRequest]) (*connect.Response[ListSessionsResponse], error) {
	return c.listSessions.CallUnary(ctx, req)
}

func (c *SessionServiceClient) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

func (c *SessionServiceClient) GetRanking(ctx context.Context, req *connect.Request[GetRankingRequest]) (*connect.Response[GetRankingResponse], error) {
	return c.getRanking.CallUnary(ctx, req)
}

func (c *SessionServiceClient) ListMasterNames(ctx context.Context, req *connect.Request[ListMasterNamesRequest]) (*connect.Response[ListMasterNamesResponse], error) {
	return c.listMasterNames.CallUnary(ctx, req)
}
