package agentapi

import "context"

// API is the operation surface of the agent backend client.
type API interface {
	SendTurn(ctx context.Context, req SendTurnRequest) (*SendTurnResponse, error)
	GetMemory(ctx context.Context, userID string) (*MemoryResponse, error)
	GetProfile(ctx context.Context) (*Profile, error)
	Logout(ctx context.Context) error
	AuthURL(ctx context.Context) (string, error)
	Health(ctx context.Context) (*HealthResponse, error)
}

var _ API = (*Client)(nil)
