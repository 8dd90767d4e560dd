package repository

import (
	"context"

	"sentellent-console/internal/model"
)

// AgentRepository is the remote agent boundary as the controller sees it.
// Failure policy is part of the contract: the send path surfaces transport
// errors, the supplementary reads degrade instead of failing.
type AgentRepository interface {
	// SendTurn submits one turn and returns the agent's reply text. Errors
	// are transport failures; there is no automatic retry.
	SendTurn(ctx context.Context, sc model.Scope, text string, att *model.Attachment) (string, error)

	// FetchMemory returns the current snapshot. The error reports a failed
	// fetch so the caller can keep its prior snapshot; it never carries a
	// partial result.
	FetchMemory(ctx context.Context, sc model.Scope) (model.MemorySnapshot, error)

	// FetchProfile returns nil when the profile cannot be fetched; callers
	// render a placeholder.
	FetchProfile(ctx context.Context) *model.UserProfile

	// EndSession is fire-and-forget: failures are logged, never returned.
	EndSession(ctx context.Context)

	// AuthURL returns the backend's Google auth redirect target.
	AuthURL(ctx context.Context) (string, error)
}
