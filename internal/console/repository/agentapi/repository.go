package agentapi

import (
	"context"
	"fmt"

	"sentellent-console/internal/model"
	pkgAgentAPI "sentellent-console/pkg/agentapi"
)

// SendTurn submits one turn. Transport failures propagate so the state
// machine can map them to the synthetic failure turn.
func (r *implRepository) SendTurn(ctx context.Context, sc model.Scope, text string, att *model.Attachment) (string, error) {
	req := pkgAgentAPI.SendTurnRequest{
		Message: text,
		UserID:  sc.UserID,
	}
	if att != nil {
		req.File = &pkgAgentAPI.InlineFile{
			Name: att.Name,
			Type: att.MimeType,
			Data: att.InlineData,
		}
	}

	resp, err := r.api.SendTurn(ctx, req)
	if err != nil {
		return "", fmt.Errorf("send turn: %w", err)
	}
	return resp.Response, nil
}

// FetchMemory maps the wire snapshot to the domain shape. Items without an
// id (legacy string memories) get a positional one so the UI has a stable
// key within the snapshot.
func (r *implRepository) FetchMemory(ctx context.Context, sc model.Scope) (model.MemorySnapshot, error) {
	resp, err := r.api.GetMemory(ctx, sc.UserID)
	if err != nil {
		r.l.Warnf(ctx, "agent repository: memory fetch failed for user %s: %v", sc.UserID, err)
		return nil, err
	}

	snapshot := make(model.MemorySnapshot, 0, len(resp.Memories))
	for i, m := range resp.Memories {
		id := m.ID
		if id == "" {
			id = fmt.Sprintf("mem-%d", i)
		}
		snapshot = append(snapshot, model.MemoryItem{
			ID:      id,
			Content: m.Content,
			Time:    m.Time,
		})
	}
	return snapshot, nil
}

// FetchProfile absorbs failures into nil; the caller renders a placeholder.
func (r *implRepository) FetchProfile(ctx context.Context) *model.UserProfile {
	resp, err := r.api.GetProfile(ctx)
	if err != nil {
		r.l.Warnf(ctx, "agent repository: profile fetch failed: %v", err)
		return nil
	}
	return &model.UserProfile{
		Name:  resp.Name,
		Email: resp.Email,
	}
}

// EndSession is best-effort. Logout must always visually succeed, so the
// outcome is logged and dropped.
func (r *implRepository) EndSession(ctx context.Context) {
	if err := r.api.Logout(ctx); err != nil {
		r.l.Warnf(ctx, "agent repository: logout failed (ignored): %v", err)
	}
}

// AuthURL returns the backend-provided Google auth redirect target.
func (r *implRepository) AuthURL(ctx context.Context) (string, error) {
	u, err := r.api.AuthURL(ctx)
	if err != nil {
		return "", fmt.Errorf("begin auth: %w", err)
	}
	return u, nil
}
