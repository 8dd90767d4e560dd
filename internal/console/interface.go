package console

import (
	"context"
	"io"

	"sentellent-console/internal/model"
)

// UseCase is the conversation session controller: it owns the ordered
// message history, the single pending-attachment slot, the in-flight send
// state, and the derived memory side-panel view.
type UseCase interface {
	// Start initializes the session: profile fetch (placeholder on failure)
	// and an initial memory refresh. Neither failure blocks the session.
	Start(ctx context.Context, sc model.Scope) (StartOutput, error)

	// Submit sends one conversational turn. The user turn is appended
	// optimistically; the agent turn (or a fixed connectivity-failure turn)
	// is appended when the send resolves. Returns ErrSendInFlight while a
	// previous send is unresolved and ErrEmptySubmission when there is
	// neither text nor a pending attachment.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (SubmitOutput, error)

	// Attach encodes a user-selected file into the pending-attachment slot.
	// The most recent selection wins; an encode that finishes after a newer
	// selection started is discarded with ErrStaleSelection.
	Attach(ctx context.Context, input AttachInput) (model.Attachment, error)

	// ClearAttachment empties the pending-attachment slot and invalidates
	// any in-flight encode.
	ClearAttachment(ctx context.Context)

	// PendingAttachment reports the current slot content, nil when empty.
	PendingAttachment(ctx context.Context) *model.Attachment

	// Reset replaces the history with a single fresh greeting, clears the
	// pending attachment and forces the machine back to idle. A send still
	// in flight resolves against a stale generation and is discarded.
	Reset(ctx context.Context) ResetOutput

	// History returns a copy of the ordered message list.
	History(ctx context.Context) []model.Message

	// Memory returns the last successfully applied memory view.
	Memory(ctx context.Context, sc model.Scope) MemoryView

	// RefreshMemory fetches a fresh snapshot and replaces the view
	// wholesale. A failed fetch leaves the prior view untouched; a result
	// superseded by a later refresh is discarded.
	RefreshMemory(ctx context.Context, sc model.Scope) MemoryView

	// Profile returns the session profile, placeholder if the fetch failed.
	Profile(ctx context.Context) model.UserProfile

	// AuthURL resolves the Google auth hand-off target for onboarding.
	AuthURL(ctx context.Context) (string, error)

	// Logout ends the backend session best-effort and resets local state.
	Logout(ctx context.Context, sc model.Scope) ResetOutput
}

// AttachInput is a user file selection.
type AttachInput struct {
	Name     string
	MimeType string
	Reader   io.Reader
}

// AuthProvider builds a Google OAuth consent URL locally. When absent, the
// controller asks the agent backend for the redirect target instead.
type AuthProvider interface {
	AuthCodeURL(state string) string
}
