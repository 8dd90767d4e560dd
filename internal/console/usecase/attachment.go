package usecase

import (
	"context"

	"sentellent-console/internal/console"
	"sentellent-console/internal/model"
)

// Attach encodes a file selection into the pending slot. Selections are
// serialized by a sequence number: the most recent one wins, and an encode
// that finishes after a newer selection started is thrown away.
func (uc *implUseCase) Attach(ctx context.Context, input console.AttachInput) (model.Attachment, error) {
	uc.mu.Lock()
	uc.attachSeq++
	seq := uc.attachSeq
	uc.mu.Unlock()

	att, err := uc.encoder.Encode(ctx, input.Name, input.MimeType, input.Reader)
	if err != nil {
		uc.l.Warnf(ctx, "console: attachment %q rejected: %v", input.Name, err)
		return model.Attachment{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if seq != uc.attachSeq {
		return model.Attachment{}, console.ErrStaleSelection
	}

	uc.pendingAttachment = &att
	uc.l.Debugf(ctx, "console: attachment %q staged (%d bytes)", att.Name, att.Size)
	return att, nil
}

// ClearAttachment empties the slot and invalidates any encode in flight.
func (uc *implUseCase) ClearAttachment(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.attachSeq++
	uc.pendingAttachment = nil
}

// PendingAttachment reports the slot content, nil when empty.
func (uc *implUseCase) PendingAttachment(ctx context.Context) *model.Attachment {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.pendingAttachment == nil {
		return nil
	}
	att := *uc.pendingAttachment
	return &att
}
