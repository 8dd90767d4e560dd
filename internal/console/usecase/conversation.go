package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"sentellent-console/internal/console"
	"sentellent-console/internal/model"
)

// Submit runs one full turn: optimistic user append, remote send, agent (or
// synthetic failure) append, then a memory refresh. At most one send may be
// in flight; a second attempt is rejected without touching state.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input console.SubmitInput) (console.SubmitOutput, error) {
	text := strings.TrimSpace(input.Text)

	uc.mu.Lock()
	if uc.sendInFlight {
		uc.mu.Unlock()
		return console.SubmitOutput{}, console.ErrSendInFlight
	}

	att := uc.pendingAttachment
	if text == "" && att == nil {
		uc.mu.Unlock()
		return console.SubmitOutput{}, console.ErrEmptySubmission
	}

	userMsg := uc.newMessage(model.RoleUser, text, att)
	uc.messages = append(uc.messages, userMsg)
	uc.pendingAttachment = nil
	uc.sendInFlight = true
	gen := uc.generation
	uc.mu.Unlock()

	reply, sendErr := uc.repo.SendTurn(ctx, sc, text, att)

	uc.mu.Lock()
	if gen != uc.generation {
		// The session was reset while this send was in flight; the result
		// must not leak into the new conversation.
		uc.mu.Unlock()
		uc.l.Warnf(ctx, "console: discarding reply that resolved after reset (generation %d)", gen)
		return console.SubmitOutput{UserMessage: userMsg, Discarded: true}, nil
	}

	uc.sendInFlight = false

	var agentMsg model.Message
	failed := false
	if sendErr != nil {
		uc.l.Errorf(ctx, "console: send turn failed: %v", sendErr)
		agentMsg = uc.newMessage(model.RoleAgent, uc.failureText, nil)
		failed = true
	} else {
		agentMsg = uc.newMessage(model.RoleAgent, reply, nil)
	}
	uc.messages = append(uc.messages, agentMsg)
	uc.mu.Unlock()

	// The agent may have extracted new memory from this turn, so the side
	// panel refreshes after every completed turn, failed ones included.
	view := uc.RefreshMemory(ctx, sc)

	return console.SubmitOutput{
		UserMessage:  userMsg,
		AgentMessage: agentMsg,
		Failed:       failed,
		Memory:       view,
	}, nil
}

// Reset atomically replaces the conversation with a single fresh greeting.
// Bumping the generation orphans any in-flight send; bumping the attach
// sequence orphans any in-flight encode.
func (uc *implUseCase) Reset(ctx context.Context) console.ResetOutput {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.generation++
	uc.attachSeq++
	uc.sendInFlight = false
	uc.pendingAttachment = nil

	greeting := uc.newMessage(model.RoleAgent, uc.greeting, nil)
	uc.messages = []model.Message{greeting}

	return console.ResetOutput{Greeting: greeting}
}

// History returns a copy of the ordered message list.
func (uc *implUseCase) History(ctx context.Context) []model.Message {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]model.Message, len(uc.messages))
	copy(out, uc.messages)
	return out
}

// newMessage creates an immutable turn. Callers other than the constructor
// hold uc.mu.
func (uc *implUseCase) newMessage(role model.Role, content string, att *model.Attachment) model.Message {
	return model.Message{
		ID:         uuid.NewString(),
		Role:       role,
		Content:    content,
		Attachment: att,
		Timestamp:  uc.clock().Format(timestampLayout),
	}
}
