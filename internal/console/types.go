package console

import "sentellent-console/internal/model"

// SubmitInput is one outbound turn. The attachment, if any, comes from the
// pending slot rather than the input.
type SubmitInput struct {
	Text string
}

// SubmitOutput is the resolved turn.
type SubmitOutput struct {
	UserMessage  model.Message
	AgentMessage model.Message
	Failed       bool // The agent turn is the synthetic connectivity-failure message
	Discarded    bool // The session was reset while the send was in flight
	Memory       MemoryView
}

// StartOutput is the initial session state for the UI.
type StartOutput struct {
	Profile  model.UserProfile
	Messages []model.Message
	Memory   MemoryView
}

// ResetOutput reports the fresh conversation after a reset.
type ResetOutput struct {
	Greeting model.Message
}

// MemoryView is the side-panel view model: the last good snapshot plus a
// derived load indicator. LoadPercent is a pure function of snapshot size.
type MemoryView struct {
	Items       []model.MemoryItem
	LoadPercent int
}
