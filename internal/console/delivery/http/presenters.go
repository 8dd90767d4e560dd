package http

import (
	"sentellent-console/internal/console"
	"sentellent-console/internal/model"
)

// --- Request DTOs ---

type sendReq struct {
	Message string `json:"message"`
}

func (r sendReq) toInput() console.SubmitInput {
	return console.SubmitInput{Text: r.Message}
}

// --- Response DTOs ---

// attachmentResp deliberately omits the encoded payload. The UI only needs
// the metadata to render the chip.
type attachmentResp struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

func newAttachmentResp(att *model.Attachment) *attachmentResp {
	if att == nil {
		return nil
	}
	return &attachmentResp{
		Name:     att.Name,
		MimeType: att.MimeType,
		Size:     att.Size,
	}
}

type messageResp struct {
	ID         string          `json:"id"`
	Role       string          `json:"role"`
	Content    string          `json:"content"`
	Attachment *attachmentResp `json:"attachment,omitempty"`
	Timestamp  string          `json:"timestamp"`
}

func newMessageResp(msg model.Message) messageResp {
	return messageResp{
		ID:         msg.ID,
		Role:       string(msg.Role),
		Content:    msg.Content,
		Attachment: newAttachmentResp(msg.Attachment),
		Timestamp:  msg.Timestamp,
	}
}

type messagesResp struct {
	Messages []messageResp `json:"messages"`
}

func (h *handler) newMessagesResp(messages []model.Message) messagesResp {
	out := make([]messageResp, len(messages))
	for i, msg := range messages {
		out[i] = newMessageResp(msg)
	}
	return messagesResp{Messages: out}
}

type memoryItemResp struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Time    string `json:"time,omitempty"`
}

type memoryResp struct {
	Items       []memoryItemResp `json:"items"`
	LoadPercent int              `json:"load_percent"`
}

func newMemoryResp(view console.MemoryView) memoryResp {
	items := make([]memoryItemResp, len(view.Items))
	for i, item := range view.Items {
		items[i] = memoryItemResp{ID: item.ID, Content: item.Content, Time: item.Time}
	}
	return memoryResp{Items: items, LoadPercent: view.LoadPercent}
}

type profileResp struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func newProfileResp(p model.UserProfile) profileResp {
	return profileResp{Name: p.Name, Email: p.Email}
}

type sessionResp struct {
	Profile  profileResp   `json:"profile"`
	Messages []messageResp `json:"messages"`
	Memory   memoryResp    `json:"memory"`
}

func (h *handler) newSessionResp(out console.StartOutput) sessionResp {
	return sessionResp{
		Profile:  newProfileResp(out.Profile),
		Messages: h.newMessagesResp(out.Messages).Messages,
		Memory:   newMemoryResp(out.Memory),
	}
}

type sendResp struct {
	UserMessage  messageResp `json:"user_message"`
	AgentMessage messageResp `json:"agent_message"`
	Failed       bool        `json:"failed"`
	Discarded    bool        `json:"discarded"`
	Memory       memoryResp  `json:"memory"`
}

func (h *handler) newSendResp(out console.SubmitOutput) sendResp {
	return sendResp{
		UserMessage:  newMessageResp(out.UserMessage),
		AgentMessage: newMessageResp(out.AgentMessage),
		Failed:       out.Failed,
		Discarded:    out.Discarded,
		Memory:       newMemoryResp(out.Memory),
	}
}

type resetResp struct {
	Greeting messageResp `json:"greeting"`
}

func (h *handler) newResetResp(out console.ResetOutput) resetResp {
	return resetResp{Greeting: newMessageResp(out.Greeting)}
}

type authURLResp struct {
	URL string `json:"url"`
}
