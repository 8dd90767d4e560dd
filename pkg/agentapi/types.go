package agentapi

import "encoding/json"

// SendTurnRequest is the body for POST /chat.
type SendTurnRequest struct {
	Message string      `json:"message"`
	File    *InlineFile `json:"file,omitempty"`
	UserID  string      `json:"user_id"`
}

// InlineFile is an attachment embedded in a chat request.
type InlineFile struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"` // base64 payload
}

// SendTurnResponse is the backend's reply to a chat turn.
type SendTurnResponse struct {
	Response string `json:"response"`
	UserID   string `json:"user_id"`
}

// MemoryResponse is the body of GET /memory.
type MemoryResponse struct {
	Memories []MemoryItem `json:"memories"`
}

// MemoryItem is one extracted fact. Older backend builds return memories as
// bare strings rather than objects, so decoding accepts both shapes.
type MemoryItem struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Time    string `json:"time,omitempty"`
}

// UnmarshalJSON accepts either `"KEY: value"` or `{"id":..., "content":...}`.
func (m *MemoryItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		m.ID = ""
		m.Content = s
		m.Time = ""
		return nil
	}

	type alias MemoryItem
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*m = MemoryItem(obj)
	return nil
}

// Profile is the body of GET /me.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HealthResponse is the body of GET /.
type HealthResponse struct {
	Message string `json:"message"`
}

type authURLResponse struct {
	URL string `json:"url"`
}
