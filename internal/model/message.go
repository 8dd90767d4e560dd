package model

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Message is one turn in the conversation. Messages are immutable once
// created and are only ever appended to the session history; the whole list
// is replaced on an explicit session reset.
type Message struct {
	ID         string      // Session-unique stable key (UUID)
	Role       Role        // user or agent
	Content    string      // Text body; agent turns may carry markdown for the renderer
	Attachment *Attachment // Present only on user turns, at most one
	Timestamp  string      // Display-formatted capture time, assigned at creation
}

// Attachment is an inline, transport-safe representation of a user-selected
// file. InlineData is base64 and self-contained, so the attachment can be
// embedded directly in a send-turn request body.
type Attachment struct {
	Name       string
	MimeType   string
	InlineData string
	Size       int64 // Decoded payload size in bytes
}
