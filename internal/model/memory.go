package model

// MemoryItem is a single fact the agent has learned about the user.
type MemoryItem struct {
	ID      string
	Content string
	Time    string // RFC3339 extraction time from the backend, may be empty
}

// MemorySnapshot is a complete point-in-time view of the agent's memory for
// one user. Snapshots are replaced wholesale, never merged or mutated.
type MemorySnapshot []MemoryItem

// UserProfile is the identity fetched once at session start.
type UserProfile struct {
	Name  string
	Email string
}
