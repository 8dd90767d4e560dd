package model

// Scope carries the resolved identity of the current session. It is built
// once by the delivery layer and threaded explicitly through every
// operation; nothing reads identity from ambient process state.
type Scope struct {
	UserID string
	Email  string
}
