package usecase

import "time"

const (
	// DefaultGreeting opens every fresh session.
	DefaultGreeting = "Good morning. I've finished scanning your workspace. How can I help you today?"

	// ConnectivityFailureMessage is the fixed synthetic agent turn appended
	// when a send cannot reach the backend. It is never retried.
	ConnectivityFailureMessage = "I couldn't reach the agent just now. Please check your connection and send that again."

	// GuestUserName is rendered when the profile fetch fails.
	GuestUserName = "Guest User"

	// timestampLayout is the display format for message capture times.
	timestampLayout = "03:04 PM"

	// defaultMemoryLoadCapacity is the snapshot size that reads as a 100%
	// memory load on the side panel.
	defaultMemoryLoadCapacity = 50

	// Snapshot cache bounds: page-lifetime retention, not persistence.
	snapshotCacheSize = 16
	snapshotCacheTTL  = 30 * time.Minute
)
