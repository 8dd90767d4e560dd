package agentapi

import (
	"errors"
	"fmt"
)

// TransportError reports a network failure or a non-success status from the
// agent backend. Status is zero when the request never completed.
type TransportError struct {
	Op     string // Operation that failed, e.g. "send turn"
	Status int    // HTTP status code, 0 if the call did not complete
	Body   string // Response body excerpt for non-success statuses
	Err    error  // Underlying error, nil for status failures
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("agent %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("agent %s failed: status %d: %s", e.Op, e.Status, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
