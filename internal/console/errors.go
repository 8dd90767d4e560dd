package console

import "errors"

// Domain-specific errors for the console package.
var (
	ErrSendInFlight    = errors.New("a send is already in flight")
	ErrEmptySubmission = errors.New("submission needs text or an attachment")
	ErrStaleSelection  = errors.New("file selection superseded by a newer one")
)
