package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sentellent-console/internal/attachment"
	"sentellent-console/internal/console"
	"sentellent-console/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Unknown errors
// fall through to 500 without leaking the cause.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, console.ErrSendInFlight),
		errors.Is(err, console.ErrStaleSelection):
		response.Conflict(c, err)
	case errors.Is(err, console.ErrEmptySubmission),
		errors.Is(err, attachment.ErrMissingName),
		errors.Is(err, attachment.ErrEmptyFile),
		errors.Is(err, attachment.ErrTooLarge),
		errors.Is(err, attachment.ErrUnsupportedType):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
