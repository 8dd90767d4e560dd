package attachment

import "errors"

// Encoding errors for the attachment package.
var (
	ErrMissingName     = errors.New("attachment has no file name")
	ErrEmptyFile       = errors.New("attachment file is empty")
	ErrTooLarge        = errors.New("attachment exceeds the maximum allowed size")
	ErrUnsupportedType = errors.New("attachment MIME type is not allowed")
)
