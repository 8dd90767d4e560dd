package attachment

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"sentellent-console/internal/model"
)

// DefaultMaxSizeBytes caps inline payloads at 5 MiB. The encoded form is
// embedded directly in a JSON request body, so this bounds request size too.
const DefaultMaxSizeBytes = 5 << 20

// DefaultAllowedTypes is the MIME allow-list applied when config provides none.
var DefaultAllowedTypes = []string{
	"application/pdf",
	"text/plain",
	"text/markdown",
	"text/csv",
	"image/png",
	"image/jpeg",
	"image/webp",
}

// Encoder converts a user-selected file into an inline, transport-safe
// representation. Validation is fail-fast: size and type are checked before
// an attachment is accepted.
type Encoder struct {
	maxSize int64
	allowed map[string]struct{}
}

// NewEncoder creates an Encoder. Zero maxSize and an empty allow-list fall
// back to the package defaults.
func NewEncoder(maxSize int64, allowedTypes []string) *Encoder {
	if maxSize <= 0 {
		maxSize = DefaultMaxSizeBytes
	}
	if len(allowedTypes) == 0 {
		allowedTypes = DefaultAllowedTypes
	}

	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}

	return &Encoder{maxSize: maxSize, allowed: allowed}
}

// Encode reads the file fully into memory and produces a self-contained
// base64 attachment. It is single-shot per file; callers own the policy for
// a selection superseding an earlier one.
func (e *Encoder) Encode(ctx context.Context, name, mimeType string, r io.Reader) (model.Attachment, error) {
	if name == "" {
		return model.Attachment{}, ErrMissingName
	}
	if _, ok := e.allowed[mimeType]; !ok {
		return model.Attachment{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
	if err := ctx.Err(); err != nil {
		return model.Attachment{}, err
	}

	// Read one byte past the cap so oversize is detected without buffering
	// an unbounded payload.
	data, err := io.ReadAll(io.LimitReader(r, e.maxSize+1))
	if err != nil {
		return model.Attachment{}, fmt.Errorf("failed to read attachment %q: %w", name, err)
	}
	if int64(len(data)) > e.maxSize {
		return model.Attachment{}, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, e.maxSize)
	}
	if len(data) == 0 {
		return model.Attachment{}, ErrEmptyFile
	}

	return model.Attachment{
		Name:       name,
		MimeType:   mimeType,
		InlineData: base64.StdEncoding.EncodeToString(data),
		Size:       int64(len(data)),
	}, nil
}

// MaxSize reports the configured payload cap in bytes.
func (e *Encoder) MaxSize() int64 {
	return e.maxSize
}
