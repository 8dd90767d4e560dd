package http

import (
	"errors"
	"mime"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"sentellent-console/internal/console"
	"sentellent-console/internal/model"
)

const (
	userIDHeader  = "X-User-ID"
	userIDQuery   = "user_id"
	fileFormField = "file"
)

var errMissingFile = errors.New("file is required")

// scope resolves the request identity: explicit header, then query
// parameter, then the configured default.
func (h *handler) scope(c *gin.Context) model.Scope {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		userID = c.Query(userIDQuery)
	}
	if userID == "" {
		userID = h.defaultUserID
	}
	return model.Scope{UserID: userID}
}

// processSendReq binds the send message request body. An empty message is
// still valid here because a staged attachment alone satisfies the turn.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAttachReq extracts the multipart upload. The returned close func
// releases the file handle and must be called by the handler.
func (h *handler) processAttachReq(c *gin.Context) (console.AttachInput, func(), error) {
	fileHeader, err := c.FormFile(fileFormField)
	if err != nil {
		return console.AttachInput{}, nil, errMissingFile
	}

	f, err := fileHeader.Open()
	if err != nil {
		return console.AttachInput{}, nil, err
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
	}

	input := console.AttachInput{
		Name:     filepath.Base(fileHeader.Filename),
		MimeType: mimeType,
		Reader:   f,
	}
	return input, func() { f.Close() }, nil
}
