package http

import (
	"github.com/gin-gonic/gin"

	"sentellent-console/internal/console"
	"sentellent-console/pkg/log"
)

// Handler is the public interface for the console HTTP delivery layer.
type Handler interface {
	Session(c *gin.Context)
	SendMessage(c *gin.Context)
	ListMessages(c *gin.Context)
	Attach(c *gin.Context)
	ClearAttachment(c *gin.Context)
	Reset(c *gin.Context)
	Memory(c *gin.Context)
	RefreshMemory(c *gin.Context)
	Profile(c *gin.Context)
	AuthURL(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l             log.Logger
	uc            console.UseCase
	defaultUserID string
}

// New creates a new HTTP handler for the console domain. defaultUserID
// scopes requests that carry no explicit user identity.
func New(l log.Logger, uc console.UseCase, defaultUserID string) Handler {
	return &handler{
		l:             l,
		uc:            uc,
		defaultUserID: defaultUserID,
	}
}
