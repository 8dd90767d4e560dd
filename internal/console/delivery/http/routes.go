package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/session", h.Session)

	rg.POST("/messages", h.SendMessage)
	rg.GET("/messages", h.ListMessages)

	rg.POST("/attachment", h.Attach)
	rg.DELETE("/attachment", h.ClearAttachment)

	rg.POST("/reset", h.Reset)

	rg.GET("/memory", h.Memory)
	rg.POST("/memory/refresh", h.RefreshMemory)

	rg.GET("/profile", h.Profile)
	rg.GET("/auth/url", h.AuthURL)
	rg.POST("/logout", h.Logout)
}
