package http

import (
	"github.com/gin-gonic/gin"

	"tugasku/internal/middleware"
	"tugasku/pkg/log"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the parsing endpoints are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.POST("/chat/classify", mw.RateLimit(), h.Classify)
	rg.GET("/notification", h.Notification)

	previews := rg.Group("/previews", tagSession)
	{
		previews.GET("/:id", h.GetPreview)
		previews.POST("/:id/confirm", h.Confirm)
		previews.POST("/:id/save-as-note", h.SaveAsNote)
		previews.POST("/:id/cancel", h.Cancel)
	}
}

// tagSession adds the preview session ID to the request context so it shows up in logs.
func tagSession(c *gin.Context) {
	c.Request = c.Request.WithContext(log.WithSessionID(c.Request.Context(), c.Param("id")))
	c.Next()
}
