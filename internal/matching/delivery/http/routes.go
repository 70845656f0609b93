package http

import (
	"github.com/gin-gonic/gin"

	"campus-lostfound/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Reads are public; status changes and deletion require auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	matches := rg.Group("/matches")
	{
		matches.GET("", h.List)
		matches.GET("/stats", h.Stats)
		matches.GET("/item/:id", h.GetForItem)
		matches.GET("/:id", h.Detail)
		matches.PUT("/:id/status", mw.Auth(), h.SetStatus)
		matches.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
