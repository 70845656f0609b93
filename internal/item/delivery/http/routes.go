package http

import (
	"github.com/gin-gonic/gin"

	"campus-lostfound/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Browsing reports is public; filing and modifying them requires auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.GET("", h.List)
		items.GET("/recent", h.Recent)
		items.GET("/search", h.Search)
		items.GET("/:id", h.Detail)
		items.POST("", mw.Auth(), h.Create)
		items.PUT("/:id", mw.Auth(), h.Update)
		items.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
