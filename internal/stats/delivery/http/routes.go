package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All stats endpoints are public reads.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	st := rg.Group("/stats")
	{
		st.GET("", h.Overall)
		st.GET("/daily", h.Daily)
		st.GET("/category/:category", h.Category)
		st.GET("/location/:location", h.Location)
	}
}
