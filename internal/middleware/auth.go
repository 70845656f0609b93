package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"campus-lostfound/pkg/response"
)

// Auth validates the Bearer token and stores the caller's identity in the
// request context.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := mw.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			mw.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}
