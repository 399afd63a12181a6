package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workdesk/internal/shared/utils"
)

const actingUserHeader = "X-User-ID"

// ActingUser extracts the caller's user ID from the X-User-ID header into
// the request context. Authentication proper sits in front of this service;
// the header is what the gateway forwards.
func ActingUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(actingUserHeader)
		if raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || id == 0 {
				utils.ErrorResponse(c, 400, "invalid X-User-ID header")
				c.Abort()
				return
			}
			c.Set("user_id", uint(id))
		}
		c.Next()
	}
}

// RequireActingUser rejects requests that did not carry a user ID.
func RequireActingUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user_id"); !exists {
			utils.ErrorResponse(c, 401, "X-User-ID header is required")
			c.Abort()
			return
		}
		c.Next()
	}
}
