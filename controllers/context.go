package controllers

import (
	"github.com/gin-gonic/gin"
)

// currentUserID pulls the authenticated user's id out of the gin context.
// The second return is false for anonymous requests (try-auth routes).
func currentUserID(c *gin.Context) (uint32, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint32)
	return id, ok
}
