package handlers

import "github.com/gin-gonic/gin"

// currentUserID returns the caller's user ID set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}
