package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/userauth/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(middleware.UserIDContextKey)
}
