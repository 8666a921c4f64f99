package server

import "github.com/gin-gonic/gin"

// respondError sends a JSON error body and aborts the handler chain.
func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
