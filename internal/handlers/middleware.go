package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const throttleMessage = "Slow down! You're sending requests too fast. Try again in a bit."

func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userId, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set("userId", userId)
	c.Next()
}

// rateLimitMiddleware gates mutation endpoints behind the global
// fixed-window throttle. Rejections are explicit 429s, never drops.
func (h *Handler) rateLimitMiddleware(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow() {
		if h.log != nil {
			h.log.Infow("request_rate_limited", "path", c.FullPath())
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": throttleMessage,
		})
		return
	}
	c.Next()
}

// userID extracts the identity placed by userIdMiddleware.
func userID(c *gin.Context) (int, bool) {
	v, ok := c.Get("userId")
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
