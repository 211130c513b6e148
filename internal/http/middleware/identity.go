// README: Identity middleware; trusts the gateway-supplied user headers.
package middleware

import "github.com/gin-gonic/gin"

// Identity copies the authenticated user headers set by the upstream gateway
// into the request context. Token verification happens at the edge, not here.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader("X-User-ID"); id != "" {
			c.Set("userID", id)
		}
		if role := c.GetHeader("X-User-Role"); role != "" {
			c.Set("userRole", role)
		}
		c.Next()
	}
}
