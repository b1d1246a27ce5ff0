package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "kikabraids/internal/pkg/jwt"
	"kikabraids/internal/pkg/response"
)

// AdminAuth validates the Bearer token on every request and requires the
// admin role. Unlike a client-held session flag, the server checks the
// credential on each mutating call.
func AdminAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "invalid authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		if claims.Role != jwtsvc.RoleAdmin {
			response.Error(c, http.StatusForbidden, "admin role required")
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
