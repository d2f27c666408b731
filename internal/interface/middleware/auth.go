package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matrikabazaar/marketplace-api/pkg/helpers"
	"github.com/matrikabazaar/marketplace-api/pkg/response"
)

// Context keys set by TokenAuth on success.
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// TokenAuth reads the raw signed token from the Authorization header
// (no scheme prefix), validates it, and injects the asserted id+role
// pair into the Gin context. Missing token and invalid token are
// distinct rejections; in both cases the gated operation never runs.
func TokenAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "no token provided", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token", err.Error())
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole rejects authenticated identities whose role does not
// match. Must run after TokenAuth.
func RequireRole(role string, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRoleKey) != role {
			response.AbortError(c, http.StatusForbidden, message, nil)
			return
		}
		c.Next()
	}
}
