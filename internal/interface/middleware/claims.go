package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-todo/internal/domain/service"
	"github.com/oksasatya/go-ddd-todo/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxRoleKey   = "role"
	CtxClaimsKey = "claims"
)

// ClaimsFrom returns the claims stored by Auth, or nil on a public route.
func ClaimsFrom(c *gin.Context) *service.TokenClaims {
	v, ok := c.Get(CtxClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*service.TokenClaims)
	return claims
}

// RequireAdmin lets only ADMIN tokens through. It must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		if !claims.Role.IsAdmin() {
			response.Error[any](c, http.StatusForbidden, "admin role required", nil)
			return
		}
		c.Next()
	}
}
