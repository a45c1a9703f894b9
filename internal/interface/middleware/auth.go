package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-todo/internal/domain/service"
	"github.com/oksasatya/go-ddd-todo/pkg/response"
)

// AccessTokenCookie is the cookie the login endpoint stores the token in.
const AccessTokenCookie = "access_token"

// Authenticator resolves a raw token into claims.
type Authenticator interface {
	Execute(ctx context.Context, token string) (*service.TokenClaims, error)
}

// Auth accepts a bearer token from the Authorization header, or from the
// access_token cookie when the header is absent. On success it stores the
// claims, userID and role in the Gin context.
func Auth(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := authn.Execute(c.Request.Context(), token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}

		c.Set(CtxClaimsKey, claims)
		c.Set(CtxUserIDKey, claims.UserID.String())
		c.Set(CtxRoleKey, claims.Role.String())
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token, true
	}
	return "", false
}
