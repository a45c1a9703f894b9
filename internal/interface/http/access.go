package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-todo/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

// requireSelfOrAdmin fails with ErrForbidden unless the caller owns
// ownerID or is an admin.
func requireSelfOrAdmin(c *gin.Context, ownerID string) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}
	if claims.Role.IsAdmin() || claims.UserID.String() == ownerID {
		return nil
	}
	return serrors.With(serrors.ErrForbidden, "access to this resource is not allowed")
}

func isAdmin(c *gin.Context) bool {
	claims := middleware.ClaimsFrom(c)
	return claims != nil && claims.Role.IsAdmin()
}
