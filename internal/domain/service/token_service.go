package service

import (
	"context"
	"time"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
)

// TokenClaims is what an auth token proves about its bearer.
type TokenClaims struct {
	UserID    vo.UserID
	Role      vo.Role
	TokenID   string
	ExpiresAt time.Time
}

// TokenService issues and verifies auth tokens.
// VerifyToken fails with serrors.ErrInvalidToken for any unusable token.
type TokenService interface {
	GenerateToken(ctx context.Context, u *entity.User) (string, error)
	VerifyToken(ctx context.Context, token string) (*TokenClaims, error)
}
