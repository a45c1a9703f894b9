package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

func testUser(t *testing.T, role vo.Role) *entity.User {
	t.Helper()
	email, err := vo.NewEmail("jwt@example.com")
	require.NoError(t, err)
	return entity.ReconstituteUser(entity.UserSnapshot{
		ID:       vo.NewUserID(),
		Name:     "JWT",
		Email:    email,
		Password: vo.HashedPasswordFrom("x"),
		Role:     role,
	})
}

func TestJWTServiceRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewJWTService("secret", time.Hour, "todo-api")
	u := testUser(t, vo.RoleAdmin)

	token, err := svc.GenerateToken(ctx, u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, u.ID(), claims.UserID)
	require.Equal(t, vo.RoleAdmin, claims.Role)
	require.NotEmpty(t, claims.TokenID)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTServiceRejects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	u := testUser(t, vo.RoleUser)

	svc := NewJWTService("secret", time.Hour, "todo-api")
	token, err := svc.GenerateToken(ctx, u)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService("other", time.Hour, "todo-api").VerifyToken(ctx, token)
		require.ErrorIs(t, err, serrors.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService("secret", time.Hour, "someone-else").VerifyToken(ctx, token)
		require.ErrorIs(t, err, serrors.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		t.Parallel()
		late := NewJWTService("secret", time.Hour, "todo-api")
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.VerifyToken(ctx, token)
		require.ErrorIs(t, err, serrors.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		_, err := svc.VerifyToken(ctx, "not.a.jwt")
		require.ErrorIs(t, err, serrors.ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		t.Parallel()
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			UserID: u.ID().String(),
			Role:   "ADMIN",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "todo-api",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.VerifyToken(ctx, s)
		require.ErrorIs(t, err, serrors.ErrInvalidToken)
	})
}

func TestNewJWTServiceDefaultsTTL(t *testing.T) {
	t.Parallel()
	require.Equal(t, DefaultTTL, NewJWTService("s", 0, "").TTL)
}
