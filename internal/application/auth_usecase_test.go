package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-todo/internal/application"
	"github.com/oksasatya/go-ddd-todo/internal/application/dto"
	repo "github.com/oksasatya/go-ddd-todo/internal/domain/repository"
	"github.com/oksasatya/go-ddd-todo/internal/domain/service"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	u := storedUser(t, "test@example.com", "Password123")
	missing, _ := vo.NewEmail("missing@example.com")

	users := new(mockUserRepo)
	users.On("FindByEmail", ctx, u.Email()).Return(u, nil)
	users.On("FindByEmail", ctx, missing).Return(nil, nil)
	tokens := new(mockTokens)
	tokens.On("GenerateToken", ctx, u).Return("signed.jwt.token", nil)

	uc := application.NewLoginUseCase(users, tokens, nil)

	out, err := uc.Execute(ctx, dto.LoginUserDTO{Email: "test@example.com", Password: "Password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	require.Equal(t, u.ID().String(), out.ID)
	require.Equal(t, "USER", out.Role)

	_, err = uc.Execute(ctx, dto.LoginUserDTO{Email: "test@example.com", Password: "wrong"})
	require.ErrorIs(t, err, serrors.ErrInvalidCredentials)

	_, err = uc.Execute(ctx, dto.LoginUserDTO{Email: "missing@example.com", Password: "Password123"})
	require.ErrorIs(t, err, serrors.ErrInvalidCredentials)

	_, err = uc.Execute(ctx, dto.LoginUserDTO{Email: "not-an-email", Password: "Password123"})
	require.ErrorIs(t, err, serrors.ErrInvalidCredentials)

	tokens.AssertNumberOfCalls(t, "GenerateToken", 1)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	claims := &service.TokenClaims{UserID: vo.NewUserID(), Role: vo.RoleUser, TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}
	tokens := new(mockTokens)
	tokens.On("VerifyToken", ctx, "good").Return(claims, nil)
	tokens.On("VerifyToken", ctx, "bad").Return(nil, serrors.KindOnly(serrors.ErrInvalidToken))

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()
		revoked := new(mockRevocations)
		revoked.On("IsRevoked", ctx, "jti-1").Return(false, nil)
		got, err := application.NewAuthenticateUseCase(tokens, revoked, nil).Execute(ctx, "good")
		require.NoError(t, err)
		require.Equal(t, claims, got)
	})

	t.Run("revoked token", func(t *testing.T) {
		t.Parallel()
		revoked := new(mockRevocations)
		revoked.On("IsRevoked", ctx, "jti-1").Return(true, nil)
		_, err := application.NewAuthenticateUseCase(tokens, revoked, nil).Execute(ctx, "good")
		require.ErrorIs(t, err, serrors.ErrInvalidToken)
	})

	t.Run("revocation store outage lets the token through", func(t *testing.T) {
		t.Parallel()
		revoked := new(mockRevocations)
		revoked.On("IsRevoked", ctx, "jti-1").Return(false, errors.New("redis down"))
		_, err := application.NewAuthenticateUseCase(tokens, revoked, nil).Execute(ctx, "good")
		require.NoError(t, err)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		_, err := application.NewAuthenticateUseCase(tokens, nil, nil).Execute(ctx, "bad")
		require.ErrorIs(t, err, serrors.ErrInvalidToken)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	exp := time.Now().Add(time.Hour)
	revoked := new(mockRevocations)
	revoked.On("Revoke", ctx, "jti-9", exp).Return(nil).Once()

	uc := application.NewLogoutUseCase(revoked)
	require.NoError(t, uc.Execute(ctx, &service.TokenClaims{TokenID: "jti-9", ExpiresAt: exp}))
	require.ErrorIs(t, uc.Execute(ctx, nil), serrors.ErrUnauthorized)
	revoked.AssertExpectations(t)
}

func TestSearchUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hits := []repo.UserSummary{{ID: "1", Name: "Jane", Email: "jane@example.com", Role: "USER"}}
	dir := new(mockDirectory)
	dir.On("Search", ctx, "jane", 100).Return(hits, nil)

	got, err := application.NewSearchUsersUseCase(dir, nil).Execute(ctx, "  jane ", 500)
	require.NoError(t, err)
	require.Equal(t, hits, got)

	_, err = application.NewSearchUsersUseCase(dir, nil).Execute(ctx, " ", 10)
	require.ErrorIs(t, err, serrors.ErrValidation)

	got, err = application.NewSearchUsersUseCase(nil, nil).Execute(ctx, "jane", 0)
	require.NoError(t, err)
	require.Empty(t, got)

	dir.AssertNotCalled(t, "Search", mock.Anything, " ", mock.Anything)
}
