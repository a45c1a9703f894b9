package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-todo/internal/application/dto"
	repo "github.com/oksasatya/go-ddd-todo/internal/domain/repository"
	"github.com/oksasatya/go-ddd-todo/internal/domain/service"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

const invalidCredentialsMsg = "invalid email or password"

type LoginUseCase struct {
	Users  repo.UserRepository
	Tokens service.TokenService
	Logger *logrus.Logger
}

func NewLoginUseCase(users repo.UserRepository, tokens service.TokenService, logger *logrus.Logger) *LoginUseCase {
	return &LoginUseCase{Users: users, Tokens: tokens, Logger: loggerOrDiscard(logger)}
}

// Execute checks the credentials and issues a token. An unknown email and a
// wrong password fail with the same error.
func (uc *LoginUseCase) Execute(ctx context.Context, in dto.LoginUserDTO) (*dto.AuthUserDTO, error) {
	email, err := vo.NewEmail(in.Email)
	if err != nil {
		return nil, serrors.With(serrors.ErrInvalidCredentials, invalidCredentialsMsg)
	}

	u, err := uc.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if u == nil || !u.ValidatePassword(in.Password) {
		uc.Logger.WithField("email", email.String()).Warn("login rejected")
		return nil, serrors.With(serrors.ErrInvalidCredentials, invalidCredentialsMsg)
	}

	token, err := uc.Tokens.GenerateToken(ctx, u)
	if err != nil {
		uc.Logger.WithError(err).WithField("user_id", u.ID().String()).Error("generate token failed")
		return nil, fmt.Errorf("generate token: %w", err)
	}

	out := dto.UserToAuthDTO(u, token)
	return &out, nil
}

// AuthenticateUseCase resolves a bearer token into claims, rejecting tokens
// that were revoked by a logout.
type AuthenticateUseCase struct {
	Tokens  service.TokenService
	Revoked service.TokenRevocationStore
	Logger  *logrus.Logger
}

func NewAuthenticateUseCase(tokens service.TokenService, revoked service.TokenRevocationStore, logger *logrus.Logger) *AuthenticateUseCase {
	return &AuthenticateUseCase{Tokens: tokens, Revoked: revoked, Logger: loggerOrDiscard(logger)}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, token string) (*service.TokenClaims, error) {
	claims, err := uc.Tokens.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if uc.Revoked == nil || claims.TokenID == "" {
		return claims, nil
	}

	revoked, err := uc.Revoked.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		// the revocation list is advisory; an outage must not lock everyone out
		uc.Logger.WithError(err).WithField("token_id", claims.TokenID).Warn("revocation lookup failed")
		return claims, nil
	}
	if revoked {
		return nil, serrors.With(serrors.ErrInvalidToken, "token has been revoked")
	}
	return claims, nil
}

type LogoutUseCase struct {
	Revoked service.TokenRevocationStore
}

func NewLogoutUseCase(revoked service.TokenRevocationStore) *LogoutUseCase {
	return &LogoutUseCase{Revoked: revoked}
}

// Execute revokes the token described by claims until it expires.
func (uc *LogoutUseCase) Execute(ctx context.Context, claims *service.TokenClaims) error {
	if claims == nil {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}
	if uc.Revoked == nil || claims.TokenID == "" {
		return nil
	}
	if err := uc.Revoked.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type SearchUsersUseCase struct {
	Directory repo.UserDirectory
	Logger    *logrus.Logger
}

func NewSearchUsersUseCase(directory repo.UserDirectory, logger *logrus.Logger) *SearchUsersUseCase {
	return &SearchUsersUseCase{Directory: directory, Logger: loggerOrDiscard(logger)}
}

// Execute runs a full text search over users. Without a directory the
// result is always empty.
func (uc *SearchUsersUseCase) Execute(ctx context.Context, query string, limit int) ([]repo.UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, serrors.With(serrors.ErrValidation, "search query cannot be empty")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	if uc.Directory == nil {
		return []repo.UserSummary{}, nil
	}

	hits, err := uc.Directory.Search(ctx, query, limit)
	if err != nil {
		uc.Logger.WithError(err).WithField("query", query).Error("user search failed")
		return nil, fmt.Errorf("search users: %w", err)
	}
	if hits == nil {
		hits = []repo.UserSummary{}
	}
	return hits, nil
}
