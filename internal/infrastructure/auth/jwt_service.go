package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	"github.com/oksasatya/go-ddd-todo/internal/domain/service"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

// DefaultTTL is the token lifetime when none is configured.
const DefaultTTL = 24 * time.Hour

// JWTService issues HS256 signed tokens carrying the user id and role.
type JWTService struct {
	Secret []byte
	TTL    time.Duration
	Issuer string

	now func() time.Time
}

func NewJWTService(secret string, ttl time.Duration, issuer string) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWTService{Secret: []byte(secret), TTL: ttl, Issuer: issuer, now: time.Now}
}

type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (s *JWTService) GenerateToken(_ context.Context, u *entity.User) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: u.ID().String(),
		Role:   u.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.Issuer,
			Subject:   u.ID().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.Secret)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "sign token")
	}
	return signed, nil
}

func (s *JWTService) VerifyToken(_ context.Context, token string) (*service.TokenClaims, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired()}
	if s.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.Issuer))
	}
	tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.Secret, nil
	}, opts...)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidToken, err, "invalid token")
	}
	if !tkn.Valid {
		return nil, serrors.With(serrors.ErrInvalidToken, "invalid token")
	}

	uid, err := vo.ParseUserID(claims.UserID)
	if err != nil {
		return nil, serrors.With(serrors.ErrInvalidToken, "token has no user id")
	}
	role, err := vo.ParseRole(claims.Role)
	if err != nil {
		return nil, serrors.With(serrors.ErrInvalidToken, "token has an unknown role")
	}

	return &service.TokenClaims{
		UserID:    uid,
		Role:      role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

var _ service.TokenService = (*JWTService)(nil)
