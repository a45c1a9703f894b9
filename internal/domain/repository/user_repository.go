package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
)

// UserRepository defines the persistence operations for users.
// Finders return (nil, nil) when no user matches.
type UserRepository interface {
	FindByID(ctx context.Context, id vo.UserID) (*entity.User, error)
	FindByEmail(ctx context.Context, email vo.Email) (*entity.User, error)
	// Save inserts or replaces the user.
	Save(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id vo.UserID) error
}
