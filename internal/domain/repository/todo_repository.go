package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
)

// TodoRepository defines the persistence operations for todos.
type TodoRepository interface {
	// FindByID returns (nil, nil) when the todo does not exist.
	FindByID(ctx context.Context, id vo.TodoID) (*entity.Todo, error)
	// FindByUserID returns every todo referencing userID, possibly none.
	FindByUserID(ctx context.Context, userID vo.UserID) ([]*entity.Todo, error)
	Save(ctx context.Context, t *entity.Todo) error
	Delete(ctx context.Context, id vo.TodoID) error
}
