package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-todo/internal/application/dto"
	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-todo/internal/domain/repository"
	"github.com/oksasatya/go-ddd-todo/internal/domain/service"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

type CreateTodoUseCase struct {
	Todos  repo.TodoRepository
	Logger *logrus.Logger
}

func NewCreateTodoUseCase(todos repo.TodoRepository, logger *logrus.Logger) *CreateTodoUseCase {
	return &CreateTodoUseCase{Todos: todos, Logger: loggerOrDiscard(logger)}
}

func (uc *CreateTodoUseCase) Execute(ctx context.Context, in dto.CreateTodoDTO) (*dto.TodoDTO, error) {
	userID, err := vo.ParseUserID(in.UserID)
	if err != nil {
		return nil, err
	}
	priority, err := vo.ParsePriority(in.Priority)
	if err != nil {
		return nil, err
	}
	due, err := dto.ParseTime("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}

	todo, err := entity.NewTodo(entity.NewTodoParams{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     due,
		Priority:    priority,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.Todos.Save(ctx, todo); err != nil {
		uc.Logger.WithError(err).WithField("user_id", userID.String()).Error("save todo failed")
		return nil, fmt.Errorf("save todo: %w", err)
	}

	out := dto.TodoToDTO(todo)
	return &out, nil
}

type GetTodoByIDUseCase struct {
	Todos repo.TodoRepository
}

func NewGetTodoByIDUseCase(todos repo.TodoRepository) *GetTodoByIDUseCase {
	return &GetTodoByIDUseCase{Todos: todos}
}

func (uc *GetTodoByIDUseCase) Execute(ctx context.Context, id string) (*dto.TodoDTO, error) {
	todo, err := findTodo(ctx, uc.Todos, id)
	if err != nil {
		return nil, err
	}
	out := dto.TodoToDTO(todo)
	return &out, nil
}

// ExecuteAs loads the todo on behalf of caller. Only the owner or an admin
// may see it; anyone else gets ErrForbidden.
func (uc *GetTodoByIDUseCase) ExecuteAs(ctx context.Context, id string, caller *service.TokenClaims) (*dto.TodoDTO, error) {
	if caller == nil {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}
	todo, err := findTodo(ctx, uc.Todos, id)
	if err != nil {
		return nil, err
	}
	if !caller.Role.IsAdmin() && !todo.BelongsTo(caller.UserID) {
		return nil, serrors.With(serrors.ErrForbidden, "access to this resource is not allowed")
	}
	out := dto.TodoToDTO(todo)
	return &out, nil
}

type GetUserTodosUseCase struct {
	Todos repo.TodoRepository
}

func NewGetUserTodosUseCase(todos repo.TodoRepository) *GetUserTodosUseCase {
	return &GetUserTodosUseCase{Todos: todos}
}

// Execute lists every todo of userID. A user without todos gets an empty,
// non-nil slice.
func (uc *GetUserTodosUseCase) Execute(ctx context.Context, userID string) ([]dto.TodoDTO, error) {
	uid, err := vo.ParseUserID(userID)
	if err != nil {
		return nil, err
	}
	todos, err := uc.Todos.FindByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("find todos: %w", err)
	}
	return dto.TodosToDTO(todos), nil
}

type UpdateTodoUseCase struct {
	Todos  repo.TodoRepository
	Logger *logrus.Logger
}

func NewUpdateTodoUseCase(todos repo.TodoRepository, logger *logrus.Logger) *UpdateTodoUseCase {
	return &UpdateTodoUseCase{Todos: todos, Logger: loggerOrDiscard(logger)}
}

// Execute applies the non-nil fields of in. Every input is parsed before the
// todo is touched, so a rejected update leaves nothing half applied.
func (uc *UpdateTodoUseCase) Execute(ctx context.Context, id string, in dto.UpdateTodoDTO) (*dto.TodoDTO, error) {
	todo, err := findTodo(ctx, uc.Todos, id)
	if err != nil {
		return nil, err
	}

	var (
		due      time.Time
		priority vo.Priority
		status   vo.Status
	)
	if in.DueDate != nil {
		if due, err = dto.ParseTime("due_date", *in.DueDate); err != nil {
			return nil, err
		}
	}
	if in.Priority != nil {
		if priority, err = vo.ParsePriority(*in.Priority); err != nil {
			return nil, err
		}
	}
	if in.Status != nil {
		if status, err = vo.ParseStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	if in.Title != nil {
		if err := todo.UpdateTitle(*in.Title); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		todo.UpdateDescription(*in.Description)
	}
	if in.DueDate != nil {
		todo.UpdateDueDate(due)
	}
	if in.Priority != nil {
		todo.UpdatePriority(priority)
	}
	if in.Status != nil {
		if err := applyStatus(todo, status); err != nil {
			return nil, err
		}
	}

	if err := uc.Todos.Save(ctx, todo); err != nil {
		uc.Logger.WithError(err).WithField("todo_id", id).Error("save todo failed")
		return nil, fmt.Errorf("save todo: %w", err)
	}

	out := dto.TodoToDTO(todo)
	return &out, nil
}

func applyStatus(todo *entity.Todo, status vo.Status) error {
	switch status {
	case vo.StatusDone:
		todo.MarkAsDone()
	case vo.StatusInProgress:
		return todo.MarkAsInProgress()
	default:
		todo.MarkAsTodo()
	}
	return nil
}

type DeleteTodoUseCase struct {
	Todos  repo.TodoRepository
	Logger *logrus.Logger
}

func NewDeleteTodoUseCase(todos repo.TodoRepository, logger *logrus.Logger) *DeleteTodoUseCase {
	return &DeleteTodoUseCase{Todos: todos, Logger: loggerOrDiscard(logger)}
}

func (uc *DeleteTodoUseCase) Execute(ctx context.Context, id string) error {
	todo, err := findTodo(ctx, uc.Todos, id)
	if err != nil {
		return err
	}
	if err := uc.Todos.Delete(ctx, todo.ID()); err != nil {
		uc.Logger.WithError(err).WithField("todo_id", id).Error("delete todo failed")
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}

func findTodo(ctx context.Context, todos repo.TodoRepository, id string) (*entity.Todo, error) {
	tid, err := vo.ParseTodoID(id)
	if err != nil {
		return nil, err
	}
	todo, err := todos.FindByID(ctx, tid)
	if err != nil {
		return nil, fmt.Errorf("find todo: %w", err)
	}
	if todo == nil {
		return nil, serrors.With(serrors.ErrNotFound, "todo with id %s not found", id)
	}
	return todo, nil
}
