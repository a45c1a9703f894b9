package dto

import (
	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
)

// CreateTodoDTO is the input of the create todo use case.
type CreateTodoDTO struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title" binding:"required,todotitle"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
}

// UpdateTodoDTO carries a partial update; nil fields are left untouched.
type UpdateTodoDTO struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,todotitle"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// TodoDTO is the serialized form of a todo.
type TodoDTO struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	IsOverdue   bool   `json:"is_overdue"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func TodoToDTO(t *entity.Todo) TodoDTO {
	return TodoDTO{
		ID:          t.ID().String(),
		UserID:      t.UserID().String(),
		Title:       t.Title(),
		Description: t.Description(),
		DueDate:     FormatTime(t.DueDate()),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		IsOverdue:   t.IsOverdue(),
		CreatedAt:   FormatTime(t.CreatedAt()),
		UpdatedAt:   FormatTime(t.UpdatedAt()),
	}
}

func TodosToDTO(todos []*entity.Todo) []TodoDTO {
	out := make([]TodoDTO, 0, len(todos))
	for _, t := range todos {
		out = append(out, TodoToDTO(t))
	}
	return out
}

// TodoFromDTO rebuilds a todo from its serialized form. IsOverdue is derived
// and ignored.
func TodoFromDTO(d TodoDTO) (*entity.Todo, error) {
	id, err := vo.ParseTodoID(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := vo.ParseUserID(d.UserID)
	if err != nil {
		return nil, err
	}
	priority, err := vo.ParsePriority(d.Priority)
	if err != nil {
		return nil, err
	}
	status, err := vo.ParseStatus(d.Status)
	if err != nil {
		return nil, err
	}
	due, err := ParseTime("due_date", d.DueDate)
	if err != nil {
		return nil, err
	}
	created, err := ParseTime("created_at", d.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := ParseTime("updated_at", d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return entity.ReconstituteTodo(entity.TodoSnapshot{
		ID:          id,
		UserID:      userID,
		Title:       d.Title,
		Description: d.Description,
		DueDate:     due,
		Priority:    priority,
		Status:      status,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}), nil
}
