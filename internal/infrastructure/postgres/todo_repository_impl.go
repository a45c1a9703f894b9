package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	"github.com/oksasatya/go-ddd-todo/internal/domain/repository"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
)

const todoColumns = `id, user_id, title, description, due_date, priority, status, created_at, updated_at`

type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) FindByID(ctx context.Context, id vo.TodoID) (*entity.Todo, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1
	`, id.String())

	todo, err := scanTodo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return todo, err
}

// FindByUserID returns the todos of userID, oldest first.
func (r *TodoRepository) FindByUserID(ctx context.Context, userID vo.UserID) ([]*entity.Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return out, nil
}

func (r *TodoRepository) Save(ctx context.Context, t *entity.Todo) error {
	s := t.Snapshot()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO todos (id, user_id, title, description, due_date, priority, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			due_date = EXCLUDED.due_date,
			priority = EXCLUDED.priority,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`, s.ID.String(), s.UserID.String(), s.Title, s.Description, s.DueDate,
		s.Priority.String(), s.Status.String(), s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id vo.TodoID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id.String()); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}

func scanTodo(row pgx.Row) (*entity.Todo, error) {
	var (
		id, userID, title, description, priority, status string
		dueDate, createdAt, updatedAt                     time.Time
	)
	if err := row.Scan(&id, &userID, &title, &description, &dueDate, &priority, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	tid, err := vo.ParseTodoID(id)
	if err != nil {
		return nil, fmt.Errorf("stored todo: %w", err)
	}
	uid, err := vo.ParseUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("stored todo %s: %w", id, err)
	}
	p, err := vo.ParsePriority(priority)
	if err != nil {
		return nil, fmt.Errorf("stored todo %s: %w", id, err)
	}
	st, err := vo.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("stored todo %s: %w", id, err)
	}

	return entity.ReconstituteTodo(entity.TodoSnapshot{
		ID:          tid,
		UserID:      uid,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    p,
		Status:      st,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}), nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
