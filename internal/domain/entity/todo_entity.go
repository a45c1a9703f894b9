package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

// MaxTitleLength is the maximum number of characters of a todo title.
const MaxTitleLength = 100

// Todo is a single task owned by a user.
// A Todo is mutated in place and belongs to one request at a time.
type Todo struct {
	id          vo.TodoID
	userID      vo.UserID
	title       string
	description string
	dueDate     time.Time
	priority    vo.Priority
	status      vo.Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTodoParams carries the caller supplied fields of a new todo.
type NewTodoParams struct {
	UserID      vo.UserID
	Title       string
	Description string
	DueDate     time.Time
	Priority    vo.Priority
}

// NewTodo validates p and returns a todo in status TODO with a fresh id.
func NewTodo(p NewTodoParams) (*Todo, error) {
	if p.UserID.IsZero() {
		return nil, serrors.With(serrors.ErrValidation, "user id cannot be empty")
	}
	if err := validateTitle(p.Title); err != nil {
		return nil, err
	}
	if !p.Priority.IsValid() {
		return nil, serrors.With(serrors.ErrValidation, "invalid priority value: %d", int(p.Priority))
	}

	now := time.Now()
	return &Todo{
		id:          vo.NewTodoID(),
		userID:      p.UserID,
		title:       p.Title,
		description: p.Description,
		dueDate:     p.DueDate,
		priority:    p.Priority,
		status:      vo.DefaultStatus(),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// TodoSnapshot is the full persisted state of a todo.
type TodoSnapshot struct {
	ID          vo.TodoID
	UserID      vo.UserID
	Title       string
	Description string
	DueDate     time.Time
	Priority    vo.Priority
	Status      vo.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReconstituteTodo rebuilds a todo from storage. Stored state is trusted and
// not validated again.
func ReconstituteTodo(s TodoSnapshot) *Todo {
	return &Todo{
		id:          s.ID,
		userID:      s.UserID,
		title:       s.Title,
		description: s.Description,
		dueDate:     s.DueDate,
		priority:    s.Priority,
		status:      s.Status,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}

// Snapshot returns a copy of the todo state.
func (t *Todo) Snapshot() TodoSnapshot {
	return TodoSnapshot{
		ID:          t.id,
		UserID:      t.userID,
		Title:       t.title,
		Description: t.description,
		DueDate:     t.dueDate,
		Priority:    t.priority,
		Status:      t.status,
		CreatedAt:   t.createdAt,
		UpdatedAt:   t.updatedAt,
	}
}

func (t *Todo) ID() vo.TodoID         { return t.id }
func (t *Todo) UserID() vo.UserID     { return t.userID }
func (t *Todo) Title() string         { return t.title }
func (t *Todo) Description() string   { return t.description }
func (t *Todo) DueDate() time.Time    { return t.dueDate }
func (t *Todo) Priority() vo.Priority { return t.priority }
func (t *Todo) Status() vo.Status     { return t.status }
func (t *Todo) CreatedAt() time.Time  { return t.createdAt }
func (t *Todo) UpdatedAt() time.Time  { return t.updatedAt }

// BelongsTo reports whether the todo references user u.
func (t *Todo) BelongsTo(u vo.UserID) bool { return t.userID.Equals(u) }

func (t *Todo) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	t.title = title
	t.touch()
	return nil
}

func (t *Todo) UpdateDescription(description string) {
	t.description = description
	t.touch()
}

func (t *Todo) UpdateDueDate(due time.Time) {
	t.dueDate = due
	t.touch()
}

func (t *Todo) UpdatePriority(p vo.Priority) {
	t.priority = p
	t.touch()
}

// MarkAsInProgress moves the todo to IN_PROGRESS. A done todo must be
// reopened with MarkAsTodo first.
func (t *Todo) MarkAsInProgress() error {
	if t.status.IsDone() {
		return serrors.With(serrors.ErrInvalidStateTransition, "cannot mark a completed todo as in progress")
	}
	t.status = vo.StatusInProgress
	t.touch()
	return nil
}

func (t *Todo) MarkAsDone() {
	t.status = vo.StatusDone
	t.touch()
}

func (t *Todo) MarkAsTodo() {
	t.status = vo.StatusTodo
	t.touch()
}

// IsOverdue reports whether the due date has passed and the todo is not done.
func (t *Todo) IsOverdue() bool {
	return t.isOverdueAt(time.Now())
}

func (t *Todo) isOverdueAt(now time.Time) bool {
	return t.dueDate.Before(now) && !t.status.IsDone()
}

func (t *Todo) touch() { t.updatedAt = time.Now() }

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return serrors.With(serrors.ErrValidation, "title cannot be empty")
	}
	// the stored value is the raw input, so its length is what counts
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return serrors.With(serrors.ErrValidation, "title cannot be longer than %d characters", MaxTitleLength)
	}
	return nil
}
