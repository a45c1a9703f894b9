package valueobject

import (
	"strings"

	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

// UserID identifies a user. The zero value is not a valid id.
type UserID struct{ value string }

// NewUserID generates a fresh random UserID.
func NewUserID() UserID { return UserID{value: uuid.NewString()} }

// ParseUserID wraps an existing identifier string.
func ParseUserID(s string) (UserID, error) {
	if strings.TrimSpace(s) == "" {
		return UserID{}, serrors.With(serrors.ErrValidation, "user id cannot be empty")
	}
	return UserID{value: s}, nil
}

func (id UserID) String() string          { return id.value }
func (id UserID) IsZero() bool            { return id.value == "" }
func (id UserID) Equals(other UserID) bool { return id.value == other.value }

// TodoID identifies a todo. The zero value is not a valid id.
type TodoID struct{ value string }

// NewTodoID generates a fresh random TodoID.
func NewTodoID() TodoID { return TodoID{value: uuid.NewString()} }

// ParseTodoID wraps an existing identifier string.
func ParseTodoID(s string) (TodoID, error) {
	if strings.TrimSpace(s) == "" {
		return TodoID{}, serrors.With(serrors.ErrValidation, "todo id cannot be empty")
	}
	return TodoID{value: s}, nil
}

func (id TodoID) String() string          { return id.value }
func (id TodoID) IsZero() bool            { return id.value == "" }
func (id TodoID) Equals(other TodoID) bool { return id.value == other.value }
